package domain

import (
	"fmt"
	"time"
)

// Snapshot captures the date, season, and cultural metadata used to bias
// generation toward timeliness. It is recomputed fresh on each access and
// holds no state.
type Snapshot struct {
	CurrentDate    string   `json:"current_date"`
	CurrentMonth   string   `json:"current_month"`
	CurrentYear    int      `json:"current_year"`
	Season         string   `json:"season"`
	CulturalEvents []string `json:"cultural_events"`
	Weekday        string   `json:"weekday"`
	IsWeekend      bool     `json:"is_weekend"`
	ContextNote    string   `json:"context_note"`
}

// culturalEvents maps each calendar month to the KSA moments worth telling
// the model about. Fixed at process start, never mutated.
var culturalEvents = map[time.Month][]string{
	time.January:   {"New Year period", "Winter shopping season"},
	time.February:  {"Valentine's season", "Winter activities"},
	time.March:     {"Spring season begins", "Outdoor activities increase"},
	time.April:     {"Spring weather", "Ramadan season (varies yearly)"},
	time.May:       {"End of school year approaching", "Eid preparations (varies)"},
	time.June:      {"Summer vacation begins", "Travel season"},
	time.July:      {"Peak summer", "Indoor activities focus"},
	time.August:    {"Back-to-school preparations", "Summer sales"},
	time.September: {"School year begins", "Autumn preparations"},
	time.October:   {"Mild weather returns", "Outdoor events resume"},
	time.November:  {"Pleasant weather", "National Day season (Sept 23rd nearby)"},
	time.December:  {"Winter season", "Year-end shopping", "Holiday preparations"},
}

// riyadh is the KSA timezone (UTC+3, no DST).
var riyadh = loadRiyadh()

func loadRiyadh() *time.Location {
	if loc, err := time.LoadLocation("Asia/Riyadh"); err == nil {
		return loc
	}
	return time.FixedZone("AST", 3*60*60)
}

// CurrentSnapshot returns the snapshot for the current Riyadh wall-clock time.
func CurrentSnapshot() Snapshot {
	return NewSnapshot(time.Now())
}

// NewSnapshot builds the snapshot for an arbitrary instant, interpreted in
// the Riyadh timezone.
func NewSnapshot(now time.Time) Snapshot {
	now = now.In(riyadh)

	season := seasonOf(now.Month())
	weekday := now.Weekday()

	return Snapshot{
		CurrentDate:    now.Format("2006-01-02"),
		CurrentMonth:   now.Month().String(),
		CurrentYear:    now.Year(),
		Season:         season,
		CulturalEvents: culturalEvents[now.Month()],
		Weekday:        weekday.String(),
		// KSA weekend is Friday-Saturday.
		IsWeekend: weekday == time.Friday || weekday == time.Saturday,
		ContextNote: fmt.Sprintf("Current date: %s %d, %d (%s season in KSA)",
			now.Month(), now.Day(), now.Year(), season),
	}
}

// seasonOf maps a month to its Northern Hemisphere season.
func seasonOf(m time.Month) string {
	switch m {
	case time.December, time.January, time.February:
		return "Winter"
	case time.March, time.April, time.May:
		return "Spring"
	case time.June, time.July, time.August:
		return "Summer"
	default:
		return "Autumn"
	}
}
