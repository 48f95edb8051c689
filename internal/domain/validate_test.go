package domain

import (
	"strconv"
	"testing"
)

func validAngles() []Angle {
	angles := make([]Angle, 5)
	for i := range angles {
		angles[i] = Angle{
			ID:    strconv.Itoa(i + 1),
			Title: "Angle " + strconv.Itoa(i+1),
		}
	}
	return angles
}

func validIdeas() []Idea {
	return []Idea{
		{Label: "A", BasedOnAngleID: "1", Tagline: "Tag A"},
		{Label: "B", BasedOnAngleID: "3", Tagline: "Tag B"},
		{Label: "C", BasedOnAngleID: "5", Tagline: "Tag C"},
	}
}

func TestValidateAngles(t *testing.T) {
	if err := ValidateAngles(validAngles()); err != nil {
		t.Fatalf("valid angles rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func([]Angle) []Angle
	}{
		{"too few", func(a []Angle) []Angle { return a[:4] }},
		{"too many", func(a []Angle) []Angle { return append(a, Angle{ID: "5", Title: "extra"}) }},
		{"duplicate id", func(a []Angle) []Angle { a[1].ID = "1"; return a }},
		{"id out of range", func(a []Angle) []Angle { a[0].ID = "6"; return a }},
		{"non-numeric id", func(a []Angle) []Angle { a[0].ID = "one"; return a }},
		{"empty title", func(a []Angle) []Angle { a[2].Title = ""; return a }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateAngles(tc.mutate(validAngles())); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateIdeas(t *testing.T) {
	if err := ValidateIdeas(validIdeas()); err != nil {
		t.Fatalf("valid ideas rejected: %v", err)
	}

	// Label order must not matter.
	shuffled := []Idea{validIdeas()[2], validIdeas()[0], validIdeas()[1]}
	if err := ValidateIdeas(shuffled); err != nil {
		t.Fatalf("reordered ideas rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func([]Idea) []Idea
	}{
		{"too few", func(i []Idea) []Idea { return i[:2] }},
		{"too many", func(i []Idea) []Idea { return append(i, Idea{Label: "D", BasedOnAngleID: "2"}) }},
		{"duplicate label", func(i []Idea) []Idea { i[1].Label = "A"; return i }},
		{"wrong label", func(i []Idea) []Idea { i[2].Label = "D"; return i }},
		{"lowercase label", func(i []Idea) []Idea { i[0].Label = "a"; return i }},
		{"bad angle ref", func(i []Idea) []Idea { i[0].BasedOnAngleID = "9"; return i }},
		{"empty angle ref", func(i []Idea) []Idea { i[0].BasedOnAngleID = ""; return i }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateIdeas(tc.mutate(validIdeas())); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestBriefValidate(t *testing.T) {
	brief := Brief{
		Product:  "Smart Bottle",
		Audience: "People in Riyadh, Saudi Arabia",
		Language: LangEnglish,
	}
	if err := brief.Validate(); err != nil {
		t.Fatalf("valid brief rejected: %v", err)
	}

	bad := brief
	bad.Language = "French"
	if err := bad.Validate(); err == nil {
		t.Error("expected error for unsupported language")
	}

	bad = brief
	bad.Audience = ""
	if err := bad.Validate(); err == nil {
		t.Error("expected error for empty audience")
	}

	bad = brief
	bad.Product = ""
	if err := bad.Validate(); err == nil {
		t.Error("expected error for empty product")
	}
}

func TestMarketInsightsValidate(t *testing.T) {
	full := MarketInsights{
		CulturalMoments:      []string{"a"},
		LocalTrends:          []string{"b"},
		TargetBehaviors:      []string{"c"},
		CompetitiveLandscape: []string{"d"},
		Opportunities:        []string{"e"},
		SeasonalRelevance:    []string{"f"},
	}
	if err := full.Validate(); err != nil {
		t.Fatalf("valid insights rejected: %v", err)
	}

	missing := full
	missing.Opportunities = nil
	if err := missing.Validate(); err == nil {
		t.Error("expected error for empty category")
	}
}
