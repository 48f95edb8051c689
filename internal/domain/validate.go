package domain

import "fmt"

// NumAngles and NumIdeas are the exact cardinalities every run must produce.
const (
	NumAngles = 5
	NumIdeas  = 3
)

// ideaLabels are the only labels an idea set may carry, one each.
var ideaLabels = []string{"A", "B", "C"}

// Validate checks the shape of a normalized brief.
func (b Brief) Validate() error {
	if b.Product == "" {
		return fmt.Errorf("brief: product is empty")
	}
	if b.Audience == "" {
		return fmt.Errorf("brief: audience is empty")
	}
	if b.Language != LangEnglish && b.Language != LangArabic {
		return fmt.Errorf("brief: language %q is not English or Arabic", b.Language)
	}
	return nil
}

// Validate checks that all six insight categories are present and non-empty.
func (m MarketInsights) Validate() error {
	categories := []struct {
		name  string
		items []string
	}{
		{"cultural_moments", m.CulturalMoments},
		{"local_trends", m.LocalTrends},
		{"target_behaviors", m.TargetBehaviors},
		{"competitive_landscape", m.CompetitiveLandscape},
		{"opportunities", m.Opportunities},
		{"seasonal_relevance", m.SeasonalRelevance},
	}
	for _, c := range categories {
		if len(c.items) == 0 {
			return fmt.Errorf("market insights: category %s is empty", c.name)
		}
	}
	return nil
}

// ValidateAngles checks that exactly 5 angles exist, with distinct ids "1".."5".
func ValidateAngles(angles []Angle) error {
	if len(angles) != NumAngles {
		return fmt.Errorf("expected %d angles, got %d", NumAngles, len(angles))
	}
	seen := make(map[string]bool, NumAngles)
	for _, a := range angles {
		if !validAngleID(a.ID) {
			return fmt.Errorf("angle id %q is not in \"1\"..\"5\"", a.ID)
		}
		if seen[a.ID] {
			return fmt.Errorf("duplicate angle id %q", a.ID)
		}
		seen[a.ID] = true
		if a.Title == "" {
			return fmt.Errorf("angle %s: title is empty", a.ID)
		}
	}
	return nil
}

// ValidateIdeas checks that exactly 3 ideas exist, labeled exactly A, B and C
// (in any order), each referencing a valid angle id.
func ValidateIdeas(ideas []Idea) error {
	if len(ideas) != NumIdeas {
		return fmt.Errorf("expected %d ideas, got %d", NumIdeas, len(ideas))
	}
	seen := make(map[string]bool, NumIdeas)
	for _, idea := range ideas {
		if seen[idea.Label] {
			return fmt.Errorf("duplicate idea label %q", idea.Label)
		}
		seen[idea.Label] = true
		if !validAngleID(idea.BasedOnAngleID) {
			return fmt.Errorf("idea %s: based_on_angle_id %q is not in \"1\"..\"5\"", idea.Label, idea.BasedOnAngleID)
		}
	}
	for _, label := range ideaLabels {
		if !seen[label] {
			return fmt.Errorf("missing idea label %q", label)
		}
	}
	return nil
}

func validAngleID(id string) bool {
	return len(id) == 1 && id[0] >= '1' && id[0] <= '5'
}
