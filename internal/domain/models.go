package domain

// Language is the output language requested for the final ideas.
type Language string

const (
	LangEnglish Language = "English"
	LangArabic  Language = "Arabic"
)

// Brief is the normalized campaign input produced by the first pipeline step.
// It is immutable after creation and consumed by every later step.
type Brief struct {
	Product     string   `json:"product"`
	Description string   `json:"description"`
	Audience    string   `json:"audience"`
	Tone        string   `json:"tone"`
	Language    Language `json:"language"`
	Objectives  []string `json:"objectives"`
	Constraints []string `json:"constraints"`
}

// MarketInsights groups strategic observations about the target market into
// six fixed categories, each holding a handful of short statements.
type MarketInsights struct {
	CulturalMoments      []string `json:"cultural_moments"`
	LocalTrends          []string `json:"local_trends"`
	TargetBehaviors      []string `json:"target_behaviors"`
	CompetitiveLandscape []string `json:"competitive_landscape"`
	Opportunities        []string `json:"opportunities"`
	SeasonalRelevance    []string `json:"seasonal_relevance"`
}

// Angle is one distinct creative strategic direction derived from the brief
// and market insights.
type Angle struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	Insight             string `json:"insight"`
	KeyMessage          string `json:"key_message"`
	CulturalHook        string `json:"cultural_hook"`
	TimingConsideration string `json:"timing_consideration"`
}

// Captions holds the per-platform social captions of an idea.
type Captions struct {
	Instagram string `json:"instagram"`
	X         string `json:"x"`
}

// Idea is a fully fleshed campaign concept tied to one angle. ComplianceNotes
// is filled in by the compliance step and carried through to the final output.
type Idea struct {
	Label           string   `json:"label"`
	BasedOnAngleID  string   `json:"based_on_angle_id"`
	Tagline         string   `json:"tagline"`
	Script30s       string   `json:"script_30s"`
	Captions        Captions `json:"captions"`
	CTA             string   `json:"cta"`
	ComplianceNotes string   `json:"compliance_notes,omitempty"`
}
