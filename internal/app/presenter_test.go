package app_test

import (
	"strings"
	"testing"

	"github.com/mrumer-yk/creative-market-agent/internal/app"
	"github.com/mrumer-yk/creative-market-agent/internal/domain"
)

func presenterIdeas() []domain.Idea {
	return []domain.Idea{
		{
			Label:          "B",
			BasedOnAngleID: "2",
			Tagline:        "Second tagline",
			Script30s:      "Second script.",
			Captions:       domain.Captions{Instagram: "ig b", X: "x b"},
			CTA:            "Act now",
		},
		{
			Label:           "A",
			BasedOnAngleID:  "1",
			Tagline:         "First tagline",
			Script30s:       "First script.",
			Captions:        domain.Captions{Instagram: "ig a", X: "x a"},
			CTA:             "Learn more",
			ComplianceNotes: "Toned down the claim.",
		},
		{
			Label:          "C",
			BasedOnAngleID: "3",
			Tagline:        "Third tagline",
			Script30s:      "Third script.",
			Captions:       domain.Captions{Instagram: "ig c", X: "x c"},
			CTA:            "Join us",
		},
	}
}

func TestRenderIdeas_OrderedByLabel(t *testing.T) {
	out := app.RenderIdeas(presenterIdeas())

	posA := strings.Index(out, "### Option A")
	posB := strings.Index(out, "### Option B")
	posC := strings.Index(out, "### Option C")
	if posA == -1 || posB == -1 || posC == -1 {
		t.Fatalf("missing option headings in:\n%s", out)
	}
	if !(posA < posB && posB < posC) {
		t.Errorf("options not ordered A, B, C: %d %d %d", posA, posB, posC)
	}

	if !strings.Contains(out, "#### First tagline") {
		t.Error("missing tagline heading")
	}
	if !strings.Contains(out, "> First script.") {
		t.Error("script not quoted")
	}
	if !strings.Contains(out, "- **IG**: ig a") || !strings.Contains(out, "- **X**: x a") {
		t.Error("missing captions")
	}
	if !strings.Contains(out, "**CTA**: Learn more") {
		t.Error("missing CTA")
	}
	if !strings.Contains(out, "*Compliance Notes: Toned down the claim.*") {
		t.Error("missing compliance notes line")
	}
}

func TestRenderIdeas_Idempotent(t *testing.T) {
	ideas := presenterIdeas()
	first := app.RenderIdeas(ideas)
	second := app.RenderIdeas(ideas)
	if first != second {
		t.Error("rendering the same ideas twice produced different output")
	}
}

func TestRenderIdeas_SkipsMissingLabel(t *testing.T) {
	ideas := presenterIdeas()[:2] // B and A only
	out := app.RenderIdeas(ideas)

	if strings.Contains(out, "### Option C") {
		t.Error("rendered a missing label")
	}
	if n := strings.Count(out, "### Option"); n != 2 {
		t.Errorf("got %d headings, want 2", n)
	}
}

func TestRenderIdeas_NoComplianceLineWhenAbsent(t *testing.T) {
	out := app.RenderIdeas(presenterIdeas()[:1]) // B, no notes
	if strings.Contains(out, "Compliance Notes") {
		t.Error("compliance line rendered for an idea without notes")
	}
}

func TestRenderIdeas_BlankFieldsRenderEmpty(t *testing.T) {
	out := app.RenderIdeas([]domain.Idea{{Label: "A"}})
	if !strings.Contains(out, "### Option A") {
		t.Fatalf("missing heading in:\n%s", out)
	}
	if !strings.Contains(out, "**CTA**: ") {
		t.Error("missing CTA line for blank idea")
	}
}

func TestRenderIdeas_LowercaseLabels(t *testing.T) {
	ideas := presenterIdeas()
	ideas[0].Label = "b"
	out := app.RenderIdeas(ideas)
	if !strings.Contains(out, "### Option B") {
		t.Error("lowercase label not normalized for ordering")
	}
}
