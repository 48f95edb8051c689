package app

import (
	"fmt"
	"strings"

	"github.com/mrumer-yk/creative-market-agent/internal/domain"
)

// RenderIdeas formats the final ideas as Markdown, ordered A, B, C. Missing
// labels are skipped, missing fields render blank, and the output is
// byte-stable for identical input. No model call happens here.
func RenderIdeas(ideas []domain.Idea) string {
	byLabel := make(map[string]domain.Idea, len(ideas))
	for _, idea := range ideas {
		byLabel[strings.ToUpper(idea.Label)] = idea
	}

	var sections []string
	for _, label := range []string{"A", "B", "C"} {
		idea, ok := byLabel[label]
		if !ok {
			continue
		}
		sections = append(sections, renderIdea(label, idea))
	}
	return strings.Join(sections, "\n\n")
}

func renderIdea(label string, idea domain.Idea) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### Option %s\n", label)
	fmt.Fprintf(&b, "#### %s\n\n", strings.TrimSpace(idea.Tagline))
	fmt.Fprintf(&b, "> %s\n\n", strings.TrimSpace(idea.Script30s))
	b.WriteString("**Captions**\n")
	fmt.Fprintf(&b, "- **IG**: %s\n", strings.TrimSpace(idea.Captions.Instagram))
	fmt.Fprintf(&b, "- **X**: %s\n\n", strings.TrimSpace(idea.Captions.X))
	fmt.Fprintf(&b, "**CTA**: %s", strings.TrimSpace(idea.CTA))
	if notes := strings.TrimSpace(idea.ComplianceNotes); notes != "" {
		fmt.Fprintf(&b, "\n\n*Compliance Notes: %s*", notes)
	}
	b.WriteString("\n")
	return b.String()
}
