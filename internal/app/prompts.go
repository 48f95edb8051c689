package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mrumer-yk/creative-market-agent/internal/domain"
)

// Prompt builders for the seven chain steps. Each builder assembles a role,
// the input payload as minified JSON, the required output schema, and the
// step's rules. The model is instructed to answer with JSON only; the
// extractor copes when it does not.

const ideaSchema = `{
  "ideas": [
    {
      "label": "A"|"B"|"C",
      "based_on_angle_id": "1".."5",
      "tagline": string,
      "script_30s": string,
      "captions": { "instagram": string, "x": string },
      "cta": string
    }
  ]
}`

const ideaSchemaWithCompliance = `{
  "ideas": [
    {
      "label": "A"|"B"|"C",
      "based_on_angle_id": "1".."5",
      "tagline": string,
      "script_30s": string,
      "captions": { "instagram": string, "x": string },
      "cta": string,
      "compliance_notes": string
    }
  ]
}`

// minified renders a payload as compact JSON for prompt embedding. The
// payloads are our own structs, so marshaling cannot fail in practice.
func minified(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func buildNormalizerPrompt(raw rawBrief, defaultMarket string) string {
	var b strings.Builder
	b.WriteString("Role: Brief Normalizer\n")
	b.WriteString("Task: Given a raw brief, produce a clean, standardized JSON object that will be passed to other steps.\n")
	b.WriteString("Input JSON:\n")
	b.WriteString(minified(raw))
	b.WriteString("\nOutput JSON schema (no additional fields):\n")
	b.WriteString(`{
  "product": string,
  "description": string,
  "audience": string,
  "tone": string,
  "language": "English" | "Arabic",
  "objectives": string[],
  "constraints": string[]
}`)
	b.WriteString("\nRules:\n")
	fmt.Fprintf(&b, "- The default target market is %s. If the input audience is generic or empty, enrich it with this specific context.\n", defaultMarket)
	b.WriteString("- Correct typos and normalize while preserving meaning.\n")
	b.WriteString("- Use concise phrasing.\n")
	b.WriteString("- Do not include nulls; use [] for empty arrays.\n")
	b.WriteString("- Respond ONLY with minified JSON.")
	return b.String()
}

func buildMarketIntelligencePrompt(brief domain.Brief, snap domain.Snapshot) string {
	payload := struct {
		Brief          domain.Brief    `json:"brief"`
		CurrentContext domain.Snapshot `json:"current_context"`
	}{brief, snap}

	var b strings.Builder
	b.WriteString("Role: Market Intelligence Analyst\n")
	b.WriteString("Task: Analyze the KSA market context and provide strategic insights for the campaign brief.\n")
	fmt.Fprintf(&b, "IMPORTANT: Today is %s. Current cultural events: %s.\n",
		snap.ContextNote, strings.Join(snap.CulturalEvents, ", "))
	b.WriteString("Input JSON:\n")
	b.WriteString(minified(payload))
	b.WriteString("\nOutput JSON schema:\n")
	b.WriteString(`{
  "market_insights": {
    "cultural_moments": string[],
    "local_trends": string[],
    "target_behaviors": string[],
    "competitive_landscape": string[],
    "opportunities": string[],
    "seasonal_relevance": string[]
  }
}`)
	b.WriteString("\nRules:\n")
	b.WriteString("- Use the current date and season provided to give timely, relevant insights.\n")
	b.WriteString("- Focus on Riyadh/KSA market specifically unless different location specified.\n")
	b.WriteString("- Consider current season, weather, cultural events happening NOW.\n")
	b.WriteString("- Include seasonal shopping patterns, behavioral changes, cultural moments.\n")
	b.WriteString("- Identify 3-5 items per category.\n")
	b.WriteString("- Respond ONLY with minified JSON.")
	return b.String()
}

func buildAnglePrompt(brief domain.Brief, insights domain.MarketInsights, snap domain.Snapshot) string {
	payload := struct {
		Brief          domain.Brief          `json:"brief"`
		MarketInsights domain.MarketInsights `json:"market_insights"`
		CurrentContext domain.Snapshot       `json:"current_context"`
	}{brief, insights, snap}

	var b strings.Builder
	b.WriteString("Role: Creative Strategist\n")
	b.WriteString("Task: Using the brief and market insights, propose exactly 5 distinct creative angles for ad campaigns.\n")
	fmt.Fprintf(&b, "CURRENT TIMING CONTEXT: %s. Today is %s.\n", snap.ContextNote, snap.Weekday)
	b.WriteString("Input JSON:\n")
	b.WriteString(minified(payload))
	b.WriteString("\nOutput JSON schema (exactly 5):\n")
	b.WriteString(`{
  "angles": [
    {
      "id": "1".."5",
      "title": string,
      "insight": string,
      "key_message": string,
      "cultural_hook": string,
      "timing_consideration": string
    }
  ]
}`)
	b.WriteString("\nRules:\n")
	b.WriteString("- Use the current date/season to create timely, relevant angles.\n")
	b.WriteString("- Leverage market insights to create culturally resonant angles for Riyadh/KSA.\n")
	b.WriteString("- Each angle must tap into what's happening NOW - current season, events, behaviors.\n")
	b.WriteString("- Consider immediate timing opportunities (current weather, seasonal activities, cultural moments).\n")
	b.WriteString("- Angles must be distinct and non-overlapping.\n")
	b.WriteString("- Tailor to the audience and tone.\n")
	b.WriteString("- Respond ONLY with minified JSON.")
	return b.String()
}

func buildIdeaWriterPrompt(brief domain.Brief, angles []domain.Angle) string {
	payload := struct {
		Brief  domain.Brief   `json:"brief"`
		Angles []domain.Angle `json:"angles"`
	}{brief, angles}

	var b strings.Builder
	b.WriteString("Role: Idea Writer\n")
	b.WriteString("Task: Using the brief and angles, write exactly 3 campaign ideas (A, B, C) with required fields.\n")
	b.WriteString("Input JSON:\n")
	b.WriteString(minified(payload))
	b.WriteString("\nOutput JSON schema (exactly 3):\n")
	b.WriteString(ideaSchema)
	b.WriteString("\nConstraints:\n")
	b.WriteString("- Scripts and captions must be culturally and locally relevant for the Riyadh, Saudi Arabia (KSA) market unless a different audience is specified.\n")
	b.WriteString("- Longer narrative: ~130-170 words (about 40s), with a clear beginning, middle, and end.\n")
	b.WriteString("- Captions are punchy; no hashtags unless essential.\n")
	b.WriteString("- Align with tone and audience.\n")
	b.WriteString("- Respond ONLY with minified JSON.")
	return b.String()
}

func buildCriticPrompt(brief domain.Brief, ideas []domain.Idea) string {
	payload := struct {
		Brief domain.Brief  `json:"brief"`
		Ideas []domain.Idea `json:"ideas"`
	}{brief, ideas}

	var b strings.Builder
	b.WriteString("Role: Critic & Improve\n")
	b.WriteString("Task: Review the ideas, identify weaknesses, and revise them. Output only the improved versions.\n")
	b.WriteString("Input JSON:\n")
	b.WriteString(minified(payload))
	b.WriteString("\nOutput JSON schema:\n")
	b.WriteString(ideaSchema)
	b.WriteString("\nRules:\n")
	b.WriteString("- Review for cultural appropriateness for the Riyadh/KSA market. Revise any idea that might not land well.\n")
	b.WriteString("- Keep original strengths; fix clarity, hook, and CTA strength.\n")
	b.WriteString("- Ensure each idea is distinct; remove redundancy.\n")
	b.WriteString("- Respond ONLY with minified JSON.")
	return b.String()
}

func buildCompliancePrompt(brief domain.Brief, ideas []domain.Idea) string {
	payload := struct {
		Brief domain.Brief  `json:"brief"`
		Ideas []domain.Idea `json:"ideas"`
	}{brief, ideas}

	var b strings.Builder
	b.WriteString("Role: Compliance & Cultural Reviewer\n")
	b.WriteString("Task: Review campaign ideas for compliance with KSA advertising guidelines and cultural appropriateness.\n")
	b.WriteString("Input JSON:\n")
	b.WriteString(minified(payload))
	b.WriteString("\nOutput JSON schema:\n")
	b.WriteString(ideaSchemaWithCompliance)
	b.WriteString("\nRules:\n")
	b.WriteString("- Ensure compliance with Saudi Arabia advertising regulations and cultural sensitivities.\n")
	b.WriteString("- Check for appropriate representation, modest imagery suggestions, respectful tone.\n")
	b.WriteString("- Verify timing considerations (prayer times, cultural events, weekends).\n")
	b.WriteString("- Remove or revise any potentially problematic content.\n")
	b.WriteString("- Add brief compliance notes explaining any changes made.\n")
	b.WriteString("- Respond ONLY with minified JSON.")
	return b.String()
}

func buildPolishPrompt(brief domain.Brief, ideas []domain.Idea) string {
	payload := struct {
		Language domain.Language `json:"language"`
		Tone     string          `json:"tone"`
		Ideas    []domain.Idea   `json:"ideas"`
	}{brief.Language, brief.Tone, ideas}

	var b strings.Builder
	b.WriteString("Role: Localize/Polish\n")
	b.WriteString("Task: Refine the ideas to the requested language and tone. If the language is Arabic, fully localize the content to natural Modern Standard Arabic. If the language is English, just polish the existing English text for clarity and impact.\n")
	b.WriteString("Style Guide (apply strictly):\n")
	b.WriteString("- Use a friendly, conversational second-person voice (\"you\").\n")
	b.WriteString("- Prefer short sentences (8-15 words) and simple everyday words.\n")
	b.WriteString("- Open scripts with a concrete moment or scenario (e.g., \"Imagine...\", \"It's 2 PM in Riyadh...\").\n")
	b.WriteString("- Show, not tell: add 1-2 light sensory cues without hype.\n")
	b.WriteString("- Keep scripts ~120-160 words, split into 3-5 short paragraphs.\n")
	b.WriteString("- Captions: IG slightly expressive; X concise and punchy. Avoid unnecessary hashtags.\n")
	b.WriteString("- Do not invent product claims; no health/functional promises.\n")
	b.WriteString("Input JSON:\n")
	b.WriteString(minified(payload))
	b.WriteString("\nOutput JSON schema (same as input ideas schema):\n")
	b.WriteString(ideaSchemaWithCompliance)
	b.WriteString("\nRules:\n")
	b.WriteString("- Perform a final cultural polish to ensure content is appropriate and effective for the target market (defaulting to Riyadh, KSA).\n")
	b.WriteString("- Preserve meaning while adjusting tone.\n")
	b.WriteString("- Carry compliance_notes through unchanged; do not rewrite or drop them.\n")
	b.WriteString("- For Arabic, use proper Modern Standard Arabic, not transliteration.\n")
	b.WriteString("- For English, focus on polishing grammar, style, and flow.\n")
	b.WriteString("- Respond ONLY with minified JSON.")
	return b.String()
}
