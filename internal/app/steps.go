package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/mrumer-yk/creative-market-agent/internal/domain"
)

// Per-step sampling temperatures. Early normalization and compliance run
// cool; idea writing runs hot.
const (
	tempNormalize  = 0.4
	tempMarket     = 0.6
	tempAngles     = 0.7
	tempIdeas      = 0.85
	tempCritic     = 0.6
	tempCompliance = 0.4
	tempPolish     = 0.5
)

// rawBrief is the unnormalized user input fed to the first step.
type rawBrief struct {
	Product     string `json:"product"`
	Description string `json:"description"`
	Audience    string `json:"audience"`
	Tone        string `json:"tone"`
	Language    string `json:"language"`
}

// decode unmarshals an extracted JSON object into a step's typed output.
// Failure means the model returned the wrong shape for this step.
func decode(raw json.RawMessage, v any, what string) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: decode %s: %v", domain.ErrMalformedOutput, what, err)
	}
	return nil
}

// normalizeBrief runs step 1: raw free-text fields to a normalized Brief.
func (s *CampaignService) normalizeBrief(ctx context.Context, raw rawBrief) (domain.Brief, error) {
	out, err := s.invoke(ctx, "brief_normalizer", buildNormalizerPrompt(raw, s.defaultAudience), tempNormalize)
	if err != nil {
		return domain.Brief{}, err
	}

	var brief domain.Brief
	if err := decode(out, &brief, "brief"); err != nil {
		return domain.Brief{}, err
	}
	// The prompt asks the model to fill a generic audience; enforce it here
	// regardless of what came back.
	if brief.Audience == "" {
		brief.Audience = s.defaultAudience
	}
	if err := brief.Validate(); err != nil {
		return domain.Brief{}, fmt.Errorf("%w: %v", domain.ErrMalformedOutput, err)
	}
	return brief, nil
}

// marketIntelligence runs step 2: brief + context to market insights.
func (s *CampaignService) marketIntelligence(ctx context.Context, brief domain.Brief, snap domain.Snapshot) (domain.MarketInsights, error) {
	out, err := s.invoke(ctx, "market_intelligence", buildMarketIntelligencePrompt(brief, snap), tempMarket)
	if err != nil {
		return domain.MarketInsights{}, err
	}

	var resp struct {
		MarketInsights domain.MarketInsights `json:"market_insights"`
	}
	if err := decode(out, &resp, "market insights"); err != nil {
		return domain.MarketInsights{}, err
	}
	if err := resp.MarketInsights.Validate(); err != nil {
		return domain.MarketInsights{}, fmt.Errorf("%w: %v", domain.ErrMalformedOutput, err)
	}
	return resp.MarketInsights, nil
}

// generateAngles runs step 3: exactly 5 distinct creative angles.
func (s *CampaignService) generateAngles(ctx context.Context, brief domain.Brief, insights domain.MarketInsights, snap domain.Snapshot) ([]domain.Angle, error) {
	out, err := s.invoke(ctx, "angle_generator", buildAnglePrompt(brief, insights, snap), tempAngles)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Angles []domain.Angle `json:"angles"`
	}
	if err := decode(out, &resp, "angles"); err != nil {
		return nil, err
	}
	if err := domain.ValidateAngles(resp.Angles); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedOutput, err)
	}
	return resp.Angles, nil
}

// writeIdeas runs step 4: exactly 3 campaign ideas labeled A, B, C.
func (s *CampaignService) writeIdeas(ctx context.Context, brief domain.Brief, angles []domain.Angle) ([]domain.Idea, error) {
	out, err := s.invoke(ctx, "idea_writer", buildIdeaWriterPrompt(brief, angles), tempIdeas)
	if err != nil {
		return nil, err
	}
	return decodeIdeas(out)
}

// criticImprove runs step 5: a full revised replacement of the 3 ideas.
func (s *CampaignService) criticImprove(ctx context.Context, brief domain.Brief, ideas []domain.Idea) ([]domain.Idea, error) {
	out, err := s.invoke(ctx, "critic_improve", buildCriticPrompt(brief, ideas), tempCritic)
	if err != nil {
		return nil, err
	}
	return decodeIdeas(out)
}

// checkCompliance runs step 6: the 3 ideas augmented with compliance notes.
func (s *CampaignService) checkCompliance(ctx context.Context, brief domain.Brief, ideas []domain.Idea) ([]domain.Idea, error) {
	out, err := s.invoke(ctx, "compliance_check", buildCompliancePrompt(brief, ideas), tempCompliance)
	if err != nil {
		return nil, err
	}
	return decodeIdeas(out)
}

// localizePolish runs step 7: final language and tone refinement. An empty or
// non-list ideas field is the distinct "no ideas" condition rather than a
// schema violation; anything non-empty must still pass full validation.
func (s *CampaignService) localizePolish(ctx context.Context, brief domain.Brief, ideas []domain.Idea) ([]domain.Idea, error) {
	out, err := s.invoke(ctx, "localize_polish", buildPolishPrompt(brief, ideas), tempPolish)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Ideas json.RawMessage `json:"ideas"`
	}
	if err := decode(out, &resp, "final ideas"); err != nil {
		return nil, err
	}

	// Absent, null, or non-list ideas mean the run produced nothing usable;
	// a present list whose items have the wrong shape is a schema violation.
	raw := bytes.TrimSpace(resp.Ideas)
	if len(raw) == 0 || string(raw) == "null" || raw[0] != '[' {
		return nil, domain.ErrEmptyResult
	}
	var final []domain.Idea
	if err := json.Unmarshal(raw, &final); err != nil {
		return nil, fmt.Errorf("%w: decode final ideas: %v", domain.ErrMalformedOutput, err)
	}
	if len(final) == 0 {
		return nil, domain.ErrEmptyResult
	}
	if err := domain.ValidateIdeas(final); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedOutput, err)
	}

	// The polish step is told to carry compliance notes through; restore them
	// from the compliance pass if the model dropped them anyway.
	notes := make(map[string]string, len(ideas))
	for _, idea := range ideas {
		notes[idea.Label] = idea.ComplianceNotes
	}
	for i := range final {
		if final[i].ComplianceNotes == "" {
			final[i].ComplianceNotes = notes[final[i].Label]
		}
	}
	return final, nil
}

// decodeIdeas unmarshals and validates a {"ideas": [...]} step output.
func decodeIdeas(out json.RawMessage) ([]domain.Idea, error) {
	var resp struct {
		Ideas []domain.Idea `json:"ideas"`
	}
	if err := decode(out, &resp, "ideas"); err != nil {
		return nil, err
	}
	if err := domain.ValidateIdeas(resp.Ideas); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedOutput, err)
	}
	return resp.Ideas, nil
}
