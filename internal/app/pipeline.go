package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mrumer-yk/creative-market-agent/internal/domain"
	"github.com/mrumer-yk/creative-market-agent/internal/jsonx"
	"github.com/mrumer-yk/creative-market-agent/internal/ports"
)

// CampaignRequest is the application-level input (no HTTP types).
type CampaignRequest struct {
	Product     string
	Description string
	Audience    string
	Tone        string
	Language    string
}

// CampaignResult is the application-level output.
type CampaignResult struct {
	Brief     domain.Brief
	Ideas     []domain.Idea
	Markdown  string
	Model     string
	LatencyMS int64
}

// CampaignService orchestrates the seven-step prompt chain: normalize,
// market intelligence, angles, ideas, critique, compliance, polish.
type CampaignService struct {
	generator       ports.TextGenerator
	logger          *slog.Logger
	model           string
	defaultAudience string
}

func NewCampaignService(gen ports.TextGenerator, logger *slog.Logger, model, defaultAudience string) *CampaignService {
	return &CampaignService{
		generator:       gen,
		logger:          logger,
		model:           model,
		defaultAudience: defaultAudience,
	}
}

// Generate runs the full chain strictly in order, each step receiving only
// its declared upstream objects. Any step error aborts the run; there is no
// partial output and no step is retried.
func (s *CampaignService) Generate(ctx context.Context, req CampaignRequest) (CampaignResult, error) {
	start := time.Now()
	snap := domain.CurrentSnapshot()

	raw := rawBrief{
		Product:     req.Product,
		Description: req.Description,
		Audience:    req.Audience,
		Tone:        req.Tone,
		Language:    req.Language,
	}
	if strings.TrimSpace(raw.Audience) == "" {
		raw.Audience = s.defaultAudience
	}

	brief, err := s.normalizeBrief(ctx, raw)
	if err != nil {
		return CampaignResult{}, fmt.Errorf("normalize brief: %w", err)
	}

	insights, err := s.marketIntelligence(ctx, brief, snap)
	if err != nil {
		return CampaignResult{}, fmt.Errorf("market intelligence: %w", err)
	}

	angles, err := s.generateAngles(ctx, brief, insights, snap)
	if err != nil {
		return CampaignResult{}, fmt.Errorf("generate angles: %w", err)
	}

	ideas, err := s.writeIdeas(ctx, brief, angles)
	if err != nil {
		return CampaignResult{}, fmt.Errorf("write ideas: %w", err)
	}

	improved, err := s.criticImprove(ctx, brief, ideas)
	if err != nil {
		return CampaignResult{}, fmt.Errorf("critic improve: %w", err)
	}

	compliant, err := s.checkCompliance(ctx, brief, improved)
	if err != nil {
		return CampaignResult{}, fmt.Errorf("compliance check: %w", err)
	}

	final, err := s.localizePolish(ctx, brief, compliant)
	if err != nil {
		return CampaignResult{}, fmt.Errorf("localize polish: %w", err)
	}

	latency := time.Since(start).Milliseconds()
	s.logger.InfoContext(ctx, "campaign generated",
		"product", brief.Product,
		"language", brief.Language,
		"latency_ms", latency,
	)

	return CampaignResult{
		Brief:     brief,
		Ideas:     final,
		Markdown:  RenderIdeas(final),
		Model:     s.model,
		LatencyMS: latency,
	}, nil
}

// invoke performs one model call and recovers a JSON object from the raw
// response text. Transport failures from the generator propagate as-is,
// without attempting extraction.
func (s *CampaignService) invoke(ctx context.Context, step, prompt string, temperature float64) (json.RawMessage, error) {
	start := time.Now()
	text, err := s.generator.Generate(ctx, ports.GenerateRequest{
		Prompt:      prompt,
		Temperature: temperature,
	})
	if err != nil {
		return nil, err
	}

	out, err := jsonx.Extract(text)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "step complete",
		"step", step,
		"temperature", temperature,
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}
