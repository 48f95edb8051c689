package http

import "github.com/mrumer-yk/creative-market-agent/internal/domain"

// CampaignRequest is the JSON body accepted by POST /v1/campaigns.
type CampaignRequest struct {
	Product     string `json:"product"`
	Description string `json:"description"`
	Audience    string `json:"audience"`
	Tone        string `json:"tone"`
	Language    string `json:"language"`
}

// CampaignResponse is the JSON shape returned by POST /v1/campaigns.
type CampaignResponse struct {
	Brief    domain.Brief `json:"brief"`
	Ideas    []IdeaResp   `json:"ideas"`
	Markdown string       `json:"markdown"`
	Meta     MetaResp     `json:"meta"`
}

type IdeaResp struct {
	Label           string       `json:"label"`
	BasedOnAngleID  string       `json:"based_on_angle_id"`
	Tagline         string       `json:"tagline"`
	Script30s       string       `json:"script_30s"`
	Captions        CaptionsResp `json:"captions"`
	CTA             string       `json:"cta"`
	ComplianceNotes string       `json:"compliance_notes,omitempty"`
}

type CaptionsResp struct {
	Instagram string `json:"instagram"`
	X         string `json:"x"`
}

type MetaResp struct {
	Model     string `json:"model"`
	RequestID string `json:"request_id"`
	LatencyMS int64  `json:"latency_ms"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
