package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mrumer-yk/creative-market-agent/internal/app"
	"github.com/mrumer-yk/creative-market-agent/internal/domain"
)

type Handler struct {
	svc *app.CampaignService
}

func NewHandler(svc *app.CampaignService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/context", h.Context)
	e.POST("/v1/campaigns", h.GenerateCampaign)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Context returns the current KSA date/season/event snapshot the pipeline
// will use, so clients can show it before submitting a brief.
func (h *Handler) Context(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.CurrentSnapshot())
}

func (h *Handler) GenerateCampaign(c echo.Context) error {
	var body CampaignRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}

	if strings.TrimSpace(body.Product) == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "product is required"})
	}
	switch body.Language {
	case "", string(domain.LangEnglish), string(domain.LangArabic):
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "language must be English or Arabic"})
	}
	if body.Language == "" {
		body.Language = string(domain.LangEnglish)
	}

	req := app.CampaignRequest{
		Product:     strings.TrimSpace(body.Product),
		Description: strings.TrimSpace(body.Description),
		Audience:    strings.TrimSpace(body.Audience),
		Tone:        strings.TrimSpace(body.Tone),
		Language:    body.Language,
	}

	result, err := h.svc.Generate(c.Request().Context(), req)
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)

	return c.JSON(http.StatusOK, toResponse(result, requestID))
}

func toResponse(r app.CampaignResult, requestID string) CampaignResponse {
	ideas := make([]IdeaResp, len(r.Ideas))
	for i, idea := range r.Ideas {
		ideas[i] = IdeaResp{
			Label:          idea.Label,
			BasedOnAngleID: idea.BasedOnAngleID,
			Tagline:        idea.Tagline,
			Script30s:      idea.Script30s,
			Captions: CaptionsResp{
				Instagram: idea.Captions.Instagram,
				X:         idea.Captions.X,
			},
			CTA:             idea.CTA,
			ComplianceNotes: idea.ComplianceNotes,
		}
	}
	return CampaignResponse{
		Brief:    r.Brief,
		Ideas:    ideas,
		Markdown: r.Markdown,
		Meta: MetaResp{
			Model:     r.Model,
			RequestID: requestID,
			LatencyMS: r.LatencyMS,
		},
	}
}

// mapError translates the domain error taxonomy into one user-visible
// message each. Every pipeline error is terminal for the run.
func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrEmptyResult):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "the model returned no ideas, please try again"})
	case errors.Is(err, domain.ErrMalformedOutput):
		slog.Error("malformed model output", "request_id", requestID, "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "the model returned an unusable response"})
	case errors.Is(err, domain.ErrTransport):
		slog.Error("upstream model failure", "request_id", requestID, "error", err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "upstream model call failed"})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
