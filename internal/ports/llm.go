package ports

import "context"

// GenerateRequest is a single prompt submitted to the external model.
type GenerateRequest struct {
	Prompt      string
	Temperature float64
}

// TextGenerator submits one prompt to the external generative model and
// returns its raw text response. Implementations request JSON-formatted
// output but must not assume the model honors that.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}
