package llm

import (
	"context"
	"fmt"
)

// Prompt is a single-turn request to the generative language service.
type Prompt struct {
	Kind        string // metadata, rewrite, summary; used for logs and metrics
	Text        string
	MaxTokens   int
	Temperature float32
}

// Generator turns a prompt into generated text. The three generation calls of
// the pipeline differ only in the prompt they pass.
type Generator interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
}

// ServiceError reports a failed call to the generative language service:
// authorization, quota, transport or timeout.
type ServiceError struct {
	Kind       string
	StatusCode int // zero when no HTTP response was received
	Err        error
}

func (e *ServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s generation failed (status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s generation failed: %v", e.Kind, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
