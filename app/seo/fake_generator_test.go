package seo

import (
	"context"
	"fmt"

	"github.com/lysyi3m/article-enhancer/app/llm"
)

// fakeGenerator replays canned replies in order and records every prompt.
type fakeGenerator struct {
	replies []string
	err     error
	prompts []llm.Prompt
}

func (f *fakeGenerator) Generate(_ context.Context, prompt llm.Prompt) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	if len(f.prompts) > len(f.replies) {
		return "", fmt.Errorf("unexpected call %d", len(f.prompts))
	}
	return f.replies[len(f.prompts)-1], nil
}
