package seo

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/lysyi3m/article-enhancer/app/llm"
	"github.com/lysyi3m/article-enhancer/app/profile"
	"github.com/microcosm-cc/bluemonday"
)

type Summarizer struct {
	generator llm.Generator
	settings  profile.CallSettings
	policy    *bluemonday.Policy
}

func NewSummarizer(generator llm.Generator, settings profile.CallSettings) *Summarizer {
	return &Summarizer{
		generator: generator,
		settings:  settings,
		policy:    bluemonday.StrictPolicy(),
	}
}

// Summarize produces the meta description for the rewritten content. The
// 156-character target is only requested; the reply is not truncated.
func (s *Summarizer) Summarize(ctx context.Context, content string) (string, error) {
	text, err := renderPrompt(KindSummary, summaryPromptData{Content: content})
	if err != nil {
		return "", fmt.Errorf("failed to build summary prompt: %w", err)
	}

	reply, err := s.generator.Generate(ctx, llm.Prompt{
		Kind:        KindSummary,
		Text:        text,
		MaxTokens:   s.settings.MaxTokens,
		Temperature: s.settings.Temperature,
	})
	if err != nil {
		return "", err
	}

	return PlainText(s.policy, reply), nil
}

// PlainText strips markup from s and collapses whitespace.
func PlainText(policy *bluemonday.Policy, s string) string {
	stripped := html.UnescapeString(policy.Sanitize(s))
	return strings.Join(strings.Fields(stripped), " ")
}
