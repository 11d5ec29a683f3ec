package seo

import (
	"context"
	"fmt"

	"github.com/lysyi3m/article-enhancer/app/llm"
	"github.com/lysyi3m/article-enhancer/app/profile"
)

type Rewriter struct {
	generator   llm.Generator
	publication string
	settings    profile.CallSettings
}

func NewRewriter(generator llm.Generator, publication string, settings profile.CallSettings) *Rewriter {
	return &Rewriter{
		generator:   generator,
		publication: publication,
		settings:    settings,
	}
}

// Rewrite returns the model's HTML rewrite of the article exactly as
// received. Whether the requested links and length were honored is not checked.
func (r *Rewriter) Rewrite(ctx context.Context, req RewriteRequest) (string, error) {
	text, err := renderPrompt(KindRewrite, rewritePromptData{RewriteRequest: req, Publication: r.publication})
	if err != nil {
		return "", fmt.Errorf("failed to build rewrite prompt: %w", err)
	}

	return r.generator.Generate(ctx, llm.Prompt{
		Kind:        KindRewrite,
		Text:        text,
		MaxTokens:   r.settings.MaxTokens,
		Temperature: r.settings.Temperature,
	})
}
