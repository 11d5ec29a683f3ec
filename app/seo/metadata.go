package seo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lysyi3m/article-enhancer/app/llm"
	"github.com/lysyi3m/article-enhancer/app/profile"
)

// MetadataAttempts bounds how often metadata is requested when the reply is
// malformed.
const MetadataAttempts = 2

type MetadataGenerator struct {
	generator llm.Generator
	settings  profile.CallSettings
}

func NewMetadataGenerator(generator llm.Generator, settings profile.CallSettings) *MetadataGenerator {
	return &MetadataGenerator{
		generator: generator,
		settings:  settings,
	}
}

// Generate asks the model for title, slug, focus keyphrase and tags. A reply
// that cannot be parsed is re-requested once; service errors are returned
// immediately.
func (g *MetadataGenerator) Generate(ctx context.Context, content, keyphrase string) (Metadata, error) {
	text, err := renderPrompt(KindMetadata, metadataPromptData{Keyphrase: keyphrase, Content: content})
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to build metadata prompt: %w", err)
	}

	prompt := llm.Prompt{
		Kind:        KindMetadata,
		Text:        text,
		MaxTokens:   g.settings.MaxTokens,
		Temperature: g.settings.Temperature,
	}

	var lastErr error
	for attempt := 1; attempt <= MetadataAttempts; attempt++ {
		reply, err := g.generator.Generate(ctx, prompt)
		if err != nil {
			return Metadata{}, err
		}

		metadata, err := ParseMetadata(reply)
		if err == nil {
			return metadata, nil
		}

		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			return Metadata{}, err
		}

		slog.Warn("Malformed metadata response", "attempt", attempt, "max_attempts", MetadataAttempts, "reason", parseErr.Reason)
		lastErr = err
	}

	return Metadata{}, lastErr
}
