package article

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
)

// Extracted is the main content of a page once navigation, ads and other
// boilerplate have been removed.
type Extracted struct {
	Title    string
	SiteName string
	Text     string
}

type ContentExtractor struct{}

func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{}
}

func (e *ContentExtractor) Run(data []byte, pageURL *url.URL) (Extracted, error) {
	if len(data) == 0 {
		return Extracted{}, fmt.Errorf("HTML data is empty")
	}

	article, err := readability.FromReader(bytes.NewReader(data), pageURL)
	if err != nil {
		return Extracted{}, fmt.Errorf("failed to extract content: %w", err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return Extracted{}, fmt.Errorf("no content extracted from HTML data")
	}

	slog.Debug("Content extracted successfully",
		"title", article.Title,
		"site", article.SiteName,
		"content_length", len(text))

	return Extracted{
		Title:    article.Title,
		SiteName: article.SiteName,
		Text:     text,
	}, nil
}
