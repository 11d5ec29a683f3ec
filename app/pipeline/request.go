package pipeline

import (
	"fmt"
	"strings"
)

// Request holds the five user inputs of one run.
type Request struct {
	ArticleURL   string `json:"article_url" form:"article_url"`
	InboundLink  string `json:"inbound_link" form:"inbound_link"`
	OutboundLink string `json:"outbound_link" form:"outbound_link"`
	Keyword      string `json:"keyword" form:"keyword"`
	Keyphrase    string `json:"keyphrase" form:"keyphrase"`
}

// InputValidationError lists the inputs that were left empty.
type InputValidationError struct {
	Missing []string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("missing required inputs: %s", strings.Join(e.Missing, ", "))
}

// Normalize trims surrounding whitespace from every field.
func (r Request) Normalize() Request {
	return Request{
		ArticleURL:   strings.TrimSpace(r.ArticleURL),
		InboundLink:  strings.TrimSpace(r.InboundLink),
		OutboundLink: strings.TrimSpace(r.OutboundLink),
		Keyword:      strings.TrimSpace(r.Keyword),
		Keyphrase:    strings.TrimSpace(r.Keyphrase),
	}
}

// Validate reports every empty field at once.
func (r Request) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"article URL", r.ArticleURL},
		{"inbound link", r.InboundLink},
		{"outbound link", r.OutboundLink},
		{"keyword", r.Keyword},
		{"keyphrase", r.Keyphrase},
	}

	var missing []string
	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}

	if len(missing) > 0 {
		return &InputValidationError{Missing: missing}
	}
	return nil
}
