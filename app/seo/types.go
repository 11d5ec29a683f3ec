package seo

import (
	"fmt"
	"strings"
)

// Metadata is the search metadata generated for an article.
type Metadata struct {
	Title          string
	Slug           string
	FocusKeyphrase string
	Tags           []string
}

// TagList joins the tags the way they appear in the keywords meta tag.
func (m Metadata) TagList() string {
	return strings.Join(m.Tags, ", ")
}

// ParseError reports a metadata reply that does not have the expected
// four labelled lines.
type ParseError struct {
	Reason string
	Reply  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected metadata response: %s", e.Reason)
}

// RewriteRequest holds the inputs of a single rewrite.
type RewriteRequest struct {
	Content      string
	InboundLink  string
	OutboundLink string
	Keyword      string
	Keyphrase    string
}
