package seo

import (
	"strings"
	"unicode"
)

// CleanTitle removes list numbering the model may have put before the title,
// such as "1. ", "2) " or "#3: ". Leading digits, punctuation and whitespace
// are all stripped.
func CleanTitle(title string) string {
	return strings.TrimLeftFunc(title, isTitleNumbering)
}

func isTitleNumbering(r rune) bool {
	return unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSpace(r)
}

// SplitTags splits a comma-separated tag string, trimming whitespace and
// dropping empty entries.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// CleanTags normalizes a comma-separated tag string: "a,  , b ,c," becomes "a, b, c".
func CleanTags(raw string) string {
	return strings.Join(SplitTags(raw), ", ")
}
