package feed

import (
	"strings"
)

var searchFields = []string{"title", "summary", "categories", "authors"}

type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

// Run keeps the items where every word of query appears in at least one
// searchable field. A blank query keeps everything.
func (f *Filterer) Run(items []Item, query string) []Item {
	words := strings.Fields(query)
	if len(words) == 0 {
		return items
	}

	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if f.matchesAll(item, words) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

func (f *Filterer) matchesAll(item Item, words []string) bool {
	for _, word := range words {
		matched := false
		for _, field := range searchFields {
			if f.matchesFilter(f.getFieldValue(item, field), word) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func (f *Filterer) matchesFilter(value, pattern string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(pattern))
}

func (f *Filterer) getFieldValue(item Item, field string) string {
	switch field {
	case "title":
		return item.Title
	case "summary":
		return item.Summary
	case "authors":
		return strings.Join(item.Authors, " ")
	case "categories":
		return strings.Join(item.Categories, " ")
	default:
		return ""
	}
}
