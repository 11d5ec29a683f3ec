package feed

import (
	"time"
)

type Metadata struct {
	Title       string
	Link        string
	Description string
	Language    string
}

// Item is one feed entry offered as an article candidate.
type Item struct {
	GUID        string
	Title       string
	Link        string
	Summary     string // plain text, markup removed
	PublishedAt *time.Time
	Authors     []string
	Categories  []string
}

// Listing is what the feed browser shows for one feed URL.
type Listing struct {
	Feed  Metadata
	Items []Item
}
