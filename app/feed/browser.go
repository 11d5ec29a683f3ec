package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultMaxItems caps how many feed entries are listed.
const DefaultMaxItems = 20

// maxFeedSize bounds how much of a feed response is read.
const maxFeedSize = 10 << 20

// Browser downloads a feed and lists its entries so one can be picked as the
// article to enhance.
type Browser struct {
	httpClient *http.Client
	parser     *Parser
	filterer   *Filterer
	userAgent  string
	timeout    time.Duration
	maxItems   int
}

func NewBrowser(httpClient *http.Client, parser *Parser, filterer *Filterer, userAgent string, timeout time.Duration) *Browser {
	return &Browser{
		httpClient: httpClient,
		parser:     parser,
		filterer:   filterer,
		userAgent:  userAgent,
		timeout:    timeout,
		maxItems:   DefaultMaxItems,
	}
}

// Browse fetches the feed at feedURL and returns up to DefaultMaxItems entries
// matching query, in feed order.
func (b *Browser) Browse(ctx context.Context, feedURL, query string) (*Listing, error) {
	u, err := url.Parse(strings.TrimSpace(feedURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid feed URL: %q", feedURL)
	}

	data, err := b.fetch(ctx, u.String())
	if err != nil {
		return nil, err
	}

	metadata, items, err := b.parser.Run(data)
	if err != nil {
		return nil, err
	}

	items = b.filterer.Run(items, query)
	if len(items) > b.maxItems {
		items = items[:b.maxItems]
	}

	slog.Debug("Feed listed", "url", u.String(), "title", metadata.Title, "items", len(items))

	return &Listing{Feed: *metadata, Items: items}, nil
}

func (b *Browser) fetch(ctx context.Context, feedURL string) ([]byte, error) {
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", b.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml, application/feed+json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}

	return data, nil
}
