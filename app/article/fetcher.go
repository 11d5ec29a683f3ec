package article

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

// FetchError reports that an article could not be retrieved or that no
// article text could be extracted from it.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch article %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// DefaultMaxPageSize bounds how much of an article page is read.
const DefaultMaxPageSize = 10 << 20

type Fetcher struct {
	httpClient       *http.Client
	contentExtractor *ContentExtractor
	userAgent        string
	timeout          time.Duration
	maxPageSize      int64
}

func NewFetcher(httpClient *http.Client, contentExtractor *ContentExtractor, userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		httpClient:       httpClient,
		contentExtractor: contentExtractor,
		userAgent:        userAgent,
		timeout:          timeout,
		maxPageSize:      DefaultMaxPageSize,
	}
}

// Fetch downloads the page at rawURL and returns its main article text.
// Every failure is returned as a *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	pageURL, err := parseArticleURL(rawURL)
	if err != nil {
		return "", &FetchError{URL: rawURL, Err: err}
	}

	data, err := f.fetchPage(ctx, pageURL.String())
	if err != nil {
		return "", &FetchError{URL: rawURL, Err: err}
	}

	extracted, err := f.contentExtractor.Run(data, pageURL)
	if err != nil {
		return "", &FetchError{URL: rawURL, Err: err}
	}

	slog.Debug("Article fetched", "url", rawURL, "title", extracted.Title, "content_length", len(extracted.Text))

	return extracted.Text, nil
}

func (f *Fetcher) fetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(contentType, "text/html") && !strings.Contains(contentType, "application/xhtml") {
		return nil, fmt.Errorf("content type is not HTML: %s", contentType)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxPageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(data)) > f.maxPageSize {
		return nil, fmt.Errorf("page exceeds %d bytes", f.maxPageSize)
	}

	return data, nil
}

func parseArticleURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("URL must be http or https")
	}
	if u.Host == "" {
		return nil, fmt.Errorf("URL has no host")
	}
	return u, nil
}
