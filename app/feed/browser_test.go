package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rssWithItems(n int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?><rss version="2.0"><channel><title>News</title><link>https://news.example.com</link>`)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, `<item><title>Story %d</title><link>https://news.example.com/story-%d</link><description>Story %d summary</description></item>`, i, i, i)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

func newTestBrowser() *Browser {
	return NewBrowser(http.DefaultClient, NewParser(), NewFilterer(), "Test Agent/1.0", 5*time.Second)
}

func TestBrowser_Browse(t *testing.T) {
	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.UserAgent()
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, rssWithItems(3))
	}))
	defer server.Close()

	listing, err := newTestBrowser().Browse(context.Background(), server.URL+"/rss", "")
	require.NoError(t, err)

	assert.Equal(t, "Test Agent/1.0", userAgent)
	assert.Equal(t, "News", listing.Feed.Title)
	require.Len(t, listing.Items, 3)
	assert.Equal(t, "Story 1", listing.Items[0].Title)
	assert.Equal(t, "https://news.example.com/story-1", listing.Items[0].Link)
	assert.Equal(t, "Story 1 summary", listing.Items[0].Summary)
}

func TestBrowser_Browse_Limit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssWithItems(30))
	}))
	defer server.Close()

	listing, err := newTestBrowser().Browse(context.Background(), server.URL, "")
	require.NoError(t, err)

	assert.Len(t, listing.Items, DefaultMaxItems)
	assert.Equal(t, "Story 20", listing.Items[DefaultMaxItems-1].Title)
}

func TestBrowser_Browse_Query(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssWithItems(12))
	}))
	defer server.Close()

	listing, err := newTestBrowser().Browse(context.Background(), server.URL, "story 1")
	require.NoError(t, err)

	titles := make([]string, 0, len(listing.Items))
	for _, item := range listing.Items {
		titles = append(titles, item.Title)
	}
	assert.Equal(t, []string{"Story 1", "Story 10", "Story 11", "Story 12"}, titles)
}

func TestBrowser_Browse_Errors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			http.NotFound(w, r)
		default:
			fmt.Fprint(w, "<html><body>not a feed</body></html>")
		}
	}))
	defer server.Close()

	tests := []struct {
		name    string
		url     string
		message string
	}{
		{"invalid scheme", "ftp://example.com/feed", "invalid feed URL"},
		{"empty", "", "invalid feed URL"},
		{"not found", server.URL + "/missing", "HTTP error: 404"},
		{"not a feed", server.URL + "/page", "failed to parse feed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing, err := newTestBrowser().Browse(context.Background(), tt.url, "")
			require.Error(t, err)
			assert.Nil(t, listing)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
