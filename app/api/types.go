package api

import (
	"context"

	"github.com/lysyi3m/article-enhancer/app/feed"
	"github.com/lysyi3m/article-enhancer/app/pipeline"
)

type RunnerInterface interface {
	Run(ctx context.Context, req pipeline.Request) (*pipeline.Result, error)
}

var _ RunnerInterface = (*pipeline.Pipeline)(nil)

type BrowserInterface interface {
	Browse(ctx context.Context, feedURL, query string) (*feed.Listing, error)
}

var _ BrowserInterface = (*feed.Browser)(nil)

type Handler struct {
	runner      RunnerInterface
	browser     BrowserInterface
	publication string
	version     string
}

// pageData is rendered by the index template. Result and Error are mutually
// exclusive; a failed run shows no partial output.
type pageData struct {
	Publication string
	Version     string

	Form   pipeline.Request
	Result *pipeline.Result
	Error  string

	FeedURL   string
	FeedQuery string
	Listing   *feed.Listing
	FeedError string
}
