package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lysyi3m/article-enhancer/app/metrics"
	"github.com/lysyi3m/article-enhancer/app/seo"
	"github.com/lysyi3m/article-enhancer/app/slug"
)

type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type MetadataGenerator interface {
	Generate(ctx context.Context, content, keyphrase string) (seo.Metadata, error)
}

type Rewriter interface {
	Rewrite(ctx context.Context, req seo.RewriteRequest) (string, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, content string) (string, error)
}

// MaxModelCalls is the most model calls a single run can make: metadata
// attempts plus one rewrite and one summary.
const MaxModelCalls = seo.MetadataAttempts + 2

// RunTimeout is the longest a single run can take when the fetch and every
// model call use their full timeouts.
func RunTimeout(fetchTimeout, modelTimeout time.Duration) time.Duration {
	return fetchTimeout + time.Duration(MaxModelCalls)*modelTimeout
}

// Stage names the pipeline step an error came from.
type Stage string

const (
	StageFetch    Stage = "fetch"
	StageMetadata Stage = "metadata"
	StageRewrite  Stage = "rewrite"
	StageSummary  Stage = "summary"
	StageRender   Stage = "render"
)

// StageError wraps a failure with the step it happened in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Result is everything shown to the user after a successful run.
type Result struct {
	RunID          string `json:"run_id"`
	Title          string `json:"title"`
	Slug           string `json:"slug"`
	FocusKeyphrase string `json:"focus_keyphrase"`
	Tags           string `json:"tags"`
	Description    string `json:"description"`
	Content        string `json:"-"`
	Document       string `json:"html"`
}

type Pipeline struct {
	fetcher    Fetcher
	metadata   MetadataGenerator
	rewriter   Rewriter
	summarizer Summarizer
	author     string
}

func New(fetcher Fetcher, metadata MetadataGenerator, rewriter Rewriter, summarizer Summarizer, author string) *Pipeline {
	return &Pipeline{
		fetcher:    fetcher,
		metadata:   metadata,
		rewriter:   rewriter,
		summarizer: summarizer,
		author:     author,
	}
}

// Run executes one enhancement: fetch, metadata, title cleanup, rewrite,
// summary and rendering, strictly in that order. Inputs are validated before
// any network call. On failure no partial result is returned.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	req = req.Normalize()

	if err := req.Validate(); err != nil {
		metrics.RecordRun(metrics.OutcomeInvalid, time.Since(start))
		return nil, err
	}

	runID := uuid.NewString()
	logger := slog.With("run_id", runID, "url", req.ArticleURL)
	logger.Info("Enhancement started", "keyword", req.Keyword, "keyphrase", req.Keyphrase)

	result, err := p.run(ctx, logger, req)
	if err != nil {
		var stageErr *StageError
		if errors.As(err, &stageErr) {
			logger.Error("Enhancement failed", "stage", stageErr.Stage, "duration", time.Since(start), "error", err)
		}
		metrics.RecordRun(metrics.OutcomeFailed, time.Since(start))
		return nil, err
	}

	result.RunID = runID
	metrics.RecordRun(metrics.OutcomeSuccess, time.Since(start))
	logger.Info("Enhancement completed", "duration", time.Since(start), "title", result.Title, "tags", len(seo.SplitTags(result.Tags)))

	return result, nil
}

func (p *Pipeline) run(ctx context.Context, logger *slog.Logger, req Request) (*Result, error) {
	content, err := p.fetcher.Fetch(ctx, req.ArticleURL)
	if err != nil {
		return nil, &StageError{Stage: StageFetch, Err: err}
	}
	logger.Debug("Article fetched", "content_length", len(content))

	metadata, err := p.metadata.Generate(ctx, content, req.Keyphrase)
	if err != nil {
		return nil, &StageError{Stage: StageMetadata, Err: err}
	}

	title := seo.CleanTitle(metadata.Title)
	tags := metadata.TagList()
	logger.Debug("Metadata generated", "title", title, "slug", metadata.Slug, "tags", len(metadata.Tags))

	enhanced, err := p.rewriter.Rewrite(ctx, seo.RewriteRequest{
		Content:      content,
		InboundLink:  req.InboundLink,
		OutboundLink: req.OutboundLink,
		Keyword:      req.Keyword,
		Keyphrase:    req.Keyphrase,
	})
	if err != nil {
		return nil, &StageError{Stage: StageRewrite, Err: err}
	}
	logger.Debug("Content rewritten", "content_length", len(enhanced))

	description, err := p.summarizer.Summarize(ctx, enhanced)
	if err != nil {
		return nil, &StageError{Stage: StageSummary, Err: err}
	}

	document, err := Render(DocumentData{
		Title:       title,
		Keywords:    tags,
		Author:      p.author,
		Description: description,
		Content:     enhanced,
	})
	if err != nil {
		return nil, &StageError{Stage: StageRender, Err: err}
	}

	return &Result{
		Title:          title,
		Slug:           slug.GenerateWithFallback(metadata.Slug, title),
		FocusKeyphrase: metadata.FocusKeyphrase,
		Tags:           tags,
		Description:    description,
		Content:        enhanced,
		Document:       document,
	}, nil
}

// UserMessage turns any pipeline error into the single message shown to the user.
func UserMessage(err error) string {
	var validationErr *InputValidationError
	if errors.As(err, &validationErr) {
		return "Please provide all required inputs!"
	}
	return fmt.Sprintf("An error occurred: %v", err)
}
