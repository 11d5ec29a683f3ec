package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/lysyi3m/article-enhancer/app/metrics"
	openai "github.com/sashabaranov/go-openai"
)

var _ Generator = (*Client)(nil)

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration // per call; zero disables
	HTTPClient *http.Client
}

func NewClient(opts Options) *Client {
	config := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		config.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	if opts.HTTPClient != nil {
		config.HTTPClient = opts.HTTPClient
	}

	return &Client{
		api:     openai.NewClientWithConfig(config),
		model:   opts.Model,
		timeout: opts.Timeout,
	}
}

func (c *Client) Model() string {
	return c.model
}

func (c *Client) Generate(ctx context.Context, prompt Prompt) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt.Text},
		},
		MaxTokens:   prompt.MaxTokens,
		Temperature: requestTemperature(prompt.Temperature),
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, req)
	metrics.ObserveModelCall(prompt.Kind, time.Since(start), err)

	if err != nil {
		return "", &ServiceError{Kind: prompt.Kind, StatusCode: statusCode(err), Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &ServiceError{Kind: prompt.Kind, Err: fmt.Errorf("response contained no choices")}
	}

	slog.Debug("Model call completed",
		"kind", prompt.Kind,
		"model", c.model,
		"duration", time.Since(start),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"finish_reason", resp.Choices[0].FinishReason)

	return resp.Choices[0].Message.Content, nil
}

// requestTemperature maps 0 to the smallest positive float32. The request
// field is omitted when zero, which would leave the service at its default.
func requestTemperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}

func statusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
