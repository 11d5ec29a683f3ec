package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float32 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func completionBody(content string) string {
	body, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-3.5-turbo",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
	})
	return string(body)
}

func TestClient_Generate(t *testing.T) {
	var got capturedRequest
	var gotAuth, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody("Title: Foo")))
	}))
	defer server.Close()

	client := NewClient(Options{APIKey: "sk-test", BaseURL: server.URL + "/v1/", Model: "gpt-3.5-turbo"})

	text, err := client.Generate(context.Background(), Prompt{
		Kind:        "metadata",
		Text:        "Analyze the following content",
		MaxTokens:   600,
		Temperature: 0.5,
	})
	require.NoError(t, err)

	assert.Equal(t, "Title: Foo", text)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "gpt-3.5-turbo", got.Model)
	assert.Equal(t, 600, got.MaxTokens)
	assert.InDelta(t, 0.5, got.Temperature, 0.0001)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "Analyze the following content", got.Messages[0].Content)
}

func TestClient_Generate_ReturnsReplyVerbatim(t *testing.T) {
	reply := "  <p>Leading spaces and <a href=\"x\">links</a></p>\n"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody(reply)))
	}))
	defer server.Close()

	client := NewClient(Options{APIKey: "sk-test", BaseURL: server.URL, Model: "gpt-3.5-turbo"})

	text, err := client.Generate(context.Background(), Prompt{Kind: "rewrite", Text: "x", MaxTokens: 1000, Temperature: 0.7})
	require.NoError(t, err)
	assert.Equal(t, reply, text)
}

func TestClient_Generate_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`))
	}))
	defer server.Close()

	client := NewClient(Options{APIKey: "sk-bad", BaseURL: server.URL, Model: "gpt-3.5-turbo"})

	_, err := client.Generate(context.Background(), Prompt{Kind: "summary", Text: "x", MaxTokens: 50, Temperature: 0.5})
	require.Error(t, err)

	var serviceErr *ServiceError
	require.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, "summary", serviceErr.Kind)
	assert.Equal(t, http.StatusUnauthorized, serviceErr.StatusCode)
	assert.Contains(t, err.Error(), "summary generation failed (status 401)")
}

func TestClient_Generate_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(Options{APIKey: "sk-test", BaseURL: server.URL, Model: "gpt-3.5-turbo"})

	_, err := client.Generate(context.Background(), Prompt{Kind: "metadata", Text: "x", MaxTokens: 600})

	var serviceErr *ServiceError
	require.True(t, errors.As(err, &serviceErr))
	assert.Contains(t, err.Error(), "no choices")
}

func TestClient_Generate_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	client := NewClient(Options{APIKey: "sk-test", BaseURL: server.URL, Model: "gpt-3.5-turbo", Timeout: 50 * time.Millisecond})

	_, err := client.Generate(context.Background(), Prompt{Kind: "rewrite", Text: "x", MaxTokens: 1000})
	require.Error(t, err)

	var serviceErr *ServiceError
	require.True(t, errors.As(err, &serviceErr))
	assert.Zero(t, serviceErr.StatusCode)
}

func TestClient_Generate_ZeroTemperatureIsSent(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody("ok")))
	}))
	defer server.Close()

	client := NewClient(Options{APIKey: "sk-test", BaseURL: server.URL, Model: "gpt-3.5-turbo"})

	_, err := client.Generate(context.Background(), Prompt{Kind: "summary", Text: "x", MaxTokens: 50, Temperature: 0})
	require.NoError(t, err)

	require.Contains(t, body, "temperature")
	temperature, ok := body["temperature"].(float64)
	require.True(t, ok, "temperature should be a number, got %T", body["temperature"])
	assert.InDelta(t, 0, temperature, 1e-6)
}
