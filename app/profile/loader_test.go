package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "The Hans Bharat", p.Publication)
	assert.Equal(t, "The Hans Bharat", p.Author)
	assert.Empty(t, p.Model)
	assert.Equal(t, CallSettings{MaxTokens: 600, Temperature: 0.5}, p.Metadata)
	assert.Equal(t, CallSettings{MaxTokens: 1000, Temperature: 0.7}, p.Rewrite)
	assert.Equal(t, CallSettings{MaxTokens: 50, Temperature: 0.5}, p.Summary)
}

func TestLoad_File(t *testing.T) {
	content := `
publication: "Daily Planet"
author: "Clark Kent"
model: "gpt-4o-mini"
rewrite:
  max_tokens: 1500
  temperature: 0.9
`
	path := filepath.Join(t.TempDir(), "profile.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Daily Planet", p.Publication)
	assert.Equal(t, "Clark Kent", p.Author)
	assert.Equal(t, "gpt-4o-mini", p.Model)
	assert.Equal(t, CallSettings{MaxTokens: 1500, Temperature: 0.9}, p.Rewrite)
	assert.Equal(t, DefaultMetadata, p.Metadata, "omitted sections keep defaults")
	assert.Equal(t, DefaultSummary, p.Summary)
}

func TestParse_AuthorDefaultsToPublication(t *testing.T) {
	p, err := Parse([]byte(`publication: "Gotham Gazette"`))
	require.NoError(t, err)

	assert.Equal(t, "Gotham Gazette", p.Author)
}

func TestParse_InvalidTemperature(t *testing.T) {
	_, err := Parse([]byte("summary:\n  max_tokens: 50\n  temperature: 3.5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "summary temperature")
}

func TestParse_NegativeMaxTokens(t *testing.T) {
	_, err := Parse([]byte("metadata:\n  max_tokens: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metadata max_tokens")
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("publication: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParse_PartialCallSettings(t *testing.T) {
	p, err := Parse([]byte("metadata:\n  temperature: 0.2\nsummary:\n  max_tokens: 80\n"))
	require.NoError(t, err)

	assert.Equal(t, CallSettings{MaxTokens: 600, Temperature: 0.2}, p.Metadata)
	assert.Equal(t, CallSettings{MaxTokens: 80, Temperature: 0.5}, p.Summary)
	assert.Equal(t, DefaultRewrite, p.Rewrite)
}

func TestParse_ZeroTemperatureIsKept(t *testing.T) {
	p, err := Parse([]byte("summary:\n  temperature: 0\n"))
	require.NoError(t, err)

	assert.Equal(t, CallSettings{MaxTokens: 50, Temperature: 0}, p.Summary)
}

func TestParse_ZeroMaxTokens(t *testing.T) {
	_, err := Parse([]byte("rewrite:\n  max_tokens: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rewrite max_tokens must be positive")
}
