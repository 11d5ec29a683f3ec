package profile

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a profile from a YAML file. An empty path yields the default
// profile. Fields left out of the file keep their default values.
func Load(path string) (*Profile, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}

	slog.Debug("Profile loaded", "path", path, "publication", p.Publication, "model", p.Model)

	return p, nil
}

// Parse decodes a profile over the defaults, so every key left out of the
// document keeps its default value.
func Parse(data []byte) (*Profile, error) {
	p := Default()
	p.Author = ""
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	setDefaults(p)

	if err := validate(p); err != nil {
		return nil, err
	}

	return p, nil
}

func setDefaults(p *Profile) {
	if p.Publication == "" {
		p.Publication = DefaultPublication
	}
	if p.Author == "" {
		p.Author = p.Publication
	}
}

func validate(p *Profile) error {
	calls := []struct {
		name string
		CallSettings
	}{
		{"metadata", p.Metadata},
		{"rewrite", p.Rewrite},
		{"summary", p.Summary},
	}

	for _, call := range calls {
		if call.MaxTokens <= 0 {
			return fmt.Errorf("%s max_tokens must be positive, got %d", call.name, call.MaxTokens)
		}
		if call.Temperature < 0 || call.Temperature > 2 {
			return fmt.Errorf("%s temperature must be between 0 and 2, got %v", call.name, call.Temperature)
		}
	}

	return nil
}
