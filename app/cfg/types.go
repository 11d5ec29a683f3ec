package cfg

import "time"

type Cfg struct {
	// Server configuration
	Port string

	// Generative language service
	OpenAIAPIKey  string
	OpenAIBaseURL string
	Model         string
	ModelTimeout  time.Duration

	// Content retrieval
	UserAgent    string
	FetchTimeout time.Duration

	// Publication profile (optional YAML file)
	ProfileFile string

	// Application metadata
	Debug   bool
	Version string
}

// MissingCredentialError is returned by Load when no API key for the
// generative language service was configured.
type MissingCredentialError struct {
	Name string
}

func (e *MissingCredentialError) Error() string {
	return e.Name + " is not set: an API key for the generative language service is required"
}
