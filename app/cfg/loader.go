package cfg

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	Port string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`

	// Generative language service
	OpenAIAPIKey  string `long:"openai-api-key" env:"OPENAI_API_KEY" description:"API key for the generative language service (required)"`
	OpenAIBaseURL string `long:"openai-base-url" env:"OPENAI_BASE_URL" default:"https://api.openai.com/v1" description:"Base URL of the OpenAI-compatible API"`
	Model         string `long:"model" env:"OPENAI_MODEL" default:"gpt-3.5-turbo" description:"Model identifier used for all generation calls"`
	ModelTimeout  int    `long:"model-timeout" env:"MODEL_TIMEOUT" default:"120" description:"Timeout for a single model call in seconds"`

	// Content retrieval
	UserAgent    string `long:"user-agent" env:"USER_AGENT" default:"Article Enhancer/1.0" description:"User agent string for article requests"`
	FetchTimeout int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"30" description:"Timeout for fetching an article in seconds"`

	ProfileFile string `long:"profile" env:"PROFILE_FILE" description:"Path to the publication profile YAML file (optional)"`
	EnvFile     string `long:"env-file" env:"ENV_FILE" default:".env" description:"Dotenv file loaded before parsing (ignored when missing)"`

	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load parses command-line arguments and environment variables.
// It returns (nil, nil) when help was requested.
func Load() (*Cfg, error) {
	return LoadArgs(os.Args[1:])
}

func LoadArgs(args []string) (*Cfg, error) {
	loadDotenv(envFileFromArgs(args))

	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if strings.TrimSpace(raw.OpenAIAPIKey) == "" {
		return nil, &MissingCredentialError{Name: "OPENAI_API_KEY"}
	}

	if raw.FetchTimeout <= 0 {
		return nil, fmt.Errorf("fetch timeout must be positive, got %d", raw.FetchTimeout)
	}
	if raw.ModelTimeout <= 0 {
		return nil, fmt.Errorf("model timeout must be positive, got %d", raw.ModelTimeout)
	}

	cfg := &Cfg{
		Port:          raw.Port,
		OpenAIAPIKey:  strings.TrimSpace(raw.OpenAIAPIKey),
		OpenAIBaseURL: strings.TrimRight(raw.OpenAIBaseURL, "/"),
		Model:         raw.Model,
		ModelTimeout:  time.Duration(raw.ModelTimeout) * time.Second,
		UserAgent:     raw.UserAgent,
		FetchTimeout:  time.Duration(raw.FetchTimeout) * time.Second,
		ProfileFile:   raw.ProfileFile,
		Debug:         raw.Debug,
		Version:       GetVersion(),
	}

	return cfg, nil
}

// loadDotenv populates the environment from a dotenv file. Variables that
// are already set win over the file.
func loadDotenv(path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		slog.Warn("Failed to load dotenv file", "path", path, "error", err)
		return
	}
	slog.Debug("Loaded dotenv file", "path", path)
}

// envFileFromArgs resolves the dotenv path before flags are parsed, since
// the file may itself provide flag defaults.
func envFileFromArgs(args []string) string {
	for i, arg := range args {
		if v, ok := strings.CutPrefix(arg, "--env-file="); ok {
			return v
		}
		if arg == "--env-file" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return cmp.Or(os.Getenv("ENV_FILE"), ".env")
}
