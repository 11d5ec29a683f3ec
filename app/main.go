package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/article-enhancer/app/api"
	"github.com/lysyi3m/article-enhancer/app/article"
	"github.com/lysyi3m/article-enhancer/app/cfg"
	"github.com/lysyi3m/article-enhancer/app/feed"
	"github.com/lysyi3m/article-enhancer/app/llm"
	"github.com/lysyi3m/article-enhancer/app/pipeline"
	"github.com/lysyi3m/article-enhancer/app/profile"
	"github.com/lysyi3m/article-enhancer/app/seo"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		var credErr *cfg.MissingCredentialError
		if errors.As(err, &credErr) {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Article Enhancer", "version", appCfg.Version, "port", appCfg.Port)

	publicationProfile, err := profile.Load(appCfg.ProfileFile)
	if err != nil {
		slog.Error("Failed to load publication profile", "file", appCfg.ProfileFile, "error", err)
		os.Exit(1)
	}

	model := appCfg.Model
	if publicationProfile.Model != "" {
		model = publicationProfile.Model
	}

	llmClient := llm.NewClient(llm.Options{
		APIKey:  appCfg.OpenAIAPIKey,
		BaseURL: appCfg.OpenAIBaseURL,
		Model:   model,
		Timeout: appCfg.ModelTimeout,
	})

	httpClient := &http.Client{}

	enhancer := pipeline.New(
		article.NewFetcher(httpClient, article.NewContentExtractor(), appCfg.UserAgent, appCfg.FetchTimeout),
		seo.NewMetadataGenerator(llmClient, publicationProfile.Metadata),
		seo.NewRewriter(llmClient, publicationProfile.Publication, publicationProfile.Rewrite),
		seo.NewSummarizer(llmClient, publicationProfile.Summary),
		publicationProfile.Author,
	)

	browser := feed.NewBrowser(httpClient, feed.NewParser(), feed.NewFilterer(), appCfg.UserAgent, appCfg.FetchTimeout)

	slog.Info("Pipeline configured",
		"publication", publicationProfile.Publication,
		"model", llmClient.Model(),
		"base_url", appCfg.OpenAIBaseURL)

	apiHandler := api.NewHandler(enhancer, browser, publicationProfile.Publication, appCfg.Version)
	server := api.NewServer(apiHandler)

	writeTimeout := pipeline.RunTimeout(appCfg.FetchTimeout, appCfg.ModelTimeout) + 30*time.Second

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig)
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Article Enhancer shutdown complete")
}
