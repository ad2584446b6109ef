package wire

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/wire"

	"github.com/sevigo/ps-reviewer/internal/app"
	"github.com/sevigo/ps-reviewer/internal/config"
	"github.com/sevigo/ps-reviewer/internal/core"
	"github.com/sevigo/ps-reviewer/internal/llm"
	"github.com/sevigo/ps-reviewer/internal/logger"
	"github.com/sevigo/ps-reviewer/internal/review"
	"github.com/sevigo/ps-reviewer/internal/secrets"
	"github.com/sevigo/ps-reviewer/internal/server"
	"github.com/sevigo/ps-reviewer/internal/standards"
	"github.com/sevigo/ps-reviewer/internal/storage"
	"github.com/sevigo/ps-reviewer/internal/telemetry"
)

const telemetryFlushTimeout = 10 * time.Second

var AppSet = wire.NewSet(
	app.NewApp,
	server.NewServer,
	review.NewWorkflow,
	llm.NewPromptManager,
	llm.NewCompleter,
	llm.NewReviewer,
	provideConfig,
	provideLogger,
	provideTracker,
	provideBlobFetcher,
	provideStandards,
	provideReviewOptions,
	wire.Bind(new(core.SubmissionHandler), new(*review.Workflow)),
	wire.Bind(new(core.Reviewer), new(*llm.Reviewer)),
	wire.Bind(new(core.StandardsProvider), new(*standards.Provider)),
)

// provideConfig loads the configuration, installs the configured logger as
// the process default and overlays Key Vault secrets.
func provideConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	l := logger.NewLogger(cfg.Logging, nil)
	slog.SetDefault(l)

	secrets.Load(ctx, cfg, l)
	return cfg, nil
}

// provideLogger returns the logger installed by provideConfig.
func provideLogger(_ *config.Config) *slog.Logger {
	return slog.Default()
}

func provideTracker(cfg *config.Config, logger *slog.Logger) (telemetry.Tracker, func()) {
	tracker, err := telemetry.New(cfg.Telemetry.ConnectionString, logger)
	if err != nil {
		logger.Error("telemetry disabled", "error", err)
		tracker = telemetry.Nop{}
	}
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := tracker.Close(ctx); err != nil {
			logger.Warn("telemetry was not flushed", "error", err)
		}
	}
	return tracker, cleanup
}

// provideBlobFetcher returns nil when no store is configured; the standards
// provider then serves the built-in document.
func provideBlobFetcher(cfg *config.Config, logger *slog.Logger) core.BlobFetcher {
	fetcher, err := storage.NewBlobStore(cfg)
	if err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			logger.Warn("standards storage not configured, using built-in standards", "provider", cfg.Storage.Provider)
		} else {
			logger.Error("failed to create standards storage client", "provider", cfg.Storage.Provider, "error", err)
		}
		return nil
	}
	return fetcher
}

func provideStandards(cfg *config.Config, fetcher core.BlobFetcher, tracker telemetry.Tracker, logger *slog.Logger) *standards.Provider {
	return standards.NewProvider(fetcher, cfg.Storage.Container, cfg.Storage.Blob, tracker, logger)
}

func provideReviewOptions(cfg *config.Config) llm.ReviewOptions {
	return llm.ReviewOptions{
		Enhanced: cfg.Features.EnhancedAnalysis(),
		Provider: llm.ModelProvider(cfg.AI.LLMProvider),
	}
}
