// Package app holds the assembled components of the reviewer and manages
// their lifecycle. Construction lives in the wire package.
package app

import (
	"log/slog"

	"github.com/sevigo/ps-reviewer/internal/config"
	"github.com/sevigo/ps-reviewer/internal/core"
	"github.com/sevigo/ps-reviewer/internal/review"
	"github.com/sevigo/ps-reviewer/internal/server"
	"github.com/sevigo/ps-reviewer/internal/telemetry"
)

// App holds the main application components.
type App struct {
	Cfg       *config.Config
	Logger    *slog.Logger
	Workflow  *review.Workflow
	Standards core.StandardsProvider
	Tracker   telemetry.Tracker

	server *server.Server
}

// NewApp bundles the components built by the injector.
func NewApp(cfg *config.Config, srv *server.Server, workflow *review.Workflow, standards core.StandardsProvider, tracker telemetry.Tracker, logger *slog.Logger) *App {
	return &App{
		Cfg:       cfg,
		Logger:    logger,
		Workflow:  workflow,
		Standards: standards,
		Tracker:   tracker,
		server:    srv,
	}
}

// Batch returns a runner that reviews several files with the same workflow.
func (a *App) Batch(maxWorkers int) *review.Batch {
	return review.NewBatch(a.Workflow, maxWorkers, a.Logger)
}

// Start runs the HTTP server. It blocks until the server stops.
func (a *App) Start() error {
	a.Logger.Info("starting PowerShell code reviewer",
		"address", a.Cfg.Server.Addr(),
		"llm_provider", a.Cfg.AI.LLMProvider,
		"storage_provider", a.Cfg.Storage.Provider,
		"enhanced_analysis", a.Cfg.Features.EnhancedAnalysis(),
		"debug", a.Cfg.Server.Debug)

	if err := a.server.Start(); err != nil {
		a.Logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts the server down and lets in-flight reviews finish. Telemetry
// is flushed by the cleanup function returned from the injector.
func (a *App) Stop() error {
	a.Logger.Info("shutting down services")

	if err := a.server.Stop(); err != nil {
		a.Logger.Error("error during HTTP server shutdown", "error", err)
		return err
	}
	a.Logger.Info("stopped")
	return nil
}
