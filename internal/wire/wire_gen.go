// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"context"
	"fmt"

	"github.com/sevigo/ps-reviewer/internal/app"
	"github.com/sevigo/ps-reviewer/internal/llm"
	"github.com/sevigo/ps-reviewer/internal/review"
	"github.com/sevigo/ps-reviewer/internal/server"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	cfg, err := provideConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	slogLogger := provideLogger(cfg)

	tracker, trackerCleanup := provideTracker(cfg, slogLogger)

	fetcher := provideBlobFetcher(cfg, slogLogger)
	standardsProvider := provideStandards(cfg, fetcher, tracker, slogLogger)

	promptMgr, err := llm.NewPromptManager()
	if err != nil {
		trackerCleanup()
		return nil, nil, fmt.Errorf("failed to create prompt manager: %w", err)
	}
	completer := llm.NewCompleter(ctx, cfg, slogLogger)
	reviewer := llm.NewReviewer(completer, promptMgr, provideReviewOptions(cfg), slogLogger)

	workflow := review.NewWorkflow(standardsProvider, reviewer, tracker, slogLogger)
	srv := server.NewServer(cfg, workflow, tracker, slogLogger)

	application := app.NewApp(cfg, srv, workflow, standardsProvider, tracker, slogLogger)

	cleanup := func() {
		trackerCleanup()
	}
	return application, cleanup, nil
}
