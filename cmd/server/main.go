package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sevigo/ps-reviewer/internal/wire"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application failed to run", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer cleanup()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(app.Start)
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("received shutdown signal")
		return app.Stop()
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}
