package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := Execute(ctx)
	stop()
	if err != nil {
		slog.Error("cli failed to run", "error", err)
		os.Exit(1)
	}
}
