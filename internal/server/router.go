package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/ps-reviewer/internal/config"
	"github.com/sevigo/ps-reviewer/internal/core"
	"github.com/sevigo/ps-reviewer/internal/server/flash"
	"github.com/sevigo/ps-reviewer/internal/server/handler"
	"github.com/sevigo/ps-reviewer/internal/server/render"
	"github.com/sevigo/ps-reviewer/internal/telemetry"
)

// NewRouter creates and configures a new HTTP router with middleware and routes.
func NewRouter(cfg *config.Config, workflow core.SubmissionHandler, tracker telemetry.Tracker, logger *slog.Logger) *chi.Mux {
	if tracker == nil {
		tracker = telemetry.Nop{}
	}
	flashes := flash.NewStore(cfg.Server.SecretKey)

	r := chi.NewRouter()

	// Configure middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(telemetry.Middleware(tracker))
	r.Use(recoverer(flashes, tracker, logger))

	pages := handler.NewPageHandler(cfg, workflow, flashes, render.NewMarkdown(), tracker, logger)
	health := handler.NewHealthHandler(cfg, logger)

	r.Get("/", pages.Index)
	r.Post("/upload", pages.Upload)
	r.Get("/health", health.Handle)
	r.Get("/upload", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	})

	return r
}
