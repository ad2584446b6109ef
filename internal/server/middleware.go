package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/ps-reviewer/internal/server/flash"
	"github.com/sevigo/ps-reviewer/internal/server/handler"
	"github.com/sevigo/ps-reviewer/internal/telemetry"
)

// requestLogger writes one structured access log line per request.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("http request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
					"remote", r.RemoteAddr,
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// recoverer turns a handler panic into a notice and a redirect to the form.
func recoverer(flashes *flash.Store, tracker telemetry.Tracker, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity
					panic(rec)
				}
				logger.Error("internal server error", "panic", rec, "stack", string(debug.Stack()))
				tracker.TrackException(fmt.Errorf("panic serving %s %s: %v", r.Method, r.URL.Path, rec))
				if err := flashes.Add(w, r, flash.CategoryError, handler.MsgInternalError); err != nil {
					logger.Error("failed to store notice", "error", err)
				}
				http.Redirect(w, r, "/", http.StatusFound)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
