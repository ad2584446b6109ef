package telemetry

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Middleware records one request telemetry item per handled request.
func Middleware(tracker Tracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				tracker.TrackRequest(r.Method, r.URL.String(), time.Since(start), status)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
