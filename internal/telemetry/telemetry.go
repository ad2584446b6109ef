// Package telemetry reports requests, review outcomes and exceptions to
// Application Insights. Without a connection string every call is a no-op.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/microsoft/ApplicationInsights-Go/appinsights"
)

// Event names emitted by the review workflow.
const (
	EventReviewCompleted   = "review_completed"
	EventReviewFailed      = "review_failed"
	EventStandardsFallback = "standards_fallback"
)

const closeTimeout = 10 * time.Second

//go:generate mockgen -destination=../../mocks/mock_telemetry.go -package=mocks github.com/sevigo/ps-reviewer/internal/telemetry Tracker

// Tracker is the sink for operational telemetry.
type Tracker interface {
	TrackEvent(name string, properties map[string]string)
	TrackRequest(method, url string, duration time.Duration, status int)
	TrackException(err error)
	Close(ctx context.Context) error
}

// New returns an Application Insights tracker, or Nop when connectionString
// is empty.
func New(connectionString string, logger *slog.Logger) (Tracker, error) {
	if strings.TrimSpace(connectionString) == "" {
		return Nop{}, nil
	}
	ikey, endpoint, err := ParseConnectionString(connectionString)
	if err != nil {
		return nil, err
	}
	return NewAppInsightsTracker(ikey, endpoint, logger), nil
}

// ParseConnectionString extracts the instrumentation key and track endpoint.
// A bare instrumentation key is accepted too.
func ParseConnectionString(cs string) (ikey, endpoint string, err error) {
	cs = strings.TrimSpace(cs)
	if !strings.Contains(cs, "=") {
		if cs == "" {
			return "", "", errors.New("empty connection string")
		}
		return cs, "", nil
	}

	for _, part := range strings.Split(cs, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.ToLower(k) {
		case "instrumentationkey":
			ikey = v
		case "ingestionendpoint":
			endpoint = strings.TrimSuffix(v, "/") + "/v2/track"
		}
	}
	if ikey == "" {
		return "", "", fmt.Errorf("connection string has no InstrumentationKey")
	}
	return ikey, endpoint, nil
}

// AppInsightsTracker forwards telemetry to an Application Insights resource.
type AppInsightsTracker struct {
	client   appinsights.TelemetryClient
	listener appinsights.DiagnosticsMessageListener
}

// NewAppInsightsTracker builds a tracker. An empty endpoint keeps the SDK default.
func NewAppInsightsTracker(ikey, endpoint string, logger *slog.Logger) *AppInsightsTracker {
	cfg := appinsights.NewTelemetryConfiguration(ikey)
	if endpoint != "" {
		cfg.EndpointUrl = endpoint
	}
	cfg.MaxBatchInterval = 2 * time.Second

	t := &AppInsightsTracker{client: appinsights.NewTelemetryClientFromConfig(cfg)}
	t.client.Context().Tags.Cloud().SetRole("ps-reviewer")
	if logger != nil {
		t.listener = appinsights.NewDiagnosticsMessageListener(func(msg string) error {
			logger.Debug("appinsights", "message", msg)
			return nil
		})
	}
	return t
}

func (t *AppInsightsTracker) TrackEvent(name string, properties map[string]string) {
	event := appinsights.NewEventTelemetry(name)
	for k, v := range properties {
		event.Properties[k] = v
	}
	t.client.Track(event)
}

func (t *AppInsightsTracker) TrackRequest(method, url string, duration time.Duration, status int) {
	t.client.TrackRequest(method, url, duration, fmt.Sprintf("%d", status))
}

func (t *AppInsightsTracker) TrackException(err error) {
	if err == nil {
		return
	}
	t.client.TrackException(err)
}

// Close flushes buffered telemetry, waiting at most until ctx is done.
func (t *AppInsightsTracker) Close(ctx context.Context) error {
	if t.listener != nil {
		defer t.listener.Remove()
	}
	select {
	case <-t.client.Channel().Close(closeTimeout):
		return nil
	case <-ctx.Done():
		return fmt.Errorf("telemetry flush interrupted: %w", ctx.Err())
	}
}

// Nop discards everything.
type Nop struct{}

func (Nop) TrackEvent(string, map[string]string) {}

func (Nop) TrackRequest(string, string, time.Duration, int) {}

func (Nop) TrackException(error) {}

func (Nop) Close(context.Context) error { return nil }
