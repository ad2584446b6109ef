// Package standards supplies the coding-standards document that seeds every
// review. It always returns usable text: any storage failure yields the
// built-in DefaultStandards.
package standards

import (
	"context"
	"errors"
	"log/slog"
	"unicode/utf8"

	"github.com/sevigo/ps-reviewer/internal/core"
	"github.com/sevigo/ps-reviewer/internal/storage"
	"github.com/sevigo/ps-reviewer/internal/telemetry"
)

// DefaultStandards is used whenever the remote document cannot be read.
const DefaultStandards = `# Basic PowerShell Coding Standards

1. Use approved PowerShell verbs (Get-, Set-, New-, Remove-, etc.)
2. Include proper error handling with try/catch blocks
3. Add meaningful comments to explain complex logic
4. Use descriptive variable and function names
5. Follow consistent indentation (4 spaces recommended)
6. Include help documentation for functions
`

var errInvalidUTF8 = errors.New("standards document is not valid UTF-8")

// Provider fetches the standards document from a blob store.
type Provider struct {
	fetcher   core.BlobFetcher
	container string
	blob      string
	tracker   telemetry.Tracker
	logger    *slog.Logger
}

// NewProvider builds a provider. A nil fetcher means storage is not
// configured, and Fetch returns DefaultStandards. Nil tracker and logger
// fall back to Nop and slog.Default.
func NewProvider(fetcher core.BlobFetcher, container, blob string, tracker telemetry.Tracker, logger *slog.Logger) *Provider {
	if tracker == nil {
		tracker = telemetry.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		fetcher:   fetcher,
		container: container,
		blob:      blob,
		tracker:   tracker,
		logger:    logger,
	}
}

// Fetch makes a single attempt to read the document and never fails.
func (p *Provider) Fetch(ctx context.Context) string {
	if p.fetcher == nil {
		return p.fallback(storage.ErrNotConfigured)
	}

	data, err := p.fetcher.FetchText(ctx, p.container, p.blob)
	if err != nil {
		return p.fallback(err)
	}
	if !utf8.Valid(data) {
		return p.fallback(errInvalidUTF8)
	}

	p.logger.Info("successfully retrieved coding standards from blob storage",
		"container", p.container, "blob", p.blob, "bytes", len(data))
	return string(data)
}

func (p *Provider) fallback(err error) string {
	if errors.Is(err, storage.ErrNotConfigured) {
		p.logger.Warn("blob storage not configured, using built-in coding standards")
	} else {
		p.logger.Error("error retrieving coding standards from blob",
			"container", p.container, "blob", p.blob, "error", err)
	}
	p.tracker.TrackEvent(telemetry.EventStandardsFallback, map[string]string{
		"container": p.container,
		"blob":      p.blob,
		"reason":    err.Error(),
	})
	return DefaultStandards
}
