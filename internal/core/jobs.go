// Package core defines the essential interfaces and data structures that form the
// backbone of the application. External services sit behind these narrow
// capability interfaces so the review workflow can run against in-memory
// substitutes.
package core

//go:generate mockgen -destination=../../mocks/mock_core.go -package=mocks github.com/sevigo/ps-reviewer/internal/core BlobFetcher,Completer,StandardsProvider,Reviewer

import (
	"context"
)

// BlobFetcher reads a single object from a remote content store.
type BlobFetcher interface {
	// FetchText returns the raw bytes stored under key in container.
	FetchText(ctx context.Context, container, key string) ([]byte, error)
}

// Completer sends one chat-completion request and returns the text of the
// first choice.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// StandardsProvider returns the coding standards used to seed a review.
// Implementations never fail; they fall back to built-in standards instead.
type StandardsProvider interface {
	Fetch(ctx context.Context) string
}

// Reviewer produces a review for a script against a standards document.
type Reviewer interface {
	Review(ctx context.Context, code, standards string) ReviewResult
}

// SubmissionHandler runs the upload workflow for one submission.
type SubmissionHandler interface {
	Handle(ctx context.Context, sub *Submission) (*ReviewOutcome, error)
}
