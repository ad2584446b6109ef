// Package review implements the upload workflow: validate a submitted script,
// fetch the coding standards, request a review and package the outcome.
package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/sevigo/ps-reviewer/internal/core"
	"github.com/sevigo/ps-reviewer/internal/telemetry"
	"github.com/sevigo/ps-reviewer/internal/util"
)

// Kind classifies a ValidationError.
type Kind string

const (
	KindNoFile      Kind = "no_file"
	KindInvalidType Kind = "invalid_type"
	KindDecode      Kind = "decode"
	KindProcessing  Kind = "processing"
)

const (
	msgNoFile = "No file selected for upload"
	msgDecode = "Error reading file. Please ensure it is a valid text file."
)

const byteOrderMark = "\uFEFF"

// ValidationError is returned for every submission that does not reach a
// rendered review. Message is safe to show to the user.
type ValidationError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewProcessingError wraps an unexpected failure while handling a submission.
func NewProcessingError(err error) *ValidationError {
	return &ValidationError{
		Kind:    KindProcessing,
		Message: fmt.Sprintf("Error processing file: %s", err),
		Err:     err,
	}
}

func invalidTypeMessage() string {
	return fmt.Sprintf("Invalid file type. Please upload %s files (%s)", core.Language, core.AllowedExtensionList())
}

// Workflow runs one submission through validation, standards retrieval and review.
type Workflow struct {
	standards core.StandardsProvider
	reviewer  core.Reviewer
	tracker   telemetry.Tracker
	logger    *slog.Logger
}

// NewWorkflow creates a workflow. A nil tracker disables telemetry.
func NewWorkflow(standards core.StandardsProvider, reviewer core.Reviewer, tracker telemetry.Tracker, logger *slog.Logger) *Workflow {
	if standards == nil {
		panic("standards provider cannot be nil")
	}
	if reviewer == nil {
		panic("reviewer cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if tracker == nil {
		tracker = telemetry.Nop{}
	}
	return &Workflow{standards: standards, reviewer: reviewer, tracker: tracker, logger: logger}
}

// Handle validates sub and, when it is acceptable, produces its review.
// The first failing check decides the returned *ValidationError. A review
// that failed upstream is still a successful outcome carrying a failed result.
func (w *Workflow) Handle(ctx context.Context, sub *core.Submission) (outcome *core.ReviewOutcome, err error) {
	if sub == nil {
		w.logger.Warn("no file in upload request")
		return nil, &ValidationError{Kind: KindNoFile, Message: msgNoFile}
	}
	if sub.Filename == "" {
		w.logger.Warn("empty filename in upload request")
		return nil, &ValidationError{Kind: KindNoFile, Message: msgNoFile}
	}
	if !core.IsAllowedFile(sub.Filename) {
		w.logger.Warn("invalid file type uploaded", "filename", sub.Filename)
		return nil, &ValidationError{Kind: KindInvalidType, Message: invalidTypeMessage()}
	}
	if !utf8.Valid(sub.Data) {
		w.logger.Error("unicode decode error for file", "filename", sub.Filename)
		return nil, &ValidationError{Kind: KindDecode, Message: msgDecode}
	}

	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("error processing upload", "filename", sub.Filename, "panic", r)
			w.tracker.TrackException(fmt.Errorf("panic reviewing %s: %v", sub.Filename, r))
			outcome, err = nil, NewProcessingError(fmt.Errorf("%v", r))
		}
	}()

	if ctxErr := ctx.Err(); ctxErr != nil {
		w.logger.Error("error processing upload", "filename", sub.Filename, "error", ctxErr)
		return nil, NewProcessingError(ctxErr)
	}

	code := strings.TrimPrefix(string(sub.Data), byteOrderMark)
	w.logger.Info("successfully read file", "filename", sub.Filename, "bytes", len(sub.Data))

	standards := w.standards.Fetch(ctx)
	result := w.reviewer.Review(ctx, code, standards)

	outcome = &core.ReviewOutcome{
		Filename: util.SanitizeFilename(core.BaseName(sub.Filename)),
		Result:   result,
	}
	w.track(outcome)
	return outcome, nil
}

func (w *Workflow) track(outcome *core.ReviewOutcome) {
	if outcome.Result.IsError() {
		w.tracker.TrackEvent(telemetry.EventReviewFailed, map[string]string{
			"filename": outcome.Filename,
			"kind":     string(outcome.Result.Failure.Kind),
		})
		return
	}
	w.tracker.TrackEvent(telemetry.EventReviewCompleted, map[string]string{
		"filename":      outcome.Filename,
		"review_length": fmt.Sprintf("%d", len(outcome.Result.Text)),
	})
}
