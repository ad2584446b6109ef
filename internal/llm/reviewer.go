package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sevigo/ps-reviewer/internal/core"
)

// Fixed completion settings for every review request.
const (
	SystemMessage     = "You are a " + core.Language + " code reviewer expert."
	ReviewMaxTokens   = 1500
	ReviewTemperature = 0.3
	fallbackErrorText = "# Error Processing Review\n\nAn error occurred while processing your code review: %s\n"
)

// ReviewOptions selects the prompt variant and the provider-specific templates.
type ReviewOptions struct {
	Enhanced bool
	Provider ModelProvider
}

// Reviewer turns code and standards into a review through a single
// completion request. It never returns an error: failures come back as a
// failed core.ReviewResult carrying a diagnostic text.
type Reviewer struct {
	completer core.Completer
	prompts   *PromptManager
	opts      ReviewOptions
	logger    *slog.Logger
}

func NewReviewer(completer core.Completer, prompts *PromptManager, opts ReviewOptions, logger *slog.Logger) *Reviewer {
	if opts.Provider == "" {
		opts.Provider = DefaultProvider
	}
	return &Reviewer{
		completer: completer,
		prompts:   prompts,
		opts:      opts,
		logger:    logger,
	}
}

func (r *Reviewer) Review(ctx context.Context, code, standards string) core.ReviewResult {
	key := CodeReviewPrompt
	if r.opts.Enhanced {
		key = EnhancedReviewPrompt
	}

	prompt, err := r.prompts.Render(key, r.opts.Provider, ReviewData{
		Language:  core.Language,
		Standards: standards,
		Code:      code,
	})
	if err != nil {
		return r.failure(core.FailurePrompt, fmt.Errorf("failed to build review prompt: %w", err))
	}

	text, err := r.completer.Complete(ctx, core.CompletionRequest{
		SystemMessage: SystemMessage,
		UserMessage:   prompt,
		MaxTokens:     ReviewMaxTokens,
		Temperature:   ReviewTemperature,
	})
	if err != nil {
		return r.failure(classify(err), err)
	}

	r.logger.Info("successfully got review from completion service",
		"enhanced", r.opts.Enhanced,
		"prompt_tokens_estimate", estimateTokens(prompt),
		"review_length", len(text),
	)
	return core.ReviewResult{Text: text}
}

func classify(err error) core.FailureKind {
	switch {
	case errors.Is(err, ErrUnavailable), errors.Is(err, ErrNotConfigured):
		return core.FailureUnavailable
	case errors.Is(err, ErrEmptyResponse):
		return core.FailureEmpty
	default:
		return core.FailureUpstream
	}
}

func (r *Reviewer) failure(kind core.FailureKind, err error) core.ReviewResult {
	r.logger.Error("error calling completion service", "kind", kind, "error", err)

	text, renderErr := r.prompts.Render(ReviewErrorPrompt, r.opts.Provider, ErrorData{Error: err.Error()})
	if renderErr != nil {
		text = fmt.Sprintf(fallbackErrorText, err.Error())
	}

	return core.ReviewResult{
		Text:    text,
		Failure: &core.ReviewFailure{Kind: kind, Message: err.Error()},
	}
}
