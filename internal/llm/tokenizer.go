package llm

import (
	"context"

	"github.com/sevigo/goframe/llms"
)

// countTokens asks the model for an exact count when it can tokenize and
// otherwise estimates from the character length.
func countTokens(ctx context.Context, model llms.Model, text string) int {
	if t, ok := model.(llms.Tokenizer); ok {
		n, err := t.CountTokens(ctx, text)
		if err == nil {
			return n
		}
	}
	return estimateTokens(text)
}

// estimateTokens is a character-based approximation, roughly 3 characters per token.
func estimateTokens(text string) int {
	return len(text) / 3
}
