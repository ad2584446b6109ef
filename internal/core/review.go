package core

import (
	"path"
	"strings"
)

// Language is the script language this service reviews.
const Language = "PowerShell"

// AllowedExtensions lists the accepted script suffixes, lowercase and without the dot.
var AllowedExtensions = []string{"ps1", "psm1", "psd1"}

// Submission is a single uploaded script. A nil *Submission means the
// request carried no file part at all.
type Submission struct {
	Filename string
	Data     []byte
}

// Extension returns the lowercase suffix after the last dot, or "" when the
// filename has no dot.
func (s *Submission) Extension() string {
	return fileExtension(s.Filename)
}

// IsAllowedFile reports whether filename carries one of the AllowedExtensions.
func IsAllowedFile(filename string) bool {
	ext := fileExtension(filename)
	if ext == "" {
		return false
	}
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func fileExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx == -1 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

// AllowedExtensionList formats AllowedExtensions for user-facing messages,
// e.g. ".ps1, .psm1, .psd1".
func AllowedExtensionList() string {
	exts := make([]string, 0, len(AllowedExtensions))
	for _, ext := range AllowedExtensions {
		exts = append(exts, "."+ext)
	}
	return strings.Join(exts, ", ")
}

// BaseName strips any directory components a browser may have sent along
// with the filename.
func BaseName(filename string) string {
	return path.Base(strings.ReplaceAll(filename, `\`, "/"))
}

// FailureKind classifies why a review could not be produced.
type FailureKind string

const (
	// FailureUnavailable means no completion client could be constructed.
	FailureUnavailable FailureKind = "unavailable"
	// FailureUpstream means the completion call itself failed.
	FailureUpstream FailureKind = "upstream"
	// FailureEmpty means the completion service answered without any choice.
	FailureEmpty FailureKind = "empty_response"
	// FailurePrompt means the prompt template could not be rendered.
	FailurePrompt FailureKind = "prompt"
)

// ReviewFailure describes the failure variant of a ReviewResult.
type ReviewFailure struct {
	Kind    FailureKind
	Message string
}

// ReviewResult is the outcome of one review request. Failure is nil on
// success. Text is always populated: the model's answer on success, a
// formatted diagnostic on failure.
type ReviewResult struct {
	Text    string
	Failure *ReviewFailure
}

// IsError reports whether the result is the failure variant.
func (r ReviewResult) IsError() bool {
	return r.Failure != nil
}

// ReviewOutcome is what the upload workflow hands back to the presentation layer.
type ReviewOutcome struct {
	Filename string
	Result   ReviewResult
}

// CompletionRequest is a single chat-completion call.
type CompletionRequest struct {
	SystemMessage string
	UserMessage   string
	MaxTokens     int
	Temperature   float64
}
