package main

import (
	"github.com/sevigo/ps-reviewer/internal/app"
	"github.com/sevigo/ps-reviewer/internal/core"
)

// Indicates that the core application services have been initialized.
type appInitializedMsg struct {
	app     *app.App
	cleanup func()
	err     error
}

// Carries the outcome of reviewing one file. Exactly one of outcome and err is set.
type reviewCompleteMsg struct {
	path    string
	outcome *core.ReviewOutcome
	err     error
}

type standardsLoadedMsg struct{ text string }

// A generic error message for reporting failures from commands.
type errorMsg struct{ err error }

func (e errorMsg) Error() string {
	return e.err.Error()
}
