package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sevigo/ps-reviewer/internal/core"
	"github.com/sevigo/ps-reviewer/internal/wire"
)

func initializeAppCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		a, cleanup, err := wire.InitializeApp(ctx)
		if err != nil {
			return appInitializedMsg{err: err}
		}
		return appInitializedMsg{app: a, cleanup: cleanup}
	}
}

// reviewFileCmd reads path from disk and runs it through the upload workflow.
func reviewFileCmd(ctx context.Context, workflow core.SubmissionHandler, path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return errorMsg{fmt.Errorf("failed to read %s: %w", path, err)}
		}
		outcome, err := workflow.Handle(ctx, &core.Submission{Filename: path, Data: data})
		return reviewCompleteMsg{path: path, outcome: outcome, err: err}
	}
}

func loadStandardsCmd(ctx context.Context, provider core.StandardsProvider) tea.Cmd {
	return func() tea.Msg {
		return standardsLoadedMsg{text: provider.Fetch(ctx)}
	}
}
