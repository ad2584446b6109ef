package review_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/ps-reviewer/internal/core"
	"github.com/sevigo/ps-reviewer/internal/review"
	"github.com/sevigo/ps-reviewer/internal/telemetry"
	"github.com/sevigo/ps-reviewer/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWorkflow_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		sub         *core.Submission
		wantKind    review.Kind
		wantMessage string
	}{
		{
			name:        "no file part",
			sub:         nil,
			wantKind:    review.KindNoFile,
			wantMessage: "No file selected for upload",
		},
		{
			name:        "empty filename",
			sub:         &core.Submission{Filename: "", Data: []byte("Get-Date")},
			wantKind:    review.KindNoFile,
			wantMessage: "No file selected for upload",
		},
		{
			name:        "wrong extension",
			sub:         &core.Submission{Filename: "notes.txt", Data: []byte("hello")},
			wantKind:    review.KindInvalidType,
			wantMessage: "Invalid file type. Please upload PowerShell files (.ps1, .psm1, .psd1)",
		},
		{
			name:        "no extension",
			sub:         &core.Submission{Filename: "script", Data: []byte("hello")},
			wantKind:    review.KindInvalidType,
			wantMessage: "Invalid file type. Please upload PowerShell files (.ps1, .psm1, .psd1)",
		},
		{
			name:        "invalid utf-8",
			sub:         &core.Submission{Filename: "bad.ps1", Data: []byte{0xff, 0xfe, 0x00, 0xc3}},
			wantKind:    review.KindDecode,
			wantMessage: "Error reading file. Please ensure it is a valid text file.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			standards := mocks.NewMockStandardsProvider(ctrl)
			reviewer := mocks.NewMockReviewer(ctrl)

			wf := review.NewWorkflow(standards, reviewer, nil, discardLogger())
			outcome, err := wf.Handle(context.Background(), tt.sub)

			assert.Nil(t, outcome)
			var vErr *review.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantKind, vErr.Kind)
			assert.Equal(t, tt.wantMessage, vErr.Message)
		})
	}
}

func TestWorkflow_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	standards := mocks.NewMockStandardsProvider(ctrl)
	reviewer := mocks.NewMockReviewer(ctrl)
	tracker := mocks.NewMockTracker(ctrl)

	gomock.InOrder(
		standards.EXPECT().Fetch(gomock.Any()).Return("STANDARDS"),
		reviewer.EXPECT().Review(gomock.Any(), "Get-Process | Stop-Process", "STANDARDS").
			Return(core.ReviewResult{Text: "Looks good"}),
	)
	tracker.EXPECT().TrackEvent(telemetry.EventReviewCompleted, gomock.Any()).
		Do(func(_ string, props map[string]string) {
			assert.Equal(t, "My_Script.PS1", props["filename"])
		})

	wf := review.NewWorkflow(standards, reviewer, tracker, discardLogger())
	outcome, err := wf.Handle(context.Background(), &core.Submission{
		Filename: `C:\temp\My Script.PS1`,
		Data:     []byte("\uFEFFGet-Process | Stop-Process"),
	})

	require.NoError(t, err)
	assert.Equal(t, "My_Script.PS1", outcome.Filename)
	assert.Equal(t, "Looks good", outcome.Result.Text)
	assert.False(t, outcome.Result.IsError())
}

func TestWorkflow_ReviewFailureIsStillAnOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	standards := mocks.NewMockStandardsProvider(ctrl)
	reviewer := mocks.NewMockReviewer(ctrl)
	tracker := mocks.NewMockTracker(ctrl)

	standards.EXPECT().Fetch(gomock.Any()).Return("STANDARDS")
	reviewer.EXPECT().Review(gomock.Any(), gomock.Any(), gomock.Any()).Return(core.ReviewResult{
		Text:    "# Error Processing Review",
		Failure: &core.ReviewFailure{Kind: core.FailureUpstream, Message: "timeout"},
	})
	tracker.EXPECT().TrackEvent(telemetry.EventReviewFailed, gomock.Any())

	wf := review.NewWorkflow(standards, reviewer, tracker, discardLogger())
	outcome, err := wf.Handle(context.Background(), &core.Submission{Filename: "mod.psm1", Data: []byte("function x {}")})

	require.NoError(t, err)
	assert.True(t, outcome.Result.IsError())
	assert.Contains(t, outcome.Result.Text, "Error Processing Review")
}

func TestWorkflow_ProcessingErrors(t *testing.T) {
	t.Run("cancelled context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		wf := review.NewWorkflow(mocks.NewMockStandardsProvider(ctrl), mocks.NewMockReviewer(ctrl), nil, discardLogger())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := wf.Handle(ctx, &core.Submission{Filename: "a.ps1", Data: []byte("x")})

		var vErr *review.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, review.KindProcessing, vErr.Kind)
		assert.Contains(t, vErr.Message, "Error processing file: context canceled")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("panic in collaborator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		standards := mocks.NewMockStandardsProvider(ctrl)
		standards.EXPECT().Fetch(gomock.Any()).DoAndReturn(func(context.Context) string {
			panic("storage client exploded")
		})

		tracker := mocks.NewMockTracker(ctrl)
		tracker.EXPECT().TrackException(gomock.Any()).Do(func(err error) {
			assert.Contains(t, err.Error(), "storage client exploded")
			assert.Contains(t, err.Error(), "a.psd1")
		})

		wf := review.NewWorkflow(standards, mocks.NewMockReviewer(ctrl), tracker, discardLogger())
		_, err := wf.Handle(context.Background(), &core.Submission{Filename: "a.psd1", Data: []byte("@{}")})

		var vErr *review.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, review.KindProcessing, vErr.Kind)
		assert.Contains(t, vErr.Message, "storage client exploded")
	})
}

func TestValidationError(t *testing.T) {
	cause := errors.New("disk on fire")
	err := review.NewProcessingError(cause)

	assert.Equal(t, "Error processing file: disk on fire", err.Message)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk on fire")

	plain := &review.ValidationError{Kind: review.KindNoFile, Message: "No file selected for upload"}
	assert.Equal(t, "No file selected for upload", plain.Error())
}

func TestNewWorkflow_PanicsOnMissingDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	assert.Panics(t, func() { review.NewWorkflow(nil, mocks.NewMockReviewer(ctrl), nil, discardLogger()) })
	assert.Panics(t, func() { review.NewWorkflow(mocks.NewMockStandardsProvider(ctrl), nil, nil, discardLogger()) })
	assert.Panics(t, func() {
		review.NewWorkflow(mocks.NewMockStandardsProvider(ctrl), mocks.NewMockReviewer(ctrl), nil, nil)
	})
}
