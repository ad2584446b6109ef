package review_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/ps-reviewer/internal/core"
	"github.com/sevigo/ps-reviewer/internal/review"
	"github.com/sevigo/ps-reviewer/mocks"
)

func TestBatch_RunKeepsInputOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := gomock.NewController(t)
	standards := mocks.NewMockStandardsProvider(ctrl)
	reviewer := mocks.NewMockReviewer(ctrl)

	standards.EXPECT().Fetch(gomock.Any()).Return("STD").Times(3)
	reviewer.EXPECT().Review(gomock.Any(), gomock.Any(), "STD").
		DoAndReturn(func(_ context.Context, code, _ string) core.ReviewResult {
			return core.ReviewResult{Text: "review of " + code}
		}).Times(3)

	subs := []*core.Submission{
		{Filename: "a.ps1", Data: []byte("A")},
		{Filename: "b.txt", Data: []byte("B")},
		{Filename: "c.psm1", Data: []byte("C")},
		{Filename: "d.psd1", Data: []byte("D")},
	}

	batch := review.NewBatch(review.NewWorkflow(standards, reviewer, nil, discardLogger()), 3, discardLogger())
	results := batch.Run(context.Background(), subs)

	require.Len(t, results, 4)
	for i, res := range results {
		assert.Same(t, subs[i], res.Submission)
	}
	assert.Equal(t, "review of A", results[0].Outcome.Result.Text)
	assert.Error(t, results[1].Err)
	assert.Nil(t, results[1].Outcome)
	assert.Equal(t, "review of C", results[2].Outcome.Result.Text)
	assert.Equal(t, "review of D", results[3].Outcome.Result.Text)
}

func TestBatch_CancelledContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := gomock.NewController(t)
	batch := review.NewBatch(
		review.NewWorkflow(mocks.NewMockStandardsProvider(ctrl), mocks.NewMockReviewer(ctrl), nil, discardLogger()),
		0, discardLogger(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	subs := make([]*core.Submission, 5)
	for i := range subs {
		subs[i] = &core.Submission{Filename: fmt.Sprintf("f%d.ps1", i), Data: []byte("x")}
	}

	for _, res := range batch.Run(ctx, subs) {
		var vErr *review.ValidationError
		require.ErrorAs(t, res.Err, &vErr)
		assert.Equal(t, review.KindProcessing, vErr.Kind)
	}
}

func TestBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	batch := review.NewBatch(
		review.NewWorkflow(mocks.NewMockStandardsProvider(ctrl), mocks.NewMockReviewer(ctrl), nil, discardLogger()),
		4, discardLogger(),
	)
	assert.Empty(t, batch.Run(context.Background(), nil))
}
