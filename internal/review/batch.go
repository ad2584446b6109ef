package review

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sevigo/ps-reviewer/internal/core"
)

// BatchResult pairs a submission with its outcome. Exactly one of Outcome
// and Err is set.
type BatchResult struct {
	Submission *core.Submission
	Outcome    *core.ReviewOutcome
	Err        error
}

type batchItem struct {
	index int
	sub   *core.Submission
}

// Batch reviews several submissions with a fixed pool of workers. Each
// submission still runs through the workflow on its own.
type Batch struct {
	workflow   *Workflow
	maxWorkers int
	logger     *slog.Logger
}

// NewBatch creates a batch runner. If maxWorkers is 0 or negative, it defaults to 1.
func NewBatch(workflow *Workflow, maxWorkers int, logger *slog.Logger) *Batch {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	return &Batch{workflow: workflow, maxWorkers: maxWorkers, logger: logger}
}

// Run reviews every submission and returns the results in input order.
// Submissions still queued when ctx is cancelled fail with a processing error.
func (b *Batch) Run(ctx context.Context, subs []*core.Submission) []BatchResult {
	results := make([]BatchResult, len(subs))
	queue := make(chan batchItem)

	workers := min(b.maxWorkers, len(subs))
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for item := range queue {
				results[item.index] = b.process(ctx, workerID, item.sub)
			}
		}(i)
	}

	for i, sub := range subs {
		queue <- batchItem{index: i, sub: sub}
	}
	close(queue)
	wg.Wait()

	return results
}

func (b *Batch) process(ctx context.Context, workerID int, sub *core.Submission) BatchResult {
	name := ""
	if sub != nil {
		name = sub.Filename
	}
	b.logger.Debug("worker processing file", "worker_id", workerID, "filename", name)

	if err := ctx.Err(); err != nil {
		return BatchResult{Submission: sub, Err: NewProcessingError(err)}
	}

	outcome, err := b.workflow.Handle(ctx, sub)
	if err != nil {
		b.logger.Warn("file review failed", "filename", name, "error", err)
	}
	return BatchResult{Submission: sub, Outcome: outcome, Err: err}
}
