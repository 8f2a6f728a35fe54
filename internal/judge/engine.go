package judge

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"watcherknight/internal/marker"
)

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// Engine fans annotation validations out over a worker pool and aggregates
// the verdicts.
type Engine struct {
	// Judge performs one validation per call.
	Judge Judge
	// Concurrency bounds the number of in-flight judge invocations.
	// Zero or negative means unbounded, one task per annotation at once.
	Concurrency int
	// Progress receives one line per completed task, in completion order.
	// May be nil.
	Progress io.Writer
	// Logger carries diagnostics. May be nil.
	Logger *zap.Logger
}

type indexedVerdict struct {
	index   int
	verdict Verdict
}

// Run validates every annotation against the diff and returns the aggregated
// report. Tasks run concurrently; each produces exactly one Verdict, with
// invocation failures and malformed responses folded into failing verdicts.
// Progress lines are emitted as tasks complete, but the report itself lists
// verdicts in annotation order so output is deterministic.
func (e *Engine) Run(ctx context.Context, anns []marker.Annotation, diff string) *Report {
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	n := len(anns)
	results := make(chan indexedVerdict)

	// The errgroup is used purely as a bounded pool: tasks never return
	// errors, they report failure through their verdict.
	var g errgroup.Group
	if e.Concurrency > 0 {
		g.SetLimit(e.Concurrency)
	}
	go func() {
		for i, a := range anns {
			i, a := i, a
			g.Go(func() error {
				results <- indexedVerdict{index: i, verdict: e.validate(ctx, logger, a, diff)}
				return nil
			})
		}
		g.Wait()
		close(results)
	}()

	// Sole consumer: collect exactly one verdict per task.
	verdicts := make([]Verdict, n)
	completed := 0
	for res := range results {
		completed++
		verdicts[res.index] = res.verdict
		if e.Progress != nil {
			status := ansiGreen + "OK" + ansiReset
			if !res.verdict.Valid {
				status = ansiRed + "FAILED" + ansiReset
			}
			fmt.Fprintf(e.Progress, "[%d/%d] %s... %s\n", completed, n, res.verdict.Name, status)
		}
	}

	return NewReport(verdicts)
}

func (e *Engine) validate(ctx context.Context, logger *zap.Logger, a marker.Annotation, diff string) Verdict {
	logger.Debug("dispatching watcher",
		zap.String("name", a.Name),
		zap.String("location", a.Location()))

	out, err := e.Judge.Validate(ctx, BuildPrompt(a, diff))
	if err != nil {
		logger.Debug("judge invocation failed",
			zap.String("name", a.Name),
			zap.Error(err))
		return invocationFailure(a.Name, a.Location(), err)
	}
	return parseResponse(a.Name, a.Location(), out)
}
