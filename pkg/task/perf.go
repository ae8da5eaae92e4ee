package task

import (
	"context"
	"fmt"
	"time"
)

// Perf times repeated executions of a task.
type Perf struct {
	// Runs is the number of timed executions; values below one run once
	Runs int

	// Clock returns the current time; nil uses time.Now
	Clock func() time.Time
}

// Results holds timing statistics for a series of runs.
type Results struct {
	Runs  int
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
	Mean  time.Duration
}

// String formats the results for the perf report.
func (r Results) String() string {
	return fmt.Sprintf("runs=%d total=%v min=%v mean=%v max=%v", r.Runs, r.Total, r.Min, r.Mean, r.Max)
}

// PipelineRun times the whole lifecycle, creating a fresh task from
// newTask for every run.
func (p *Perf) PipelineRun(ctx context.Context, newTask func() *ConvexHull) (Results, error) {
	return p.measure(func() error {
		return newTask().Process(ctx)
	})
}

// TaskRun validates and preprocesses t once, then times only Run. The
// hull is copied to the output after the last run.
func (p *Perf) TaskRun(ctx context.Context, t *ConvexHull) (Results, error) {
	if err := t.Validate(); err != nil {
		return Results{}, err
	}
	if err := t.PreProcess(ctx); err != nil {
		return Results{}, err
	}

	res, err := p.measure(t.Run)
	if err != nil {
		return res, err
	}
	return res, t.PostProcess()
}

func (p *Perf) measure(fn func() error) (Results, error) {
	clock := p.Clock
	if clock == nil {
		clock = time.Now
	}
	runs := max(p.Runs, 1)

	res := Results{Runs: runs}
	for i := 0; i < runs; i++ {
		start := clock()
		if err := fn(); err != nil {
			return Results{}, fmt.Errorf("run %d: %w", i, err)
		}
		elapsed := clock().Sub(start)

		res.Total += elapsed
		if i == 0 || elapsed < res.Min {
			res.Min = elapsed
		}
		if elapsed > res.Max {
			res.Max = elapsed
		}
	}
	res.Mean = res.Total / time.Duration(runs)
	return res, nil
}
