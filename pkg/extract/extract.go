// Package extract collects the foreground pixels of a binary raster.
//
// All extractors produce the same point set for the same raster. The
// parallel forms partition the rows into disjoint ranges, scan each range
// into a private accumulator, join once, and concatenate the accumulators
// in range order.
package extract

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"rasterhull/internal/models"
)

// Strategy selects how extraction work is distributed.
type Strategy int

const (
	// Sequential scans the raster on the calling goroutine.
	Sequential Strategy = iota
	// Threads statically assigns one contiguous row range to each worker.
	Threads
	// Tasks schedules fixed-size row blocks onto a bounded task group.
	Tasks
)

// String returns the configuration name of the strategy
func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "seq"
	case Threads:
		return "threads"
	case Tasks:
		return "tasks"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a configuration name onto a Strategy. Names are
// case-insensitive; "sequential", "omp" and "tbb" are accepted aliases.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "seq", "sequential", "":
		return Sequential, nil
	case "threads", "thread", "omp":
		return Threads, nil
	case "tasks", "task", "tbb":
		return Tasks, nil
	default:
		return Sequential, fmt.Errorf("unknown extraction strategy %q", name)
	}
}

// Extract runs the extractor selected by strategy. workers <= 0 uses one
// worker per CPU and is ignored by Sequential. grain is the row block size
// for Tasks (<= 0 is automatic) and is ignored by the other strategies.
func Extract(ctx context.Context, strategy Strategy, pix []byte, width, height, workers, grain int) ([]models.Point, error) {
	switch strategy {
	case Sequential:
		return SequentialScan(pix, width, height), nil
	case Threads:
		return Parallel(pix, width, height, workers), nil
	case Tasks:
		return TaskScan(ctx, pix, width, height, workers, grain)
	default:
		return nil, fmt.Errorf("unsupported extraction strategy %v", strategy)
	}
}

// SequentialScan returns the foreground pixels in row-major order.
func SequentialScan(pix []byte, width, height int) []models.Point {
	return scanRows(pix, width, Range{Start: 0, End: height}, nil)
}

// Parallel extracts foreground pixels with one goroutine per row range.
// The output order is row-major, identical to SequentialScan.
func Parallel(pix []byte, width, height, workers int) []models.Point {
	workers = normalizeWorkers(workers, height)
	ranges := Partition(height, workers)
	bins := make([][]models.Point, len(ranges))

	var wg sync.WaitGroup
	for i, r := range ranges {
		if r.Len() == 0 {
			continue
		}

		wg.Add(1)
		go func(slot int, rows Range) {
			defer wg.Done()
			bins[slot] = scanRows(pix, width, rows, reserve(width, rows))
		}(i, r)
	}

	// Wait for every range before any result is read
	wg.Wait()

	return merge(bins)
}

// TaskScan extracts foreground pixels by scheduling row blocks of grain
// rows on a task group running at most workers blocks at once. grain <= 0
// chooses a block size automatically.
//
// ctx is checked before each block starts; a cancelled context stops
// scheduling and its error is returned with no points.
func TaskScan(ctx context.Context, pix []byte, width, height, workers, grain int) ([]models.Point, error) {
	workers = normalizeWorkers(workers, height)
	if grain <= 0 {
		grain = autoGrain(height, workers)
	}

	blocks := Blocks(height, grain)
	bins := make([][]models.Point, len(blocks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, b := range blocks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bins[i] = scanRows(pix, width, b, reserve(width, b))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return merge(bins), nil
}
