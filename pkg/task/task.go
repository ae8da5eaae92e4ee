// Package task runs the hull pipeline inside the validate, preprocess, run
// and postprocess lifecycle used by the benchmarking harness.
package task

import (
	"context"
	"fmt"
	"time"

	"rasterhull/internal/models"
	"rasterhull/internal/monitoring"
	"rasterhull/pkg/extract"
	"rasterhull/pkg/hull"
)

// TaskData is the buffer wiring between the harness and a task.
type TaskData struct {
	// Input is the row-major raster, one byte per sample
	Input []byte

	// InputCount is the declared number of samples in Input
	InputCount int

	// Width and Height are the raster dimensions
	Width  int
	Height int

	// Output receives the hull vertices
	Output []models.Point

	// OutputCapacity bounds how many vertices may be written to Output
	OutputCapacity int

	// OutputCount is set by PostProcess to the number of vertices written
	OutputCount int
}

// NewTaskData wires a raster and an output buffer whose full length is
// the capacity.
func NewTaskData(r models.Raster, out []models.Point) *TaskData {
	return &TaskData{
		Input:          r.Pix,
		InputCount:     len(r.Pix),
		Width:          r.Width,
		Height:         r.Height,
		Output:         out,
		OutputCapacity: len(out),
	}
}

// Params selects how the task distributes extraction work.
type Params struct {
	// Strategy is the extraction scheme
	Strategy extract.Strategy

	// NumWorkers bounds the extraction goroutines; <= 0 uses all CPUs
	NumWorkers int

	// Grain is the row block size for the task strategy; <= 0 is automatic
	Grain int
}

// ConvexHull computes the convex hull of a raster's foreground pixels.
type ConvexHull struct {
	data   *TaskData
	params Params

	points []models.Point
	hull   []models.Point

	validated bool
}

// New creates a task over data. A nil params runs sequentially.
func New(data *TaskData, params *Params) *ConvexHull {
	t := &ConvexHull{data: data}
	if params != nil {
		t.params = *params
	}
	return t
}

// Process runs all four lifecycle stages in order.
func (t *ConvexHull) Process(ctx context.Context) error {
	start := time.Now()

	if err := t.Validate(); err != nil {
		return err
	}
	if err := t.PreProcess(ctx); err != nil {
		return fmt.Errorf("failed to extract points: %w", err)
	}
	if err := t.Run(); err != nil {
		return fmt.Errorf("failed to build hull: %w", err)
	}
	if err := t.PostProcess(); err != nil {
		return fmt.Errorf("failed to copy hull: %w", err)
	}

	monitoring.Logf("hull of %dx%d raster: %d points, %d vertices, %d written in %v",
		t.data.Width, t.data.Height, len(t.points), len(t.hull), t.data.OutputCount, time.Since(start))
	return nil
}

// PreProcess extracts the foreground pixels with the configured strategy.
func (t *ConvexHull) PreProcess(ctx context.Context) error {
	if !t.validated {
		if err := t.Validate(); err != nil {
			return err
		}
	}

	d := t.data
	points, err := extract.Extract(ctx, t.params.Strategy, d.Input, d.Width, d.Height, t.params.NumWorkers, t.params.Grain)
	if err != nil {
		return err
	}

	t.points = points
	monitoring.Logf("extracted %d foreground points (%v)", len(points), t.params.Strategy)
	return nil
}

// Run builds the hull from the extracted points on the calling goroutine.
func (t *ConvexHull) Run() error {
	t.hull = hull.Build(t.points)
	return nil
}

// PostProcess copies the hull into the output buffer, truncating it to
// the output capacity, and records the number of vertices written.
func (t *ConvexHull) PostProcess() error {
	t.data.OutputCount = CopyTruncated(t.data.Output, t.hull, t.data.OutputCapacity)
	if t.data.OutputCount < len(t.hull) {
		monitoring.Logf("hull truncated to %d of %d vertices", t.data.OutputCount, len(t.hull))
	}
	return nil
}

// Points returns the extracted foreground pixels.
func (t *ConvexHull) Points() []models.Point {
	return t.points
}

// Hull returns the full, untruncated hull.
func (t *ConvexHull) Hull() []models.Point {
	return t.hull
}

// Summary returns statistics for the last computed hull.
func (t *ConvexHull) Summary() hull.Summary {
	return hull.Summarize(t.points, t.hull)
}

// CopyTruncated copies the first min(len(src), capacity, len(dst)) hull
// vertices into dst and returns how many were copied. A nil dst or zero
// capacity copies nothing.
func CopyTruncated(dst, src []models.Point, capacity int) int {
	if dst == nil || capacity <= 0 {
		return 0
	}
	n := min(len(src), capacity, len(dst))
	return copy(dst[:n], src[:n])
}
