package task

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNilTaskData is returned when a task has no buffer wiring at all.
	ErrNilTaskData = errors.New("task data is nil")

	// ErrMissingBuffer is returned when a region is declared non-empty but
	// has no backing buffer.
	ErrMissingBuffer = errors.New("missing buffer")

	// ErrInvalidGeometry is returned when the raster dimensions or the
	// buffer sizes do not agree.
	ErrInvalidGeometry = errors.New("invalid geometry")
)

// Validate checks the task data before any work is done. Failures leave
// every output untouched.
func (t *ConvexHull) Validate() error {
	t.validated = false

	d := t.data
	if d == nil {
		return ErrNilTaskData
	}

	if d.InputCount < 0 {
		return fmt.Errorf("%w: negative input count %d", ErrInvalidGeometry, d.InputCount)
	}
	if d.InputCount > 0 && d.Input == nil {
		return fmt.Errorf("%w: input declares %d samples", ErrMissingBuffer, d.InputCount)
	}
	if len(d.Input) != d.InputCount {
		return fmt.Errorf("%w: input holds %d samples, declared %d", ErrInvalidGeometry, len(d.Input), d.InputCount)
	}

	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidGeometry, d.Width, d.Height)
	}
	if d.Width > math.MaxInt32 || d.Height > math.MaxInt32 {
		return fmt.Errorf("%w: dimensions %dx%d exceed the coordinate range", ErrInvalidGeometry, d.Width, d.Height)
	}
	if int64(d.Width)*int64(d.Height) != int64(d.InputCount) {
		return fmt.Errorf("%w: %dx%d raster needs %d samples, got %d",
			ErrInvalidGeometry, d.Width, d.Height, int64(d.Width)*int64(d.Height), d.InputCount)
	}

	if d.OutputCapacity < 0 {
		return fmt.Errorf("%w: negative output capacity %d", ErrInvalidGeometry, d.OutputCapacity)
	}
	if d.OutputCapacity > 0 && d.Output == nil {
		return fmt.Errorf("%w: output declares capacity %d", ErrMissingBuffer, d.OutputCapacity)
	}
	if d.OutputCapacity > len(d.Output) {
		return fmt.Errorf("%w: output capacity %d exceeds buffer length %d", ErrInvalidGeometry, d.OutputCapacity, len(d.Output))
	}

	t.validated = true
	return nil
}
