package extract

import (
	"runtime"

	"rasterhull/internal/models"
)

// minReserve is added to every accumulator estimate so that sparse
// partitions do not start from a zero-capacity slice.
const minReserve = 64

// reserve estimates the accumulator size for a row range: one eighth of
// its pixels plus a small constant.
func reserve(width int, rows Range) []models.Point {
	return make([]models.Point, 0, width*rows.Len()/8+minReserve)
}

// scanRows appends the foreground pixels of rows to dst in row-major order.
func scanRows(pix []byte, width int, rows Range, dst []models.Point) []models.Point {
	for y := rows.Start; y < rows.End; y++ {
		row := pix[y*width : (y+1)*width]
		for x, v := range row {
			if v != 0 {
				dst = append(dst, models.Point{X: int32(x), Y: int32(y)})
			}
		}
	}
	return dst
}

// merge concatenates the per-partition accumulators in partition order.
func merge(bins [][]models.Point) []models.Point {
	total := 0
	for _, b := range bins {
		total += len(b)
	}

	points := make([]models.Point, 0, total)
	for _, b := range bins {
		points = append(points, b...)
	}
	return points
}

// normalizeWorkers resolves workers <= 0 to the CPU count and caps the
// result at the number of rows, since extra workers would only get empty
// ranges. The result is at least one.
func normalizeWorkers(workers, rows int) int {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return max(1, min(workers, rows))
}
