// Package hull builds convex hulls of raster point sets with Andrew's
// monotone chain algorithm.
//
// Hulls are listed counter-clockwise starting from the lexicographically
// smallest vertex. Collinear boundary points are never kept as vertices,
// so a hull of collinear input is just its two extreme points.
package hull

import (
	"slices"

	"rasterhull/internal/models"
	"rasterhull/pkg/geometry"
)

// Build returns the convex hull of points. The input is not modified.
//
// Inputs with fewer than two distinct points are returned as they are
// (after deduplication when more than one point was given).
func Build(points []models.Point) []models.Point {
	if len(points) <= 1 {
		return slices.Clone(points)
	}

	pts := slices.Clone(points)
	slices.SortFunc(pts, compare)
	pts = slices.Compact(pts)
	if len(pts) <= 1 {
		return pts
	}

	lower := make([]models.Point, 0, len(pts))
	for _, p := range pts {
		lower = appendLeftTurn(lower, p)
	}

	upper := make([]models.Point, 0, len(pts))
	for i := len(pts) - 1; i >= 0; i-- {
		upper = appendLeftTurn(upper, pts[i])
	}

	// Each chain ends where the other begins
	lower = lower[:len(lower)-1]
	upper = upper[:len(upper)-1]

	hull := make([]models.Point, 0, len(lower)+len(upper))
	hull = append(hull, lower...)
	return append(hull, upper...)
}

// appendLeftTurn pops the chain tail until p makes a strict left turn with
// the last two points, then appends p. Collinear tails are popped too.
func appendLeftTurn(chain []models.Point, p models.Point) []models.Point {
	for len(chain) >= 2 && geometry.TwiceArea(chain[len(chain)-2], chain[len(chain)-1], p) <= 0 {
		chain = chain[:len(chain)-1]
	}
	return append(chain, p)
}

func compare(a, b models.Point) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
