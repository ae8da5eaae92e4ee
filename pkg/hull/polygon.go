package hull

import (
	"rasterhull/internal/models"
	"rasterhull/pkg/geometry"
)

// Contains reports whether p lies inside or on the boundary of hull, which
// must be counter-clockwise as produced by Build. One- and two-vertex hulls
// are treated as a point and a segment.
func Contains(hull []models.Point, p models.Point) bool {
	switch len(hull) {
	case 0:
		return false
	case 1:
		return hull[0] == p
	case 2:
		return onSegment(hull[0], hull[1], p)
	}

	for i := range hull {
		a := hull[i]
		b := hull[(i+1)%len(hull)]
		if geometry.Orient(a, b, p) == geometry.Clockwise {
			return false
		}
	}
	return true
}

// IsStrictlyConvex reports whether every cyclic triple of hull, including
// the triples that wrap around, is a strict left turn and no vertex
// repeats. Hulls with fewer than three vertices only need distinct points.
func IsStrictlyConvex(hull []models.Point) bool {
	seen := make(map[models.Point]struct{}, len(hull))
	for _, p := range hull {
		if _, dup := seen[p]; dup {
			return false
		}
		seen[p] = struct{}{}
	}
	if len(hull) < 3 {
		return true
	}

	n := len(hull)
	for i := range hull {
		if geometry.Orient(hull[i], hull[(i+1)%n], hull[(i+2)%n]) != geometry.CounterClockwise {
			return false
		}
	}
	return true
}

// Equal reports whether a and b list the same vertices in the same cyclic
// order, allowing a different starting vertex.
func Equal(a, b []models.Point) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	for shift := range b {
		if b[shift] != a[0] {
			continue
		}
		match := true
		for i := range a {
			if a[i] != b[(i+shift)%len(b)] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// onSegment reports whether p lies on the closed segment ab.
func onSegment(a, b, p models.Point) bool {
	if geometry.Orient(a, b, p) != geometry.Collinear {
		return false
	}
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}
