// Package geometry provides exact integer predicates on raster points.
package geometry

import "rasterhull/internal/models"

// Orientation classifies the turn made by three points.
type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

// String returns a human-readable name for the orientation
func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case Collinear:
		return "collinear"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "unknown"
	}
}

// TwiceArea returns twice the signed area of triangle (a, b, c), the cross
// product (b-a) x (c-a). Positive means c lies to the left of a->b.
//
// Coordinates are widened to int64 before subtracting, so the result is
// exact for every int32 input.
func TwiceArea(a, b, c models.Point) int64 {
	abx := int64(b.X) - int64(a.X)
	aby := int64(b.Y) - int64(a.Y)
	acx := int64(c.X) - int64(a.X)
	acy := int64(c.Y) - int64(a.Y)
	return abx*acy - aby*acx
}

// Orient returns the sign of TwiceArea(a, b, c).
func Orient(a, b, c models.Point) Orientation {
	v := TwiceArea(a, b, c)
	switch {
	case v > 0:
		return CounterClockwise
	case v < 0:
		return Clockwise
	default:
		return Collinear
	}
}
