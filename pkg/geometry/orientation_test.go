package geometry

import (
	"math"
	"testing"

	"rasterhull/internal/models"
)

func TestOrient(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c models.Point
		want    Orientation
	}{
		{"left turn", models.Pt(0, 0), models.Pt(4, 0), models.Pt(4, 3), CounterClockwise},
		{"right turn", models.Pt(0, 0), models.Pt(4, 0), models.Pt(4, -3), Clockwise},
		{"collinear forward", models.Pt(0, 0), models.Pt(1, 1), models.Pt(5, 5), Collinear},
		{"collinear backward", models.Pt(0, 0), models.Pt(5, 5), models.Pt(1, 1), Collinear},
		{"coincident", models.Pt(2, 2), models.Pt(2, 2), models.Pt(7, 1), Collinear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Orient(tt.a, tt.b, tt.c); got != tt.want {
				t.Errorf("Orient(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.c, got, tt.want)
			}
		})
	}
}

func TestTwiceArea(t *testing.T) {
	// Unit right triangle has area 1/2
	if got := TwiceArea(models.Pt(0, 0), models.Pt(1, 0), models.Pt(0, 1)); got != 1 {
		t.Errorf("Expected twice area 1, got %d", got)
	}

	// Swapping two vertices flips the sign
	a, b, c := models.Pt(3, 1), models.Pt(8, 4), models.Pt(-2, 6)
	if TwiceArea(a, b, c) != -TwiceArea(a, c, b) {
		t.Error("Expected TwiceArea to be antisymmetric in b and c")
	}
}

// TestTwiceAreaExtremes verifies the computation does not overflow at the
// limits of the raster coordinate range
func TestTwiceAreaExtremes(t *testing.T) {
	lo := models.Point{X: 0, Y: 0}
	p := models.Point{X: math.MaxInt32, Y: 0}
	q := models.Point{X: 0, Y: math.MaxInt32}

	span := int64(math.MaxInt32)
	want := span * span
	if got := TwiceArea(lo, p, q); got != want {
		t.Errorf("Expected %d, got %d", want, got)
	}

	// (b-a) and (c-a) both have components at the full span
	r := models.Point{X: math.MaxInt32, Y: math.MaxInt32}
	if got := TwiceArea(q, p, r); got != want {
		t.Errorf("Expected %d, got %d", want, got)
	}
	if Orient(lo, p, q) != CounterClockwise {
		t.Error("Expected counter-clockwise orientation at extremes")
	}
	if Orient(lo, q, p) != Clockwise {
		t.Error("Expected clockwise orientation at extremes")
	}
}

func TestOrientationString(t *testing.T) {
	if CounterClockwise.String() != "counter-clockwise" {
		t.Errorf("unexpected name %q", CounterClockwise.String())
	}
	if Orientation(9).String() != "unknown" {
		t.Errorf("unexpected name %q", Orientation(9).String())
	}
}
