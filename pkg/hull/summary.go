package hull

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"rasterhull/internal/models"
	"rasterhull/pkg/geometry"
)

// Summary describes a point cloud together with its hull.
type Summary struct {
	// Points is the number of foreground pixels
	Points int

	// Vertices is the number of hull vertices
	Vertices int

	// TwiceArea is twice the hull polygon area, exact
	TwiceArea int64

	// Area is the hull polygon area in square pixels
	Area float64

	// Perimeter is the length of the closed hull boundary
	Perimeter float64

	// CentroidX and CentroidY are the mean pixel coordinates of the cloud
	CentroidX float64
	CentroidY float64

	// StdDevX and StdDevY are the population standard deviations of the
	// pixel coordinates
	StdDevX float64
	StdDevY float64

	// FillRatio is the number of foreground pixels per unit of hull area.
	// Degenerate hulls use an area of one.
	FillRatio float64
}

// Summarize computes statistics for points and their hull.
func Summarize(points, hull []models.Point) Summary {
	s := Summary{
		Points:    len(points),
		Vertices:  len(hull),
		TwiceArea: TwiceArea(hull),
		Perimeter: Perimeter(hull),
	}
	s.Area = float64(s.TwiceArea) / 2

	if len(points) > 0 {
		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for i, p := range points {
			xs[i] = float64(p.X)
			ys[i] = float64(p.Y)
		}
		s.CentroidX, s.StdDevX = stat.PopMeanStdDev(xs, nil)
		s.CentroidY, s.StdDevY = stat.PopMeanStdDev(ys, nil)
	}

	s.FillRatio = float64(s.Points) / math.Max(s.Area, 1)
	return s
}

// String formats the summary on a single line
func (s Summary) String() string {
	return fmt.Sprintf("points=%d vertices=%d area=%.1f perimeter=%.2f centroid=(%.2f,%.2f) spread=(%.2f,%.2f) fill=%.3f",
		s.Points, s.Vertices, s.Area, s.Perimeter, s.CentroidX, s.CentroidY, s.StdDevX, s.StdDevY, s.FillRatio)
}

// TwiceArea returns twice the area enclosed by a counter-clockwise hull.
// Hulls with fewer than three vertices enclose nothing.
func TwiceArea(hull []models.Point) int64 {
	if len(hull) < 3 {
		return 0
	}

	var area int64
	for i := 1; i < len(hull)-1; i++ {
		area += geometry.TwiceArea(hull[0], hull[i], hull[i+1])
	}
	return area
}

// Perimeter returns the length of the closed boundary through the hull
// vertices. A two-vertex hull counts its segment twice.
func Perimeter(hull []models.Point) float64 {
	if len(hull) < 2 {
		return 0
	}

	edges := make([]float64, len(hull))
	for i, a := range hull {
		b := hull[(i+1)%len(hull)]
		edges[i] = math.Hypot(float64(b.X)-float64(a.X), float64(b.Y)-float64(a.Y))
	}
	return floats.Sum(edges)
}
