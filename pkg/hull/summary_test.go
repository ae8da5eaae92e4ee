package hull

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"rasterhull/internal/models"
)

func TestSummarizeBlock(t *testing.T) {
	var points []models.Point
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			points = append(points, models.Pt(x, y))
		}
	}
	h := Build(points)

	s := Summarize(points, h)
	assert.Equal(t, 9, s.Points)
	assert.Equal(t, 4, s.Vertices)
	assert.Equal(t, int64(8), s.TwiceArea)
	assert.InDelta(t, 4.0, s.Area, 1e-12)
	assert.InDelta(t, 8.0, s.Perimeter, 1e-12)
	assert.InDelta(t, 2.0, s.CentroidX, 1e-12)
	assert.InDelta(t, 2.0, s.CentroidY, 1e-12)
	assert.InDelta(t, math.Sqrt(2.0/3.0), s.StdDevX, 1e-12)
	assert.InDelta(t, 9.0/4.0, s.FillRatio, 1e-12)
	assert.True(t, strings.Contains(s.String(), "vertices=4"))
}

func TestSummarizeDegenerate(t *testing.T) {
	s := Summarize(nil, nil)
	assert.Zero(t, s.Points)
	assert.Zero(t, s.Area)
	assert.Zero(t, s.Perimeter)
	assert.Zero(t, s.FillRatio)

	one := []models.Point{models.Pt(5, 7)}
	s = Summarize(one, Build(one))
	assert.Equal(t, 5.0, s.CentroidX)
	assert.Equal(t, 7.0, s.CentroidY)
	assert.Zero(t, s.StdDevX)
	assert.Equal(t, 1.0, s.FillRatio)

	seg := []models.Point{models.Pt(0, 0), models.Pt(3, 4)}
	s = Summarize(seg, Build(seg))
	assert.Zero(t, s.TwiceArea)
	assert.InDelta(t, 10.0, s.Perimeter, 1e-12)
}

func TestTwiceAreaRightTriangle(t *testing.T) {
	tri := []models.Point{models.Pt(0, 0), models.Pt(4, 0), models.Pt(0, 3)}
	assert.Equal(t, int64(12), TwiceArea(tri))
	assert.InDelta(t, 12.0, Perimeter(tri), 1e-12)
}
