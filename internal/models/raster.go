package models

import "fmt"

// Point is a pixel coordinate in a raster.
type Point struct {
	X int32
	Y int32
}

// Pt is shorthand for constructing a Point from ints.
func Pt(x, y int) Point {
	return Point{X: int32(x), Y: int32(y)}
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Less orders points lexicographically: by X, then by Y.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Raster is a binary image stored row-major. A sample is foreground
// when it is non-zero.
type Raster struct {
	// Pix holds Width*Height samples, row by row
	Pix []byte

	// Width is the number of samples per row
	Width int

	// Height is the number of rows
	Height int
}

// NewRaster allocates an all-background raster of the given size.
func NewRaster(width, height int) Raster {
	return Raster{
		Pix:    make([]byte, width*height),
		Width:  width,
		Height: height,
	}
}

// At returns the sample at (x, y).
func (r Raster) At(x, y int) byte {
	return r.Pix[y*r.Width+x]
}

// Set stores v at (x, y).
func (r Raster) Set(x, y int, v byte) {
	r.Pix[y*r.Width+x] = v
}

// Foreground reports whether (x, y) is a foreground sample.
func (r Raster) Foreground(x, y int) bool {
	return r.At(x, y) != 0
}
