package visualization

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"rasterhull/internal/models"
)

var (
	backgroundColor = color.RGBA{A: 255}
	foregroundColor = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	edgeColor       = color.RGBA{R: 255, A: 255}
	vertexColor     = color.RGBA{R: 255, G: 220, A: 255}
)

// Overlay draws a raster with its convex hull on top, for inspecting
// pipeline output.
type Overlay struct {
	// raster holds the binary input image
	raster models.Raster

	// hull is the counter-clockwise vertex list drawn over the raster
	hull []models.Point
}

// NewOverlay creates an overlay of hull on raster
func NewOverlay(raster models.Raster, hull []models.Point) *Overlay {
	return &Overlay{
		raster: raster,
		hull:   hull,
	}
}

// Render paints foreground pixels grey, hull edges red and hull vertices
// yellow. A one-vertex hull is drawn as a single vertex.
func (o *Overlay) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, o.raster.Width, o.raster.Height))

	for y := 0; y < o.raster.Height; y++ {
		for x := 0; x < o.raster.Width; x++ {
			c := backgroundColor
			if o.raster.Foreground(x, y) {
				c = foregroundColor
			}
			img.SetRGBA(x, y, c)
		}
	}

	n := len(o.hull)
	if n >= 2 {
		for i, a := range o.hull {
			// A two-vertex hull is a single segment
			if n == 2 && i == 1 {
				break
			}
			drawLine(img, a, o.hull[(i+1)%n], edgeColor)
		}
	}
	for _, p := range o.hull {
		img.SetRGBA(int(p.X), int(p.Y), vertexColor)
	}

	return img
}

// Save renders the overlay to filename, as JPEG for .jpg/.jpeg names and
// PNG otherwise
func (o *Overlay) Save(filename string) error {
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create overlay directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create overlay file: %w", err)
	}

	img := o.Render()
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(file, img, &jpeg.Options{Quality: 90})
	default:
		err = png.Encode(file, img)
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to encode overlay: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close overlay file: %w", err)
	}
	return nil
}

// drawLine rasterizes segment ab with Bresenham's algorithm, clipping
// pixels outside img.
func drawLine(img *image.RGBA, a, b models.Point, c color.RGBA) {
	x0, y0 := int(a.X), int(a.Y)
	x1, y1 := int(b.X), int(b.Y)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	bounds := img.Bounds()
	e := dx + dy
	for {
		if (image.Point{X: x0, Y: y0}).In(bounds) {
			img.SetRGBA(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
