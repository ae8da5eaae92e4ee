package imageio

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

// createTestImage creates a grayscale test image with the specified dimensions and pattern
func createTestImage(width, height int, pattern func(x, y int) uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, color.Gray{Y: pattern(x, y)})
		}
	}
	return img
}

func square(x, y int) uint8 {
	if x >= 2 && x <= 5 && y >= 1 && y <= 3 {
		return 255
	}
	return 10
}

func TestToRaster(t *testing.T) {
	img := createTestImage(8, 6, square)
	r := ToRaster(img, 128, false)

	if r.Width != 8 || r.Height != 6 {
		t.Fatalf("Expected 8x6 raster, got %dx%d", r.Width, r.Height)
	}
	count := 0
	for _, v := range r.Pix {
		if v != 0 {
			count++
		}
	}
	if count != 12 {
		t.Errorf("Expected 12 foreground pixels, got %d", count)
	}
	if !r.Foreground(2, 1) || r.Foreground(1, 1) {
		t.Error("Foreground does not match the square pattern")
	}

	inv := ToRaster(img, 128, true)
	if inv.Foreground(2, 1) || !inv.Foreground(0, 0) {
		t.Error("Inverted raster does not match the pattern")
	}
}

// TestToRasterOffsetBounds checks that sub-images are rebased to the origin
func TestToRasterOffsetBounds(t *testing.T) {
	img := createTestImage(8, 6, square)
	sub := img.SubImage(image.Rect(2, 1, 6, 4))

	r := ToRaster(sub, 128, false)
	if r.Width != 4 || r.Height != 3 {
		t.Fatalf("Expected 4x3 raster, got %dx%d", r.Width, r.Height)
	}
	for i, v := range r.Pix {
		if v == 0 {
			t.Fatalf("Expected all foreground, sample %d is background", i)
		}
	}
}

func TestLoadRaster(t *testing.T) {
	dir := t.TempDir()
	img := createTestImage(8, 6, square)

	encoders := map[string]func(f *os.File) error{
		"square.png": func(f *os.File) error { return png.Encode(f, img) },
		"square.bmp": func(f *os.File) error { return bmp.Encode(f, img) },
	}

	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			f, err := os.Create(path)
			if err != nil {
				t.Fatalf("Failed to create test image: %v", err)
			}
			if err := encode(f); err != nil {
				f.Close()
				t.Fatalf("Failed to encode test image: %v", err)
			}
			f.Close()

			r, err := LoadRaster(path, 128, false)
			if err != nil {
				t.Fatalf("LoadRaster failed: %v", err)
			}
			want := ToRaster(img, 128, false)
			if string(r.Pix) != string(want.Pix) {
				t.Errorf("Raster decoded from %s differs from source", name)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}

	junk := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(junk, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRaster(junk, 1, false); err == nil {
		t.Error("Expected decode error for junk file")
	}
}
