// Package imageio turns image files into binary rasters.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"os"

	// Registered decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"rasterhull/internal/models"
)

// Load decodes a PNG, JPEG, GIF, BMP or TIFF image from path.
func Load(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("image %s (%s) has no pixels", path, format)
	}

	return img, nil
}

// ToRaster thresholds img into a binary raster. A pixel is foreground (1)
// when its luminance is at least threshold, or below it when invert is
// set. The raster origin is the image's top-left corner.
func ToRaster(img image.Image, threshold uint8, invert bool) models.Raster {
	bounds := img.Bounds()
	r := models.NewRaster(bounds.Dx(), bounds.Dy())

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			lum := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray).Y
			if (lum >= threshold) != invert {
				r.Set(x, y, 1)
			}
		}
	}

	return r
}

// LoadRaster loads path and thresholds it with ToRaster.
func LoadRaster(path string, threshold uint8, invert bool) (models.Raster, error) {
	img, err := Load(path)
	if err != nil {
		return models.Raster{}, err
	}
	return ToRaster(img, threshold, invert), nil
}
