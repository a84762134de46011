// canvas.go — Template loading and A4 canvas preparation.
package invite

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrTemplate marks a template image that could not be read or decoded.
var ErrTemplate = errors.New("template image")

// A4 page size in inches.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69

	// DefaultDPI is used when a non-positive DPI is requested.
	DefaultDPI = 300
)

// PageSize returns the A4 pixel dimensions at dpi. Halves round to even.
func PageSize(dpi int) (w, h int) {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	w = int(math.RoundToEven(a4WidthInches * float64(dpi)))
	h = int(math.RoundToEven(a4HeightInches * float64(dpi)))
	return w, h
}

// LoadTemplate opens and decodes the template image at path. PNG, JPEG, BMP,
// TIFF and WebP are recognized. A missing file still satisfies
// errors.Is(err, os.ErrNotExist).
func LoadTemplate(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplate, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrTemplate, path, err)
	}
	return img, nil
}

// Prepare returns a fresh RGBA canvas of the A4 size for dpi. A template of a
// different size is resampled with a Lanczos filter; one that already has the
// right size is copied pixel for pixel. The input is never modified.
func Prepare(img image.Image, dpi int) *image.RGBA {
	w, h := PageSize(dpi)

	src := img
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		src = imaging.Resize(img, w, h, imaging.Lanczos)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), src, src.Bounds().Min, draw.Src)
	return canvas
}
