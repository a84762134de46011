package invite

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xob0t/GoInvite/pkg/config"
)

var white = color.RGBA{255, 255, 255, 255}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

// goFace returns a Go Regular face of the given pixel size.
func goFace(t *testing.T, size int) *Face {
	t.Helper()

	fm, err := NewFontManager("", discardLogger())
	require.NoError(t, err)
	face, err := fm.Face(size)
	require.NoError(t, err)
	return face
}

func testConfig(t *testing.T, environ map[string]string) *config.Config {
	t.Helper()

	cfg, err := config.Parse(environ)
	require.NoError(t, err)
	return cfg
}

func testFonts(t *testing.T, cfg *config.Config) *FontSet {
	t.Helper()

	fs, err := LoadFontSet(cfg.Fonts, discardLogger())
	require.NoError(t, err)
	return fs
}

func isWhite(c color.RGBA) bool { return c == white }

func isReddish(c color.RGBA) bool {
	return c.R > 150 && c.G < 100 && c.B < 100
}

// inkRows returns the first and last rows in [y0, y1) that hold a pixel other
// than bg, or -1, -1 when there is none.
func inkRows(img *image.RGBA, y0, y1 int, bg color.RGBA) (first, last int) {
	first, last = -1, -1
	b := img.Bounds()
	for y := max(y0, b.Min.Y); y < min(y1, b.Max.Y); y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				if first < 0 {
					first = y
				}
				last = y
				break
			}
		}
	}
	return first, last
}
