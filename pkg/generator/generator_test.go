package generator

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_PNG(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "invite.png")
	src := NewSolidImage(30, 20, color.RGBA{10, 20, 30, 255})
	require.NoError(t, Generate(out, src))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 30, 20), img.Bounds())
	r, g, b, a := img.At(5, 5).RGBA()
	assert.Equal(t, []uint32{10, 20, 30, 255}, []uint32{r >> 8, g >> 8, b >> 8, a >> 8})
}

func TestGenerate_ReplacesExisting(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "invite.png")
	require.NoError(t, os.WriteFile(out, []byte("old"), 0o644))
	require.NoError(t, Generate(out, NewSolidImage(4, 4, color.RGBA{A: 255})))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestGenerate_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "invite.jpg")
	err := Generate(out, NewSolidImage(4, 4, color.RGBA{A: 255}))
	require.Error(t, err)

	_, statErr := os.Stat(out)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestGenerate_MissingDirLeavesNothing(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "no", "such", "dir", "invite.png")
	require.Error(t, Generate(out, NewSolidImage(4, 4, color.RGBA{A: 255})))
}

func TestGenerateToWriter_Deterministic(t *testing.T) {
	t.Parallel()

	img := NewFramedImage(50, 70, color.RGBA{255, 255, 255, 255}, color.RGBA{200, 180, 150, 255}, 5, 2)

	var a, b bytes.Buffer
	require.NoError(t, GenerateToWriter(&a, ".PNG", img))
	require.NoError(t, GenerateToWriter(&b, ".png", img))
	assert.Equal(t, a.Bytes(), b.Bytes())

	require.Error(t, GenerateToWriter(&a, ".avi", img))
}

func TestNewFramedImage(t *testing.T) {
	t.Parallel()

	bg := color.RGBA{255, 255, 255, 255}
	frame := color.RGBA{1, 2, 3, 255}
	img := NewFramedImage(50, 70, bg, frame, 5, 2)

	assert.Equal(t, bg, img.RGBAAt(2, 2), "margin")
	assert.Equal(t, frame, img.RGBAAt(5, 5), "corner")
	assert.Equal(t, frame, img.RGBAAt(6, 30), "left edge")
	assert.Equal(t, frame, img.RGBAAt(44, 30), "right edge")
	assert.Equal(t, bg, img.RGBAAt(25, 35), "inside")
}
