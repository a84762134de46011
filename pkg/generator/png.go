// png.go — Atomic PNG file writer.
package generator

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/google/renameio/v2"
)

// writePNG encodes img and atomically replaces the file at output with it.
func writePNG(output string, img image.Image) error {
	f, err := renameio.NewPendingFile(output, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Cleanup()

	if err := encodePNG(f, img); err != nil {
		return err
	}
	if err := f.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	return nil
}

func encodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}
