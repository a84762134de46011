// Package generator writes composed invitations to disk.
//
// Output is always lossless PNG. Files are written to a temporary sibling and
// renamed into place, so a failed render never leaves a partial image behind.
package generator

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"
)

// Generate writes img to output. The format is inferred from the file extension;
// only ".png" is accepted.
func Generate(output string, img image.Image) error {
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".png":
		return writePNG(output, img)
	default:
		return fmt.Errorf("unsupported format %q: use .png", ext)
	}
}

// GenerateToWriter encodes img to w. The format is specified by ext.
func GenerateToWriter(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		return encodePNG(w, img)
	default:
		return fmt.Errorf("unsupported format %q: use .png", ext)
	}
}
