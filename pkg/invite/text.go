// text.go — Centered multi-line text blocks.
package invite

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// textLine is one laid-out line of a text block.
type textLine struct {
	text  string
	x     int // left origin
	top   int // ascender top; zero for blank lines
	blank bool
}

// layoutLines positions every line of text below top and returns the lines
// and the cursor after the last one.
func layoutLines(text string, face *Face, cx, top, spacing int) ([]textLine, int) {
	parts := strings.Split(text, "\n")
	lines := make([]textLine, 0, len(parts))

	y := top
	for _, s := range parts {
		if strings.TrimSpace(s) == "" {
			lines = append(lines, textLine{text: s, blank: true})
			y += face.Size + spacing
			continue
		}

		w, h := inkSize(face, s)
		lines = append(lines, textLine{text: s, x: cx - w/2, top: y})
		y += h + spacing
	}

	return lines, y
}

// DrawTextBlock draws text centered on cx, one line per "\n" segment, starting
// with the first line's ascender at top. Blank lines advance the cursor by the
// face size plus spacing; other lines by their ink height plus spacing.
// Returns the cursor below the last line.
func DrawTextBlock(dst draw.Image, text string, face *Face, cx, top int, col color.Color, spacing int) int {
	lines, y := layoutLines(text, face, cx, top, spacing)
	for _, l := range lines {
		if !l.blank {
			drawString(dst, face, col, l.x, l.top, l.text)
		}
	}
	return y
}

// inkSize measures the ink bounding box of s in whole pixels.
func inkSize(face font.Face, s string) (w, h int) {
	b, _ := font.BoundString(face, s)
	return (b.Max.X - b.Min.X).Ceil(), (b.Max.Y - b.Min.Y).Ceil()
}

// drawString draws s with its left origin at x and its ascender line at top.
func drawString(dst draw.Image, face font.Face, col color.Color, x, top int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(top) + face.Metrics().Ascent},
	}
	d.DrawString(s)
}
