// divider.go — Horizontal rules split around a centered ornament.
package invite

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/xob0t/GoInvite/pkg/config"
)

// fallbackOrnament is drawn when the hook face cannot render the configured one.
const fallbackOrnament = "•"

// ornamentRaise is the share of the ornament's ink height drawn above the rule.
const ornamentRaise = 0.55

// Ornament returns the glyph string a divider in style s will draw with face.
func Ornament(face *Face, s config.DividerStyle) string {
	if SupportsGlyphs(face, s.HookChar) {
		return s.HookChar
	}
	return fallbackOrnament
}

// DrawDivider draws one rule at y: two segments running from cx±HookGap out to
// cx±Width/2, and the ornament centered on cx with its top raised above y.
func DrawDivider(dst *image.RGBA, s config.DividerStyle, face *Face, cx, y int) {
	half := s.Width / 2
	thickness := max(s.Thickness, 1)

	dc := gg.NewContextForRGBA(dst)
	dc.SetColor(s.Color.RGBA())
	dc.SetLineWidth(float64(thickness))
	dc.SetLineCapButt()

	// An even thickness straddles the row boundary at y; an odd one is
	// centered on the middle of row y.
	ly := float64(y)
	if thickness%2 == 1 {
		ly += 0.5
	}
	dc.DrawLine(float64(cx-half), ly, float64(cx-s.HookGap+1), ly)
	dc.DrawLine(float64(cx+s.HookGap), ly, float64(cx+half+1), ly)
	dc.Stroke()

	orn := Ornament(face, s)
	w, h := inkSize(face, orn)
	drawString(dst, face, s.Color.RGBA(), cx-w/2, y-int(float64(h)*ornamentRaise), orn)
}

// DrawDividerPair draws a rule at y1 and another at y2. Nothing is drawn when
// y1 is absent, even if y2 is set. Returns the number of rules drawn.
func DrawDividerPair(dst *image.RGBA, s config.DividerStyle, face *Face, cx int, y1, y2 config.OptInt) int {
	if !y1.Valid {
		return 0
	}
	DrawDivider(dst, s, face, cx, y1.Value)
	if !y2.Valid {
		return 1
	}
	DrawDivider(dst, s, face, cx, y2.Value)
	return 2
}
