// renderer.go — Invitation composition onto a prepared A4 canvas.
// Draws the text blocks top to bottom at their anchors, with the small,
// details and message dividers in between.
package invite

import (
	"image"

	"github.com/xob0t/GoInvite/pkg/config"
)

// Line spacing per block, in pixels.
const (
	introSpacing   = 10
	titleSpacing   = 6
	detailsSpacing = 14
	messageSpacing = 14
	signSpacing    = 12
	rsvpSpacing    = 10
)

// Renderer draws invitations with one layout and font set.
type Renderer struct {
	layout config.Layout
	fonts  *FontSet
}

// NewRenderer creates a renderer. The layout is copied and not re-read.
func NewRenderer(layout config.Layout, fonts *FontSet) *Renderer {
	return &Renderer{layout: layout, fonts: fonts}
}

// Render prepares an A4 canvas from tmpl and draws c onto it. tmpl is not
// modified. Under SuppressEmpty an empty block is skipped; under KeepBlank it
// is still laid out.
func (r *Renderer) Render(tmpl image.Image, c Content, policy Policy) *image.RGBA {
	canvas := Prepare(tmpl, r.layout.DPI)
	cx := canvas.Bounds().Dx()/2 + r.layout.CenterOffsetX
	ink := r.layout.TextColor.RGBA()
	a := r.layout.Anchors
	b := c.Blocks(policy)

	block := func(text string, face *Face, top, spacing int) {
		if policy == SuppressEmpty && text == "" {
			return
		}
		DrawTextBlock(canvas, text, face, cx, top, ink, spacing)
	}
	pair := func(s config.DividerStyle, o config.DividerOverride) {
		DrawDividerPair(canvas, s, r.fonts.Hook, cx, o.Line1Y, o.Line2Y)
	}

	block(b.Intro, r.fonts.Small, a.Intro, introSpacing)
	block(b.Title, r.fonts.Title, a.Title, titleSpacing)
	pair(r.layout.SmallStyle(), r.layout.Small)

	block(b.Details, r.fonts.Body, a.Details, detailsSpacing)
	pair(r.layout.DetailsStyle(), r.layout.Details)

	block(b.Message, r.fonts.Small, a.Message, messageSpacing)
	pair(r.layout.MessageStyle(), r.layout.Message)

	block(b.Sign, r.fonts.Body, a.Sign, signSpacing)
	block(b.RSVP, r.fonts.RSVP, a.RSVP, rsvpSpacing)

	return canvas
}
