// color.go — Solid and framed image creation.
package generator

import (
	"image"
	"image/color"
	"image/draw"
)

// NewSolidImage creates a uniform solid-color image using draw.Draw (O(1) fill).
func NewSolidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

// NewFramedImage is a solid image with a border of the given width inset by
// margin pixels. Used as a stand-in template.
func NewFramedImage(w, h int, bg, frame color.RGBA, margin, width int) *image.RGBA {
	img := NewSolidImage(w, h, bg)
	outer := image.Rect(margin, margin, w-margin, h-margin)
	inner := outer.Inset(width)
	if outer.Empty() {
		return img
	}

	src := &image.Uniform{frame}
	for _, r := range []image.Rectangle{
		image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, inner.Min.Y),
		image.Rect(outer.Min.X, inner.Max.Y, outer.Max.X, outer.Max.Y),
		image.Rect(outer.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y),
		image.Rect(inner.Max.X, inner.Min.Y, outer.Max.X, inner.Max.Y),
	} {
		draw.Draw(img, r, src, image.Point{}, draw.Src)
	}
	return img
}
