// fonts.go — Font management with custom TTF/OTF support and an embedded fallback.
// Uses golang.org/x/image/font for OpenType rendering. Falls back to the Go Regular
// font when no font is configured or when loading the configured one fails.
package invite

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/xob0t/GoInvite/pkg/config"
)

// faceDPI makes a face's point size equal its pixel size.
const faceDPI = 72

// FontManager holds one parsed font file.
type FontManager struct {
	parsed   *opentype.Font
	fallback bool
}

// NewFontManager parses the font at path. An empty path, an unreadable file or
// a file that is not a usable font all yield the embedded Go Regular font; the
// failures are reported on log.
func NewFontManager(path string, log *slog.Logger) (*FontManager, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			parsed, perr := opentype.Parse(data)
			if perr == nil {
				return &FontManager{parsed: parsed}, nil
			}
			err = perr
		}
		log.Warn("could not load font, using built-in default",
			slog.String("path", path),
			slog.String("error", err.Error()))
	}

	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in font: %w", err)
	}

	return &FontManager{parsed: parsed, fallback: true}, nil
}

// Fallback reports whether the built-in font is in use.
func (fm *FontManager) Fallback() bool { return fm.fallback }

// Face returns a face whose em size is size pixels.
func (fm *FontManager) Face(size int) (*Face, error) {
	face, err := opentype.NewFace(fm.parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     faceDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	return &Face{Face: face, Size: size, font: fm.parsed}, nil
}

// Face is a sized font face that remembers the font it was cut from, so glyph
// coverage can be probed.
type Face struct {
	font.Face
	Size int

	font *sfnt.Font
}

// SupportsGlyphs reports whether every rune of s maps to a real glyph with ink.
// An empty string, a rune the font maps to glyph 0, or a string whose glyphs
// draw nothing all count as unsupported.
func SupportsGlyphs(f *Face, s string) bool {
	if f == nil || s == "" {
		return false
	}

	var buf sfnt.Buffer
	for _, r := range s {
		idx, err := f.font.GlyphIndex(&buf, r)
		if err != nil || idx == 0 {
			return false
		}
	}

	bounds, _ := font.BoundString(f.Face, s)
	return !bounds.Empty()
}

// FontSet is the set of faces an invitation is drawn with.
type FontSet struct {
	Title *Face
	Body  *Face
	Small *Face
	Hook  *Face
	RSVP  *Face
}

// LoadFontSet loads the configured font files, sharing parsed fonts between
// faces that use the same file.
func LoadFontSet(cfg config.Fonts, log *slog.Logger) (*FontSet, error) {
	managers := make(map[string]*FontManager)
	face := func(path string, size int) (*Face, error) {
		fm, ok := managers[path]
		if !ok {
			var err error
			if fm, err = NewFontManager(path, log); err != nil {
				return nil, err
			}
			managers[path] = fm
		}
		return fm.Face(size)
	}

	var (
		fs  FontSet
		err error
	)
	if fs.Title, err = face(cfg.Title, cfg.TitleSize); err != nil {
		return nil, err
	}
	if fs.Body, err = face(cfg.Body, cfg.BodySize); err != nil {
		return nil, err
	}
	if fs.Small, err = face(cfg.Body, cfg.SmallSize); err != nil {
		return nil, err
	}
	if fs.Hook, err = face(cfg.Hook, cfg.HookSize); err != nil {
		return nil, err
	}
	if fs.RSVP, err = face(cfg.Body, cfg.RSVPSize.Or(cfg.BodySize)); err != nil {
		return nil, err
	}

	return &fs, nil
}
