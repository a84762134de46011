// Package invite composes personalized invitation images onto an A4 template.
package invite

import "strings"

// ── Content types ──

// Content is the per-recipient text of one invitation. The json tags name the
// document keys and the env tags the keys read by the legacy variant.
type Content struct {
	Intro string `json:"INTRO_TEXT" env:"INTRO_TEXT"`

	TitleLine1 string `json:"TITLE_LINE_1" env:"TITLE_LINE_1"`
	TitleLine2 string `json:"TITLE_LINE_2" env:"TITLE_LINE_2"`

	DetailLine1 string `json:"DETAIL_LINE_1" env:"DETAIL_LINE_1"`
	DetailLine2 string `json:"DETAIL_LINE_2" env:"DETAIL_LINE_2"`
	DetailLine3 string `json:"DETAIL_LINE_3" env:"DETAIL_LINE_3"`

	MessageLine1 string `json:"MESSAGE_LINE_1" env:"MESSAGE_LINE_1"`
	MessageLine2 string `json:"MESSAGE_LINE_2" env:"MESSAGE_LINE_2"`

	SignLine1 string `json:"SIGN_LINE_1" env:"SIGN_LINE_1"`
	SignLine2 string `json:"SIGN_LINE_2" env:"SIGN_LINE_2"`

	RSVP string `json:"RSVP_TEXT" env:"RSVP_TEXT"`
}

// Policy decides what happens to a text block with no text.
type Policy int

const (
	// SuppressEmpty skips empty blocks entirely. Used for document-driven renders.
	SuppressEmpty Policy = iota
	// KeepBlank always draws every block, so empty lines still take up space.
	KeepBlank
)

func (p Policy) String() string {
	switch p {
	case SuppressEmpty:
		return "suppress-empty"
	case KeepBlank:
		return "keep-blank"
	default:
		return "unknown"
	}
}

// Blocks is Content joined into the multi-line strings the renderer draws.
type Blocks struct {
	Intro   string
	Title   string
	Details string
	Message string
	Sign    string
	RSVP    string
}

// Blocks joins the line fields. Under SuppressEmpty, leading and trailing
// newlines are trimmed so a block with no text becomes empty; under KeepBlank
// they are kept and render as blank lines.
func (c Content) Blocks(policy Policy) Blocks {
	join := func(lines ...string) string {
		s := strings.Join(lines, "\n")
		if policy == SuppressEmpty {
			s = strings.Trim(s, "\n")
		}
		return s
	}

	return Blocks{
		Intro:   c.Intro,
		Title:   join(c.TitleLine1, c.TitleLine2),
		Details: join(c.DetailLine1, c.DetailLine2, c.DetailLine3),
		Message: join(c.MessageLine1, c.MessageLine2),
		Sign:    join(c.SignLine1, c.SignLine2),
		RSVP:    c.RSVP,
	}
}
