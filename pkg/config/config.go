// Package config resolves invitation settings from a .env file, the process
// environment and per-invitation overrides into one immutable value.
//
// Nothing outside this package reads the environment: the CLI loads a Config
// once and passes it down.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalid wraps every configuration parse failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the resolved configuration shared by every subcommand.
type Config struct {
	TemplateImage string `env:"TEMPLATE_IMAGE"`
	OutputImage   string `env:"OUTPUT_IMAGE" envDefault:"invite.png"`

	Fonts   Fonts
	Layout  Layout
	Mail    Mail
	Logging Logging
}

// Fonts names the font files and pixel sizes. Hook falls back to Body and
// RSVPSize to BodySize when unset.
type Fonts struct {
	Title string `env:"FONT_TITLE"`
	Body  string `env:"FONT_BODY"`
	Hook  string `env:"FONT_HOOK"`

	TitleSize int    `env:"TITLE_SIZE" envDefault:"120"`
	BodySize  int    `env:"BODY_SIZE" envDefault:"52"`
	SmallSize int    `env:"SMALL_SIZE" envDefault:"44"`
	HookSize  int    `env:"HOOK_SIZE" envDefault:"34"`
	RSVPSize  OptInt `env:"RSVP_SIZE"`
}

// Layout holds page geometry, anchors and divider styling.
type Layout struct {
	DPI           int `env:"DPI" envDefault:"300"`
	CenterOffsetX int `env:"CENTER_OFFSET_X" envDefault:"50"`
	TextColor     RGB `env:"TEXT_COLOR" envDefault:"45,45,45"`

	Anchors Anchors
	Divider DividerStyle

	Small   DividerOverride `envPrefix:"SMALL_DIVIDER_"`
	Details DividerOverride `envPrefix:"DETAILS_DIVIDER_"`
	Message DividerOverride `envPrefix:"MESSAGE_DIVIDER_"`
}

// Anchors are the top Y coordinates of each text block.
type Anchors struct {
	Intro   int `env:"Y_INTRO" envDefault:"780"`
	Title   int `env:"Y_TITLE" envDefault:"900"`
	Details int `env:"Y_DETAILS" envDefault:"1320"`
	Message int `env:"Y_MESSAGE" envDefault:"1840"`
	Sign    int `env:"Y_SIGN" envDefault:"2320"`
	RSVP    int `env:"Y_RSVP" envDefault:"3000"`
}

// DividerStyle is the fully resolved look of one divider rule.
type DividerStyle struct {
	Width     int    `env:"LINE_WIDTH" envDefault:"900"`
	Thickness int    `env:"LINE_THICKNESS" envDefault:"2"`
	Color     RGB    `env:"LINE_COLOR" envDefault:"180,180,180"`
	HookChar  string `env:"HOOK_CHAR" envDefault:"❦"`
	HookGap   int    `env:"HOOK_GAP" envDefault:"22"`
}

// DividerOverride carries one divider's optional style overrides and the
// Y positions of its rules.
type DividerOverride struct {
	Width     OptInt `env:"WIDTH"`
	Thickness OptInt `env:"THICKNESS"`
	Color     RGB    `env:"COLOR"`
	HookChar  string `env:"HOOK_CHAR"`
	HookGap   OptInt `env:"HOOK_GAP"`

	Line1Y OptInt `env:"LINE_1_Y"`
	Line2Y OptInt `env:"LINE_2_Y"`
}

// smallDividerWidth is the small divider's width when SMALL_DIVIDER_WIDTH is unset.
const smallDividerWidth = 150

// Resolve fills every unset field from the global style.
func (o DividerOverride) Resolve(global DividerStyle) DividerStyle {
	s := global
	s.Width = o.Width.Or(global.Width)
	s.Thickness = o.Thickness.Or(global.Thickness)
	s.HookGap = o.HookGap.Or(global.HookGap)
	if o.Color.IsSet() {
		s.Color = o.Color
	}
	if o.HookChar != "" {
		s.HookChar = o.HookChar
	}
	return s
}

// SmallStyle is the resolved style of the divider under the title.
func (l Layout) SmallStyle() DividerStyle {
	o := l.Small
	if !o.Width.Valid {
		o.Width = Some(smallDividerWidth)
	}
	return o.Resolve(l.Divider)
}

// DetailsStyle is the resolved style of the divider after the details block.
func (l Layout) DetailsStyle() DividerStyle { return l.Details.Resolve(l.Divider) }

// MessageStyle is the resolved style of the divider after the message block.
func (l Layout) MessageStyle() DividerStyle { return l.Message.Resolve(l.Divider) }

// Logging configures optional Sentry forwarding.
type Logging struct {
	SentryDSN         string `env:"SENTRY_DSN"`
	SentryEnvironment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	Debug             bool   `env:"INVITE_DEBUG"`
}

// Environ reads the .env file at path and overlays the process environment
// on top of it. A missing file is not an error.
func Environ(path string) (map[string]string, error) {
	environ := make(map[string]string)

	if path != "" {
		fileVals, err := godotenv.Read(path)
		switch {
		case err == nil:
			for k, v := range fileVals {
				environ[k] = v
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			environ[k] = v
		}
	}
	return environ, nil
}

// Parse decodes environ into a Config and resolves the fallbacks between keys.
func Parse(environ map[string]string) (*Config, error) {
	var cfg Config
	if err := Decode(environ, &cfg); err != nil {
		return nil, err
	}

	if cfg.Fonts.Hook == "" {
		cfg.Fonts.Hook = cfg.Fonts.Body
	}
	if !cfg.Fonts.RSVPSize.Valid {
		cfg.Fonts.RSVPSize = Some(cfg.Fonts.BodySize)
	}
	if cfg.Layout.DPI <= 0 {
		return nil, fmt.Errorf("%w: DPI must be positive, got %d", ErrInvalid, cfg.Layout.DPI)
	}
	if cfg.Mail.HTMLTitle == "" {
		cfg.Mail.HTMLTitle = cfg.Mail.Subject
	}

	return &cfg, nil
}

// Load is Environ followed by Merge with overrides and Parse.
func Load(path string, overrides map[string]string) (*Config, error) {
	environ, err := Environ(path)
	if err != nil {
		return nil, err
	}
	return Parse(Merge(environ, overrides))
}

// Decode parses environ into any env-tagged struct.
func Decode(environ map[string]string, v any) error {
	if err := env.ParseWithOptions(v, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
