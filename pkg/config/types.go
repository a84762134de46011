// types.go — Value types decoded from configuration strings.
package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// OptInt is an integer that may be absent. A missing or blank key leaves it
// unset, which is different from an explicit zero.
type OptInt struct {
	Value int
	Valid bool
}

// Some returns a present OptInt holding v.
func Some(v int) OptInt {
	return OptInt{Value: v, Valid: true}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *OptInt) UnmarshalText(text []byte) error {
	v, err := ParseOptInt(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// Or returns the value when present, def otherwise.
func (o OptInt) Or(def int) int {
	if o.Valid {
		return o.Value
	}
	return def
}

// ParseOptInt parses s as an optional integer. Blank input is absent.
func ParseOptInt(s string) (OptInt, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return OptInt{}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return OptInt{}, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return Some(n), nil
}

// RGB is an opaque color written as "r,g,b".
type RGB struct {
	R, G, B uint8
	set     bool
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *RGB) UnmarshalText(text []byte) error {
	v, err := ParseRGB(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// IsSet reports whether the color came from configuration.
func (c RGB) IsSet() bool { return c.set }

// RGBA returns the color with full alpha.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (c RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// ParseRGB parses a comma-separated triple such as "180,180,180".
// Anything after the third component is ignored.
func ParseRGB(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 3 {
		return RGB{}, fmt.Errorf("invalid color %q: expected r,g,b", s)
	}

	var ch [3]uint8
	for i := range ch {
		p := strings.TrimSpace(parts[i])
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid color %q: channel %d: %w", s, i+1, err)
		}
		ch[i] = uint8(v)
	}

	return RGB{R: ch[0], G: ch[1], B: ch[2], set: true}, nil
}

// MustRGB is ParseRGB for literals known to be valid.
func MustRGB(s string) RGB {
	c, err := ParseRGB(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Recipients is a list of addresses separated by commas or newlines.
type Recipients []string

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Recipients) UnmarshalText(text []byte) error {
	*r = ParseRecipients(string(text))
	return nil
}

// ParseRecipients splits on commas and newlines, trimming and dropping empties.
func ParseRecipients(s string) Recipients {
	if s == "" {
		return nil
	}
	raw := strings.ReplaceAll(s, "\n", ",")
	var out Recipients
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
