// keys.go — Human-readable listing of recognized keys.
package config

import (
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
)

// FormatKeys writes every key v recognizes, with its default, under a heading.
func FormatKeys(w io.Writer, heading string, v any) error {
	params, err := env.GetFieldParams(v)
	if err != nil {
		return fmt.Errorf("list keys: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%s:\n", heading); err != nil {
		return err
	}
	for _, p := range params {
		if p.OwnKey == "" {
			continue
		}
		def := ""
		if p.HasDefaultValue {
			def = fmt.Sprintf("(default %q)", p.DefaultValue)
		}
		if _, err := fmt.Fprintf(w, "    %-28s %s\n", p.Key, def); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w)
	return err
}

// Keys returns every environment key v recognizes.
func Keys(v any) ([]string, error) {
	params, err := env.GetFieldParams(v)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	keys := make([]string, 0, len(params))
	for _, p := range params {
		if p.OwnKey != "" {
			keys = append(keys, p.Key)
		}
	}
	return keys, nil
}
