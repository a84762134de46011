// validator.go — Validate an invitation document against the known keys.
package invite

import (
	"fmt"
	"maps"
	"slices"

	"github.com/xob0t/GoInvite/pkg/config"
)

// overridableKeys lists the configuration keys a document's LAYOUT may set:
// page geometry, divider styling and fonts.
func overridableKeys() ([]string, error) {
	layout, err := config.Keys(&config.Layout{})
	if err != nil {
		return nil, err
	}
	fonts, err := config.Keys(&config.Fonts{})
	if err != nil {
		return nil, err
	}
	return append(layout, fonts...), nil
}

// ValidateDocument checks that doc only uses keys the renderer understands.
// Returns warnings (never fatal errors); unknown keys are ignored when rendering.
func ValidateDocument(doc *Document) []string {
	if doc == nil {
		return nil
	}

	var warnings []string
	for _, key := range doc.Unknown {
		warnings = append(warnings, fmt.Sprintf("document has unknown key %q, ignored", key))
	}

	if len(doc.Layout) == 0 {
		return warnings
	}

	known, err := overridableKeys()
	if err != nil {
		return append(warnings, err.Error())
	}
	for _, k := range slices.Sorted(maps.Keys(doc.Layout)) {
		if !slices.Contains(known, k) {
			warnings = append(warnings, fmt.Sprintf("%s has unknown key %q, ignored", layoutKey, k))
		}
	}
	return warnings
}

// Overrides returns the LAYOUT entries that name overridable configuration keys.
func (d *Document) Overrides() map[string]string {
	if len(d.Layout) == 0 {
		return nil
	}

	known, err := overridableKeys()
	if err != nil {
		return nil
	}
	out := make(map[string]string, len(d.Layout))
	for k, v := range d.Layout {
		if slices.Contains(known, k) {
			out[k] = v
		}
	}
	return out
}
