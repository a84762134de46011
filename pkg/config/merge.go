// merge.go — Overlay per-invitation overrides onto the shared environment.
package config

import "maps"

// Merge returns a copy of base with every non-empty value from over applied.
// Neither input is modified.
func Merge(base, over map[string]string) map[string]string {
	result := make(map[string]string, len(base)+len(over))
	maps.Copy(result, base)

	for k, v := range over {
		if v == "" {
			continue
		}
		result[k] = v
	}
	return result
}
