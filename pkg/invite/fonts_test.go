package invite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xob0t/GoInvite/pkg/config"
)

func TestNewFontManager_Fallback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	garbage := filepath.Join(dir, "broken.ttf")
	require.NoError(t, os.WriteFile(garbage, []byte("not a font"), 0o644))

	for _, path := range []string{"", filepath.Join(dir, "missing.ttf"), garbage} {
		fm, err := NewFontManager(path, discardLogger())
		require.NoError(t, err, path)
		assert.True(t, fm.Fallback(), path)
	}
}

func TestSupportsGlyphs(t *testing.T) {
	t.Parallel()

	face := goFace(t, 34)

	assert.True(t, SupportsGlyphs(face, "A"))
	assert.True(t, SupportsGlyphs(face, "•"))
	assert.False(t, SupportsGlyphs(face, ""), "empty string")
	assert.False(t, SupportsGlyphs(face, " "), "no ink")
	assert.False(t, SupportsGlyphs(face, "❦"), "Go Regular has no floral heart")
	assert.False(t, SupportsGlyphs(nil, "A"))
}

func TestOrnament(t *testing.T) {
	t.Parallel()

	face := goFace(t, 34)

	assert.Equal(t, "•", Ornament(face, config.DividerStyle{HookChar: "❦"}))
	assert.Equal(t, "•", Ornament(face, config.DividerStyle{HookChar: ""}))
	assert.Equal(t, "*", Ornament(face, config.DividerStyle{HookChar: "*"}))
}

func TestLoadFontSet_Sizes(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, map[string]string{"RSVP_SIZE": "40"})
	fs := testFonts(t, cfg)

	assert.Equal(t, 120, fs.Title.Size)
	assert.Equal(t, 52, fs.Body.Size)
	assert.Equal(t, 44, fs.Small.Size)
	assert.Equal(t, 34, fs.Hook.Size)
	assert.Equal(t, 40, fs.RSVP.Size)
}
