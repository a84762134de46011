package invite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument([]byte(`{
		"TITLE_LINE_1": "Jane",
		"TITLE_LINE_2": null,
		"DETAIL_LINE_2": "Sunday",
		"RSVP_TEXT": "RSVP",
		"THEME": "floral",
		"COMMENT": "draft",
		"LAYOUT": {"Y_TITLE": 950, "LINE_COLOR": "1,2,3", "HOOK_GAP": null}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Jane", doc.Content.TitleLine1)
	assert.Empty(t, doc.Content.TitleLine2)
	assert.Equal(t, "Sunday", doc.Content.DetailLine2)
	assert.Equal(t, "RSVP", doc.Content.RSVP)
	assert.Empty(t, doc.Content.Intro, "missing key reads as empty")

	assert.Equal(t, map[string]string{"Y_TITLE": "950", "LINE_COLOR": "1,2,3"}, doc.Layout)
	assert.Equal(t, []string{"COMMENT", "THEME"}, doc.Unknown)
}

func TestParseDocument_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want error
	}{
		{"array", `["a"]`, ErrDocument},
		{"null", `null`, ErrDocument},
		{"string", `"text"`, ErrDocument},
		{"syntax", `{"TITLE_LINE_1": `, ErrDocument},
		{"number field", `{"TITLE_LINE_1": 5}`, ErrContentType},
		{"object field", `{"RSVP_TEXT": {"a": 1}}`, ErrContentType},
		{"layout not object", `{"LAYOUT": "big"}`, ErrDocument},
		{"layout bool", `{"LAYOUT": {"DPI": true}}`, ErrDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseDocument([]byte(tt.data))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseDocument_ContentTypeNamesField(t *testing.T) {
	t.Parallel()

	_, err := ParseDocument([]byte(`{"SIGN_LINE_2": ["x"]}`))
	require.ErrorIs(t, err, ErrContentType)
	assert.Contains(t, err.Error(), "SIGN_LINE_2")
}

func TestLoadDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "invitation.json")
	_, doc := GetExampleFiles()
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	got, err := LoadDocument(path)
	require.NoError(t, err)
	assert.NotEmpty(t, got.Content.TitleLine1)
	assert.Empty(t, ValidateDocument(got))

	_, err = LoadDocument(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateDocument(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Unknown: []string{"THEME"},
		Layout: map[string]string{
			"Y_TITLE":                "950",
			"SMALL_DIVIDER_LINE_1_Y": "1100",
			"FONT_BODY":              "body.ttf",
			"TEMPLATE_IMAGE":         "other.png",
			"SENDER":                 "me@example.com",
		},
	}

	warnings := ValidateDocument(doc)
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "THEME")
	assert.Contains(t, warnings[1], "SENDER")
	assert.Contains(t, warnings[2], "TEMPLATE_IMAGE")

	assert.Equal(t, map[string]string{
		"Y_TITLE":                "950",
		"SMALL_DIVIDER_LINE_1_Y": "1100",
		"FONT_BODY":              "body.ttf",
	}, doc.Overrides())

	assert.Nil(t, ValidateDocument(nil))
}

func TestContentBlocks(t *testing.T) {
	t.Parallel()

	c := Content{TitleLine2: "Doe", DetailLine1: "Sunday", SignLine1: "", SignLine2: ""}

	doc := c.Blocks(SuppressEmpty)
	assert.Equal(t, "Doe", doc.Title)
	assert.Equal(t, "Sunday", doc.Details)
	assert.Empty(t, doc.Sign)
	assert.Empty(t, doc.Message)

	legacy := c.Blocks(KeepBlank)
	assert.Equal(t, "\nDoe", legacy.Title)
	assert.Equal(t, "Sunday\n\n", legacy.Details)
	assert.Equal(t, "\n", legacy.Sign)
}
