// loader.go — Load invitation documents (JSON) into Content.
package invite

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
)

var (
	// ErrDocument marks a document that is not a JSON object.
	ErrDocument = errors.New("invalid invitation document")
	// ErrContentType marks a document field holding something other than a string.
	ErrContentType = errors.New("invitation field must be a string")
)

// layoutKey names the optional object of per-invitation layout overrides.
const layoutKey = "LAYOUT"

// Document is a parsed invitation document.
type Document struct {
	Content Content

	// Layout holds configuration overrides, keyed like the environment.
	Layout map[string]string

	// Unknown lists top-level keys that are neither content nor LAYOUT, sorted.
	Unknown []string
}

// LoadDocument reads and parses the document at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ParseDocument parses a JSON document. Missing content keys and null values
// read as empty strings.
func ParseDocument(data []byte) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: must be a JSON object: %w", ErrDocument, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: must be a JSON object, got null", ErrDocument)
	}

	doc := &Document{}
	fields := contentFields(&doc.Content)

	for key, value := range raw {
		if dst, ok := fields[key]; ok {
			s, err := decodeString(value)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrContentType, key, err)
			}
			*dst = s
			continue
		}

		if key == layoutKey {
			layout, err := decodeLayout(value)
			if err != nil {
				return nil, err
			}
			doc.Layout = layout
			continue
		}

		doc.Unknown = append(doc.Unknown, key)
	}

	slices.Sort(doc.Unknown)
	return doc, nil
}

// contentFields maps each document key to the Content field it fills.
func contentFields(c *Content) map[string]*string {
	return map[string]*string{
		"INTRO_TEXT":     &c.Intro,
		"TITLE_LINE_1":   &c.TitleLine1,
		"TITLE_LINE_2":   &c.TitleLine2,
		"DETAIL_LINE_1":  &c.DetailLine1,
		"DETAIL_LINE_2":  &c.DetailLine2,
		"DETAIL_LINE_3":  &c.DetailLine3,
		"MESSAGE_LINE_1": &c.MessageLine1,
		"MESSAGE_LINE_2": &c.MessageLine2,
		"SIGN_LINE_1":    &c.SignLine1,
		"SIGN_LINE_2":    &c.SignLine2,
		"RSVP_TEXT":      &c.RSVP,
	}
}

// decodeString accepts a JSON string or null.
func decodeString(value json.RawMessage) (string, error) {
	var s *string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", err
	}
	if s == nil {
		return "", nil
	}
	return *s, nil
}

// decodeLayout reads the LAYOUT object. Values may be strings or numbers;
// numbers keep their literal text. Null entries are dropped.
func decodeLayout(value json.RawMessage) (map[string]string, error) {
	if string(bytes.TrimSpace(value)) == "null" {
		return nil, nil
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(value, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s must be an object: %w", ErrDocument, layoutKey, err)
	}

	layout := make(map[string]string, len(entries))
	for k, v := range entries {
		dec := json.NewDecoder(bytes.NewReader(v))
		dec.UseNumber()

		var val any
		if err := dec.Decode(&val); err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %w", ErrDocument, layoutKey, k, err)
		}

		switch t := val.(type) {
		case nil:
		case string:
			layout[k] = t
		case json.Number:
			layout[k] = t.String()
		default:
			return nil, fmt.Errorf("%w: %s.%s must be a string or number", ErrDocument, layoutKey, k)
		}
	}
	return layout, nil
}
