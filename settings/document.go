// Package settings holds the engine settings document: its defaults, its
// on-disk form, and how it is applied to a running engine.
package settings

import (
	"errors"
	"fmt"
)

// Canonical setting values. Anything other than True reads as off.
const (
	True  = "true"
	False = "false"
)

var (
	// ErrInvalidDocument is returned when a settings file does not have the
	// expected structure.
	ErrInvalidDocument = errors.New("invalid settings document")

	// ErrDuplicateKey is returned by Validate when a key appears twice.
	ErrDuplicateKey = errors.New("duplicate setting key")
)

// Document is the full settings model. Category and setting order is the
// display order and survives a save/load round trip.
type Document struct {
	Categories []Category `json:"categories"`
}

// Category groups settings under a display name.
type Category struct {
	Name     string    `json:"name"`
	Settings []Setting `json:"settings"`
}

// Setting is a single key/value pair. Keys are unique across the document.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Enabled reports whether the setting is on.
func (s Setting) Enabled() bool {
	return s.Value == True
}

// FormatBool returns the canonical value for b.
func FormatBool(b bool) string {
	if b {
		return True
	}
	return False
}

// Default builds the default document from the key table.
func Default() *Document {
	doc := &Document{Categories: make([]Category, 0, len(categoryOrder))}
	for _, name := range categoryOrder {
		cat := Category{Name: name, Settings: []Setting{}}
		for _, k := range Keys() {
			if k.Category() == name {
				cat.Settings = append(cat.Settings, Setting{Key: k.String(), Value: FormatBool(k.Default())})
			}
		}
		doc.Categories = append(doc.Categories, cat)
	}
	return doc
}

// Get returns the value of the first setting named key.
func (d *Document) Get(key string) (string, bool) {
	for _, c := range d.Categories {
		for _, s := range c.Settings {
			if s.Key == key {
				return s.Value, true
			}
		}
	}
	return "", false
}

// Set overwrites the value of the first setting named key. It reports
// false, leaving the document untouched, when no such key exists.
func (d *Document) Set(key, value string) bool {
	for i := range d.Categories {
		settings := d.Categories[i].Settings
		for j := range settings {
			if settings[j].Key == key {
				settings[j].Value = value
				return true
			}
		}
	}
	return false
}

// Len returns the number of settings across all categories.
func (d *Document) Len() int {
	n := 0
	for _, c := range d.Categories {
		n += len(c.Settings)
	}
	return n
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{Categories: make([]Category, len(d.Categories))}
	for i, c := range d.Categories {
		out.Categories[i] = Category{
			Name:     c.Name,
			Settings: append([]Setting(nil), c.Settings...),
		}
		if out.Categories[i].Settings == nil {
			out.Categories[i].Settings = []Setting{}
		}
	}
	return out
}

// Validate checks structure and key uniqueness.
func (d *Document) Validate() error {
	if d.Categories == nil {
		return fmt.Errorf("%w: missing categories", ErrInvalidDocument)
	}
	// Structure first, so a duplicate never masks a malformed category.
	for _, c := range d.Categories {
		if c.Settings == nil {
			return fmt.Errorf("%w: category %q has no settings list", ErrInvalidDocument, c.Name)
		}
	}
	seen := make(map[string]string, d.Len())
	for _, c := range d.Categories {
		for _, s := range c.Settings {
			if prev, ok := seen[s.Key]; ok {
				return fmt.Errorf("%w: %q in %q and %q", ErrDuplicateKey, s.Key, prev, c.Name)
			}
			seen[s.Key] = c.Name
		}
	}
	return nil
}
