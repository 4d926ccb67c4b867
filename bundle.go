package locale

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

func ToLocaleName(tag language.Tag) string {
	if tag == language.Und || tag.IsRoot() {
		return "root"
	}
	return tag.String()
}

// Bundle holds culture documents and resolves tags to locales through the parent chain, so that
// es-CL falls back to es-419, es and finally root.
type Bundle struct {
	mu   sync.RWMutex
	docs map[string]Document
}

func NewBundle() *Bundle {
	return &Bundle{
		docs: map[string]Document{},
	}
}

// Add registers the document of a culture, e.g. "en", "ar-QA" or "root".
func (b *Bundle) Add(name string, doc Document) error {
	key := "root"
	if name != "root" {
		tag, err := language.Parse(name)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnknownCulture, name)
		}
		key = ToLocaleName(tag)
	}
	b.mu.Lock()
	b.docs[key] = doc
	b.mu.Unlock()
	return nil
}

// LoadDir registers every .yaml, .yml and .json document in dir under its base file name.
func (b *Bundle) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || ext != ".yaml" && ext != ".yml" && ext != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		doc, err := DecodeDocument(data)
		if err != nil {
			return fmt.Errorf("%v: %w", entry.Name(), err)
		}
		if err := b.Add(strings.TrimSuffix(entry.Name(), ext), doc); err != nil {
			return err
		}
	}
	return nil
}

// Locale returns the locale of the closest registered ancestor of tag.
func (b *Bundle) Locale(tag language.Tag) (*Locale, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	loc := ToLocaleName(tag)
	doc, ok := b.docs[loc]
	for !ok && loc != "root" {
		loc = ToLocaleName(language.MustParse(loc).Parent())
		doc, ok = b.docs[loc]
	}
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCulture, tag)
	}
	return NewLocale(tag, doc)
}

// LocaleByName parses a culture name and returns its locale.
func (b *Bundle) LocaleByName(name string) (*Locale, error) {
	tag, err := language.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCulture, name)
	}
	return b.Locale(tag)
}
