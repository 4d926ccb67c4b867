package locale

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the CLDR data tree of one culture, as found under main.{culture} in the CLDR JSON
// distribution. Values are maps, strings or numbers.
type Document map[string]any

// DecodeDocument decodes CLDR JSON or YAML data. A root of the form main: {culture: ...} is unwrapped.
func DecodeDocument(b []byte) (Document, error) {
	var root map[string]any
	if err := yaml.Unmarshal(b, &root); err != nil {
		return nil, fmt.Errorf("locale: decode document: %w", err)
	} else if root == nil {
		return nil, fmt.Errorf("locale: decode document: empty")
	}

	if main, ok := asMap(root["main"]); ok && len(main) == 1 {
		for _, v := range main {
			if culture, ok := asMap(v); ok {
				return Document(culture), nil
			}
		}
	}
	return Document(root), nil
}

// Lookup walks a dotted path such as "dates.calendars.gregorian".
func (d Document) Lookup(path string) (any, bool) {
	var v any = map[string]any(d)
	for _, key := range strings.Split(path, ".") {
		m, ok := asMap(v)
		if !ok {
			return nil, false
		}
		if v, ok = m[key]; !ok {
			return nil, false
		}
	}
	return v, true
}

func (d Document) String(path string) (string, bool) {
	v, ok := d.Lookup(path)
	if !ok {
		return "", false
	}
	return asString(v)
}

func (d Document) Map(path string) (map[string]any, bool) {
	v, ok := d.Lookup(path)
	if !ok {
		return nil, false
	}
	return asMap(v)
}

// Strings returns the string leafs of the map at path.
func (d Document) Strings(path string) map[string]string {
	m, ok := d.Map(path)
	if !ok {
		return nil
	}
	strs := make(map[string]string, len(m))
	for k, v := range m {
		if s, ok := asString(v); ok {
			strs[k] = s
		}
	}
	return strs
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Document:
		return m, true
	case map[any]any:
		n := make(map[string]any, len(m))
		for k, v := range m {
			n[fmt.Sprint(k)] = v
		}
		return n, true
	}
	return nil, false
}

func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(s), true
	}
	return "", false
}
