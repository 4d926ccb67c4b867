package locale

import (
	"fmt"

	"golang.org/x/text/language"
)

// TerritoryName returns the display name of a region, or its code when the locale has none.
func (l *Locale) TerritoryName(region language.Region) string {
	code := region.String()
	if name, ok := l.doc.String("localeDisplayNames.territories." + code); ok && name != "" {
		return name
	}
	return code
}

// RegionFormatter is a fmt.Formatter that writes the display name of Region in Locale. The unknown
// region ZZ writes nothing.
type RegionFormatter struct {
	Locale *Locale
	language.Region
}

func (f RegionFormatter) Format(state fmt.State, verb rune) {
	if f.Region.String() != "ZZ" {
		state.Write([]byte(f.Locale.TerritoryName(f.Region)))
	}
}
