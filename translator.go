package locale

import (
	"strconv"

	"github.com/go-playground/locales"
)

// FromTranslator returns a document holding the gregorian month and weekday names of a
// go-playground translator, for cultures without CLDR JSON data at hand.
func FromTranslator(t locales.Translator) Document {
	months := func(names []string) map[string]any {
		m := make(map[string]any, len(names))
		for i, name := range names {
			if name != "" {
				m[strconv.Itoa(i+1)] = name
			}
		}
		return m
	}
	days := func(names []string) map[string]any {
		m := make(map[string]any, len(names))
		for i, name := range names {
			if i < len(dayKeys) && name != "" {
				m[dayKeys[i]] = name
			}
		}
		return m
	}

	monthWidths := map[string]any{
		"abbreviated": months(t.MonthsAbbreviated()),
		"narrow":      months(t.MonthsNarrow()),
		"wide":        months(t.MonthsWide()),
	}
	dayWidths := map[string]any{
		"abbreviated": days(t.WeekdaysAbbreviated()),
		"narrow":      days(t.WeekdaysNarrow()),
		"short":       days(t.WeekdaysShort()),
		"wide":        days(t.WeekdaysWide()),
	}
	return Document{
		"identity": map[string]any{
			"language": t.Locale(),
		},
		"dates": map[string]any{
			"calendars": map[string]any{
				"gregorian": map[string]any{
					"months": map[string]any{
						"format":      monthWidths,
						"stand-alone": monthWidths,
					},
					"days": map[string]any{
						"format":      dayWidths,
						"stand-alone": dayWidths,
					},
				},
			},
		},
	}
}
