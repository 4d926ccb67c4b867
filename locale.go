package locale

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Printer struct {
	*message.Printer

	Locale   *Locale
	Location *time.Location
}

func NewPrinter(loc *Locale, tz *time.Location) *Printer {
	if tz == nil {
		tz = time.UTC
	}
	return &Printer{
		Printer: message.NewPrinter(loc.Tag),

		Locale:   loc,
		Location: tz,
	}
}

// T formats its arguments: a format string with arguments, a time with a layout (see
// ParseDateLayout), a number or Amount with an optional number format such as "C2" or "#,##0.0", or
// a region.
func (p *Printer) T(a ...any) string {
	if len(a) == 0 {
		return ""
	} else if s, ok := a[0].(string); ok {
		return p.Sprintf(s, a[1:]...)
	} else if len(a) == 2 {
		if layout, ok := a[1].(string); ok {
			if t, ok := a[0].(time.Time); ok {
				return p.Sprintf("%v", DateFormatter{p.Locale, t.In(p.Location), layout})
			} else if amount, ok := a[0].(Amount); ok {
				return p.Sprintf("%v", AmountFormatter{p.Locale, amount, layout})
			} else if num, ok := toFloat(a[0]); ok {
				return p.Sprintf("%v", NumberFormatter{p.Locale, num, layout})
			}
		}
	} else if len(a) == 1 {
		if t, ok := a[0].(time.Time); ok {
			return p.Sprintf("%v", DateFormatter{p.Locale, t.In(p.Location), ""})
		} else if amount, ok := a[0].(Amount); ok {
			return p.Sprintf("%v", AmountFormatter{p.Locale, amount, ""})
		} else if region, ok := a[0].(language.Region); ok {
			return p.Sprintf("%v", RegionFormatter{p.Locale, region})
		} else if num, ok := toFloat(a[0]); ok {
			return p.Sprintf("%v", NumberFormatter{p.Locale, num, ""})
		}
	}
	return p.Sprint(a...)
}

func toFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case int:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
