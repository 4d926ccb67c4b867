package locale

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// FormatType is a CLDR format length.
type FormatType string

const (
	FormatShort  FormatType = "short"
	FormatMedium FormatType = "medium"
	FormatLong   FormatType = "long"
	FormatFull   FormatType = "full"
)

type DateCategory int

const (
	CategoryDate DateCategory = iota
	CategoryTime
	CategoryDateTime
)

func (c DateCategory) String() string {
	switch c {
	case CategoryDate:
		return "date"
	case CategoryTime:
		return "time"
	case CategoryDateTime:
		return "dateTime"
	}
	return "DateCategory(" + strconv.Itoa(int(c)) + ")"
}

// DateRequest selects a date pattern by skeleton (e.g. "yMMMd"), by format length and category, or
// literally. The zero value requests skeleton yMd.
type DateRequest struct {
	Skeleton string
	Type     FormatType
	Category DateCategory
	Pattern  string
}

func (req DateRequest) String() string {
	if req.Pattern != "" {
		return "pattern " + strconv.Quote(req.Pattern)
	} else if req.Type != "" {
		return req.Category.String() + " " + string(req.Type)
	} else if req.Skeleton != "" {
		return "skeleton " + req.Skeleton
	}
	return "skeleton yMd"
}

// ParseDateLayout interprets a layout string: a format length (short, medium, long, full) selects
// the date format, a Go layout such as "2006-01-02" is translated, a run of ASCII letters is a
// skeleton and anything else is a literal pattern.
func ParseDateLayout(layout string) DateRequest {
	switch FormatType(layout) {
	case FormatShort, FormatMedium, FormatLong, FormatFull:
		return DateRequest{Type: FormatType(layout), Category: CategoryDate}
	}
	if isGoLayout(layout) {
		return DateRequest{Pattern: goLayoutToPattern(layout)}
	}
	for i := 0; i < len(layout); i++ {
		if c := layout[i]; (c < 'a' || 'z' < c) && (c < 'A' || 'Z' < c) {
			return DateRequest{Pattern: layout}
		}
	}
	return DateRequest{Skeleton: layout}
}

// ResolveDatePattern turns a date request into a CLDR date pattern of the locale's calendar.
func ResolveDatePattern(loc *Locale, req DateRequest) (string, error) {
	set := 0
	for _, s := range []string{req.Skeleton, string(req.Type), req.Pattern} {
		if s != "" {
			set++
		}
	}
	if 1 < set {
		return "", fmt.Errorf("%w: %v: more than one of skeleton, type and pattern", ErrUnresolvedFormat, req)
	}

	if req.Pattern != "" {
		return req.Pattern, nil
	} else if req.Type != "" {
		switch req.Category {
		case CategoryDate:
			return loc.lengthPattern("dateFormats", req.Type)
		case CategoryTime:
			return loc.lengthPattern("timeFormats", req.Type)
		case CategoryDateTime:
			datePattern, err := loc.lengthPattern("dateFormats", req.Type)
			if err != nil {
				return "", err
			}
			timePattern, err := loc.lengthPattern("timeFormats", req.Type)
			if err != nil {
				return "", err
			}
			glue, err := loc.lengthPattern("dateTimeFormats", req.Type)
			if err != nil {
				return "", err
			}
			return combineDateTime(glue, datePattern, timePattern), nil
		}
		return "", fmt.Errorf("%w: %v", ErrUnresolvedFormat, req)
	}

	skeleton := req.Skeleton
	if skeleton == "" {
		skeleton = "yMd"
	}
	if pattern, ok := loc.availableFormat(skeleton); ok {
		return pattern, nil
	}

	// split skeletons such as yMMMdHm into a date and a time part
	dateSkeleton, timeSkeleton := splitSkeleton(skeleton)
	if dateSkeleton != "" && timeSkeleton != "" {
		datePattern, ok0 := loc.availableFormat(dateSkeleton)
		timePattern, ok1 := loc.availableFormat(timeSkeleton)
		if ok0 && ok1 {
			length := FormatShort
			if strings.Contains(dateSkeleton, "MMMM") {
				length = FormatLong
				if strings.ContainsAny(dateSkeleton, "Ec") {
					length = FormatFull
				}
			} else if strings.Contains(dateSkeleton, "MMM") {
				length = FormatMedium
			}
			if glue, err := loc.lengthPattern("dateTimeFormats", length); err == nil {
				return combineDateTime(glue, datePattern, timePattern), nil
			}
		}
	}
	return "", fmt.Errorf("%w: skeleton %v", ErrUnresolvedFormat, skeleton)
}

func (l *Locale) lengthPattern(formats string, length FormatType) (string, error) {
	if pattern, ok := l.doc.String(l.calendarPath(formats + "." + string(length))); ok && pattern != "" {
		return pattern, nil
	}
	return "", fmt.Errorf("%w: %v.%v", ErrUnresolvedFormat, formats, length)
}

func (l *Locale) availableFormat(skeleton string) (string, bool) {
	pattern, ok := l.doc.String(l.calendarPath("dateTimeFormats.availableFormats." + skeleton))
	return pattern, ok && pattern != ""
}

func combineDateTime(glue, datePattern, timePattern string) string {
	return strings.NewReplacer("{1}", datePattern, "{0}", timePattern).Replace(glue)
}

func splitSkeleton(skeleton string) (string, string) {
	var dateSkeleton, timeSkeleton strings.Builder
	for i := 0; i < len(skeleton); i++ {
		if strings.IndexByte("GyYuUrQqMLlwWdDFgEec", skeleton[i]) != -1 {
			dateSkeleton.WriteByte(skeleton[i])
		} else {
			timeSkeleton.WriteByte(skeleton[i])
		}
	}
	return dateSkeleton.String(), timeSkeleton.String()
}

// NumberKind selects a family of CLDR number patterns.
type NumberKind string

const (
	KindDecimal    NumberKind = "decimal"
	KindPercent    NumberKind = "percent"
	KindCurrency   NumberKind = "currency"
	KindScientific NumberKind = "scientific"
)

var numberSkeletonRegexp = regexp2.MustCompile(`^[ncpae]([0-1]?[0-9]|20)?$`, regexp2.IgnoreCase)

// NumberSkeleton is a parsed number skeleton such as N2, C, P0 or A2.
type NumberSkeleton struct {
	Kind       NumberKind
	Accounting bool
	Digits     int // fraction digits, -1 if not given
}

// ParseNumberSkeleton parses a number skeleton: a letter N (decimal), C (currency), P (percent),
// A (accounting currency) or E (scientific), optionally followed by 0 to 20 fraction digits.
func ParseNumberSkeleton(s string) (NumberSkeleton, bool) {
	if ok, err := numberSkeletonRegexp.MatchString(s); err != nil || !ok {
		return NumberSkeleton{}, false
	}

	skeleton := NumberSkeleton{Digits: -1}
	switch s[0] {
	case 'n', 'N':
		skeleton.Kind = KindDecimal
	case 'c', 'C':
		skeleton.Kind = KindCurrency
	case 'p', 'P':
		skeleton.Kind = KindPercent
	case 'a', 'A':
		skeleton.Kind = KindCurrency
		skeleton.Accounting = true
	case 'e', 'E':
		skeleton.Kind = KindScientific
	}
	if 1 < len(s) {
		skeleton.Digits, _ = strconv.Atoi(s[1:])
	}
	return skeleton, true
}

// ResolveNumberPattern returns the CLDR pattern used for a number format: the locale's pattern for
// skeletons or the format itself for custom patterns.
func ResolveNumberPattern(loc *Locale, format string) (string, error) {
	if format == "" {
		format = "N"
	}
	skeleton, ok := ParseNumberSkeleton(format)
	if !ok {
		return format, nil
	}
	pattern, ok := loc.NumberPattern(skeleton.Kind, skeleton.Accounting)
	if !ok && skeleton.Accounting {
		pattern, ok = loc.NumberPattern(skeleton.Kind, false)
	}
	if !ok {
		return "", fmt.Errorf("%w: %v patterns of %v", ErrUnresolvedFormat, skeleton.Kind, loc.Tag)
	}
	return pattern, nil
}
