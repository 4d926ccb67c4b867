package locale

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestTokenizeDatePattern(t *testing.T) {
	var tests = []struct {
		pattern string
		tokens  []dateToken
	}{
		{"yyyy", []dateToken{{Kind: dateSymbol, Letter: 'y', N: 4}}},
		{"d.M.", []dateToken{
			{Kind: dateSymbol, Letter: 'd', N: 1},
			{Kind: dateOther, Text: "."},
			{Kind: dateSymbol, Letter: 'M', N: 1},
			{Kind: dateOther, Text: "."},
		}},
		{"h 'o''clock' a", []dateToken{
			{Kind: dateSymbol, Letter: 'h', N: 1},
			{Kind: dateOther, Text: " "},
			{Kind: dateLiteral, Text: "o'clock"},
			{Kind: dateOther, Text: " "},
			{Kind: dateSymbol, Letter: 'a', N: 1},
		}},
		{"''HH", []dateToken{
			{Kind: dateLiteral, Text: "'"},
			{Kind: dateSymbol, Letter: 'H', N: 2},
		}},
		{"EEEE، d", []dateToken{
			{Kind: dateSymbol, Letter: 'E', N: 4},
			{Kind: dateOther, Text: "،"},
			{Kind: dateOther, Text: " "},
			{Kind: dateSymbol, Letter: 'd', N: 1},
		}},
		{"'at'", []dateToken{{Kind: dateLiteral, Text: "at"}}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			tokens, err := tokenizeDatePattern(tt.pattern)
			test.Error(t, err)
			test.T(t, tokens, tt.tokens)
		})
	}
}

func TestTokenizeDatePatternError(t *testing.T) {
	var tests = []string{
		"",
		"h 'o''clock",
		"'",
	}
	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			_, err := tokenizeDatePattern(tt)
			test.That(t, errors.Is(err, ErrInvalidPattern), err)
		})
	}
}

func TestDateParserGroups(t *testing.T) {
	var tests = []struct {
		pattern string
		groups  map[DateField]int
	}{
		{"d 'of' MMMM, y", map[DateField]int{FieldDay: 1, FieldMonth: 2, FieldYear: 3}},
		{"y-MM-dd'T'HH:mm:ss.SSS", map[DateField]int{FieldYear: 1, FieldMonth: 2, FieldDay: 3, FieldHour: 4, FieldMinute: 5, FieldSecond: 6, FieldFraction: 7}},
		{"EEEE h a", map[DateField]int{FieldWeekday: 1, FieldHour: 2, FieldDesignator: 3}},
		{"y G", map[DateField]int{FieldYear: 1, FieldEra: 2}},
		{"HH:mm zzzz", map[DateField]int{FieldHour: 1, FieldMinute: 2, FieldTimeZone: 3}},
		{"QQQ y", map[DateField]int{FieldYear: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p, err := NewDateParser(en, tt.pattern)
			test.Error(t, err)
			test.T(t, len(p.fields), len(tt.groups))
			for field, group := range tt.groups {
				test.T(t, p.fields[field].Group, group, field)
			}
		})
	}
}

func TestDateParserZoneGroups(t *testing.T) {
	p, err := NewDateParser(en, "HH:mm zzzz")
	test.Error(t, err)
	test.T(t, p.zone, zoneGroups{PosHour: 4, PosMinute: 5, NegHour: 6, NegMinute: 7})
	test.That(t, p.fields[FieldTimeZone].HourOnly == false)

	p, err = NewDateParser(en, "HH:mm z")
	test.Error(t, err)
	test.T(t, p.zone, zoneGroups{PosHour: 4, PosMinute: 5, NegHour: 6, NegMinute: 7})
	test.That(t, p.fields[FieldTimeZone].HourOnly)
}

func TestDateParserNames(t *testing.T) {
	p, err := NewDateParser(en, "MMM a G")
	test.Error(t, err)
	test.T(t, p.fields[FieldMonth].Names["mar"], 3)
	test.T(t, p.fields[FieldDesignator].Names["pm"], 1)
	test.T(t, p.fields[FieldDesignator].Names["a"], 0)
	test.T(t, p.fields[FieldEra].Names["bce"], 0)
	test.T(t, p.fields[FieldEra].Names["ad"], 1)
	test.That(t, !p.fields[FieldMonth].Numeric)
	test.That(t, !p.hour12)

	p, err = NewDateParser(en, "ccc K")
	test.Error(t, err)
	test.T(t, p.fields[FieldWeekday].Names["tue"], 2)
	test.That(t, p.hour12)
}

func TestCompileDateParserError(t *testing.T) {
	_, err := NewDateParser(en, "h 'o''clock")
	test.That(t, errors.Is(err, ErrInvalidPattern), err)

	loc, err := NewLocale(en.Tag, Document{})
	test.Error(t, err)
	_, err = NewDateParser(loc, "d MMM y")
	test.That(t, errors.Is(err, ErrInvalidPattern), err)
	_, err = CompileDateParser(loc, DateRequest{Type: FormatShort})
	test.That(t, errors.Is(err, ErrUnresolvedFormat), err)

	_, err = NewDateParser(loc, "d/M/y")
	test.Error(t, err)
}

func TestZoneHourFormats(t *testing.T) {
	var tests = []struct {
		hourFormat string
		hourOnly   bool
		pos, neg   string
	}{
		{"+HH:mm;-HH:mm", false, "+HH:mm", "-HH:mm"},
		{"+HH:mm;-HH:mm", true, "+H", "-H"},
		{"+HH.mm;−HH.mm", false, "+HH.mm", "−HH.mm"},
		{"+HHmm", false, "+HHmm", "-HHmm"},
	}
	for _, tt := range tests {
		t.Run(tt.hourFormat, func(t *testing.T) {
			pos, neg := zoneHourFormats(tt.hourFormat, tt.hourOnly)
			test.String(t, pos, tt.pos)
			test.String(t, neg, tt.neg)
		})
	}
}
