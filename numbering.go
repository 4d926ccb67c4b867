package locale

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// numberingSystems holds the numeric CLDR numbering systems that ship without document data.
var numberingSystems = map[string]string{
	"latn":     "0123456789",
	"arab":     "٠١٢٣٤٥٦٧٨٩",
	"arabext":  "۰۱۲۳۴۵۶۷۸۹",
	"beng":     "০১২৩৪৫৬৭৮৯",
	"deva":     "०१२३४५६७८९",
	"fullwide": "０１２３４５６７８９",
	"gujr":     "૦૧૨૩૪૫૬૭૮૯",
	"guru":     "੦੧੨੩੪੫੬੭੮੯",
	"hanidec":  "〇一二三四五六七八九",
	"khmr":     "០១២៣៤៥៦៧៨៩",
	"laoo":     "໐໑໒໓໔໕໖໗໘໙",
	"mymr":     "၀၁၂၃၄၅၆၇၈၉",
	"tamldec":  "௦௧௨௩௪௫௬௭௮௯",
	"thai":     "๐๑๒๓๔๕๖๗๘๙",
	"tibt":     "༠༡༢༣༤༥༦༧༨༩",
}

// DigitTable maps the digit glyphs of a numbering system to and from ASCII digits.
type DigitTable struct {
	System string
	Digits [10]rune
}

func newDigitTable(system, digits string) (DigitTable, error) {
	t := DigitTable{System: system}
	if utf8.RuneCountInString(digits) != 10 {
		return t, fmt.Errorf("locale: numbering system %v: need ten digits, got %q", system, digits)
	}
	i := 0
	for _, r := range digits {
		t.Digits[i] = r
		i++
	}
	return t, nil
}

func (t DigitTable) IsLatin() bool {
	return t.Digits[0] == '0'
}

// Value returns the decimal value of a Latin or native digit.
func (t DigitTable) Value(r rune) (int, bool) {
	if '0' <= r && r <= '9' {
		return int(r - '0'), true
	}
	if t.Digits[0] <= r && r <= t.Digits[9] && t.Digits[9]-t.Digits[0] == 9 {
		return int(r - t.Digits[0]), true
	}
	for i, d := range t.Digits {
		if d == r {
			return i, true
		}
	}
	return 0, false
}

// ToLatin replaces native digits by ASCII digits.
func (t DigitTable) ToLatin(s string) string {
	if t.IsLatin() {
		return s
	}
	return strings.Map(func(r rune) rune {
		if '0' <= r && r <= '9' {
			return r
		} else if d, ok := t.Value(r); ok {
			return rune('0' + d)
		}
		return r
	}, s)
}

// FromLatin replaces ASCII digits by native digits.
func (t DigitTable) FromLatin(s string) string {
	if t.IsLatin() {
		return s
	}
	return strings.Map(func(r rune) rune {
		if '0' <= r && r <= '9' {
			return t.Digits[r-'0']
		}
		return r
	}, s)
}

// Class returns a regular expression character class matching Latin and native digits.
func (t DigitTable) Class() string {
	if t.IsLatin() {
		return "[0-9]"
	}
	sb := strings.Builder{}
	sb.WriteString("[0-9")
	for _, r := range t.Digits {
		sb.WriteRune(r)
	}
	sb.WriteByte(']')
	return sb.String()
}
