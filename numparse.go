package locale

import (
	"math"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// numberResidueRegexp splits normalized text into leading decoration, integer part, fraction,
// exponent and trailing decoration.
var numberResidueRegexp = regexp2.MustCompile(`^([^0-9]*)(([0-9,]*[0-9]+)(\.[0-9]+)?)([Ee][+-]?[0-9]+)?([^0-9]*)$`, regexp2.None)

// Parse parses a number formatted with the locale's symbols and either branch of the format. It
// returns false for blank text and NaN for text that is not a number.
func (f *NumberFormat) Parse(text string) (float64, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, false
	} else if trimmed == f.symbols.NaN || trimmed == "NaN" {
		return math.NaN(), true
	}

	s := f.normalizer.Replace(text)
	if strings.Contains(text, f.symbols.Infinity) {
		if strings.Contains(s, "-") {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	m, err := numberResidueRegexp.FindStringMatch(leadingZero(s))
	if err != nil || m == nil {
		return math.NaN(), true
	}
	lead, _ := groupString(m, 1)
	integer, _ := groupString(m, 3)
	fraction, _ := groupString(m, 4)
	exponent, _ := groupString(m, 5)
	end, _ := groupString(m, 6)

	num := strings.ReplaceAll(integer, ",", "") + fraction + exponent
	v, err := strconv.ParseFloat(num, 64)
	if err != nil && !math.IsInf(v, 0) {
		return math.NaN(), true
	}

	branch := &f.Positive
	if f.isNegative(lead, end) {
		branch = &f.Negative
	}
	if f.isSkeleton && 0 <= f.skeleton.Digits && !math.IsInf(v, 0) {
		// round the number as displayed, before scaling percentages
		v, _ = strconv.ParseFloat(toFixed(v, f.skeleton.Digits), 64)
	}
	if branch.IsPercent {
		v /= 100
	} else if branch.IsPerMille {
		v /= 1000
	}
	if branch == &f.Negative {
		v = -v
	}
	return v, true
}

// leadingZero inserts a zero before a decimal point that starts the digits, so that ".5" and "-.5"
// read as "0.5" and "-0.5".
func leadingZero(s string) string {
	for i := 0; i+1 < len(s); i++ {
		if '0' <= s[i] && s[i] <= '9' {
			return s
		} else if s[i] == '.' && '0' <= s[i+1] && s[i+1] <= '9' {
			return s[:i] + "0" + s[i:]
		}
	}
	return s
}

// isNegative reports whether the decorations around the number hold a minus sign or match those of
// the negative branch while differing from the positive branch.
func (f *NumberFormat) isNegative(lead, end string) bool {
	if strings.Contains(lead, "-") || strings.Contains(end, "-") && !strings.Contains(f.Positive.parseSuffix, "-") {
		return true
	}

	neg, pos := &f.Negative, &f.Positive
	if neg.parsePrefix == "" && neg.parseSuffix == "" || neg.parsePrefix == pos.parsePrefix && neg.parseSuffix == pos.parseSuffix {
		return false
	}
	return strings.Contains(lead, neg.parsePrefix) && strings.Contains(end, neg.parseSuffix)
}
