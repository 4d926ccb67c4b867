package locale

import (
	"fmt"
)

// NumberFormatter is a fmt.Formatter that formats Num with a number skeleton or custom pattern of
// Locale. An empty Layout uses N.
type NumberFormatter struct {
	Locale *Locale
	Num    float64
	Layout string
}

func (f NumberFormatter) Format(state fmt.State, verb rune) {
	format, err := CompileNumberFormat(f.Locale, NumberOptions{Format: f.Layout})
	if err != nil {
		fmt.Fprintf(state, "%%!%c(%v)", verb, err)
		return
	}
	state.Write([]byte(format.Format(f.Num)))
}
