package locale

import (
	"fmt"
	"time"
)

// DateFormatter is a fmt.Formatter that formats Time with a layout of Locale: a format length
// (short, medium, long, full), a skeleton such as yMMMd, or a literal pattern. An empty Layout uses
// skeleton yMd.
type DateFormatter struct {
	Locale *Locale
	Time   time.Time
	Layout string
}

func (f DateFormatter) Format(state fmt.State, verb rune) {
	format, err := CompileDateFormat(f.Locale, ParseDateLayout(f.Layout))
	if err != nil {
		fmt.Fprintf(state, "%%!%c(%v)", verb, err)
		return
	}
	state.Write(format.AppendFormat([]byte{}, f.Time))
}
