package locale

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tdewolff/test"
	"golang.org/x/text/language"
)

func TestBundleLocale(t *testing.T) {
	var tests = []struct {
		name      string
		language  string
		currency  string
		numbering string
		firstDay  time.Weekday
	}{
		{"en", "en", "USD", "latn", time.Sunday},
		{"en-US", "en", "USD", "latn", time.Sunday},
		{"en-GB", "en", "GBP", "latn", time.Monday},
		{"de", "de", "EUR", "latn", time.Monday},
		{"de-CH", "de", "CHF", "latn", time.Monday},
		{"ar-QA", "ar", "QAR", "arab", time.Saturday},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := bundle.LocaleByName(tt.name)
			test.Error(t, err)
			test.String(t, loc.Tag.String(), tt.name)
			s, _ := loc.Document().String("identity.language")
			test.String(t, s, tt.language)
			test.String(t, loc.Currency, tt.currency)
			test.String(t, loc.NumberingSystem, tt.numbering)
			test.T(t, loc.FirstDayOfWeek(), tt.firstDay)
		})
	}
}

func TestBundleUnknownCulture(t *testing.T) {
	_, err := bundle.LocaleByName("fr")
	test.That(t, errors.Is(err, ErrUnknownCulture), err)
	_, err = bundle.LocaleByName("not a culture")
	test.That(t, errors.Is(err, ErrUnknownCulture), err)
	_, err = bundle.Locale(language.Und)
	test.That(t, errors.Is(err, ErrUnknownCulture), err)

	b := NewBundle()
	test.Error(t, b.Add("root", Document{"identity": map[string]any{"language": "root"}}))
	loc, err := b.LocaleByName("fr-CA")
	test.Error(t, err)
	s, _ := loc.Document().String("identity.language")
	test.String(t, s, "root")
}

func TestBundleLoadDir(t *testing.T) {
	dir := t.TempDir()
	test.Error(t, os.WriteFile(filepath.Join(dir, "nl.json"), []byte(`{"main": {"nl": {"identity": {"language": "nl"}}}}`), 0o644))
	test.Error(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# not a document"), 0o644))
	test.Error(t, os.Mkdir(filepath.Join(dir, "sub.yaml"), 0o755))

	b := NewBundle()
	test.Error(t, b.LoadDir(dir))
	loc, err := b.LocaleByName("nl-BE")
	test.Error(t, err)
	test.String(t, loc.Currency, "EUR")

	test.Error(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("a: ["), 0o644))
	test.That(t, b.LoadDir(dir) != nil)
	test.That(t, b.LoadDir(filepath.Join(dir, "missing")) != nil)
}

func TestLocaleWithCurrency(t *testing.T) {
	loc, err := en.WithCurrency("eur")
	test.Error(t, err)
	test.String(t, loc.Currency, "EUR")
	test.String(t, en.Currency, "USD")
	test.String(t, loc.CurrencySymbol(loc.Currency), "€")
	test.String(t, loc.CurrencySymbol("CHF"), "CHF")

	_, err = en.WithCurrency("XYZW")
	test.That(t, errors.Is(err, ErrInvalidCurrency), err)
}

func TestLocaleNames(t *testing.T) {
	test.T(t, en.Months("format", "abbreviated")[2], "Mar")
	test.T(t, en.Months("stand-alone", "wide")[2], "March")
	test.T(t, de.Months("stand-alone", "abbreviated")[2], "Mär")
	test.T(t, de.Months("stand-alone", "wide")[2], "März")
	test.T(t, en.Days("format", "wide")[2], "Tuesday")
	test.T(t, en.DayPeriods("abbreviated"), [2]string{"AM", "PM"})
	test.T(t, en.Eras("abbreviated")["0"], "BC")
	test.T(t, arQA.TimeZoneNames().GMTZeroFormat, "غرينتش")
	test.T(t, arQA.Symbols().Decimal, "٫")
	test.T(t, arQA.Digits().FromLatin("2017"), "٢٠١٧")
}

func TestNumberingSystem(t *testing.T) {
	var tests = []struct {
		system string
		latin  string
		native string
	}{
		{"latn", "0123456789", "0123456789"},
		{"arab", "2017", "٢٠١٧"},
		{"deva", "1.5", "१.५"},
		{"hanidec", "2019", "二〇一九"},
		{"thai", "42", "๔๒"},
	}
	for _, tt := range tests {
		t.Run(tt.system, func(t *testing.T) {
			digits, err := newDigitTable(tt.system, numberingSystems[tt.system])
			test.Error(t, err)
			test.String(t, digits.FromLatin(tt.latin), tt.native)
			test.String(t, digits.ToLatin(tt.native), tt.latin)
			test.String(t, digits.ToLatin(tt.latin), tt.latin)
		})
	}

	_, err := newDigitTable("short", "0123")
	test.That(t, err != nil)
}
