package locale

import (
	"log/slog"
	"time"
)

// Internationalization formats and parses dates and numbers for a default culture and currency.
type Internationalization struct {
	loc      *Locale
	location *time.Location
	clock    func() time.Time
	logger   *slog.Logger
}

// New returns an Internationalization for the culture selected by the options, resolved in bundle.
func New(bundle *Bundle, opts ...Option) (*Internationalization, error) {
	o := options{
		culture:  "en",
		location: time.UTC,
		clock:    time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	loc, err := bundle.LocaleByName(o.culture)
	if err != nil {
		return nil, err
	}
	if o.currency != "" {
		if loc, err = loc.WithCurrency(o.currency); err != nil {
			return nil, err
		}
	}
	return &Internationalization{
		loc:      loc,
		location: o.location,
		clock:    o.clock,
		logger:   o.logger,
	}, nil
}

func (i *Internationalization) Locale() *Locale {
	return i.loc
}

func (i *Internationalization) Location() *time.Location {
	return i.location
}

func (i *Internationalization) DatePattern(req DateRequest) (string, error) {
	return ResolveDatePattern(i.loc, req)
}

func (i *Internationalization) NumberPattern(format string) (string, error) {
	return ResolveNumberPattern(i.loc, format)
}

func (i *Internationalization) DateFormat(req DateRequest) (*DateFormat, error) {
	return compileDateFormat(i.loc, req, i.logger)
}

func (i *Internationalization) DateParser(req DateRequest) (*DateParser, error) {
	return compileDateParser(i.loc, req, i.logger)
}

func (i *Internationalization) NumberFormat(opts NumberOptions) (*NumberFormat, error) {
	return compileNumberFormat(i.loc, opts, i.logger)
}

// FormatDate formats t in the configured location.
func (i *Internationalization) FormatDate(t time.Time, req DateRequest) (string, error) {
	f, err := i.DateFormat(req)
	if err != nil {
		return "", err
	}
	return f.Format(t.In(i.location)), nil
}

// ParseDate parses text with the current time in the configured location as baseline.
func (i *Internationalization) ParseDate(text string, req DateRequest) (time.Time, error) {
	p, err := i.DateParser(req)
	if err != nil {
		return time.Time{}, err
	}
	return p.ParseFrom(text, i.clock().In(i.location))
}

func (i *Internationalization) FormatNumber(v float64, opts NumberOptions) (string, error) {
	f, err := i.NumberFormat(opts)
	if err != nil {
		return "", err
	}
	return f.Format(v), nil
}

// ParseNumber parses text, see NumberFormat.Parse.
func (i *Internationalization) ParseNumber(text string, opts NumberOptions) (float64, bool, error) {
	f, err := i.NumberFormat(opts)
	if err != nil {
		return 0, false, err
	}
	v, ok := f.Parse(text)
	return v, ok, nil
}

func (i *Internationalization) FirstDayOfWeek() time.Weekday {
	return i.loc.FirstDayOfWeek()
}

// Printer returns a message printer for the culture in the configured location.
func (i *Internationalization) Printer() *Printer {
	return NewPrinter(i.loc, i.location)
}
