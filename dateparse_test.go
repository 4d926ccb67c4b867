package locale

import (
	"errors"
	"testing"
	"time"

	"github.com/tdewolff/test"
)

func TestDateParse(t *testing.T) {
	var tests = []struct {
		loc  *Locale
		req  DateRequest
		text string
		r    string
	}{
		{en, DateRequest{}, "3/14/2017", "2017-03-14T08:09:10Z"},
		{en, DateRequest{}, "3/14/17", "2017-03-14T08:09:10Z"},
		{en, DateRequest{}, "03/04/1999", "1999-03-04T08:09:10Z"},
		{en, DateRequest{Type: FormatShort}, "3/14/17", "2017-03-14T08:09:10Z"},
		{en, DateRequest{Skeleton: "yMMMd"}, "Mar 14, 2017", "2017-03-14T08:09:10Z"},
		{en, DateRequest{Skeleton: "yMMMd"}, "mar 14, 2017", "2017-03-14T08:09:10Z"},
		{en, DateRequest{Skeleton: "yMMMd"}, "MAR 14 2017", "2017-03-14T08:09:10Z"},
		{en, DateRequest{Skeleton: "yMMMEd"}, "Tue, Mar 14, 2017", "2017-03-14T08:09:10Z"},
		{en, DateRequest{Type: FormatFull}, "Tuesday, March 14, 2017", "2017-03-14T08:09:10Z"},
		{en, DateRequest{Skeleton: "MMMd"}, "Feb 2", "2016-02-02T08:09:10Z"},
		{en, DateRequest{Skeleton: "yMMMM"}, "February 2017", "2017-02-28T08:09:10Z"},
		{en, DateRequest{Skeleton: "yMMMM"}, "February 2016", "2016-02-29T08:09:10Z"},
		{en, DateRequest{Skeleton: "yMMMM"}, "April 2017", "2017-04-30T08:09:10Z"},
		{en, DateRequest{Skeleton: "hms"}, "3:04:05 PM", "2016-06-30T15:04:05Z"},
		{en, DateRequest{Skeleton: "hms"}, "3:04:05 pm", "2016-06-30T15:04:05Z"},
		{en, DateRequest{Skeleton: "hms"}, "12:30:00 AM", "2016-06-30T00:30:00Z"},
		{en, DateRequest{Skeleton: "hms"}, "12:30:00 PM", "2016-06-30T12:30:00Z"},
		{en, DateRequest{Skeleton: "hm"}, "9:15 a", "2016-06-30T09:15:10Z"},
		{en, DateRequest{Skeleton: "Hm"}, "23:59", "2016-06-30T23:59:10Z"},
		{en, DateRequest{Skeleton: "ms"}, "07:08", "2016-06-30T08:07:08Z"},
		{en, DateRequest{Pattern: "a"}, "PM", "2016-06-30T20:09:10Z"},
		{en, DateRequest{Pattern: "y-MM-dd'T'HH:mm:ss.SSS"}, "2017-03-14T15:04:05.123", "2017-03-14T15:04:05.123Z"},
		{en, DateRequest{Pattern: "h 'o''clock' a"}, "3 o'clock PM", "2016-06-30T15:09:10Z"},
		{en, DateRequest{Pattern: "h 'o''clock' a"}, "3 PM", "2016-06-30T15:09:10Z"},
		{en, DateRequest{Type: FormatLong, Category: CategoryTime}, "3:04:05 PM GMT", "2016-06-30T15:04:05Z"},
		{en, DateRequest{Type: FormatLong, Category: CategoryTime}, "3:04:05 PM GMT+2", "2016-06-30T13:04:05Z"},
		{en, DateRequest{Type: FormatLong, Category: CategoryTime}, "3:04:05 PM GMT+5:30", "2016-06-30T09:34:05Z"},
		{en, DateRequest{Type: FormatLong, Category: CategoryTime}, "3:04:05 PM", "2016-06-30T15:04:05Z"},
		{en, DateRequest{Type: FormatFull, Category: CategoryTime}, "3:04:05 PM GMT-08:00", "2016-06-30T23:04:05Z"},
		{en, DateRequest{Skeleton: "Gy"}, "2017 AD", "2017-06-30T08:09:10Z"},
		{en, DateRequest{Skeleton: "Gy"}, "44 BC", "-0043-06-30T08:09:10Z"},
		{en, DateRequest{Skeleton: "Gy"}, "44 bce", "-0043-06-30T08:09:10Z"},
		{en, DateRequest{Skeleton: "Gy"}, "17 AD", "0017-06-30T08:09:10Z"},
		{en, DateRequest{Skeleton: "y"}, "17", "2017-06-30T08:09:10Z"},
		{en, DateRequest{Skeleton: "y"}, "017", "0017-06-30T08:09:10Z"},
		{de, DateRequest{Skeleton: "yMMMd"}, "14. März 2017", "2017-03-14T08:09:10Z"},
		{de, DateRequest{Type: FormatMedium}, "14.03.2017", "2017-03-14T08:09:10Z"},
		{de, DateRequest{Type: FormatFull}, "Dienstag, 14. März 2017", "2017-03-14T08:09:10Z"},
		{arQA, DateRequest{}, "١٤\u200f/٣\u200f/٢٠١٧", "2017-03-14T08:09:10Z"},
		{arQA, DateRequest{}, "14/3/2017", "2017-03-14T08:09:10Z"},
		{arQA, DateRequest{Skeleton: "yMMMd"}, "١٤ مارس ٢٠١٧", "2017-03-14T08:09:10Z"},
		{arQA, DateRequest{Skeleton: "hm"}, "٣:٠٤ م", "2016-06-30T15:04:10Z"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			p, err := CompileDateParser(tt.loc, tt.req)
			test.Error(t, err)
			date, err := p.ParseFrom(tt.text, testBaseline)
			test.Error(t, err)
			test.String(t, date.Format("2006-01-02T15:04:05.999999999Z07:00"), tt.r)
		})
	}
}

func TestDateParseError(t *testing.T) {
	var tests = []struct {
		req  DateRequest
		text string
		err  error
	}{
		{DateRequest{}, "hello", ErrNoMatch},
		{DateRequest{}, "", ErrNoMatch},
		{DateRequest{Type: FormatShort}, "3/14/2017", ErrNoMatch},
		{DateRequest{}, "13/14/2017", ErrDateRange},
		{DateRequest{}, "0/14/2017", ErrDateRange},
		{DateRequest{}, "3/32/2017", ErrDateRange},
		{DateRequest{}, "3/0/2017", ErrDateRange},
		{DateRequest{Skeleton: "yMMMd"}, "Mrz 14, 2017", ErrNoMatch},
		{DateRequest{Skeleton: "yMMMd"}, "Mar 14, 2017 extra", ErrNoMatch},
		{DateRequest{Skeleton: "Hms"}, "15:04", ErrNoMatch},
		{DateRequest{Skeleton: "Hms"}, "150405", ErrNoMatch},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			p, err := CompileDateParser(en, tt.req)
			test.Error(t, err)
			_, err = p.ParseFrom(tt.text, testBaseline)
			test.That(t, errors.Is(err, tt.err), err)
		})
	}
}

func TestDateParseBaseline(t *testing.T) {
	p, err := CompileDateParser(en, DateRequest{Skeleton: "yMMMd"})
	test.Error(t, err)

	// result stays in the baseline's location
	baseline := time.Date(2016, 6, 30, 8, 9, 10, 0, tzPST)
	date, err := p.ParseFrom("Mar 14, 2017", baseline)
	test.Error(t, err)
	test.String(t, date.Format(time.RFC3339), "2017-03-14T08:09:10-08:00")

	// day of the baseline is clamped before the parsed day is applied
	p, err = CompileDateParser(en, DateRequest{Skeleton: "yM"})
	test.Error(t, err)
	date, err = p.ParseFrom("2/2017", time.Date(2017, 1, 31, 0, 0, 0, 0, time.UTC))
	test.Error(t, err)
	test.String(t, date.Format(time.RFC3339), "2017-02-28T00:00:00Z")

	// offset relative to the baseline's zone
	p, err = CompileDateParser(en, DateRequest{Type: FormatFull, Category: CategoryTime})
	test.Error(t, err)
	date, err = p.ParseFrom("3:04:05 PM GMT-08:00", baseline)
	test.Error(t, err)
	test.String(t, date.Format(time.RFC3339), "2016-06-30T15:04:05-08:00")
	date, err = p.ParseFrom("3:04:05 PM GMT", baseline)
	test.Error(t, err)
	test.String(t, date.Format(time.RFC3339), "2016-06-30T07:04:05-08:00")
}

func TestDateExtract(t *testing.T) {
	p, err := CompileDateParser(en, DateRequest{Skeleton: "yMMMEd"})
	test.Error(t, err)
	fields, ok := p.Extract("Tue, Mar 14, 17")
	test.That(t, ok)
	test.T(t, *fields.Weekday, 2)
	test.T(t, *fields.Month, 3)
	test.T(t, *fields.Day, 14)
	test.T(t, *fields.Year, 17)
	test.That(t, fields.TwoDigitYear)
	test.That(t, fields.Hour == nil)
	test.That(t, fields.TimeZone == nil)

	p, err = NewDateParser(en, "HH:mm:ss.S")
	test.Error(t, err)
	fields, ok = p.Extract("15:04:05.5")
	test.That(t, ok)
	test.T(t, *fields.Nanosecond, 500000000)
	test.That(t, !fields.Hour12)
	fields, ok = p.Extract("15:04:05.1234567891")
	test.That(t, ok)
	test.T(t, *fields.Nanosecond, 123456789)

	_, ok = p.Extract("15:04")
	test.That(t, !ok)
}

func TestAssembleDate(t *testing.T) {
	year, month, day, hour := 2020, 2, 30, 7
	_, err := AssembleDate(ParsedDate{Year: &year, Month: &month}, testBaseline)
	test.Error(t, err)
	date, err := AssembleDate(ParsedDate{Year: &year, Month: &month, Day: &day}, testBaseline)
	test.Error(t, err)
	test.String(t, date.Format("2006-01-02"), "2020-03-01")

	date, err = AssembleDate(ParsedDate{Hour: &hour, Designator: "pm"}, testBaseline)
	test.Error(t, err)
	test.T(t, date.Hour(), 19)

	date, err = AssembleDate(ParsedDate{Designator: "pm"}, testBaseline)
	test.Error(t, err)
	test.T(t, date.Hour(), 20)

	era, zero := 0, 0
	date, err = AssembleDate(ParsedDate{Era: &era, Year: &zero}, testBaseline)
	test.Error(t, err)
	test.T(t, date.Year(), 1)

	era, year = 1, 17
	date, err = AssembleDate(ParsedDate{Era: &era, Year: &year, TwoDigitYear: true}, testBaseline)
	test.Error(t, err)
	test.T(t, date.Year(), 17)
	date, err = AssembleDate(ParsedDate{Year: &year, TwoDigitYear: true}, testBaseline)
	test.Error(t, err)
	test.T(t, date.Year(), 2017)

	offset := 60
	date, err = AssembleDate(ParsedDate{TimeZone: &offset}, time.Date(2016, 6, 30, 0, 30, 0, 0, time.UTC))
	test.Error(t, err)
	test.String(t, date.Format(time.RFC3339), "2016-06-29T23:30:00Z")
}
