package momentum

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 form.
const DateFormat = "2006-01-02"

// ReportDateFormat is the DD-MMM-YY form used by broker sheets, and the form
// dates are written back in output files.
const ReportDateFormat = "02-Jan-06"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601 form.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Report formats the date in the DD-MMM-YY form of the input sheets.
func (d Date) Report() string { return d.time().Format(ReportDateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// AddYears returns a new Date with the given number of calendar years added.
// The anniversary of 29 February normalizes to 1 March on non-leap years,
// matching time.Date semantics.
func (d Date) AddYears(i int) Date { return NewDate(d.y+i, d.m, d.d) }

// StartOfMonth returns the first day of the date's month.
func (d Date) StartOfMonth() Date { return NewDate(d.y, d.m, 1) }

// dateFormats are the accepted input date layouts, tried in order.
// Broker exports are inconsistent, so the decoder is permissive.
var dateFormats = []string{
	"2-Jan-06",        // DD-MMM-YY (e.g., 01-Nov-01)
	"2-January-06",    // DD-MONTH-YY
	"2 January 2006",  // DD Month YYYY
	"2 Jan 2006",      // DD Mon YYYY
	"2-Jan-2006",      // DD-MMM-YYYY
	"2-January-2006",  // DD-MONTH-YYYY
	"2006-1-2",        // ISO, permissive
	"2/1/2006",        // DD/MM/YYYY
}

// ParseDate parses a Date from a string, trying each supported layout.
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	for _, layout := range dateFormats {
		if on, err := time.Parse(layout, str); err == nil {
			return NewDate(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q, want a format like %q or %q", str, "01-Nov-01", DateFormat)
}

// MustParseDate is like ParseDate but panics on error. For tests and literals.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON parses a date from a JSON string in ISO form.
func (d *Date) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	on, err := time.Parse("2006-1-2", str)
	if err != nil {
		return fmt.Errorf("invalid date %q in data file, want format %q: %w", str, DateFormat, err)
	}
	*d = NewDate(on.Date())
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
