// Package date provides a day granularity calendar date used for note
// origin and maturity dates.
package date

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// usDateFormat is the alternate form accepted on input (MM/DD/YYYY).
const usDateFormat = "1/2/2006"

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

const Day = 24 * time.Hour

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// FromTime returns the Date of t in t's location.
func FromTime(t time.Time) Date { return New(t.Date()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// Sub returns the number of days from x to d.
func (d Date) Sub(x Date) int { return int(d.time().Sub(x.time()) / Day) }

// String format the date in its standard format.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(DateFormat)
}

// Format returns a textual representation of the date value formatted according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// Parse parses a Date from a string. It accepts "2025-07-01" (and the
// lenient "2025-7-1") as well as "07/01/2025".
func Parse(str string) (Date, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		var e2 error
		if on, e2 = time.Parse(usDateFormat, str); e2 != nil {
			return Date{}, fmt.Errorf("invalid date %q want format %q or %q: %w", str, DateFormat, "01/02/2006", err)
		}
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

var relativeDateRE = regexp.MustCompile(`^([+-])(\d+)([dwmy])$`)

// ParseRelative parses a date typed by a user. On top of the formats
// supported by Parse it accepts "0d" for today and signed offsets from
// today such as "-7d", "+2w", "+1m" or "-1y".
func ParseRelative(str string, today Date) (Date, error) {
	str = strings.TrimSpace(str)
	if str == "0d" {
		return today, nil
	}
	match := relativeDateRE.FindStringSubmatch(str)
	if match == nil {
		return Parse(str)
	}
	num, err := strconv.Atoi(match[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid number in relative date %q: %w", str, err)
	}
	if match[1] == "-" {
		num = -num
	}
	switch match[3] {
	case "w":
		return today.Add(num * 7), nil
	case "m":
		return New(today.Year(), today.Month()+time.Month(num), today.Day()), nil
	case "y":
		return New(today.Year()+num, today.Month(), today.Day()), nil
	default:
		return today.Add(num), nil
	}
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if str == "" {
		*j = Date{}
		return nil
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
