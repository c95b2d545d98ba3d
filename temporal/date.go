// Package temporal implements the interchange codec's temporal value kinds:
// Date, Time, DateTime and Duration, plus ISO-8601 parse/format and
// negative-day-indexing (day=-1 resolves to the last day of the month).
//
// Every constructor validates its fields eagerly and returns
// errs.ErrFieldOutOfRange rather than silently normalizing an invalid date:
// month 13, Feb 30, a year outside [MinYear, MaxYear], and similar all fail
// at construction.
package temporal

import (
	"time"

	"github.com/nascanti/interchange/errs"
)

// MinYear and MaxYear bound the proleptic Gregorian year domain the codec
// accepts.
const (
	MinYear = 1
	MaxYear = 9999
)

const nanosPerDay = 86_400_000_000_000

// Date is a signed day offset from 1970-01-01 (proleptic Gregorian).
type Date struct {
	Days int64
}

// NewDate constructs a Date from a calendar year/month/day.
//
// A negative day indexes from the end of the month: day -1 is the month's
// last day, -2 its second-to-last, and so on.
func NewDate(year, month, day int) (Date, error) {
	days, err := dayOffset(year, month, day)
	if err != nil {
		return Date{}, err
	}

	return Date{Days: days}, nil
}

// dayOffset validates year/month/day and returns the signed day offset from
// the Unix epoch.
func dayOffset(year, month, day int) (int64, error) {
	if year < MinYear || year > MaxYear {
		return 0, fieldError("year", year)
	}
	if month < 1 || month > 12 {
		return 0, fieldError("month", month)
	}

	dim := daysInMonth(year, month)
	if day < 0 {
		day = dim + day + 1
	}
	if day < 1 || day > dim {
		return 0, fieldError("day", day)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	return t.Unix() / 86400, nil
}

// daysInMonth returns the number of days in the given Gregorian year/month,
// accounting for leap years.
func daysInMonth(year, month int) int {
	// The zeroth day of the following month is the last day of this one.
	return time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.UTC).Day()
}

func fieldError(field string, value int) error {
	return &fieldOutOfRangeError{field: field, value: value}
}

type fieldOutOfRangeError struct {
	field string
	value int
}

func (e *fieldOutOfRangeError) Error() string {
	return errs.ErrFieldOutOfRange.Error() + ": " + e.field
}

func (e *fieldOutOfRangeError) Unwrap() error { return errs.ErrFieldOutOfRange }

// Year, Month and Day decompose the Date back into its calendar fields.
func (d Date) Year() int  { return d.civil().Year() }
func (d Date) Month() int { return int(d.civil().Month()) }
func (d Date) Day() int   { return d.civil().Day() }

func (d Date) civil() time.Time {
	return time.Unix(d.Days*86400, 0).UTC()
}

// Native converts the Date to the equivalent midnight-UTC time.Time.
func (d Date) Native() time.Time {
	return d.civil()
}

// DateFromNative constructs a Date from the UTC calendar date of t (the
// time-of-day component, if any, is discarded).
func DateFromNative(t time.Time) Date {
	u := t.UTC()
	days, _ := dayOffset(u.Year(), int(u.Month()), u.Day())

	return Date{Days: days}
}

// Equal reports whether d and other denote the same day.
func (d Date) Equal(other Date) bool { return d.Days == other.Days }
