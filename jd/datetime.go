package jd

import (
	"cmp"
	"fmt"
	"math"
	"time"
)

// DateTime is a civil UTC date-time. Year uses astronomical numbering, so
// year 0 is 1 BCE and year -1 is 2 BCE.
type DateTime struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Microsecond int
}

// gregorianReform is the first instant of the Gregorian calendar.
var gregorianReform = DateTime{Year: 1582, Month: 10, Day: 15}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Date returns a DateTime at midnight of the given day.
func Date(year, month, day int) DateTime {
	return DateTime{Year: year, Month: month, Day: day}
}

// isLeap applies the leap rule the conversion arithmetic follows: every
// fourth year before the reform, Gregorian rules after it.
func isLeap(year int) bool {
	if year%4 != 0 {
		return false
	}
	if year <= 1582 {
		return true
	}
	return year%100 != 0 || year%400 == 0
}

// DaysIn returns the number of days in the given month, or 0 if month is
// not in 1..12.
func DaysIn(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && isLeap(year) {
		return 29
	}
	return monthDays[month-1]
}

// Validate reports whether dt names an instant that exists in the hybrid
// calendar the conversions use: Julian leap years (every fourth) up to
// 1582, Gregorian rules after, and no 1582-10-05 to 1582-10-14.
func (dt DateTime) Validate() error {
	if reason := dt.problem(); reason != "" {
		return invalid("validate", dt, reason)
	}
	return nil
}

func (dt DateTime) problem() string {
	switch {
	case dt.Month < 1 || dt.Month > 12:
		return "month out of range"
	case dt.Day < 1 || dt.Day > DaysIn(dt.Year, dt.Month):
		return "day out of range for month"
	case dt.Year == 1582 && dt.Month == 10 && dt.Day > 4 && dt.Day < 15:
		return "day skipped by the Gregorian reform"
	case dt.Hour < 0 || dt.Hour > 23:
		return "hour out of range"
	case dt.Minute < 0 || dt.Minute > 59:
		return "minute out of range"
	case dt.Second < 0 || dt.Second > 59:
		return "second out of range"
	case dt.Microsecond < 0 || dt.Microsecond > 999999:
		return "microsecond out of range"
	}
	return ""
}

// Compare returns -1, 0 or +1 depending on whether dt is before, equal to
// or after other.
func (dt DateTime) Compare(other DateTime) int {
	if c := cmp.Compare(dt.Year, other.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(dt.Month, other.Month); c != 0 {
		return c
	}
	if c := cmp.Compare(dt.Day, other.Day); c != 0 {
		return c
	}
	if c := cmp.Compare(dt.Hour, other.Hour); c != 0 {
		return c
	}
	if c := cmp.Compare(dt.Minute, other.Minute); c != 0 {
		return c
	}
	if c := cmp.Compare(dt.Second, other.Second); c != 0 {
		return c
	}
	return cmp.Compare(dt.Microsecond, other.Microsecond)
}

func (dt DateTime) Before(other DateTime) bool {
	return dt.Compare(other) < 0
}

// String formats dt as ISO 8601. Microseconds are only shown when non-zero.
func (dt DateTime) String() string {
	var year string
	switch {
	case dt.Year < 0:
		year = fmt.Sprintf("-%04d", -dt.Year)
	case dt.Year > 9999:
		year = fmt.Sprintf("+%d", dt.Year)
	default:
		year = fmt.Sprintf("%04d", dt.Year)
	}

	s := fmt.Sprintf(
		"%s-%02d-%02dT%02d:%02d:%02d",
		year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second,
	)
	if dt.Microsecond != 0 {
		s += fmt.Sprintf(".%06d", dt.Microsecond)
	}
	return s
}

// Time returns dt as a UTC time.Time. time.Time is proleptic Gregorian, so
// instants before the reform are carried over through their Julian day and
// come out with Gregorian field values.
func (dt DateTime) Time() (time.Time, error) {
	if err := dt.Validate(); err != nil {
		return time.Time{}, err
	}
	if dt.Before(gregorianReform) {
		julianDay, err := FromDateTime(dt)
		if err != nil {
			return time.Time{}, err
		}
		return unixTime(julianDay), nil
	}
	return time.Date(
		dt.Year, time.Month(dt.Month), dt.Day,
		dt.Hour, dt.Minute, dt.Second, dt.Microsecond*1000,
		time.UTC,
	), nil
}

// FromTime returns the DateTime for the instant t, truncated to the
// microsecond.
func FromTime(t time.Time) DateTime {
	t = t.UTC()
	if t.Before(reformTime) {
		dt, _ := ToDateTime(unixJulianDay(t))
		return dt
	}
	return DateTime{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Microsecond: t.Nanosecond() / 1000,
	}
}

var reformTime = time.Date(1582, time.October, 15, 0, 0, 0, 0, time.UTC)

func unixJulianDay(t time.Time) float64 {
	seconds := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return UnixEpoch + seconds/SecondsPerDay
}

func unixTime(julianDay float64) time.Time {
	seconds := (julianDay - UnixEpoch) * SecondsPerDay
	whole := math.Floor(seconds)
	nanos := int64((seconds - whole) * 1e9)
	return time.Unix(int64(whole), nanos).UTC().Round(time.Microsecond)
}
