// Package jd converts between Julian day numbers and civil UTC date-times.
//
// A Julian day counts days continuously from noon UTC on 1 January 4713 BCE
// (proleptic Julian calendar). The whole part names a noon-to-noon day and
// the fraction is the time elapsed since that noon.
package jd

import (
	"math"
	"time"
)

const (
	// GregorianEpoch is the last integer day, counted from midnight, that
	// precedes the Gregorian reform of 1582-10-15.
	GregorianEpoch = 2299160

	// J2000 is 2000-01-01T12:00:00 UTC.
	J2000 = 2451545.0

	// UnixEpoch is 1970-01-01T00:00:00 UTC.
	UnixEpoch = 2440587.5

	// SecondsPerDay ignores leap seconds.
	SecondsPerDay = 86400
)

// ToDateTime converts a Julian day to the civil date-time it denotes.
//
// Before the reform the result follows the calendar in use at the time, so
// JD 2299159.5 is 1582-10-04 and the next day, JD 2299160.5, is 1582-10-15.
// Very large magnitudes lose sub-second precision. Beyond about 1e18 days
// the float64 spacing exceeds a month and no calendar date can be formed;
// those inputs return ErrInvalidArgument.
func ToDateTime(julianDay float64) (DateTime, error) {
	if math.IsNaN(julianDay) || math.IsInf(julianDay, 0) {
		return DateTime{}, invalid("to datetime", julianDay, "not a finite real number")
	}

	// Julian days start at noon; shift so days start at midnight.
	shifted := julianDay + 0.5
	jdInt := math.Floor(shifted)
	jdFrac := shifted - jdInt

	b := jdInt
	if jdInt > GregorianEpoch {
		alpha := math.Floor((jdInt - 1867216.25) / 36524.25)
		b = jdInt + 1 + alpha - math.Floor(alpha/4)
	}

	c := b + 1524
	d := math.Floor((c - 122.1) / 365.25)
	e := math.Floor(365.25 * d)
	g := math.Floor((c - e) / 30.6001)

	day := c - e + jdFrac - math.Floor(30.6001*g)

	month := g - 13
	if g < 13.5 {
		month = g - 1
	}

	year := d - 4715
	if month > 2 {
		year = d - 4716
	}

	dayInt := math.Floor(day)
	// Checked before the int conversions, which are undefined out of range.
	// Written so that NaN, reachable through Inf-Inf at the float64 limit,
	// fails too.
	if !(month >= 1 && month <= 12 && dayInt >= 1 && dayInt <= 31) {
		return DateTime{}, invalid("to datetime", julianDay, "magnitude too large to represent")
	}

	hours, hoursFrac := math.Modf((day - dayInt) * 24)
	minutes, minutesFrac := math.Modf(hoursFrac * 60)
	seconds, secondsFrac := math.Modf(minutesFrac * 60)

	dt := DateTime{
		Year:        int(year),
		Month:       int(month),
		Day:         int(dayInt),
		Hour:        int(hours),
		Minute:      int(minutes),
		Second:      int(seconds),
		Microsecond: int(secondsFrac * 1e6),
	}
	if dt.problem() != "" {
		return DateTime{}, invalid("to datetime", julianDay, "magnitude too large to represent")
	}
	return dt, nil
}

// FromDateTime converts a civil date-time to its Julian day. It is the
// inverse of ToDateTime.
func FromDateTime(dt DateTime) (float64, error) {
	if reason := dt.problem(); reason != "" {
		return 0, invalid("from datetime", dt, reason)
	}

	year, month := float64(dt.Year), float64(dt.Month)
	if dt.Month <= 2 {
		year--
		month += 12
	}

	b := 0.0
	if !dt.Before(gregorianReform) {
		a := math.Floor(year / 100)
		b = 2 - a + math.Floor(a/4)
	}

	julianDay := math.Floor(365.25*(year+4716)) +
		math.Floor(30.6001*(month+1)) +
		float64(dt.Day) + b - 1524.5

	fraction := (float64(dt.Hour) +
		float64(dt.Minute)/60 +
		float64(dt.Second)/3600 +
		float64(dt.Microsecond)/3.6e9) / 24

	return julianDay + fraction, nil
}

// Weekday returns the day of the week of the civil day containing
// julianDay.
func Weekday(julianDay float64) time.Weekday {
	n := math.Mod(math.Floor(julianDay+1.5), 7)
	if n < 0 {
		n += 7
	}
	return time.Weekday(n)
}
