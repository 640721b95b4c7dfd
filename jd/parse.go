package jd

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ParseJulianDay parses a decimal Julian day such as "2451545" or
// "2451545.25".
func ParseJulianDay(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, invalid("parse julian day", s, "not a number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalid("parse julian day", s, "not a finite real number")
	}
	return f, nil
}

// Coerce turns a loosely typed value, as decoded from JSON or a config
// file, into a Julian day. Numbers of any Go type and numeric strings are
// accepted; nil and booleans are not.
func Coerce(v any) (float64, error) {
	switch x := v.(type) {
	case nil, bool:
		return 0, invalid("coerce julian day", v, "not a number")
	case string:
		return ParseJulianDay(x)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, invalid("coerce julian day", v, "not a number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalid("coerce julian day", v, "not a finite real number")
	}
	return f, nil
}

var dateTimePattern = regexp.MustCompile(
	`^([+-]?\d{4,})-(\d{2})-(\d{2})` +
		`(?:[T ](\d{2}):(\d{2})(?::(\d{2})(?:\.(\d{1,6}))?)?)?Z?$`,
)

// ParseDateTime parses "YYYY-MM-DD", "YYYY-MM-DD HH:MM:SS" or
// "YYYY-MM-DDTHH:MM:SS", optionally with up to six fractional second digits
// and a trailing "Z". Years may be signed and longer than four digits.
func ParseDateTime(s string) (DateTime, error) {
	m := dateTimePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return DateTime{}, invalid("parse datetime", s, "expected YYYY-MM-DD or YYYY-MM-DD HH:MM:SS")
	}

	fields := make([]int, 6)
	for i, group := range m[1:7] {
		if group == "" {
			continue
		}
		n, err := strconv.Atoi(group)
		if err != nil {
			return DateTime{}, invalid("parse datetime", s, "number out of range")
		}
		fields[i] = n
	}

	micro := 0
	if frac := m[7]; frac != "" {
		micro, _ = strconv.Atoi(frac + strings.Repeat("0", 6-len(frac)))
	}

	dt := DateTime{
		Year:        fields[0],
		Month:       fields[1],
		Day:         fields[2],
		Hour:        fields[3],
		Minute:      fields[4],
		Second:      fields[5],
		Microsecond: micro,
	}
	if reason := dt.problem(); reason != "" {
		return DateTime{}, invalid("parse datetime", s, reason)
	}
	return dt, nil
}
