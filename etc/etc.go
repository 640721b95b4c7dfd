package etc

import (
	"fmt"
	"time"

	"github.com/nrednav/cuid2"

	"node.town/julianday/jd"
)

func NewFreshID() string {
	return cuid2.Generate()
}

// JulianDayToTime converts a Julian day, as stored in REAL timestamp
// columns, to a UTC time.Time.
func JulianDayToTime(f float64) (time.Time, error) {
	dt, err := jd.ToDateTime(f)
	if err != nil {
		return time.Time{}, fmt.Errorf("julian day to time: %w", err)
	}
	return dt.Time()
}

func TimeToJulianDay(t time.Time) float64 {
	// FromTime always yields a valid DateTime.
	f, _ := jd.FromDateTime(jd.FromTime(t))
	return f
}

// Today returns the current instant as a Julian day.
func Today() float64 {
	return TimeToJulianDay(time.Now())
}
