package main

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"node.town/julianday/db"
	"node.town/julianday/jd"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		reverse   bool
		precision int
		want      string
		direction db.Direction
	}{
		{"j2000", "2451545", false, 6, "2000-01-01T12:00:00", db.ToDateTime},
		{"fractional", "2451545.25", false, 6, "2000-01-01T18:00:00", db.ToDateTime},
		{"date_only", "2000-01-01", true, 6, "2451544.500000", db.FromDateTime},
		{"with_time", "2000-01-01 12:00:00", true, 6, "2451545.000000", db.FromDateTime},
		{"iso_t", "1970-01-01T00:00:00", true, 1, "2440587.5", db.FromDateTime},
		{"zero_precision", "2000-01-01 12:00:00", true, 0, "2451545", db.FromDateTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, direction, err := convert(tt.value, tt.reverse, tt.precision)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.direction, direction)
		})
	}
}

func TestConvert_InvalidInput(t *testing.T) {
	_, _, err := convert("tomorrow", false, 6)
	assert.ErrorIs(t, err, jd.ErrInvalidArgument)
	assert.ErrorContains(t, err, "expected a number")

	_, _, err = convert("2000-02-30", true, 6)
	assert.ErrorIs(t, err, jd.ErrInvalidArgument)
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}

func TestTableRows(t *testing.T) {
	rows, err := tableRows(2451544.5, 2451546.5, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"2451544.5", "2000-01-01T00:00:00", "Saturday"},
		{"2451545.5", "2000-01-02T00:00:00", "Sunday"},
		{"2451546.5", "2000-01-03T00:00:00", "Monday"},
	}, rows)

	rows, err = tableRows(2451545, 2451545.5, 0.25)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, "2000-01-01T18:00:00", rows[1][1])

	_, err = tableRows(2451545, 2451546, 0)
	assert.Error(t, err)
	_, err = tableRows(2451546, 2451545, 1)
	assert.Error(t, err)
	_, err = tableRows(0, 1e6, 1)
	assert.ErrorContains(t, err, "--step")
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	renderTable(&buf, []string{"Julian Day", "UTC"}, [][]string{{"2451545", "2000-01-01T12:00:00"}})

	out := buf.String()
	assert.Contains(t, out, "JULIAN DAY")
	assert.Contains(t, out, "2000-01-01T12:00:00")
}

func TestHistoryRows(t *testing.T) {
	rows := historyRows([]db.Entry{{
		ID:        "abc",
		Direction: db.ToDateTime,
		Input:     "2451545",
		Output:    "2000-01-01T12:00:00",
		CreatedAt: jd.J2000,
	}})

	assert.Equal(t, [][]string{
		{"abc", "2000-01-01 12:00:00", "jd->datetime", "2451545", "2000-01-01T12:00:00"},
	}, rows)
}

func TestCheckLimit(t *testing.T) {
	tests := []struct {
		limit   int
		wantErr bool
	}{
		{1, false},
		{20, false},
		{0, true},
		{-5, true},
	}

	for _, tt := range tests {
		err := checkLimit(tt.limit)
		if tt.wantErr {
			assert.ErrorContains(t, err, "--limit must be at least 1", "limit %d", tt.limit)
		} else {
			assert.NoError(t, err, "limit %d", tt.limit)
		}
	}
}

func TestPickSummary(t *testing.T) {
	assert.Equal(t,
		"JD 2451545\n2000-01-01T12:00:00 UTC, Saturday",
		pickSummary("2451545", "2000-01-01T12:00:00", false),
	)
	assert.Equal(t,
		"2000-01-01 UTC\nJD 2451544.500000",
		pickSummary("2000-01-01", "2451544.500000", true),
	)
}

func TestSunTimes(t *testing.T) {
	london := Location{Latitude: 51.5074, Longitude: -0.1278}

	rise, set, err := sunTimes(jd.J2000, london)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Date(2000, 1, 1, 8, 6, 0, 0, time.UTC), rise, 10*time.Minute)
	assert.WithinDuration(t, time.Date(2000, 1, 1, 16, 2, 0, 0, time.UTC), set, 10*time.Minute)

	_, _, err = sunTimes(math.Inf(1), london)
	assert.ErrorIs(t, err, jd.ErrInvalidArgument)
}

func TestLocationValidate(t *testing.T) {
	tests := []struct {
		name     string
		location Location
		wantErr  string
	}{
		{"london", Location{Latitude: 51.5074, Longitude: -0.1278}, ""},
		{"poles_and_antimeridian", Location{Latitude: -90, Longitude: 180}, ""},
		{"latitude_high", Location{Latitude: 90.5}, "latitude"},
		{"latitude_nan", Location{Latitude: math.NaN()}, "latitude"},
		{"longitude_high", Location{Longitude: 200}, "longitude"},
		{"longitude_low", Location{Longitude: -180.01}, "longitude"},
		{"longitude_nan", Location{Longitude: math.NaN()}, "longitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.location.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestSunTimes_PolarNight(t *testing.T) {
	svalbard := Location{Latitude: 78.22, Longitude: 15.65}

	// 2021-12-21
	rise, set, err := sunTimes(2459569.5, svalbard)
	require.NoError(t, err)
	assert.True(t, rise.IsZero())
	assert.True(t, set.IsZero())

	var buf bytes.Buffer
	printSunTime(&buf, "sunrise", rise)
	assert.Equal(t, "sunrise  none\n", buf.String())
}
