package jd_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"node.town/julianday/jd"
)

func TestDateTime_String(t *testing.T) {
	tests := []struct {
		dt   jd.DateTime
		want string
	}{
		{jd.DateTime{Year: 2000, Month: 1, Day: 1, Hour: 12}, "2000-01-01T12:00:00"},
		{jd.DateTime{Year: 2000, Month: 1, Day: 1, Hour: 18, Minute: 30, Second: 45, Microsecond: 123}, "2000-01-01T18:30:45.000123"},
		{jd.Date(-44, 3, 15), "-0044-03-15T00:00:00"},
		{jd.Date(0, 1, 1), "0000-01-01T00:00:00"},
		{jd.Date(12000, 6, 1), "+12000-06-01T00:00:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.dt.String())
	}
}

func TestDateTime_Compare(t *testing.T) {
	a := jd.DateTime{Year: 2000, Month: 1, Day: 1, Hour: 12}
	b := jd.DateTime{Year: 2000, Month: 1, Day: 1, Hour: 12, Microsecond: 1}

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, jd.Date(-1, 12, 31).Before(jd.Date(0, 1, 1)))
	assert.False(t, b.Before(a))
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, jd.DaysIn(2000, 2))
	assert.Equal(t, 28, jd.DaysIn(1900, 2))
	assert.Equal(t, 29, jd.DaysIn(1500, 2), "every fourth year before the reform")
	assert.Equal(t, 29, jd.DaysIn(-4, 2))
	assert.Equal(t, 28, jd.DaysIn(-1, 2))
	assert.Equal(t, 30, jd.DaysIn(2023, 11))
	assert.Equal(t, 0, jd.DaysIn(2023, 13))
}

func TestDateTime_Validate(t *testing.T) {
	assert.NoError(t, jd.Date(1582, 10, 4).Validate())
	assert.NoError(t, jd.Date(1582, 10, 15).Validate())
	assert.NoError(t, jd.Date(1500, 2, 29).Validate())

	err := jd.Date(1582, 10, 5).Validate()
	require.ErrorIs(t, err, jd.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "1582-10-05T00:00:00")
	assert.Contains(t, err.Error(), "reform")
}

func TestDateTime_Validate_HybridLeapRule(t *testing.T) {
	tests := []struct {
		name  string
		dt    jd.DateTime
		valid bool
	}{
		{"julian_century_leap", jd.Date(1100, 2, 29), true},
		{"julian_leap_1580", jd.Date(1580, 2, 29), true},
		{"gregorian_400", jd.Date(1600, 2, 29), true},
		{"gregorian_century", jd.Date(1700, 2, 29), false},
		{"gregorian_2000", jd.Date(2000, 2, 29), true},
		{"gregorian_1900", jd.Date(1900, 2, 29), false},
		{"gap_last_day", jd.Date(1582, 10, 14), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dt.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, jd.ErrInvalidArgument)
			}
		})
	}
}

func TestDateTime_Time(t *testing.T) {
	got, err := jd.DateTime{Year: 2000, Month: 1, Day: 1, Hour: 12, Microsecond: 5}.Time()
	require.NoError(t, err)
	assert.True(t, time.Date(2000, 1, 1, 12, 0, 0, 5000, time.UTC).Equal(got), "got %s", got)

	// 1582-10-04 was followed by 1582-10-15; proleptic Gregorian calls it
	// 1582-10-14.
	got, err = jd.Date(1582, 10, 4).Time()
	require.NoError(t, err)
	assert.True(t, time.Date(1582, 10, 14, 0, 0, 0, 0, time.UTC).Equal(got), "got %s", got)

	_, err = jd.Date(2000, 2, 30).Time()
	assert.ErrorIs(t, err, jd.ErrInvalidArgument)
}

func TestFromTime(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	got := jd.FromTime(time.Date(2000, 1, 1, 14, 0, 0, 1500, loc))
	assert.Equal(t, jd.DateTime{Year: 2000, Month: 1, Day: 1, Hour: 12, Microsecond: 1}, got)

	got = jd.FromTime(time.Date(1582, 10, 14, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, jd.Date(1582, 10, 4), got)
}
