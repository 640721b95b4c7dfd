package main

import (
	"fmt"
	"io"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"node.town/julianday/etc"
	"node.town/julianday/jd"
)

type Location struct {
	Latitude  float64
	Longitude float64
}

func (l Location) validate() error {
	if !(l.Latitude >= -90 && l.Latitude <= 90) {
		return fmt.Errorf("latitude %g out of range [-90, 90]", l.Latitude)
	}
	if !(l.Longitude >= -180 && l.Longitude <= 180) {
		return fmt.Errorf("longitude %g out of range [-180, 180]", l.Longitude)
	}
	return nil
}

var sunCmd = &cobra.Command{
	Use:   "sun JD",
	Short: "Sunrise and sunset on the UTC day containing a Julian day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		julianDay, err := jd.ParseJulianDay(args[0])
		if err != nil {
			return err
		}

		location := Location{
			Latitude:  viper.GetFloat64("location.latitude"),
			Longitude: viper.GetFloat64("location.longitude"),
		}
		if err := location.validate(); err != nil {
			return err
		}

		rise, set, err := sunTimes(julianDay, location)
		if err != nil {
			return err
		}
		printSunTime(cmd.OutOrStdout(), "sunrise", rise)
		printSunTime(cmd.OutOrStdout(), "sunset", set)
		return nil
	},
}

func init() {
	sunCmd.Flags().Float64("lat", 0, "Latitude in degrees, north positive")
	sunCmd.Flags().Float64("lon", 0, "Longitude in degrees, east positive")
	viper.BindPFlag("location.latitude", sunCmd.Flags().Lookup("lat"))
	viper.BindPFlag("location.longitude", sunCmd.Flags().Lookup("lon"))
}

// sunTimes returns zero times when the sun does not rise or set that day.
func sunTimes(julianDay float64, location Location) (rise, set time.Time, err error) {
	t, err := etc.JulianDayToTime(julianDay)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	year, month, day := t.Date()
	rise, set = sunrise.SunriseSunset(
		location.Latitude, location.Longitude,
		year, month, day,
	)
	return rise, set, nil
}

func printSunTime(w io.Writer, label string, t time.Time) {
	if t.IsZero() {
		fmt.Fprintf(w, "%-8s none\n", label)
		return
	}
	fmt.Fprintf(
		w, "%-8s %s  JD %.6f\n",
		label, jd.FromTime(t), etc.TimeToJulianDay(t),
	)
}
