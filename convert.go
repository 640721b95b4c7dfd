package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"node.town/julianday/db"
	"node.town/julianday/jd"
)

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, mainLogger, sqlLogger, _, err := loadConfig()
	if err != nil {
		return err
	}

	reverse, _ := cmd.Flags().GetBool("reverse")
	output, direction, err := convert(args[0], reverse, cfg.Precision)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)

	if !cfg.Journal.Enabled {
		return nil
	}

	ctx := context.Background()
	journal, err := openJournal(ctx, cfg, sqlLogger)
	if err != nil {
		mainLogger.Error("journal", "error", err)
		return nil
	}
	defer journal.Close()

	_, err = journal.Record(ctx, db.Entry{
		Direction: direction,
		Input:     args[0],
		Output:    output,
	})
	if err != nil {
		mainLogger.Error("journal", "error", err)
	}
	return nil
}

// convert runs one conversion on user input and formats the result:
// ISO 8601 for datetimes, a fixed number of decimals for Julian days.
func convert(value string, reverse bool, precision int) (string, db.Direction, error) {
	if reverse {
		dt, err := jd.ParseDateTime(value)
		if err != nil {
			return "", "", fmt.Errorf(
				"invalid datetime %q, expected YYYY-MM-DD or 'YYYY-MM-DD HH:MM:SS': %w",
				value, err,
			)
		}

		julianDay, err := jd.FromDateTime(dt)
		if err != nil {
			return "", "", err
		}
		return strconv.FormatFloat(julianDay, 'f', precision, 64), db.FromDateTime, nil
	}

	julianDay, err := jd.ParseJulianDay(value)
	if err != nil {
		return "", "", fmt.Errorf(
			"invalid Julian day %q, expected a number such as 2451545 or 2451545.5: %w",
			value, err,
		)
	}

	dt, err := jd.ToDateTime(julianDay)
	if err != nil {
		return "", "", err
	}
	return dt.String(), db.ToDateTime, nil
}
