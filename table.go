package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"node.town/julianday/jd"
)

const maxTableRows = 10000

var tableCmd = &cobra.Command{
	Use:   "table START END",
	Short: "Tabulate Julian days between START and END",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := jd.ParseJulianDay(args[0])
		if err != nil {
			return fmt.Errorf("invalid start: %w", err)
		}
		end, err := jd.ParseJulianDay(args[1])
		if err != nil {
			return fmt.Errorf("invalid end: %w", err)
		}
		step, _ := cmd.Flags().GetFloat64("step")

		rows, err := tableRows(start, end, step)
		if err != nil {
			return err
		}
		renderTable(cmd.OutOrStdout(), []string{"Julian Day", "UTC", "Weekday"}, rows)
		return nil
	},
}

func init() {
	tableCmd.Flags().Float64("step", 1, "Days between rows")
}

func tableRows(start, end, step float64) ([][]string, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %g", step)
	}
	if end < start {
		return nil, fmt.Errorf("end %g is before start %g", end, start)
	}
	if (end-start)/step >= maxTableRows {
		return nil, fmt.Errorf("more than %d rows, use a larger --step", maxTableRows)
	}

	var rows [][]string
	for i := 0; ; i++ {
		// Multiplying avoids accumulating rounding error in the step.
		julianDay := start + float64(i)*step
		if julianDay > end {
			break
		}

		dt, err := jd.ToDateTime(julianDay)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{
			strconv.FormatFloat(julianDay, 'f', -1, 64),
			dt.String(),
			jd.Weekday(julianDay).String(),
		})
	}
	return rows, nil
}

func renderTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("|")
	table.SetColumnSeparator("|")
	table.SetRowSeparator("-")
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.AppendBulk(rows)
	table.Render()
}
