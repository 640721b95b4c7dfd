package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"node.town/julianday/db"
	"node.town/julianday/etc"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent conversions from the journal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if err := checkLimit(limit); err != nil {
			return err
		}

		cfg, mainLogger, sqlLogger, _, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := context.Background()
		journal, err := openJournal(ctx, cfg, sqlLogger)
		if err != nil {
			return err
		}
		defer journal.Close()

		entries, err := journal.Recent(ctx, limit)
		if err != nil {
			return err
		}
		mainLogger.Debug("fetched history", "count", len(entries))

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No conversions recorded.")
			return nil
		}

		renderTable(
			cmd.OutOrStdout(),
			[]string{"ID", "Recorded At", "Direction", "Input", "Output"},
			historyRows(entries),
		)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of entries to show")
}

func checkLimit(limit int) error {
	if limit < 1 {
		return fmt.Errorf("--limit must be at least 1, got %d", limit)
	}
	return nil
}

func historyRows(entries []db.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		recordedAt := "?"
		if t, err := etc.JulianDayToTime(e.CreatedAt); err == nil {
			recordedAt = t.Format("2006-01-02 15:04:05")
		}
		rows = append(rows, []string{
			e.ID,
			recordedAt,
			string(e.Direction),
			e.Input,
			e.Output,
		})
	}
	return rows
}
