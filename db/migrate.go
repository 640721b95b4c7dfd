package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"node.town/julianday/etc"
)

type Migration struct {
	ID          string
	Description string
	Up          func(context.Context, *sql.Tx) error
}

// The statements stick to the subset SQLite and PostgreSQL share.
// Timestamps are Julian days.
var migrations = []Migration{
	{
		ID:          "001_conversions",
		Description: "Create conversion journal",
		Up: func(ctx context.Context, tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS conversions (
					id TEXT PRIMARY KEY,
					direction TEXT NOT NULL,
					input TEXT NOT NULL,
					output TEXT NOT NULL,
					created_at DOUBLE PRECISION NOT NULL
				)
			`)
			return err
		},
	},
	{
		ID:          "002_conversions_created_at_index",
		Description: "Index conversions by creation time",
		Up: func(ctx context.Context, tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, `
				CREATE INDEX IF NOT EXISTS conversions_created_at
				ON conversions (created_at)
			`)
			return err
		},
	},
}

func Migrate(ctx context.Context, db *sql.DB, logger *log.Logger) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS migration_history (
			id TEXT PRIMARY KEY,
			applied_at DOUBLE PRECISION NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("error creating migration_history table: %w", err)
	}

	for _, migration := range migrations {
		var applied bool
		err := db.QueryRowContext(
			ctx,
			"SELECT true FROM migration_history WHERE id = $1",
			migration.ID,
		).Scan(&applied)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("error checking migration status: %w", err)
		}

		if applied {
			logger.Debug("Skipping migration (already applied)", "id", migration.ID)
			continue
		}

		logger.Info("Applying migration", "id", migration.ID, "description", migration.Description)

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("error starting transaction: %w", err)
		}

		err = migration.Up(ctx, tx)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error applying migration %s: %w", migration.ID, err)
		}

		_, err = tx.ExecContext(
			ctx,
			"INSERT INTO migration_history (id, applied_at) VALUES ($1, $2)",
			migration.ID,
			etc.Today(),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error recording migration %s: %w", migration.ID, err)
		}

		err = tx.Commit()
		if err != nil {
			return fmt.Errorf("error committing migration %s: %w", migration.ID, err)
		}
	}

	return nil
}
