package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"node.town/julianday/etc"
)

// Drivers the journal can be opened with.
const (
	DriverSQLite   = "sqlite3"
	DriverPgx      = "pgx"
	DriverPostgres = "postgres"
)

var ErrInvalidLimit = errors.New("invalid limit")

type Direction string

const (
	ToDateTime   Direction = "jd->datetime"
	FromDateTime Direction = "datetime->jd"
)

// Entry is one recorded conversion. CreatedAt is a Julian day.
type Entry struct {
	ID        string
	Direction Direction
	Input     string
	Output    string
	CreatedAt float64
}

// Journal keeps a history of conversions. It is safe for concurrent use.
type Journal struct {
	db     *sql.DB
	logger *log.Logger
}

func Open(ctx context.Context, driver, dsn string, logger *log.Logger) (*Journal, error) {
	switch driver {
	case DriverSQLite, DriverPgx, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported journal driver %q", driver)
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}
	if driver == DriverSQLite {
		// One connection keeps ":memory:" databases alive and avoids
		// SQLITE_BUSY between writers.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := Migrate(ctx, sqlDB, logger); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Debug("journal open", "driver", driver)
	return &Journal{db: sqlDB, logger: logger}, nil
}

// Record stores e stamped with the current instant, filling in ID when it
// is empty. Any CreatedAt on e is ignored.
func (j *Journal) Record(ctx context.Context, e Entry) (Entry, error) {
	return j.RecordAt(ctx, e, etc.Today())
}

// RecordAt stores e with CreatedAt set to createdAt, a Julian day. Every
// finite value is accepted, Julian day 0 included.
func (j *Journal) RecordAt(ctx context.Context, e Entry, createdAt float64) (Entry, error) {
	if math.IsNaN(createdAt) || math.IsInf(createdAt, 0) {
		return Entry{}, fmt.Errorf("invalid created_at %v", createdAt)
	}
	if e.ID == "" {
		e.ID = etc.NewFreshID()
	}
	e.CreatedAt = createdAt

	_, err := j.db.ExecContext(
		ctx,
		`INSERT INTO conversions (id, direction, input, output, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		e.ID,
		string(e.Direction),
		e.Input,
		e.Output,
		e.CreatedAt,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to record conversion: %w", err)
	}

	j.logger.Debug("recorded", "id", e.ID, "direction", e.Direction, "input", e.Input)
	return e, nil
}

// Recent returns up to limit entries, newest first. limit must be at least 1.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be at least 1, got %d", ErrInvalidLimit, limit)
	}

	rows, err := j.db.QueryContext(
		ctx,
		`SELECT id, direction, input, output, created_at
		FROM conversions
		ORDER BY created_at DESC, id DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var direction string
		err := rows.Scan(&e.ID, &direction, &e.Input, &e.Output, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conversion: %w", err)
		}
		e.Direction = Direction(direction)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (j *Journal) Close() error {
	return j.db.Close()
}
