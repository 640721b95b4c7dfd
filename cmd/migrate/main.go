package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"node.town/julianday/config"
	"node.town/julianday/db"
)

func main() {
	logger := log.New(os.Stderr)
	sqlLogger := logger.With("component", "sql")

	if err := config.Init(viper.GetViper()); err != nil {
		logger.Fatal("read config", "error", err.Error())
	}
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		logger.Fatal("load config", "error", err.Error())
	}
	sqlLogger.SetLevel(cfg.LogLevel)

	logger.Info("Starting database migration process...", "driver", cfg.Journal.Driver)

	// Open applies any pending migrations.
	journal, err := db.Open(context.Background(), cfg.Journal.Driver, cfg.Journal.DSN, sqlLogger)
	if err != nil {
		logger.Fatal("apply migrations", "error", err.Error())
	}
	defer journal.Close()

	logger.Info("Migrations applied successfully")
}
