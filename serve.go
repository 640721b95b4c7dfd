package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"node.town/julianday/www"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, mainLogger, sqlLogger, httpLogger, err := loadConfig()
		if err != nil {
			return err
		}

		var recorder www.Recorder
		if cfg.Journal.Enabled {
			journal, err := openJournal(context.Background(), cfg, sqlLogger)
			if err != nil {
				return err
			}
			defer journal.Close()
			recorder = journal
			mainLogger.Info("journal enabled", "driver", cfg.Journal.Driver)
		}

		return www.Serve(cfg.HTTPPort, www.Options{
			Journal:   recorder,
			Logger:    httpLogger,
			Precision: cfg.Precision,
		})
	},
}

func init() {
	serveCmd.Flags().IntP("port", "p", 4444, "Port to run the HTTP server on")
	viper.BindPFlag("http_port", serveCmd.Flags().Lookup("port"))
}
