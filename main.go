package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"node.town/julianday/config"
	"node.town/julianday/db"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{})

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().
		BoolP("reverse", "r", false, "Convert a datetime to a Julian day")
	rootCmd.Flags().
		Int("precision", 6, "Decimal places of Julian days printed with --reverse")
	rootCmd.PersistentFlags().
		Bool("journal", false, "Record conversions in the journal database")
	rootCmd.PersistentFlags().
		String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().
		String("log-file", "", "Append logs to this file instead of stderr")

	viper.BindPFlag("precision", rootCmd.Flags().Lookup("precision"))
	viper.BindPFlag(
		"journal.enabled",
		rootCmd.PersistentFlags().Lookup("journal"),
	)
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))

	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(sunCmd)
	rootCmd.AddCommand(serveCmd)
}

func initConfig() {
	if err := config.Init(viper.GetViper()); err != nil {
		logger.Warn("config", "error", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "julianday VALUE",
	Short: "Convert between Julian day numbers and UTC datetimes",
	Long: `Convert between Julian day numbers and UTC datetimes.

Julian days count days continuously from noon UTC on 1 January 4713 BC.`,
	Example: `  julianday 2451545                     # Julian day to datetime
  julianday -- -0.5                     # negative Julian days need "--"
  julianday -r 2000-01-01               # datetime to Julian day
  julianday -r "2000-01-01 12:00:00"    # with time of day`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

// loadConfig reads the configuration and sets up component loggers.
func loadConfig() (cfg *config.Config, mainLogger, sqlLogger, httpLogger *log.Logger, err error) {
	cfg, err = config.Load(viper.GetViper())
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if cfg.LogFile != "" {
		if err := useLogFile(cfg.LogFile); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	mainLogger, sqlLogger, httpLogger = createLoggers(cfg.LogLevel)
	return cfg, mainLogger, sqlLogger, httpLogger, nil
}

// useLogFile sends log output to path, appending. The file stays open for
// the life of the process.
func useLogFile(path string) error {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(logFile)
	logger.SetReportTimestamp(true)
	return nil
}

func openJournal(ctx context.Context, cfg *config.Config, sqlLogger *log.Logger) (*db.Journal, error) {
	journal, err := db.Open(ctx, cfg.Journal.Driver, cfg.Journal.DSN, sqlLogger)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return journal, nil
}

func createLoggers(level log.Level) (mainLogger, sqlLogger, httpLogger *log.Logger) {
	logger.SetLevel(level)
	logger.SetReportCaller(level == log.DebugLevel)
	logger.SetCallerFormatter(
		func(file string, line int, funcName string) string {
			path, err := filepath.Rel(".", file)
			if err != nil {
				path = file
			}
			return fmt.Sprintf("%s:%d", path, line)
		},
	)

	styles := log.DefaultStyles()
	styles.Prefix = styles.Prefix.
		Bold(false).Transform(func(s string) string {
		return strings.TrimSuffix(s, ":")
	})
	styles.Levels[log.InfoLevel] = styles.Levels[log.InfoLevel].
		MaxWidth(6).
		MarginRight(1).
		Bold(false)
	styles.Levels[log.ErrorLevel] = styles.Levels[log.ErrorLevel].
		MaxWidth(6).
		MarginRight(1).
		Bold(false)
	styles.Key = styles.Key.MarginLeft(1).
		Bold(false).
		Foreground(lipgloss.Color("#ff8800"))

	logger.SetStyles(styles)

	mainLogger = logger.With().WithPrefix("main")
	sqlLogger = logger.With().WithPrefix("data")
	httpLogger = logger.With().WithPrefix("http")

	return
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
