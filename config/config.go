package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

const EnvPrefix = "JULIANDAY"

type Journal struct {
	Enabled bool
	Driver  string
	DSN     string
}

type Config struct {
	LogLevel  log.Level
	LogFile   string
	Precision int
	HTTPPort  int
	Journal   Journal
}

// SetDefaults registers defaults for every key Load reads.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("precision", 6)
	v.SetDefault("http_port", 4444)
	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.driver", "sqlite3")
	v.SetDefault("journal.dsn", "julianday.db")
}

// Init points v at config.yaml in the working directory and at
// JULIANDAY_* environment variables. A missing config file is not an error.
func Init(v *viper.Viper) error {
	SetDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func Load(v *viper.Viper) (*Config, error) {
	level, err := log.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}

	precision := v.GetInt("precision")
	if precision < 0 || precision > 15 {
		return nil, fmt.Errorf("precision must be between 0 and 15, got %d", precision)
	}

	return &Config{
		LogLevel:  level,
		LogFile:   v.GetString("log_file"),
		Precision: precision,
		HTTPPort:  v.GetInt("http_port"),
		Journal: Journal{
			Enabled: v.GetBool("journal.enabled"),
			Driver:  v.GetString("journal.driver"),
			DSN:     v.GetString("journal.dsn"),
		},
	}, nil
}
