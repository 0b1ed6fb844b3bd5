package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/ajitpratap0/roster/internal/models"
)

const (
	// DefaultLogMaxSizeMB is the default size in megabytes before a log file rotates.
	DefaultLogMaxSizeMB = 10

	// DefaultLogMaxBackups is the default number of rotated log files kept.
	DefaultLogMaxBackups = 3

	// DefaultLogMaxAgeDays is the default number of days rotated log files are kept.
	DefaultLogMaxAgeDays = 7
)

// Config holds all configuration for roster.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Report  ReportConfig  `mapstructure:"report"`
}

// LoggingConfig holds structured logging settings.
// Logs go to stderr unless File is set.
type LoggingConfig struct {
	Level      string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format" validate:"oneof=text json"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"gte=0"`
	Compress   bool   `mapstructure:"compress"`
}

// ReportConfig controls the default console report.
type ReportConfig struct {
	Status     string   `mapstructure:"status" validate:"required"`
	SortFields []string `mapstructure:"sort_fields" validate:"min=1"`
}

// Fields resolves SortFields to person fields.
func (r ReportConfig) Fields() ([]models.Field, error) {
	fields := make([]models.Field, 0, len(r.SortFields))
	for _, name := range r.SortFields {
		f, err := models.ParseField(name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size_mb", DefaultLogMaxSizeMB)
	v.SetDefault("logging.max_backups", DefaultLogMaxBackups)
	v.SetDefault("logging.max_age_days", DefaultLogMaxAgeDays)
	v.SetDefault("logging.compress", false)

	v.SetDefault("report.status", string(models.StatusActive))
	v.SetDefault("report.sort_fields", []string{
		models.FieldName.Label(),
		models.FieldStatus.Label(),
	})

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(homeDir(), ".roster"))
	v.AddConfigPath(".")

	// Environment variables
	v.SetEnvPrefix("ROSTER")
	v.AutomaticEnv()

	_ = v.BindEnv("logging.level", "ROSTER_LOGGING_LEVEL")
	_ = v.BindEnv("logging.format", "ROSTER_LOGGING_FORMAT")
	_ = v.BindEnv("logging.file", "ROSTER_LOGGING_FILE")
	_ = v.BindEnv("report.status", "ROSTER_REPORT_STATUS")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// No config file: defaults + env vars.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that configuration values are set and consistent.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Report.Fields(); err != nil {
		return fmt.Errorf("report.sort_fields: %w", err)
	}
	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
