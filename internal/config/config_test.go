package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/roster/internal/models"
)

// validCfg returns a fully-valid Config for mutation testing.
func validCfg() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
			MaxAgeDays: DefaultLogMaxAgeDays,
		},
		Report: ReportConfig{
			Status:     "Active",
			SortFields: []string{"Name", "Status"},
		},
	}
}

// isolate keeps Load away from any real config file.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROSTER_LOGGING_LEVEL", "")
	t.Setenv("ROSTER_LOGGING_FORMAT", "")
	t.Setenv("ROSTER_LOGGING_FILE", "")
	t.Setenv("ROSTER_REPORT_STATUS", "")
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Empty(t, cfg.Logging.File)
	assert.Equal(t, DefaultLogMaxSizeMB, cfg.Logging.MaxSizeMB)
	assert.Equal(t, "Active", cfg.Report.Status)
	assert.Equal(t, []string{"Name", "Status"}, cfg.Report.SortFields)

	fields, err := cfg.Report.Fields()
	require.NoError(t, err)
	assert.Equal(t, []models.Field{models.FieldName, models.FieldStatus}, fields)
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("ROSTER_LOGGING_LEVEL", "debug")
	t.Setenv("ROSTER_REPORT_STATUS", "Inactive")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "Inactive", cfg.Report.Status)
}

func TestLoad_ConfigFile(t *testing.T) {
	isolate(t)
	home := os.Getenv("HOME")
	dir := filepath.Join(home, ".roster")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := "logging:\n  format: json\nreport:\n  sort_fields:\n    - Favorite Movie\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, []string{"Favorite Movie"}, cfg.Report.SortFields)
}

func TestLoad_InvalidEnv(t *testing.T) {
	isolate(t)
	t.Setenv("ROSTER_LOGGING_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating config")
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validCfg().Validate())
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, "Level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "Format"},
		{"negative max size", func(c *Config) { c.Logging.MaxSizeMB = -1 }, "MaxSizeMB"},
		{"empty status", func(c *Config) { c.Report.Status = "" }, "Status"},
		{"no sort fields", func(c *Config) { c.Report.SortFields = nil }, "SortFields"},
		{"unknown sort field", func(c *Config) { c.Report.SortFields = []string{"Name", "Age"} }, "report.sort_fields"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validCfg()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
