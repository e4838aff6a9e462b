package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	Database      DatabaseConfig      `mapstructure:"database"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type DatabaseConfig struct {
	// DataDir holds the database file and its import backup.
	DataDir  string `mapstructure:"data_dir"`
	FileName string `mapstructure:"file_name"`
}

type ObservabilityConfig struct {
	Logging LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfigFromEnv builds a config purely from environment variables, used
// when no config file is present.
func LoadConfigFromEnv() *Config {
	return &Config{
		Database: DatabaseConfig{
			DataDir:  getEnv("HRM_DATA_DIR", "./data"),
			FileName: getEnv("HRM_DB_FILE", "hrm_system.db"),
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("HRM_LOG_LEVEL", "info"),
				Format: getEnv("HRM_LOG_FORMAT", "text"),
			},
		},
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func (c *Config) Validate() error {
	var errs []string

	if err := c.Database.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("database config: %v", err))
	}

	if err := c.Observability.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("logging config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *DatabaseConfig) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir is required")
	}
	if c.FileName == "" {
		return errors.New("file_name is required")
	}
	if strings.ContainsRune(c.FileName, os.PathSeparator) {
		return errors.New("file_name must be a bare file name, not a path")
	}
	return nil
}

func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Level)
	}
	switch c.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", c.Format)
	}
	return nil
}

// DatabasePath is the absolute location of the live database file.
func (c *DatabaseConfig) DatabasePath() string {
	return filepath.Join(c.DataDir, c.FileName)
}

// BackupPath is where import keeps the pre-import copy of the database.
func (c *DatabaseConfig) BackupPath() string {
	base := strings.TrimSuffix(c.FileName, filepath.Ext(c.FileName))
	return filepath.Join(c.DataDir, base+"_backup.db")
}
