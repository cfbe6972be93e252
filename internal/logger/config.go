package logger

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// fileConfig mirrors Config with optional booleans so an absent key keeps
// its default
type fileConfig struct {
	Level          string `yaml:"level"`
	ConsoleEnabled *bool  `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    *bool  `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// LoggingConfig wraps the logging block of a query file
type LoggingConfig struct {
	Logging fileConfig `yaml:"logging"`
}

// DefaultConfig returns the configuration used without a logging block:
// warnings and errors on stderr, no file
func DefaultConfig() Config {
	return Config{
		Level:          "WARN",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FileEnabled:    false,
		FilePath:       "logs/pet.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// LoadConfig loads the logging block from a YAML file and applies
// environment variable overrides. An empty path or a file without a
// logging block gives the defaults.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return config, fmt.Errorf("failed to read logging config: %w", err)
		}

		var loggingConfig LoggingConfig
		if err := yaml.Unmarshal(data, &loggingConfig); err != nil {
			return config, fmt.Errorf("invalid logging config: %w", err)
		}
		merge(&config, loggingConfig.Logging)
	}

	applyEnv(&config)
	return config, nil
}

func merge(config *Config, fc fileConfig) {
	if fc.Level != "" {
		config.Level = fc.Level
	}
	if fc.ConsoleEnabled != nil {
		config.ConsoleEnabled = *fc.ConsoleEnabled
	}
	if fc.ConsoleFormat != "" {
		config.ConsoleFormat = fc.ConsoleFormat
	}
	if fc.FileEnabled != nil {
		config.FileEnabled = *fc.FileEnabled
	}
	if fc.FilePath != "" {
		config.FilePath = fc.FilePath
	}
	if fc.FileFormat != "" {
		config.FileFormat = fc.FileFormat
	}
	if fc.FileMaxSizeMB > 0 {
		config.FileMaxSizeMB = fc.FileMaxSizeMB
	}
	if fc.FileMaxBackups > 0 {
		config.FileMaxBackups = fc.FileMaxBackups
	}
	if fc.FileMaxAgeDays > 0 {
		config.FileMaxAgeDays = fc.FileMaxAgeDays
	}
}

func applyEnv(config *Config) {
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.Level = strings.ToUpper(logLevel)
	}

	if consoleFormat := os.Getenv("LOG_CONSOLE_FORMAT"); consoleFormat != "" {
		config.ConsoleFormat = consoleFormat
	}

	if fileEnabled := os.Getenv("LOG_FILE_ENABLED"); fileEnabled != "" {
		if enabled, err := strconv.ParseBool(fileEnabled); err == nil {
			config.FileEnabled = enabled
		}
	}

	if filePath := os.Getenv("LOG_FILE_PATH"); filePath != "" {
		config.FilePath = filePath
	}
}
