// Package config handles the tracker's configuration and filesystem
// paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Data          DataConfig         `mapstructure:"data"`
		Export        ExportConfig       `mapstructure:"export"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Settings      SettingsConfig     `mapstructure:"settings"`
	}

	// DataConfig locates durable record storage.
	DataConfig struct {
		// File is the path to the JSON record file. Each store owns
		// exactly one file; pointing two processes at the same file is
		// unsupported.
		File string `mapstructure:"file"`
	}

	// ExportConfig holds spreadsheet export settings.
	ExportConfig struct {
		SheetName string `mapstructure:"sheet_name"`
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SettingsConfig holds general behaviour settings.
	SettingsConfig struct {
		// Cmd is an arbitrary command executed after each recorded
		// session.
		Cmd            string `mapstructure:"cmd"`
		TwentyFourHour bool   `mapstructure:"24hr_clock"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v1.0.0"

var (
	configDir       = "workhours"
	configFileName  = "config.yml"
	recordsFileName = "records.json"
	logFileName     = "workhours.log"
	configFilePath  string
	recordsFilePath string
	logFilePath     string
)

func ConfigFilePath() string {
	return configFilePath
}

func RecordsFilePath() string {
	return recordsFilePath
}

func LogFilePath() string {
	return logFilePath
}

// InitializePaths resolves the configuration, data, and log file
// locations. WORKHOURS_ENV separates files for development and test
// runs.
func InitializePaths() {
	env := strings.TrimSpace(os.Getenv("WORKHOURS_ENV"))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		recordsFileName = fmt.Sprintf("records_%s.json", env)
		logFileName = fmt.Sprintf("workhours_%s.log", env)
	}

	var err error

	configFilePath, err = xdg.ConfigFile(
		filepath.Join(configDir, configFileName),
	)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	recordsFilePath = filepath.Join(dataDir, recordsFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New creates a Config by applying the given options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", errConfigOption, err)
		}
	}

	return cfg, nil
}
