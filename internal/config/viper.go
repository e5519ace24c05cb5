package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyDataFile             = "data.file"
	keyExportSheetName      = "export.sheet_name"
	keyNotificationsEnabled = "notifications.enabled"
	keySessionCmd           = "settings.cmd"
	keyTwentyFourHour       = "settings.24hr_clock"
)

// WithViperConfig returns an Option that loads configuration from the
// YAML config file, writing one with the defaults if none exists yet.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setViperDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %v", errReadConfig, err)
		}

		if err := v.WriteConfig(); err != nil {
			return fmt.Errorf("%w: %v", errWriteConfig, err)
		}

		return loadViperConfig(v, c)
	}
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault(keyDataFile, RecordsFilePath())
	v.SetDefault(keyExportSheetName, "WorkHours")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTwentyFourHour, true)
}

func loadViperConfig(v *viper.Viper, c *Config) error {
	err := v.Unmarshal(c)
	if err != nil {
		return err
	}

	if c.Data.File == "" {
		c.Data.File = RecordsFilePath()
	}

	return nil
}
