package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/google/go-cmp/cmp"

	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/internal/config"
)

// initTestPaths points the XDG base directories at a temp dir so the
// tests never touch the real config or data locations.
func initTestPaths(t *testing.T) {
	t.Helper()

	dir := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))

	xdg.Reload()

	config.InitializePaths()
}

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Data: config.DataConfig{
			File: config.RecordsFilePath(),
		},
		Export: config.ExportConfig{
			SheetName: "WorkHours",
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		Settings: config.SettingsConfig{
			Cmd:            "",
			TwentyFourHour: true,
		},
	}
}

func TestViperWriteDefaults(t *testing.T) {
	initTestPaths(t)

	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("expected a default config file to be written: %v", err)
	}

	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestViperReadConfig(t *testing.T) {
	initTestPaths(t)

	configPath := filepath.Join(t.TempDir(), "config.yml")

	contents := `data:
  file: /tmp/tracker/custom.json
export:
  sheet_name: Hours
notifications:
  enabled: false
settings:
  cmd: notify-send done
  24hr_clock: false
`

	err := os.WriteFile(configPath, []byte(contents), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	want := &config.Config{
		Data: config.DataConfig{
			File: "/tmp/tracker/custom.json",
		},
		Export: config.ExportConfig{
			SheetName: "Hours",
		},
		Notifications: config.NotificationConfig{
			Enabled: false,
		},
		Settings: config.SettingsConfig{
			Cmd:            "notify-send done",
			TwentyFourHour: false,
		},
	}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyDataFileFallback(t *testing.T) {
	initTestPaths(t)

	configPath := filepath.Join(t.TempDir(), "config.yml")

	contents := `data:
  file: ""
`

	err := os.WriteFile(configPath, []byte(contents), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Data.File != config.RecordsFilePath() {
		t.Errorf(
			"expected empty data.file to fall back to %s, but got: %s",
			config.RecordsFilePath(),
			cfg.Data.File,
		)
	}
}

func TestEnvPathSuffix(t *testing.T) {
	t.Setenv("WORKHOURS_ENV", "dev")

	initTestPaths(t)

	cases := []struct {
		path   string
		suffix string
	}{
		{config.ConfigFilePath(), "config_dev.yml"},
		{config.RecordsFilePath(), "records_dev.json"},
		{config.LogFilePath(), "workhours_dev.log"},
	}

	for _, tc := range cases {
		if !strings.HasSuffix(tc.path, tc.suffix) {
			t.Errorf("expected %s to end with %s", tc.path, tc.suffix)
		}
	}
}
