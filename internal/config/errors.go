package config

import "errors"

var (
	errConfigOption = errors.New("config option error")

	errReadConfig = errors.New("reading config file failed")

	errWriteConfig = errors.New("writing default config failed")
)
