package config

import (
	_ "embed"
)

//go:embed defaults/paddle.yaml
var defaultYAML []byte

// Default returns the hardcoded fallback configuration, used when even the
// embedded YAML fails to parse.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			TickMillis: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleMinutes: 30,
		},
	}
}
