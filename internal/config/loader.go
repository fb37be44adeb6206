package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration.
// Search order: customPath -> ~/.paddle/config.yaml -> ./configs/paddle.yaml
// -> embedded default. Only an explicitly requested path produces an error;
// the fallbacks are best-effort.
func Load(customPath string) (Config, error) {
	return load(customPath, searchPaths())
}

// load resolves the config from customPath, then the given fallback paths,
// then the embedded default.
func load(customPath string, fallbacks []string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range fallbacks {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // fall back to hardcoded if embed fails
	}
	return cfg, nil
}

// searchPaths returns the implicit fallback locations, most specific first.
func searchPaths() []string {
	paths := make([]string, 0, 2)
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		paths = append(paths, userCfgPath)
	}
	return append(paths, "configs/paddle.yaml")
}

// userConfigPath returns the per-user config file, or empty if home is
// unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".paddle", "config.yaml")
}
