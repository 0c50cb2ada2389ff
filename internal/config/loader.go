package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-relative config location checked by LoadHoppy.
const LocalPath = "configs/hoppy.yaml"

// LoadHoppy loads the game tuning.
// Search order: customPath -> ~/.hoppy/configs/hoppy.yaml -> ./configs/hoppy.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
func LoadHoppy(customPath string) (HoppyConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HoppyConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return HoppyConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User and local files are optional; a broken one falls through.
	for _, path := range []string{UserConfigPath(), LocalPath} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := Parse(defaultHoppyYAML)
	if err != nil {
		return DefaultHoppyConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
func Parse(data []byte) (HoppyConfig, error) {
	cfg := DefaultHoppyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HoppyConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return HoppyConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg HoppyConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// UserConfigPath returns the per-user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hoppy", "configs", "hoppy.yaml")
}

// ResolvePath returns the file LoadHoppy would read for customPath, or an
// empty string when the embedded default would be used.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range []string{UserConfigPath(), LocalPath} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if _, err := Parse(data); err == nil {
				return path
			}
		}
	}
	return ""
}
