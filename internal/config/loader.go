package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration and validates it.
// Search order: customPath -> ~/.neon-runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
func LoadRunner(customPath string) (Runner, error) {
	cfg := DefaultRunnerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return finish(cfg, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return finish(cfg, userCfgPath)
			}
			cfg = DefaultRunnerConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/runner.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return finish(cfg, "configs/runner.yaml")
		}
		cfg = DefaultRunnerConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return finish(cfg, "embedded default")
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Runner, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse: %w", err)
	}
	return finish(cfg, "input")
}

func finish(cfg Runner, source string) (Runner, error) {
	cfg.Physics.GroundY = cfg.Field.GroundY
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neon-runner", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Runner, preset DifficultyPreset) {
	s := &cfg.Spawner
	switch preset {
	case DifficultyEasy:
		s.BaseInterval = 2400
		s.BaseSpeed = 4
		s.DifficultyInterval = 45000
	case DifficultyHard:
		s.BaseInterval = 1500
		s.BaseSpeed = 7
		s.DifficultyInterval = 20000
	case DifficultyFixed:
		s.DifficultyInterval = 0
	}

	// Keep the preset inside the configured bounds
	if s.BaseInterval < s.MinInterval {
		s.BaseInterval = s.MinInterval
	}
	if s.BaseSpeed > s.MaxSpeed {
		s.BaseSpeed = s.MaxSpeed
	}
}
