package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGolf loads the gameplay configuration.
// Search order: customPath -> ~/.tinygolf/configs/golf.yaml -> ./configs/golf.yaml -> embedded default
func LoadGolf(customPath string) (GolfConfig, error) {
	var cfg GolfConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("golf.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg)
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/golf.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg)
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultGolfYAML, &cfg); err != nil {
		return DefaultGolfConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tinygolf", "configs", filename)
}

// normalize validates a loaded config and backfills zero values from the
// hardcoded defaults, so a sparse override file stays playable.
func normalize(cfg GolfConfig) (GolfConfig, error) {
	def := DefaultGolfConfig()
	if cfg.Aim.StepWD <= 0 {
		cfg.Aim.StepWD = def.Aim.StepWD
	}
	if cfg.Aim.FastStepWD <= 0 {
		cfg.Aim.FastStepWD = def.Aim.FastStepWD
	}
	if cfg.Power.MinSpeedF10 <= 0 {
		cfg.Power.MinSpeedF10 = def.Power.MinSpeedF10
	}
	if cfg.Power.MaxSpeedF10 <= 0 {
		cfg.Power.MaxSpeedF10 = def.Power.MaxSpeedF10
	}
	if cfg.Power.MaxSpeedF10 < cfg.Power.MinSpeedF10 {
		return cfg, fmt.Errorf("config: power max_speed_f10 %d below min_speed_f10 %d",
			cfg.Power.MaxSpeedF10, cfg.Power.MinSpeedF10)
	}
	// A sweep below 2ms has no half-period; treat it as unset.
	if cfg.Power.SweepMS < 2 {
		cfg.Power.SweepMS = def.Power.SweepMS
	}
	if cfg.Camera.ScaleF10 <= 0 {
		cfg.Camera.ScaleF10 = def.Camera.ScaleF10
	}
	if cfg.Camera.AttractScaleF10 <= 0 {
		cfg.Camera.AttractScaleF10 = def.Camera.AttractScaleF10
	}
	if cfg.Camera.OrbitDegPerSec <= 0 {
		cfg.Camera.OrbitDegPerSec = def.Camera.OrbitDegPerSec
	}
	if cfg.Timing.HoleBannerMS <= 0 {
		cfg.Timing.HoleBannerMS = def.Timing.HoleBannerMS
	}
	if cfg.Timing.SunkBannerMS <= 0 {
		cfg.Timing.SunkBannerMS = def.Timing.SunkBannerMS
	}
	theme, err := ParseTheme(string(cfg.Theme))
	if err != nil {
		return cfg, err
	}
	cfg.Theme = theme
	return cfg, nil
}
