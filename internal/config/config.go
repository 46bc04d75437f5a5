// Package config provides YAML-based gameplay configuration loading and
// theme management for the game.
package config

// GolfConfig contains all tunable gameplay parameters.
type GolfConfig struct {
	Aim    AimConfig    `yaml:"aim"`
	Power  PowerConfig  `yaml:"power"`
	Camera CameraConfig `yaml:"camera"`
	Timing TimingConfig `yaml:"timing"`
	Theme  ThemeName    `yaml:"theme"`
}

// AimConfig defines how the aim heading responds to input.
type AimConfig struct {
	StepWD     int `yaml:"step_wd"`      // degrees per aim nudge
	FastStepWD int `yaml:"fast_step_wd"` // degrees per nudge while held
}

// PowerConfig defines the shot power meter. Speeds are world units per ms
// in f10; the meter sweeps min..max..min over sweep_ms.
type PowerConfig struct {
	MinSpeedF10 int `yaml:"min_speed_f10"`
	MaxSpeedF10 int `yaml:"max_speed_f10"`
	SweepMS     int `yaml:"sweep_ms"`
}

// CameraConfig defines display camera behavior. Scales are f10 world-to-cell
// factors; 1024 maps one world unit to one cell.
type CameraConfig struct {
	ScaleF10        int `yaml:"scale_f10"`         // scale while aiming and rolling
	AttractScaleF10 int `yaml:"attract_scale_f10"` // scale for the attract orbit
	OrbitDegPerSec  int `yaml:"orbit_deg_per_sec"` // attract camera spin rate
}

// TimingConfig defines banner durations.
type TimingConfig struct {
	HoleBannerMS int `yaml:"hole_banner_ms"` // hole number + par card
	SunkBannerMS int `yaml:"sunk_banner_ms"` // score card after sinking
}
