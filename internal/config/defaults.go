package config

import (
	_ "embed"
)

//go:embed defaults/golf.yaml
var defaultGolfYAML []byte

// DefaultGolfConfig returns the default gameplay configuration. Values here
// mirror defaults/golf.yaml and serve as the last-resort fallback.
func DefaultGolfConfig() GolfConfig {
	return GolfConfig{
		Aim: AimConfig{
			StepWD:     2,
			FastStepWD: 10,
		},
		Power: PowerConfig{
			MinSpeedF10: 12,
			MaxSpeedF10: 110,
			SweepMS:     1600,
		},
		Camera: CameraConfig{
			ScaleF10:        256,
			AttractScaleF10: 192,
			OrbitDegPerSec:  20,
		},
		Timing: TimingConfig{
			HoleBannerMS: 2000,
			SunkBannerMS: 2500,
		},
		Theme: ThemeGreen,
	}
}
