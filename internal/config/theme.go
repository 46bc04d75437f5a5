package config

import "fmt"

// ThemeName selects a display palette. The game ships a full-color theme and
// a grayscale one for terminals where the colors read poorly.
type ThemeName string

const (
	ThemeGreen ThemeName = "green"
	ThemeGray  ThemeName = "gray"
)

// ParseTheme validates a theme name, defaulting empty to the color theme.
func ParseTheme(s string) (ThemeName, error) {
	switch ThemeName(s) {
	case "":
		return ThemeGreen, nil
	case ThemeGreen, ThemeGray:
		return ThemeName(s), nil
	default:
		return "", fmt.Errorf("config: unknown theme %q (want green or gray)", s)
	}
}
