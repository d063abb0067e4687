package ansisenor

import (
	"fmt"
	"strings"
)

// Theme selects the page colors and the palette used for the 16 base ANSI
// colors. The zero value is ThemeDark.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

// ParseTheme converts a theme name to a Theme. Matching is
// case-insensitive.
func ParseTheme(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	}
	return ThemeDark, fmt.Errorf("invalid theme %q (valid options: light, dark)", name)
}

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// Background returns the page background color.
func (t Theme) Background() string {
	if t == ThemeLight {
		return "#ffffff"
	}
	return "#1e1e1e"
}

// Foreground returns the default text color.
func (t Theme) Foreground() string {
	if t == ThemeLight {
		return "#24292e"
	}
	return "#d4d4d4"
}

// Base ANSI palettes, indexes 0-7 normal and 8-15 bright.
var (
	darkPalette = [16]string{
		"#000000", "#cd3131", "#0dbc79", "#e5e510",
		"#2472c8", "#bc3fbc", "#11a8cd", "#e5e5e5",
		"#666666", "#f14c4c", "#23d18b", "#f5f543",
		"#3b8eea", "#d670d6", "#29b8db", "#ffffff",
	}
	lightPalette = [16]string{
		"#000000", "#cd3131", "#00bc00", "#949800",
		"#0451a5", "#bc05bc", "#0598bc", "#555555",
		"#666666", "#cd3131", "#14ce14", "#b5ba00",
		"#0451a5", "#bc05bc", "#0598bc", "#a5a5a5",
	}
)

// ANSIColor returns the CSS color for a base palette index (0-15).
func (t Theme) ANSIColor(n uint8) string {
	if t == ThemeLight {
		return lightPalette[n&0x0f]
	}
	return darkPalette[n&0x0f]
}

// Color8Bit maps an xterm-256 index to a CSS color. The first 16 entries
// come from the theme palette; the rest use the standard 6x6x6 color cube
// and grayscale ramp.
func (t Theme) Color8Bit(n uint8) string {
	switch {
	case n < 16:
		return t.ANSIColor(n)
	case n < 232:
		c := n - 16
		return fmt.Sprintf("#%02x%02x%02x", cubeLevel(c/36), cubeLevel((c/6)%6), cubeLevel(c%6))
	default:
		v := 8 + 10*(int(n)-232)
		return fmt.Sprintf("#%02x%02x%02x", v, v, v)
	}
}

func cubeLevel(n uint8) int {
	if n == 0 {
		return 0
	}
	return 55 + 40*int(n)
}
