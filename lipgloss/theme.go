// Package lipgloss provides theme implementations and terminal
// rendering using the Lipgloss styling library.
package lipgloss

import "github.com/pgebal/commitsense"

// Compile-time interface verification.
var _ commitsense.Theme = (*Theme)(nil)

// Theme implements commitsense.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles commitsense.Styles
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() commitsense.Styles {
	return t.styles
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		styles: commitsense.Styles{
			Primary: commitsense.ColorPair{
				Foreground: "#a6e3a1", // Green
			},
			Alternative: commitsense.ColorPair{
				Foreground: "#cdd6f4", // Soft white
			},
			TypeTag: commitsense.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
			Rationale: commitsense.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			Summary: commitsense.ColorPair{
				Foreground: "#f9e2af", // Yellow
			},
			Usage: commitsense.ColorPair{
				Foreground: "#94e2d5", // Teal
			},
			Selected: commitsense.ColorPair{
				Foreground: "#1e1e2e", // Dark text
				Background: "#a6e3a1", // on bright green
			},
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: commitsense.Styles{
			Primary: commitsense.ColorPair{
				Foreground: "#40a02b", // Green
			},
			Alternative: commitsense.ColorPair{
				Foreground: "#4c4f69", // Dark gray
			},
			TypeTag: commitsense.ColorPair{
				Foreground: "#1e66f5", // Blue
			},
			Rationale: commitsense.ColorPair{
				Foreground: "#8c8fa1", // Muted gray
			},
			Summary: commitsense.ColorPair{
				Foreground: "#df8e1d", // Yellow
			},
			Usage: commitsense.ColorPair{
				Foreground: "#179299", // Teal
			},
			Selected: commitsense.ColorPair{
				Foreground: "#eff1f5", // Light text
				Background: "#40a02b", // on green
			},
		},
	}
}
