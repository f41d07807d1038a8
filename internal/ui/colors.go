package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Accent colors
const (
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// ApplyColorMode sets the global lipgloss color profile for a color mode:
// "never" forces plain text, "always" forces at least 16 colors even when
// output is piped, and anything else keeps the detected profile.
func ApplyColorMode(mode string) termenv.Profile {
	switch mode {
	case "never":
		DisableColors()
	case "always":
		if lipgloss.ColorProfile() == termenv.Ascii {
			lipgloss.SetColorProfile(termenv.ANSI)
		}
	}
	return lipgloss.ColorProfile()
}

// DisableColors switches lipgloss to monochrome output.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
