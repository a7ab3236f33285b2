package tui

import "github.com/charmbracelet/lipgloss"

// Color palette. Adaptive pairs so the dark-mode toggle only has to
// flip the assumed background.
var (
	ColorGreen  = lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"}
	ColorCyan   = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}
	ColorWhite  = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#FFFFFF"}
	ColorGray   = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}
	ColorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}
	ColorRed    = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
)

// Reusable styles
var (
	StyleNormal = lipgloss.NewStyle().Foreground(ColorWhite)

	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	// StyleStock marks in-stock books.
	StyleStock = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleGenre is for genre tags.
	StyleGenre = lipgloss.NewStyle().Foreground(ColorCyan)

	StyleHelp = lipgloss.NewStyle().Foreground(ColorGray)

	StyleError = lipgloss.NewStyle().Foreground(ColorRed)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	StyleBorder = lipgloss.NewStyle().
			Foreground(ColorGray).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray)
)

// SetDarkMode pins the background assumption so the adaptive palette
// renders its dark or light variants. This is the display toggle.
func SetDarkMode(dark bool) {
	lipgloss.SetHasDarkBackground(dark)
}
