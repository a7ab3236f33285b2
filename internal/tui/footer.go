package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ClearStatusMsg clears the transient status line (toast).
type ClearStatusMsg struct{}

// StatusCmd returns a tick that clears the status line after a beat.
func StatusCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// ShortcutEntry pairs a trigger key with the display label for the footer.
type ShortcutEntry struct {
	Key   string
	Label string
}

// RenderFooterBar renders a footer bar with shortcut labels. The
// shortcut matching activeCmd is highlighted; others are dim.
func RenderFooterBar(shortcuts []ShortcutEntry, activeCmd string) string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	parts := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		if s.Key != "" && s.Key == activeCmd {
			parts = append(parts, StyleHighlight.Render(s.Label))
		} else {
			parts = append(parts, dimStyle.Render(s.Label))
		}
	}
	return strings.Join(parts, dimStyle.Render("  ·  "))
}
