package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lbrxagents/a2a-dash/internal/tui/styles"
)

// TabBar renders an inline panel indicator with the active tab
// highlighted.
type TabBar struct {
	Tabs      []string
	ActiveTab int
}

// Render returns the styled tabs. It has no fixed width so it can sit
// inside the title bar.
func (t TabBar) Render() string {
	if len(t.Tabs) == 0 {
		return ""
	}

	activeStyle := lipgloss.NewStyle().
		Foreground(styles.AccentPrimary).
		Bold(true).
		Underline(true).
		PaddingLeft(1).
		PaddingRight(1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		PaddingLeft(1).
		PaddingRight(1)

	tabs := make([]string, 0, len(t.Tabs))
	for i, tab := range t.Tabs {
		if i == t.ActiveTab {
			tabs = append(tabs, activeStyle.Render(tab))
		} else {
			tabs = append(tabs, inactiveStyle.Render(tab))
		}
	}

	sep := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("│")
	return strings.Join(tabs, sep)
}
