package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/lbrxagents/a2a-dash/internal/tui/styles"
)

// Footer renders one-line key binding hints.
type Footer struct {
	Bindings []key.Binding
	Width    int
}

// Render returns the styled footer string.
func (f Footer) Render() string {
	width := f.Width
	if width <= 0 {
		width = 80
	}

	h := help.New()
	h.Width = width - styles.FooterBar.GetHorizontalPadding()
	h.ShortSeparator = " • "
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(styles.AccentPrimary).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(styles.TextMuted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(styles.TextMuted)

	return fitLine(styles.FooterBar.Width(width).Render(h.ShortHelpView(f.Bindings)), width)
}
