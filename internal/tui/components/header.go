package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/lbrxagents/a2a-dash/internal/tui/styles"
)

// AppTitle heads every frame.
const AppTitle = "lbrxAgents Dashboard (q to quit)"

// Header renders the title bar.
type Header struct {
	Panels      []string // right-hand panel names
	Active      int      // index into Panels
	Agents      int
	LastRefresh time.Time
	Width       int
}

// Render returns the styled header string.
func (h Header) Render() string {
	width := h.Width
	if width <= 0 {
		width = 80
	}

	sep := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("  │  ")

	panel := TabBar{Tabs: h.Panels, ActiveTab: h.Active}.Render()
	agents := styles.Label.Render("Agents: ") + styles.Value.Render(fmt.Sprintf("%d", h.Agents))
	refreshed := styles.Label.Render("Refreshed: ") + styles.Value.Render(h.LastRefresh.Format("15:04:05"))

	content := AppTitle + sep + panel + sep + agents + sep + refreshed
	content = ansi.Truncate(content, width-styles.TitleBar.GetHorizontalPadding(), "…")
	return fitLine(styles.TitleBar.Width(width).Render(content), width)
}
