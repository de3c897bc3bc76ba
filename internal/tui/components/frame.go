package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/lbrxagents/a2a-dash/internal/tui/styles"
)

// Frame draws a bordered box of exactly width x height cells with title
// set into the top border. Body lines are clipped to the inner area.
type Frame struct {
	Title   string
	Lines   []string
	Width   int
	Height  int
	Focused bool
}

// InnerWidth is the number of body columns inside the border.
func (f Frame) InnerWidth() int { return max(f.Width-2, 0) }

// InnerHeight is the number of body rows inside the border.
func (f Frame) InnerHeight() int { return max(f.Height-2, 0) }

// Render returns the framed box.
func (f Frame) Render() string {
	if f.Width < 2 || f.Height < 2 {
		return ""
	}

	style := styles.Panel
	if f.Focused {
		style = styles.PanelFocused
	}
	border := style.GetBorderStyle()
	paint := lipgloss.NewStyle().Foreground(style.GetBorderTopForeground())
	innerW := f.InnerWidth()

	title := ""
	if f.Title != "" && innerW > 2 {
		title = styles.Title.Render(ansi.Truncate(" "+f.Title+" ", innerW-1, "…"))
	}
	fill := innerW - 1 - ansi.StringWidth(title)
	top := paint.Render(border.TopLeft+border.Top) + title +
		paint.Render(strings.Repeat(border.Top, max(fill, 0))+border.TopRight)
	if title == "" {
		top = paint.Render(border.TopLeft + strings.Repeat(border.Top, innerW) + border.TopRight)
	}

	lines := make([]string, 0, f.Height)
	lines = append(lines, top)
	side := paint.Render(border.Left)
	rightSide := paint.Render(border.Right)
	for _, body := range fitBlock(f.Lines, innerW, f.InnerHeight()) {
		lines = append(lines, side+body+rightSide)
	}
	lines = append(lines, paint.Render(border.BottomLeft+strings.Repeat(border.Bottom, innerW)+border.BottomRight))
	return joinLines(lines)
}
