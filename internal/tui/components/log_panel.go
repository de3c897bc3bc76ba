package components

import (
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/lbrxagents/a2a-dash/internal/tui/styles"
)

// LogPanel shows the log buffer pinned to its newest lines.
type LogPanel struct {
	Lines   []string
	Width   int
	Height  int
	Focused bool
}

// Render returns the framed log view. A fresh viewport is built per call
// so rendering never carries scroll state between frames.
func (l LogPanel) Render() string {
	frame := Frame{Title: "Logs", Width: l.Width, Height: l.Height, Focused: l.Focused}
	innerW, innerH := frame.InnerWidth(), frame.InnerHeight()

	if len(l.Lines) == 0 {
		frame.Lines = []string{styles.Dim("no log output")}
		return frame.Render()
	}

	clipped := make([]string, len(l.Lines))
	for i, line := range l.Lines {
		clipped[i] = styles.TruncateWithEllipsis(styles.SingleLine(line), innerW)
	}

	vp := viewport.New(innerW, innerH)
	vp.SetContent(joinLines(clipped))
	vp.GotoBottom()

	frame.Lines = splitLines(vp.View())
	return frame.Render()
}
