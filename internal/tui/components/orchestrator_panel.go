package components

import "github.com/lbrxagents/a2a-dash/internal/tui/styles"

// OrchestratorPanel lists queued orchestrator commands, newest first,
// truncated to the rows the frame can hold.
type OrchestratorPanel struct {
	Commands []string
	Width    int
	Height   int
	Focused  bool
}

// Render returns the framed command list.
func (o OrchestratorPanel) Render() string {
	frame := Frame{Title: "Orchestrator Queue", Width: o.Width, Height: o.Height, Focused: o.Focused}

	rows := min(len(o.Commands), frame.InnerHeight())
	lines := make([]string, 0, rows)
	for _, cmd := range o.Commands[:rows] {
		lines = append(lines, styles.TruncateWithEllipsis(styles.SingleLine(cmd), frame.InnerWidth()))
	}
	if len(o.Commands) == 0 {
		lines = append(lines, styles.Dim("queue is empty"))
	}

	frame.Lines = lines
	return frame.Render()
}
