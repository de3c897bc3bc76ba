package components

import (
	"github.com/lbrxagents/a2a-dash/internal/reader"
	"github.com/lbrxagents/a2a-dash/internal/tui/styles"
)

// SelectionMarker prefixes the selected agent row.
const SelectionMarker = "▶"

// AgentList renders the left-hand list of discovered agents, one row per
// card in the given order.
type AgentList struct {
	Agents   []reader.AgentCard
	Selected int
	Width    int
	Height   int
}

// Render returns the framed agent list.
func (a AgentList) Render() string {
	frame := Frame{Title: "Agents", Width: a.Width, Height: a.Height}

	lines := make([]string, 0, len(a.Agents))
	for i, card := range a.Agents {
		name := styles.SingleLine(card.Name)
		if i == a.Selected {
			lines = append(lines, styles.Selected.Render(SelectionMarker+" "+name))
			continue
		}
		lines = append(lines, "  "+name)
	}
	if len(lines) == 0 {
		lines = append(lines, styles.Dim("  no agents discovered"))
	}

	frame.Lines = lines
	return frame.Render()
}
