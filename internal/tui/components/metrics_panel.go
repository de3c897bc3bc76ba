package components

import (
	"fmt"
	"slices"

	"github.com/lbrxagents/a2a-dash/internal/reader"
	"github.com/lbrxagents/a2a-dash/internal/tui/styles"
)

// MemoryBandHeight is the fixed height of the memory trend box.
const MemoryBandHeight = 5

// MetricsPanel stacks the memory trend above the static-analysis alerts.
type MetricsPanel struct {
	Memory  []uint64
	Alerts  []reader.Alert
	Width   int
	Height  int
	Focused bool
}

// Render returns both boxes joined vertically, Height rows in total.
func (m MetricsPanel) Render() string {
	bandH := min(MemoryBandHeight, m.Height)
	alertsH := m.Height - bandH

	parts := []string{m.renderMemory(bandH)}
	if alertsH >= 2 {
		parts = append(parts, m.renderAlerts(alertsH))
	}
	return joinLines(parts)
}

func (m MetricsPanel) renderMemory(height int) string {
	frame := Frame{Title: m.memoryTitle(), Width: m.Width, Height: height, Focused: m.Focused}
	if len(m.Memory) == 0 {
		frame.Lines = []string{styles.Dim("no samples yet")}
		return frame.Render()
	}
	frame.Lines = splitLines(styles.Sparkline(m.Memory, frame.InnerWidth(), frame.InnerHeight()))
	return frame.Render()
}

// memoryTitle carries the latest, min and max samples next to the label.
func (m MetricsPanel) memoryTitle() string {
	const label = "Memory used (MB)"
	if len(m.Memory) == 0 {
		return label
	}
	return fmt.Sprintf("%s  now %d  min %d  max %d",
		label, m.Memory[len(m.Memory)-1], slices.Min(m.Memory), slices.Max(m.Memory))
}

func (m MetricsPanel) renderAlerts(height int) string {
	frame := Frame{Title: "Semgrep alerts", Width: m.Width, Height: height, Focused: m.Focused}

	lines := make([]string, 0, len(m.Alerts))
	for _, a := range m.Alerts {
		text := styles.TruncateWithEllipsis(styles.SingleLine(a.Path+": "+a.Message), frame.InnerWidth())
		lines = append(lines, styles.SeverityStyle(a.Severity).Render(text))
	}
	if len(lines) == 0 {
		lines = append(lines, styles.Dim("no alerts"))
	}

	frame.Lines = lines
	return frame.Render()
}
