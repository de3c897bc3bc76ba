package components

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbrxagents/a2a-dash/internal/reader"
)

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func assertSize(t *testing.T, s string, width, height int) {
	t.Helper()
	lines := plainLines(s)
	require.Len(t, lines, height)
	for i, l := range lines {
		assert.Equal(t, width, ansi.StringWidth(l), "line %d: %q", i, l)
	}
}

func TestFrameExactSize(t *testing.T) {
	for _, size := range [][2]int{{10, 4}, {40, 12}, {3, 2}} {
		f := Frame{Title: "A very long title indeed", Lines: []string{"one", strings.Repeat("x", 100)}, Width: size[0], Height: size[1]}
		assertSize(t, f.Render(), size[0], size[1])
	}
}

func TestFrameTooSmallRendersNothing(t *testing.T) {
	assert.Empty(t, Frame{Width: 1, Height: 5}.Render())
	assert.Empty(t, Frame{Width: 5, Height: 1}.Render())
}

func TestFrameTitleInBorder(t *testing.T) {
	lines := plainLines(Frame{Title: "Logs", Width: 20, Height: 3}.Render())
	assert.Contains(t, lines[0], " Logs ")
}

func TestAgentListMarksSelection(t *testing.T) {
	agents := []reader.AgentCard{{UUID: "a", Name: "alpha"}, {UUID: "b", Name: "beta"}}
	lines := plainLines(AgentList{Agents: agents, Selected: 1, Width: 20, Height: 5}.Render())

	assert.Contains(t, lines[1], "  alpha")
	assert.NotContains(t, lines[1], SelectionMarker)
	assert.Contains(t, lines[2], SelectionMarker+" beta")
}

func TestAgentListEmpty(t *testing.T) {
	out := ansi.Strip(AgentList{Width: 30, Height: 5}.Render())
	assert.Contains(t, out, "no agents discovered")
	assert.NotContains(t, out, SelectionMarker)
}

func TestOrchestratorPanelTruncatesToHeight(t *testing.T) {
	cmds := make([]string, 20)
	for i := range cmds {
		cmds[i] = fmt.Sprintf("cmd-%02d", i)
	}
	out := OrchestratorPanel{Commands: cmds, Width: 30, Height: 6}.Render()
	assertSize(t, out, 30, 6)

	plain := ansi.Strip(out)
	assert.Contains(t, plain, "Orchestrator Queue")
	assert.Contains(t, plain, "cmd-00")
	assert.Contains(t, plain, "cmd-03")
	assert.NotContains(t, plain, "cmd-04")
}

func TestOrchestratorPanelEmpty(t *testing.T) {
	assert.Contains(t, ansi.Strip(OrchestratorPanel{Width: 30, Height: 4}.Render()), "queue is empty")
}

func TestLogPanelPinnedToNewest(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = fmt.Sprintf("line-%02d", i)
	}
	out := LogPanel{Lines: lines, Width: 30, Height: 7}.Render()
	assertSize(t, out, 30, 7)

	plain := ansi.Strip(out)
	assert.Contains(t, plain, "line-49")
	assert.Contains(t, plain, "line-45")
	assert.NotContains(t, plain, "line-44")
}

func TestLogPanelEmpty(t *testing.T) {
	assert.Contains(t, ansi.Strip(LogPanel{Width: 30, Height: 4}.Render()), "no log output")
}

func TestMetricsPanel(t *testing.T) {
	m := MetricsPanel{
		Memory: []uint64{10, 30, 20},
		Alerts: []reader.Alert{
			{Path: "a.go", Message: "bad", Severity: reader.SeverityError},
			{Path: "b.go", Message: "meh", Severity: reader.SeverityWarning},
		},
		Width:  60,
		Height: 12,
	}
	out := m.Render()
	assertSize(t, out, 60, 12)

	plain := ansi.Strip(out)
	assert.Contains(t, plain, "now 20  min 10  max 30")
	assert.Contains(t, plain, "Semgrep alerts")
	assert.Contains(t, plain, "a.go: bad")
	assert.Contains(t, plain, "b.go: meh")
}

func TestMetricsPanelEmpty(t *testing.T) {
	plain := ansi.Strip(MetricsPanel{Width: 40, Height: 10}.Render())
	assert.Contains(t, plain, "no samples yet")
	assert.Contains(t, plain, "no alerts")
}

func TestOverlayReplacesCoveredCells(t *testing.T) {
	bg := strings.Join([]string{"aaaaaaaaaa", "bbbbbbbbbb", "cccccccccc"}, "\n")
	out := Overlay(bg, "XX\nYY", 10, 3, 1)
	assert.Equal(t, []string{"aaaaaaaaaa", "bbbXXbbbbb", "cccYYccccc"}, plainLines(out))
}

func TestOverlayPadsShortForegroundRows(t *testing.T) {
	out := Overlay("0123456789\n0123456789", "ABC\nD", 10, 2, 0)
	assert.Equal(t, []string{"01ABC56789", "01D  56789"}, plainLines(out))
}

func TestHelpOverlayPlacement(t *testing.T) {
	h := HelpOverlay{Entries: []HelpEntry{{Key: "q", Desc: "quit"}}, Width: 100, Height: 40}
	x, y, w, ht := h.Rect()
	assert.Equal(t, [4]int{20, 12, 60, 16}, [4]int{x, y, w, ht})

	box := h.Render()
	assertSize(t, box, 60, 16)
	assert.Contains(t, ansi.Strip(box), "quit")

	bg := Fit(strings.Repeat(strings.Repeat("#", 100)+"\n", 40), 100, 40)
	placed := plainLines(h.Place(bg))
	require.Len(t, placed, 40)
	for row := 12; row < 28; row++ {
		assert.NotContains(t, ansi.Cut(placed[row], 20, 80), "#", "row %d", row)
	}
	assert.Equal(t, strings.Repeat("#", 100), placed[11])
	assert.Equal(t, strings.Repeat("#", 100), placed[28])
}

func TestHelpOverlayRenderIsStable(t *testing.T) {
	h := HelpOverlay{Entries: []HelpEntry{{Key: "?", Desc: "toggle help"}}, Width: 80, Height: 30}
	assert.Equal(t, h.Render(), h.Render())
}

func TestHeaderAndFooterWidth(t *testing.T) {
	head := Header{
		Panels:      []string{"orchestrator", "logs", "metrics"},
		Active:      1,
		Agents:      3,
		LastRefresh: time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC),
		Width:       120,
	}.Render()
	assertSize(t, head, 120, 1)
	assert.Contains(t, ansi.Strip(head), AppTitle)
	assert.Contains(t, ansi.Strip(head), "logs")

	assertSize(t, Header{Width: 20}.Render(), 20, 1)

	foot := Footer{
		Bindings: []key.Binding{key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))},
		Width:    50,
	}.Render()
	assertSize(t, foot, 50, 1)
	assert.Contains(t, ansi.Strip(foot), "quit")
}

func TestTabBar(t *testing.T) {
	out := ansi.Strip(TabBar{Tabs: []string{"one", "two"}, ActiveTab: 0}.Render())
	assert.Equal(t, " one │ two ", out)
	assert.Empty(t, TabBar{}.Render())
}

func TestMultiLineAgentNameTakesOneRow(t *testing.T) {
	agents := []reader.AgentCard{
		{UUID: "a", Name: "multi\nline\nname"},
		{UUID: "b", Name: "beta"},
	}
	out := AgentList{Agents: agents, Selected: 0, Width: 30, Height: 6}.Render()
	assertSize(t, out, 30, 6)

	lines := plainLines(out)
	assert.Contains(t, lines[1], SelectionMarker+" multi line name")
	assert.Contains(t, lines[2], "  beta")
	for _, l := range lines[1:5] {
		assert.True(t, strings.HasPrefix(l, "│") && strings.HasSuffix(l, "│"), "%q", l)
	}
}

func TestMultiLineAlertTakesOneRow(t *testing.T) {
	m := MetricsPanel{
		Alerts: []reader.Alert{
			{Path: "a.go", Message: "line one\nline two\nline three", Severity: reader.SeverityError},
			{Path: "b.go", Message: "\x1b[31mcoloured\x1b[0m", Severity: reader.SeverityWarning},
		},
		Width:  60,
		Height: 12,
	}
	out := m.Render()
	assertSize(t, out, 60, 12)

	lines := plainLines(out)
	// Rows 0-4 are the memory band; the alerts box starts at row 5.
	assert.Contains(t, lines[6], "a.go: line one line two line three")
	assert.Contains(t, lines[7], "b.go: coloured")
	assert.NotContains(t, out, "\x1b[31mcoloured")
}

func TestControlCharactersInQueueAndLogs(t *testing.T) {
	cmds := []string{"deploy\r\nrollback", "build\tfast"}
	out := OrchestratorPanel{Commands: cmds, Width: 40, Height: 5}.Render()
	assertSize(t, out, 40, 5)
	lines := plainLines(out)
	assert.Contains(t, lines[1], "deploy rollback")
	assert.Contains(t, lines[2], "build    fast")

	logs := []string{"step 1\rstep 2", "\x1b[32mok\x1b[0m\x07"}
	out = LogPanel{Lines: logs, Width: 40, Height: 5}.Render()
	assertSize(t, out, 40, 5)
	plain := ansi.Strip(out)
	assert.Contains(t, plain, "step 1 step 2")
	assert.Contains(t, plain, "ok")
	assert.NotContains(t, out, "\x07")
}
