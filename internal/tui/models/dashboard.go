package models

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lbrxagents/a2a-dash/internal/app"
	"github.com/lbrxagents/a2a-dash/internal/tui/components"
)

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// TickMsg triggers a redraw every poll interval.
type TickMsg time.Time

// RefreshMsg asks the loop to reconcile the given artifact classes.
type RefreshMsg struct {
	Mode app.Mode
}

// artifactsChangedMsg carries a refresh request from the file watcher.
type artifactsChangedMsg struct {
	mode app.Mode
}

// watcherClosedMsg reports that the watcher channel was closed.
type watcherClosedMsg struct{}

// leftPercent is the agent list's share of the viewport width.
const leftPercent = 30

var panelNames = func() []string {
	names := make([]string, len(app.Panels))
	for i, p := range app.Panels {
		names[i] = p.String()
	}
	return names
}()

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// DashboardModel is the Bubble Tea model for the dashboard. It exclusively
// owns the application state: Update is the only place state changes, and
// View only reads it.
type DashboardModel struct {
	state        *app.State
	refresher    *app.Refresher
	changes      <-chan app.Mode
	pollInterval time.Duration

	width    int
	height   int
	ready    bool
	quitting bool
}

// NewDashboardModel wires a model to its state and refresher. changes may
// be nil when file watching is disabled.
func NewDashboardModel(
	state *app.State,
	refresher *app.Refresher,
	changes <-chan app.Mode,
	pollInterval time.Duration,
) DashboardModel {
	return DashboardModel{
		state:        state,
		refresher:    refresher,
		changes:      changes,
		pollInterval: pollInterval,
	}
}

// State exposes the model's state for inspection.
func (m DashboardModel) State() *app.State { return m.state }

// Quitting reports whether the quit input has been received.
func (m DashboardModel) Quitting() bool { return m.quitting }

func (m DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func waitForChange(changes <-chan app.Mode) tea.Cmd {
	return func() tea.Msg {
		mode, ok := <-changes
		if !ok {
			return watcherClosedMsg{}
		}
		return artifactsChangedMsg{mode: mode}
	}
}

// ---------------------------------------------------------------------------
// Bubble Tea interface
// ---------------------------------------------------------------------------

// Init requests the startup refresh, starts the redraw ticker and, when
// watching, starts listening for artifact changes.
func (m DashboardModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		func() tea.Msg { return RefreshMsg{Mode: app.ModeFull} },
		m.tickCmd(),
	}
	if m.changes != nil {
		cmds = append(cmds, waitForChange(m.changes))
	}
	return tea.Batch(cmds...)
}

// Update handles one message: window resize, key press, tick or refresh.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch in := keys.inputFor(msg); in {
		case app.InputQuit:
			m.quitting = true
			return m, tea.Quit
		case app.InputRefresh:
			m.refresher.Refresh(m.state, app.ModeFull)
		default:
			m.state.Apply(in)
		}

	case RefreshMsg:
		m.refresher.Refresh(m.state, msg.Mode)

	case artifactsChangedMsg:
		m.refresher.Refresh(m.state, msg.mode)
		return m, waitForChange(m.changes)

	case watcherClosedMsg:
		m.changes = nil

	case TickMsg:
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the current state.
func (m DashboardModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "\n  Loading dashboard..."
	}
	return RenderFrame(m.state, m.width, m.height)
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

// RenderFrame lays out one full frame of exactly width x height cells:
//
//	[title bar                                   ]
//	[Agents (30%) | Orchestrator | Logs | Metrics ]
//	[key hints                                   ]
//
// with the help overlay on top when it is visible. It only reads st.
func RenderFrame(st *app.State, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	header := components.Header{
		Panels:      panelNames,
		Active:      int(st.Panel),
		Agents:      len(st.Agents),
		LastRefresh: st.LastRefresh,
		Width:       width,
	}.Render()
	footer := components.Footer{Bindings: keys.ShortHelp(), Width: width}.Render()

	bodyH := max(height-2, 0)
	leftW := width * leftPercent / 100
	rightW := width - leftW

	left := components.AgentList{
		Agents:   st.OrderedAgents(),
		Selected: st.SelectedIndex,
		Width:    leftW,
		Height:   bodyH,
	}.Render()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		components.Fit(left, leftW, bodyH),
		components.Fit(renderPanel(st, rightW, bodyH), rightW, bodyH),
	)

	frame := components.Fit(lipgloss.JoinVertical(lipgloss.Left, header, body, footer), width, height)

	if st.ShowHelp {
		frame = components.HelpOverlay{
			Entries: keys.helpEntries(),
			Width:   width,
			Height:  height,
		}.Place(frame)
	}
	return frame
}

// renderPanel dispatches to the active right-hand panel.
func renderPanel(st *app.State, width, height int) string {
	switch st.Panel {
	case app.PanelLogs:
		return components.LogPanel{Lines: st.Logs, Width: width, Height: height, Focused: true}.Render()
	case app.PanelMetrics:
		return components.MetricsPanel{
			Memory:  st.Memory.Items(),
			Alerts:  st.Alerts,
			Width:   width,
			Height:  height,
			Focused: true,
		}.Render()
	default:
		return components.OrchestratorPanel{Commands: st.Commands, Width: width, Height: height, Focused: true}.Render()
	}
}
