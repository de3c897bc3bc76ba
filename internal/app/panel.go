package app

// Panel is the view shown in the right-hand region.
type Panel int

const (
	PanelOrchestrator Panel = iota
	PanelLogs
	PanelMetrics
)

// Panels lists every panel in display order.
var Panels = []Panel{PanelOrchestrator, PanelLogs, PanelMetrics}

// String returns the panel's display name.
func (p Panel) String() string {
	switch p {
	case PanelOrchestrator:
		return "orchestrator"
	case PanelLogs:
		return "logs"
	case PanelMetrics:
		return "metrics"
	default:
		return "unknown"
	}
}

// Input is a discrete user action decoded from a key press.
type Input int

const (
	InputNone Input = iota
	InputQuit
	InputRefresh
	InputTogglePanel
	InputShowMetrics
	InputToggleHelp
)

// String returns the input's name.
func (i Input) String() string {
	switch i {
	case InputQuit:
		return "quit"
	case InputRefresh:
		return "refresh"
	case InputTogglePanel:
		return "toggle-panel"
	case InputShowMetrics:
		return "show-metrics"
	case InputToggleHelp:
		return "toggle-help"
	default:
		return "none"
	}
}

// togglePanel is the complete TogglePanel row of the transition table.
// Metrics falls back to Orchestrator.
var togglePanel = map[Panel]Panel{
	PanelOrchestrator: PanelLogs,
	PanelLogs:         PanelOrchestrator,
	PanelMetrics:      PanelOrchestrator,
}

// Transition applies one input to the panel and help-overlay flag. It is
// total: inputs that do not affect the view (None, Refresh, Quit) return
// the state unchanged, and the panel and help flag never influence each
// other.
func Transition(panel Panel, help bool, in Input) (Panel, bool) {
	switch in {
	case InputTogglePanel:
		if next, ok := togglePanel[panel]; ok {
			return next, help
		}
		return PanelOrchestrator, help
	case InputShowMetrics:
		return PanelMetrics, help
	case InputToggleHelp:
		return panel, !help
	default:
		return panel, help
	}
}

// Apply runs Transition against s.
func (s *State) Apply(in Input) {
	s.Panel, s.ShowHelp = Transition(s.Panel, s.ShowHelp, in)
}
