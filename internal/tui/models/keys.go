package models

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lbrxagents/a2a-dash/internal/app"
	"github.com/lbrxagents/a2a-dash/internal/tui/components"
)

// keyMap holds the dashboard's key bindings.
type keyMap struct {
	Quit    key.Binding
	Refresh key.Binding
	Toggle  key.Binding
	Metrics key.Binding
	Help    key.Binding
}

var keys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Toggle:  key.NewBinding(key.WithKeys("tab", "l"), key.WithHelp("Tab/l", "toggle logs/orchestrator")),
	Metrics: key.NewBinding(key.WithKeys("m", "M"), key.WithHelp("m", "metrics panel")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
}

// ShortHelp lists the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Toggle, k.Metrics, k.Help, k.Quit}
}

// FullHelp satisfies help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// helpEntries converts the bindings into help overlay lines.
func (k keyMap) helpEntries() []components.HelpEntry {
	bindings := k.ShortHelp()
	entries := make([]components.HelpEntry, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		entries = append(entries, components.HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	return entries
}

// inputFor decodes a key press. Keys without a binding are InputNone.
func (k keyMap) inputFor(msg tea.KeyMsg) app.Input {
	switch {
	case key.Matches(msg, k.Quit):
		return app.InputQuit
	case key.Matches(msg, k.Refresh):
		return app.InputRefresh
	case key.Matches(msg, k.Toggle):
		return app.InputTogglePanel
	case key.Matches(msg, k.Metrics):
		return app.InputShowMetrics
	case key.Matches(msg, k.Help):
		return app.InputToggleHelp
	default:
		return app.InputNone
	}
}
