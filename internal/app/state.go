// Package app holds the dashboard's in-memory model: the application state,
// the panel state machine and the refresh controller that reconciles
// on-disk artifacts into the state.
//
// State is owned by a single event loop. The refresh controller and the
// transition function mutate it; renderers only read it.
package app

import (
	"sort"
	"time"

	"github.com/lbrxagents/a2a-dash/internal/reader"
)

// MaxMemorySamples bounds the memory trend series.
const MaxMemorySamples = 100

// State is the root aggregate of everything the dashboard shows.
type State struct {
	Agents        map[string]reader.AgentCard
	SelectedIndex int
	LastRefresh   time.Time
	Commands      []string
	Panel         Panel
	Logs          []string
	Memory        *Window[uint64]
	Alerts        []reader.Alert
	ShowHelp      bool
}

// NewState returns the initial state: no data, Orchestrator panel, help
// hidden.
func NewState(now time.Time) *State {
	return &State{
		Agents:      make(map[string]reader.AgentCard),
		LastRefresh: now,
		Panel:       PanelOrchestrator,
		Memory:      NewWindow[uint64](MaxMemorySamples),
	}
}

// AgentIDs returns agent identifiers in display order (ascending).
func (s *State) AgentIDs() []string {
	ids := make([]string, 0, len(s.Agents))
	for id := range s.Agents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// OrderedAgents returns the agent cards in display order.
func (s *State) OrderedAgents() []reader.AgentCard {
	ids := s.AgentIDs()
	cards := make([]reader.AgentCard, len(ids))
	for i, id := range ids {
		cards[i] = s.Agents[id]
	}
	return cards
}

// SelectedAgent returns the card under the selection.
func (s *State) SelectedAgent() (reader.AgentCard, bool) {
	ids := s.AgentIDs()
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(ids) {
		return reader.AgentCard{}, false
	}
	return s.Agents[ids[s.SelectedIndex]], true
}

// clampSelection keeps SelectedIndex inside [0, len(Agents)), pinning it to
// the last agent when the set shrank and to 0 when it is empty.
func (s *State) clampSelection() {
	n := len(s.Agents)
	switch {
	case n == 0 || s.SelectedIndex < 0:
		s.SelectedIndex = 0
	case s.SelectedIndex >= n:
		s.SelectedIndex = n - 1
	}
}
