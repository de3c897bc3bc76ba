package views

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/lbrxagents/a2a-dash/internal/app"
	"github.com/lbrxagents/a2a-dash/internal/config"
	"github.com/lbrxagents/a2a-dash/internal/reader"
	"github.com/lbrxagents/a2a-dash/internal/tui/models"
	"github.com/lbrxagents/a2a-dash/internal/watch"
)

// ---------------------------------------------------------------------------
// RunDashboard -- interactive full-screen TUI entry point
// ---------------------------------------------------------------------------

// RunDashboard launches the full-screen interactive dashboard over the
// artifacts under cfg.Root. It blocks until the user quits. The terminal is
// restored on every exit path, including errors.
func RunDashboard(cfg *config.Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	paths := config.NewPaths(cfg.Root)
	state := app.NewState(time.Now())
	refresher := app.NewRefresher(paths, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var changes <-chan app.Mode
	if cfg.Watch {
		w, err := watch.NewWatcher(paths, cfg.WatchDebounce, logger)
		if err != nil {
			// Polling still works; the watcher is only an accelerator.
			logger.Warn("file watching disabled", zap.Error(err))
		} else {
			defer w.Close()
			changes = w.Watch(ctx)
		}
	}

	logger.Info("dashboard starting",
		zap.String("root", paths.Root),
		zap.Duration("poll_interval", cfg.PollInterval),
		zap.Bool("watch", changes != nil),
	)

	model := models.NewDashboardModel(state, refresher, changes, cfg.PollInterval)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}

	logger.Info("dashboard stopped")
	return nil
}

// ---------------------------------------------------------------------------
// Non-interactive rendering
// ---------------------------------------------------------------------------

// Snapshot is the JSON form of one full refresh.
type Snapshot struct {
	Root        string             `json:"root"`
	RefreshedAt time.Time          `json:"refreshed_at"`
	Agents      []reader.AgentCard `json:"agents"`
	Selected    *reader.AgentCard  `json:"selected,omitempty"`
	Commands    []string           `json:"commands"`
	Logs        []string           `json:"logs"`
	MemoryUsed  *uint64            `json:"memory_used,omitempty"`
	Alerts      []reader.Alert     `json:"alerts"`
}

// LoadState performs one full refresh of the artifacts under root.
func LoadState(root string, logger *zap.Logger) *app.State {
	st := app.NewState(time.Now())
	app.NewRefresher(config.NewPaths(root), logger).Refresh(st, app.ModeFull)
	return st
}

// RenderOnce returns a single frame of the given size, as the interactive
// dashboard would draw it, without taking over the terminal.
func RenderOnce(st *app.State, width, height int) string {
	return models.RenderFrame(st, width, height)
}

// BuildSnapshot converts state into its JSON form.
func BuildSnapshot(root string, st *app.State) Snapshot {
	s := Snapshot{
		Root:        root,
		RefreshedAt: st.LastRefresh,
		Agents:      st.OrderedAgents(),
		Commands:    nonNil(st.Commands),
		Logs:        nonNil(st.Logs),
		Alerts:      nonNil(st.Alerts),
	}
	if card, ok := st.SelectedAgent(); ok {
		s.Selected = &card
	}
	if used, ok := st.Memory.Last(); ok {
		s.MemoryUsed = &used
	}
	if s.Agents == nil {
		s.Agents = []reader.AgentCard{}
	}
	return s
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
