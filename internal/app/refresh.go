package app

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lbrxagents/a2a-dash/internal/config"
	"github.com/lbrxagents/a2a-dash/internal/reader"
)

// Mode selects which artifact classes a refresh reconciles.
type Mode uint8

const (
	ModeAgents Mode = 1 << iota
	ModeQueue
	ModeLogs
	ModeMemory
	ModeAlerts

	ModeNone Mode = 0
	ModeFull      = ModeAgents | ModeQueue | ModeLogs | ModeMemory | ModeAlerts
)

// Has reports whether every class in o is selected in m.
func (m Mode) Has(o Mode) bool { return m&o == o && o != 0 }

var modeNames = []struct {
	mode Mode
	name string
}{
	{ModeAgents, "agents"},
	{ModeQueue, "queue"},
	{ModeLogs, "logs"},
	{ModeMemory, "memory"},
	{ModeAlerts, "alerts"},
}

// String lists the selected classes, e.g. "agents|logs".
func (m Mode) String() string {
	if m == ModeNone {
		return "none"
	}
	if m == ModeFull {
		return "full"
	}
	var parts []string
	for _, n := range modeNames {
		if m.Has(n.mode) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ModeNamed returns the single class called name, or ModeNone.
func ModeNamed(name string) Mode {
	for _, n := range modeNames {
		if n.name == name {
			return n.mode
		}
	}
	return ModeNone
}

// Refresher reconciles State against the artifacts under Paths.
type Refresher struct {
	Paths  *config.Paths
	Logger *zap.Logger
	Now    func() time.Time
}

// NewRefresher returns a Refresher using the wall clock. A nil logger is
// replaced by a no-op one.
func NewRefresher(paths *config.Paths, logger *zap.Logger) *Refresher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Refresher{Paths: paths, Logger: logger, Now: time.Now}
}

// Refresh re-reads the artifact classes selected by mode into st. It never
// fails: absent artifacts become empty values, except the memory series,
// which is left untouched. LastRefresh is always updated.
func (r *Refresher) Refresh(st *State, mode Mode) {
	log := r.Logger.With(zap.Stringer("mode", mode))

	if mode.Has(ModeAgents) {
		res := reader.ScanAgents(r.Paths.Discovery)
		r.absent(log, "agents", res.Reason)
		scan := res.Or(reader.AgentScan{})
		for _, skipped := range scan.Skipped {
			log.Debug("skipped agent card",
				zap.String("path", skipped.Path),
				zap.Error(skipped.Reason))
		}
		agents := make(map[string]reader.AgentCard, len(scan.Cards))
		for _, card := range scan.Cards {
			agents[card.UUID] = card
		}
		st.Agents = agents
		st.clampSelection()
	}

	if mode.Has(ModeQueue) {
		res := reader.ReadQueue(r.Paths.Queue)
		r.absent(log, "queue", res.Reason)
		st.Commands = res.Or(nil)
	}

	if mode.Has(ModeLogs) {
		res := reader.ReadLatestLogs(r.Paths.Logs, reader.MaxLogLines)
		r.absent(log, "logs", res.Reason)
		st.Logs = res.Or(nil)
	}

	if mode.Has(ModeMemory) {
		res := reader.ReadMemory(r.Paths.Memory)
		if res.Present {
			st.Memory.Push(res.Value.Used)
		} else {
			r.absent(log, "memory", res.Reason)
		}
	}

	if mode.Has(ModeAlerts) {
		res := reader.ReadAlerts(r.Paths.Alerts)
		r.absent(log, "alerts", res.Reason)
		st.Alerts = res.Or(nil)
	}

	st.LastRefresh = r.Now()

	log.Info("refreshed",
		zap.Int("agents", len(st.Agents)),
		zap.Int("commands", len(st.Commands)),
		zap.Int("log_lines", len(st.Logs)),
		zap.Int("memory_samples", st.Memory.Len()),
		zap.Int("alerts", len(st.Alerts)))
}

func (r *Refresher) absent(log *zap.Logger, artifact string, reason error) {
	if reason == nil {
		return
	}
	log.Debug("artifact unavailable", zap.String("artifact", artifact), zap.Error(reason))
}
