package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lbrxagents/a2a-dash/internal/app"
	"github.com/lbrxagents/a2a-dash/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestWatcher(t *testing.T) (*Watcher, *config.Paths) {
	t.Helper()
	paths := config.NewPaths(t.TempDir())
	for _, wd := range paths.WatchDirs() {
		require.NoError(t, os.MkdirAll(wd.Dir, 0o755))
	}
	w, err := NewWatcher(paths, 20*time.Millisecond, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w, paths
}

func TestModeFor(t *testing.T) {
	w, p := newTestWatcher(t)

	tests := []struct {
		path string
		want app.Mode
	}{
		{filepath.Join(p.Discovery, "agent.json"), app.ModeAgents},
		{filepath.Join(p.Discovery, "agent.json.swp"), app.ModeNone},
		{p.Discovery, app.ModeAgents},
		{p.Queue, app.ModeQueue},
		{filepath.Join(filepath.Dir(p.Queue), "other.jsonl"), app.ModeNone},
		{filepath.Join(p.Logs, "server.log"), app.ModeLogs},
		{filepath.Join(p.Logs, "rotated.1"), app.ModeLogs},
		{p.Memory, app.ModeMemory},
		{filepath.Join(filepath.Dir(p.Memory), "cache.db"), app.ModeNone},
		{p.Alerts, app.ModeAlerts},
		{filepath.Join(p.Root, config.HiddenDir), app.ModeAgents | app.ModeQueue},
		{filepath.Join(p.Root, "README.md"), app.ModeNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, w.ModeFor(tt.path), tt.path)
	}
}

func TestWatchCoalescesBurst(t *testing.T) {
	w, p := newTestWatcher(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	modes := w.Watch(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(p.Logs, "a.log"), []byte("x\n"), 0o644))
	require.NoError(t, os.WriteFile(p.Memory, []byte(`{"used":1}`), 0o644))

	var got app.Mode
	deadline := time.After(5 * time.Second)
	for got != app.ModeLogs|app.ModeMemory {
		select {
		case m := <-modes:
			got |= m
		case <-deadline:
			t.Fatalf("timed out waiting for modes, got %s", got)
		}
	}

	cancel()
	for range modes {
	}
}

func TestWatchPicksUpNewDirectories(t *testing.T) {
	paths := config.NewPaths(t.TempDir())
	w, err := NewWatcher(paths, 20*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	modes := w.Watch(ctx)

	require.NoError(t, os.MkdirAll(paths.Logs, 0o755))
	waitFor(t, modes, app.ModeLogs)

	require.NoError(t, os.WriteFile(filepath.Join(paths.Logs, "late.log"), []byte("hi\n"), 0o644))
	waitFor(t, modes, app.ModeLogs)

	cancel()
	for range modes {
	}
}

func TestWatchReaddsRecreatedDirectory(t *testing.T) {
	w, p := newTestWatcher(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	modes := w.Watch(ctx)

	require.NoError(t, os.RemoveAll(p.Logs))
	waitFor(t, modes, app.ModeLogs)

	require.NoError(t, os.MkdirAll(p.Logs, 0o755))
	waitFor(t, modes, app.ModeLogs)
	drain(modes, 100*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(p.Logs, "new.log"), []byte("back\n"), 0o644))
	waitFor(t, modes, app.ModeLogs)

	cancel()
	for range modes {
	}
}

func TestNewWatcherMissingRoot(t *testing.T) {
	paths := config.NewPaths(filepath.Join(t.TempDir(), "nope"))
	_, err := NewWatcher(paths, time.Millisecond, nil)
	assert.Error(t, err)
}

func waitFor(t *testing.T, modes <-chan app.Mode, want app.Mode) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case m, ok := <-modes:
			require.True(t, ok, "mode channel closed")
			if m.Has(want) {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s", want)
		}
	}
}

// drain discards modes until none arrive for quiet.
func drain(modes <-chan app.Mode, quiet time.Duration) {
	for {
		select {
		case <-modes:
		case <-time.After(quiet):
			return
		}
	}
}
