package health

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbrxagents/a2a-dash/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func byName(r *Report) map[string]CheckResult {
	m := make(map[string]CheckResult, len(r.Results))
	for _, res := range r.Results {
		m[res.Name] = res
	}
	return m
}

func TestEmptyRootIsDegradedNotFailed(t *testing.T) {
	c := NewChecker(config.NewPaths(t.TempDir()))
	r := c.RunAll(context.Background())

	assert.True(t, r.Healthy)
	assert.Equal(t, len(c.Names()), r.Total)
	assert.Equal(t, 1, r.Passed)
	assert.Equal(t, r.Total-1, r.Warned)
	assert.Equal(t, StatusPass, byName(r)["project-root"].Status)
}

func TestPopulatedRootPasses(t *testing.T) {
	paths := config.NewPaths(t.TempDir())
	writeFile(t, filepath.Join(paths.Discovery, "a.json"), `{"uuid":"a","name":"alpha"}`)
	writeFile(t, paths.Queue, "x\n")
	writeFile(t, filepath.Join(paths.Logs, "run.log"), "hello\n")
	writeFile(t, paths.Memory, `{"used": 42}`)
	writeFile(t, paths.Alerts, `[{"path":"a","message":"b","severity":"ERROR"}]`)

	r := NewChecker(paths).RunAll(context.Background())
	assert.Equal(t, r.Total, r.Passed, "%+v", r.Results)

	got := byName(r)
	assert.Equal(t, "1 cards", got["agent-cards"].Message)
	assert.Equal(t, "used 42 MB", got["memory-metrics"].Message)
	assert.Equal(t, "1 alerts, 1 errors", got["semgrep-report"].Message)
	assert.Equal(t, "pass", got["logs"].State)
}

func TestSkippedCardsWarn(t *testing.T) {
	paths := config.NewPaths(t.TempDir())
	writeFile(t, filepath.Join(paths.Discovery, "bad.json"), `{"name":"no uuid"}`)

	r := NewChecker(paths).RunCheck(context.Background(), "agent-cards")
	require.Equal(t, 1, r.Total)
	assert.Equal(t, StatusWarn, r.Results[0].Status)
	assert.Contains(t, r.Results[0].Message, "1 skipped")
}

func TestMissingRootFails(t *testing.T) {
	paths := config.NewPaths(filepath.Join(t.TempDir(), "nope"))
	r := NewChecker(paths).RunCategory(context.Background(), CategoryLayout)

	assert.False(t, r.Healthy)
	assert.Equal(t, 1, r.Failed)
	assert.Contains(t, ansi.Strip(FormatReport(r)), "UNHEALTHY")
}

func TestCancelledContextFailsRemainingChecks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewChecker(config.NewPaths(t.TempDir())).RunAll(ctx)
	assert.Equal(t, r.Total, r.Failed)
	assert.Equal(t, "context cancelled", r.Results[0].Message)
}

func TestFormatReportListsEveryCheck(t *testing.T) {
	c := NewChecker(config.NewPaths(t.TempDir()))
	out := ansi.Strip(FormatReport(c.RunAll(context.Background())))

	for _, name := range c.Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Dashboard Artifacts")
	assert.Contains(t, out, "DEGRADED")
}
