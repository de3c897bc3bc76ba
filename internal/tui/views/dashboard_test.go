package views

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
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

func TestSnapshotOfEmptyRoot(t *testing.T) {
	root := t.TempDir()
	snap := BuildSnapshot(root, LoadState(root, nil))

	assert.Empty(t, snap.Agents)
	assert.Nil(t, snap.MemoryUsed)
	assert.Nil(t, snap.Selected)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	s := string(raw)
	assert.Contains(t, s, `"agents":[]`)
	assert.Contains(t, s, `"commands":[]`)
	assert.NotContains(t, s, "memory_used")
	assert.NotContains(t, s, "selected")
}

func TestSnapshotCarriesArtifacts(t *testing.T) {
	root := t.TempDir()
	paths := config.NewPaths(root)
	writeFile(t, filepath.Join(paths.Discovery, "a.json"), `{"uuid":"a","name":"alpha"}`)
	writeFile(t, paths.Queue, "one\ntwo\n")
	writeFile(t, paths.Memory, `{"used": 256}`)

	snap := BuildSnapshot(root, LoadState(root, nil))
	require.Len(t, snap.Agents, 1)
	assert.Equal(t, "alpha", snap.Agents[0].Name)
	assert.Equal(t, []string{"two", "one"}, snap.Commands)
	require.NotNil(t, snap.MemoryUsed)
	assert.EqualValues(t, 256, *snap.MemoryUsed)
}

func TestSnapshotSelectsFirstAgent(t *testing.T) {
	root := t.TempDir()
	paths := config.NewPaths(root)
	writeFile(t, filepath.Join(paths.Discovery, "b.json"), `{"uuid":"b","name":"beta"}`)
	writeFile(t, filepath.Join(paths.Discovery, "a.json"), `{"uuid":"a","name":"alpha"}`)

	snap := BuildSnapshot(root, LoadState(root, nil))
	require.NotNil(t, snap.Selected)
	assert.Equal(t, "alpha", snap.Selected.Name)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"selected":{`)
}

func TestRenderOnceSize(t *testing.T) {
	root := t.TempDir()
	out := RenderOnce(LoadState(root, nil), 90, 25)

	lines := strings.Split(ansi.Strip(out), "\n")
	require.Len(t, lines, 25)
	for _, l := range lines {
		assert.Equal(t, 90, ansi.StringWidth(l))
	}
	assert.Contains(t, lines[0], "lbrxAgents Dashboard")
}
