package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HiddenDir is the agent-protocol directory at the project root.
const HiddenDir = ".a2a"

// Paths holds every artifact location resolved against the project root.
type Paths struct {
	Root      string
	Discovery string // agent cards, *.json
	Queue     string // orchestrator command queue, one command per line
	Logs      string // log directory, any file
	Memory    string // memory metrics snapshot
	Alerts    string // static-analysis report
}

// NewPaths resolves artifact locations relative to root.
func NewPaths(root string) *Paths {
	return &Paths{
		Root:      root,
		Discovery: filepath.Join(root, HiddenDir, "discovery"),
		Queue:     filepath.Join(root, HiddenDir, "orchestrator", "commands", "queue.jsonl"),
		Logs:      filepath.Join(root, "logs"),
		Memory:    filepath.Join(root, "var", "memory_metrics.json"),
		Alerts:    filepath.Join(root, "scripts", "semgrep-report.json"),
	}
}

// WatchDir is a directory whose contents feed one artifact class.
type WatchDir struct {
	Name string // agents, queue, logs, memory or alerts
	Dir  string
}

// WatchDirs returns the directories whose contents feed the dashboard.
func (p *Paths) WatchDirs() []WatchDir {
	return []WatchDir{
		{"agents", p.Discovery},
		{"queue", filepath.Dir(p.Queue)},
		{"logs", p.Logs},
		{"memory", filepath.Dir(p.Memory)},
		{"alerts", filepath.Dir(p.Alerts)},
	}
}

// DetectProjectRoot walks up from the working directory looking for a
// directory that contains HiddenDir. When none is found the working
// directory itself is the root.
func DetectProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return findRoot(cwd), nil
}

func findRoot(start string) string {
	dir := start
	for {
		if info, err := os.Stat(filepath.Join(dir, HiddenDir)); err == nil && info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root without finding HiddenDir.
			return start
		}
		dir = parent
	}
}
