package health

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lbrxagents/a2a-dash/internal/config"
	"github.com/lbrxagents/a2a-dash/internal/reader"
)

// registerChecks registers the layout checks followed by one check per
// artifact class.
func (c *Checker) registerChecks() {
	c.add("project-root", CategoryLayout, c.checkProjectRoot)
	c.add("a2a-dir", CategoryLayout, c.checkHiddenDir)

	c.add("agent-cards", CategoryArtifacts, c.checkAgentCards)
	c.add("command-queue", CategoryArtifacts, c.checkQueue)
	c.add("logs", CategoryArtifacts, c.checkLogs)
	c.add("memory-metrics", CategoryArtifacts, c.checkMemory)
	c.add("semgrep-report", CategoryArtifacts, c.checkAlerts)
}

// ---------------------------------------------------------------------------
// Layout checks
// ---------------------------------------------------------------------------

func (c *Checker) checkProjectRoot(_ context.Context) CheckResult {
	info, err := os.Stat(c.paths.Root)
	switch {
	case err != nil:
		return CheckResult{Status: StatusFail, Message: err.Error()}
	case !info.IsDir():
		return CheckResult{Status: StatusFail, Message: c.paths.Root + " is not a directory"}
	}
	return CheckResult{Status: StatusPass, Message: c.paths.Root}
}

func (c *Checker) checkHiddenDir(_ context.Context) CheckResult {
	if info, err := os.Stat(filepath.Join(c.paths.Root, config.HiddenDir)); err == nil && info.IsDir() {
		return CheckResult{Status: StatusPass, Message: config.HiddenDir + " found"}
	}
	return CheckResult{
		Status:  StatusWarn,
		Message: "no " + config.HiddenDir + " directory; agents and queue will be empty",
	}
}

// ---------------------------------------------------------------------------
// Artifact checks
// ---------------------------------------------------------------------------

// absent turns a missing artifact into a warning; the dashboard still
// runs, it just shows an empty panel.
func absent(reason error) CheckResult {
	return CheckResult{Status: StatusWarn, Message: reason.Error()}
}

func (c *Checker) checkAgentCards(_ context.Context) CheckResult {
	res := reader.ScanAgents(c.paths.Discovery)
	if !res.Present {
		return absent(res.Reason)
	}
	scan := res.Value
	if len(scan.Skipped) > 0 {
		return CheckResult{
			Status: StatusWarn,
			Message: fmt.Sprintf("%d cards, %d skipped (first: %s: %v)",
				len(scan.Cards), len(scan.Skipped), scan.Skipped[0].Path, scan.Skipped[0].Reason),
		}
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%d cards", len(scan.Cards))}
}

func (c *Checker) checkQueue(_ context.Context) CheckResult {
	res := reader.ReadQueue(c.paths.Queue)
	if !res.Present {
		return absent(res.Reason)
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%d commands", len(res.Value))}
}

func (c *Checker) checkLogs(_ context.Context) CheckResult {
	res := reader.ReadLatestLogs(c.paths.Logs, reader.MaxLogLines)
	if !res.Present {
		return absent(res.Reason)
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%d recent lines", len(res.Value))}
}

func (c *Checker) checkMemory(_ context.Context) CheckResult {
	res := reader.ReadMemory(c.paths.Memory)
	if !res.Present {
		return absent(res.Reason)
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("used %d MB", res.Value.Used)}
}

func (c *Checker) checkAlerts(_ context.Context) CheckResult {
	res := reader.ReadAlerts(c.paths.Alerts)
	if !res.Present {
		return absent(res.Reason)
	}
	errs := 0
	for _, a := range res.Value {
		if a.Severity == reader.SeverityError {
			errs++
		}
	}
	return CheckResult{
		Status:  StatusPass,
		Message: fmt.Sprintf("%d alerts, %d errors", len(res.Value), errs),
	}
}
