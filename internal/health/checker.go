// Package health inspects the project root and reports, per artifact,
// whether the dashboard will find usable data there.
package health

import (
	"context"
	"time"

	"github.com/lbrxagents/a2a-dash/internal/config"
)

// Status represents the result of a single health check.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

// String returns the lowercase text representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Symbol returns the display symbol for the status.
func (s Status) Symbol() string {
	switch s {
	case StatusPass:
		return "+"
	case StatusWarn:
		return "!"
	case StatusFail:
		return "x"
	default:
		return "?"
	}
}

// Check categories.
const (
	CategoryLayout    = "layout"
	CategoryArtifacts = "artifacts"
)

// CheckResult holds the result of a single check.
type CheckResult struct {
	Name     string        `json:"name"`
	Category string        `json:"category"`
	Status   Status        `json:"-"`
	State    string        `json:"status"`
	Message  string        `json:"message"`
	Duration time.Duration `json:"duration_ns"`
}

// Report holds results of all checks.
type Report struct {
	Results  []CheckResult `json:"results"`
	Passed   int           `json:"passed"`
	Warned   int           `json:"warned"`
	Failed   int           `json:"failed"`
	Total    int           `json:"total"`
	Duration time.Duration `json:"duration_ns"`
	Healthy  bool          `json:"healthy"`
}

// Check is a named, categorized health check function.
type Check struct {
	Name     string
	Category string
	Fn       func(ctx context.Context) CheckResult
}

// Checker runs all registered health checks against a project's artifacts.
type Checker struct {
	checks []Check
	paths  *config.Paths
}

// NewChecker creates a health checker for the artifacts under paths.
func NewChecker(paths *config.Paths) *Checker {
	c := &Checker{paths: paths}
	c.registerChecks()
	return c
}

// Names lists the registered checks in run order.
func (c *Checker) Names() []string {
	names := make([]string, len(c.checks))
	for i, ch := range c.checks {
		names[i] = ch.Name
	}
	return names
}

func (c *Checker) add(name, category string, fn func(ctx context.Context) CheckResult) {
	c.checks = append(c.checks, Check{Name: name, Category: category, Fn: fn})
}

// RunAll runs every registered check and returns a report.
func (c *Checker) RunAll(ctx context.Context) *Report {
	return c.run(ctx, func(Check) bool { return true })
}

// RunCategory runs only the checks matching the given category.
func (c *Checker) RunCategory(ctx context.Context, category string) *Report {
	return c.run(ctx, func(ch Check) bool { return ch.Category == category })
}

// RunCheck runs the single check with the given name.
func (c *Checker) RunCheck(ctx context.Context, name string) *Report {
	return c.run(ctx, func(ch Check) bool { return ch.Name == name })
}

func (c *Checker) run(ctx context.Context, keep func(Check) bool) *Report {
	start := time.Now()
	var results []CheckResult

	for _, ch := range c.checks {
		if !keep(ch) {
			continue
		}
		if ctx.Err() != nil {
			results = append(results, finish(ch, CheckResult{
				Status:  StatusFail,
				Message: "context cancelled",
			}, 0))
			continue
		}
		t := time.Now()
		r := ch.Fn(ctx)
		results = append(results, finish(ch, r, time.Since(t)))
	}

	return buildReport(results, time.Since(start))
}

func finish(ch Check, r CheckResult, d time.Duration) CheckResult {
	r.Name = ch.Name
	r.Category = ch.Category
	r.State = r.Status.String()
	r.Duration = d
	return r
}

// buildReport aggregates a slice of results into a Report.
func buildReport(results []CheckResult, dur time.Duration) *Report {
	r := &Report{
		Results:  results,
		Total:    len(results),
		Duration: dur,
	}
	for _, res := range results {
		switch res.Status {
		case StatusPass:
			r.Passed++
		case StatusWarn:
			r.Warned++
		case StatusFail:
			r.Failed++
		}
	}
	r.Healthy = r.Failed == 0
	return r
}
