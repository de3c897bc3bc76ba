package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lbrxagents/a2a-dash/internal/config"
	"github.com/lbrxagents/a2a-dash/internal/health"
)

var (
	healthCheck    string
	healthCategory string
	healthJSON     bool
)

// errUnhealthy makes the command exit non-zero without printing twice.
var errUnhealthy = errors.New("health check failed")

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check which dashboard artifacts are readable",
	Long: `Run every artifact reader once and report what the dashboard would see.

Checks are grouped into categories:
  layout     - project root and the .a2a directory
  artifacts  - agent cards, command queue, logs, memory metrics, semgrep report

A missing artifact is a warning: the dashboard shows an empty panel for it.
Only an unusable project root fails the check.

Use --category to run only a specific group, or --check to run a single
named check.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadRuntime()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		checker := health.NewChecker(config.NewPaths(cfg.Root))
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		var report *health.Report
		switch {
		case healthCheck != "":
			report = checker.RunCheck(ctx, healthCheck)
		case healthCategory != "":
			report = checker.RunCategory(ctx, healthCategory)
		default:
			report = checker.RunAll(ctx)
		}
		if report.Total == 0 {
			return fmt.Errorf("no checks matched; available: %v", checker.Names())
		}

		out := cmd.OutOrStdout()
		if healthJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
		} else {
			fmt.Fprint(out, health.FormatReport(report))
		}

		if !report.Healthy {
			cmd.SilenceErrors = true
			return errUnhealthy
		}
		return nil
	},
}

func init() {
	healthCmd.Flags().StringVar(&healthCheck, "check", "", "run a specific named check")
	healthCmd.Flags().StringVar(&healthCategory, "category", "", "run checks in a category: layout or artifacts")
	healthCmd.Flags().BoolVar(&healthJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(healthCmd)
}
