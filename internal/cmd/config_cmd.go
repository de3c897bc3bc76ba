package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lbrxagents/a2a-dash/internal/config"
	"github.com/lbrxagents/a2a-dash/internal/tui/styles"
)

// --- config (parent) ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Display the configuration after merging defaults, the config file,
A2A_DASH_* environment variables and flags.

Subcommands:
  paths   List the artifact locations under the project root`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadRuntime()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		source := viper.ConfigFileUsed()
		if source == "" {
			source = "(none)"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, styles.Title.Render("Configuration"))
		fmt.Fprintln(out)
		row := func(label, value string) {
			fmt.Fprintf(out, "%s %s\n", styles.Label.Width(16).Render(label), styles.Value.Render(value))
		}
		row("FILE", source)
		row("ROOT", cfg.Root)
		row("POLL INTERVAL", cfg.PollInterval.String())
		row("WATCH", fmt.Sprintf("%t", cfg.Watch))
		row("DEBOUNCE", cfg.WatchDebounce.String())
		row("LOG FILE", orNone(cfg.LogFile))
		row("LOG LEVEL", cfg.LogLevel)
		return nil
	},
}

// --- config paths ---

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List artifact locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadRuntime()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		p := config.NewPaths(cfg.Root)
		out := cmd.OutOrStdout()
		for _, entry := range []struct{ label, path string }{
			{"agents", p.Discovery},
			{"queue", p.Queue},
			{"logs", p.Logs},
			{"memory", p.Memory},
			{"alerts", p.Alerts},
		} {
			fmt.Fprintf(out, "%s %s\n", styles.Label.Width(10).Render(entry.label), entry.path)
		}
		return nil
	},
}

func orNone(s string) string {
	if s == "" {
		return styles.Dim("(none)")
	}
	return s
}

func init() {
	configCmd.AddCommand(configPathsCmd)
	rootCmd.AddCommand(configCmd)
}
