package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lbrxagents/a2a-dash/internal/tui/views"
)

var (
	snapshotJSON   bool
	snapshotWidth  int
	snapshotHeight int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one dashboard frame and exit",
	Long: `Read every artifact once and print the result without starting the
interactive dashboard.

Flags:
  --json     output the refreshed state as JSON instead of a frame
  --width    frame width in cells
  --height   frame height in cells`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadRuntime()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		if snapshotWidth <= 0 || snapshotHeight <= 0 {
			return fmt.Errorf("frame size must be positive, got %dx%d", snapshotWidth, snapshotHeight)
		}

		st := views.LoadState(cfg.Root, logger)
		out := cmd.OutOrStdout()

		if snapshotJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(views.BuildSnapshot(cfg.Root, st))
		}

		_, err = fmt.Fprintln(out, views.RenderOnce(st, snapshotWidth, snapshotHeight))
		return err
	},
}

func init() {
	snapshotCmd.Flags().BoolVar(&snapshotJSON, "json", false, "output state as JSON")
	snapshotCmd.Flags().IntVar(&snapshotWidth, "width", 100, "frame width")
	snapshotCmd.Flags().IntVar(&snapshotHeight, "height", 30, "frame height")
	rootCmd.AddCommand(snapshotCmd)
}
