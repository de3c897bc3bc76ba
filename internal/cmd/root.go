package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lbrxagents/a2a-dash/internal/config"
	"github.com/lbrxagents/a2a-dash/internal/logging"
	"github.com/lbrxagents/a2a-dash/internal/tui/views"
)

var (
	cfgFile string
	verbose bool
	noColor bool

	// configErr holds a failure from initConfig, which cobra gives no way
	// to return directly.
	configErr error
)

var rootCmd = &cobra.Command{
	Use:   "a2a-dash",
	Short: "Terminal dashboard for a multi-agent workspace",
	Long: `a2a-dash: live view of an agent-to-agent project directory

Shows discovered agents, the orchestrator command queue, recent log
output, memory usage and static-analysis alerts, all read from files
under the project root. Nothing is ever written.

Keys:
  Tab / l   toggle logs and orchestrator queue
  m         metrics panel
  r         refresh now
  ?         help overlay
  q         quit`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadRuntime()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		return views.RunDashboard(cfg, logger)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./.a2a/a2a-dash.yaml or ./a2a-dash.yaml)")
	flags.String("root", "", "project root (default: nearest parent containing .a2a)")
	flags.Duration("poll-interval", config.DefaultPollInterval, "redraw interval")
	flags.Bool("watch", false, "refresh on filesystem changes")
	flags.String("log-file", "", "write diagnostics to this file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug-level diagnostics")
	flags.BoolVar(&noColor, "no-color", false, "disable color output")

	for key, flag := range map[string]string{
		config.KeyRoot:         "root",
		config.KeyPollInterval: "poll-interval",
		config.KeyWatch:        "watch",
		config.KeyLogFile:      "log-file",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

func initConfig() {
	v := viper.GetViper()
	config.SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("a2a-dash")
		v.AddConfigPath(config.HiddenDir)
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = fmt.Errorf("reading config: %w", err)
		}
	}

	if verbose {
		v.Set(config.KeyLogLevel, "debug")
	}
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// loadRuntime resolves the configuration and builds the logger.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	if configErr != nil {
		return nil, nil, configErr
	}
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log: %w", err)
	}
	return cfg, logger, nil
}
