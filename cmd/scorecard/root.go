package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/om-scorecard/internal/common"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg    *common.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "scorecard",
		Short:         "Score retail net-lease offering memoranda",
		Long:          "scorecard extracts deal attributes from an OM (PDF or text), scores them\nagainst the FCPT rubric and fills the scorecard workbook.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "TOML config file (env and .env still apply)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	root.AddCommand(
		newBuildCmd(a),
		newPayloadCmd(a),
		newScoreCmd(a),
		newWatchCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := common.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	a.cfg = cfg
	// stdout carries command output; logs go to stderr
	a.logger = common.NewLogger(cmd.ErrOrStderr(), cfg.Log.Level)
	slog.SetDefault(a.logger)
	return nil
}

func (a *app) config() *common.Config {
	if a.cfg == nil {
		return common.DefaultConfig()
	}
	return a.cfg
}

func (a *app) log() *slog.Logger {
	if a.logger == nil {
		return common.NewLogger(os.Stderr, "info")
	}
	return a.logger
}
