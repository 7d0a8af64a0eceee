package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/npratt/riffdag/internal/config"
	"github.com/npratt/riffdag/internal/graph"
	"github.com/npratt/riffdag/internal/tui"
)

var version = "dev"

func main() {
	logLevel := &slog.LevelVar{}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	viper.SetEnvPrefix("RIFFDAG")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "riffdag [input.jsonl]",
		Short: "Interactive terminal inspector for event DAGs",
		Long: `riffdag ingests a JSONL stream of node and edge records and opens an
interactive three-pane browser over the resulting graph: a filterable node
list, a detail pane for the selected node, and a layered view of its
ancestors and descendants.

With no input path a small built-in sample graph is shown. Malformed lines
and dangling edges never abort ingestion; press w inside the UI to review
the accumulated warnings.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetBool(FlagVerbose) {
				logLevel.Set(slog.LevelDebug)
				logger.Debug("verbose logging enabled")
			}

			// Load config from files with defaults
			cfg, err := config.LoadConfig(viper.GetViper())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Apply CLI flag overrides (only if explicitly set)
			if cmd.Flags().Changed(FlagDepth) {
				cfg.Graph.Depth = viper.GetInt(FlagDepth)
			}
			if cmd.Flags().Changed(FlagWarnThreshold) {
				cfg.Graph.WarnThreshold = viper.GetInt(FlagWarnThreshold)
			}
			if cmd.Flags().Changed(FlagLogFile) {
				cfg.Paths.Log = viper.GetString(FlagLogFile)
			}
			cfg.Validate()

			inputPath := ""
			if len(args) == 1 {
				inputPath = args[0]
			}

			// An unopenable input is the only fatal ingestion failure;
			// everything recoverable lands in the report instead.
			store, report, err := graph.Load(inputPath, cfg.Graph.WarnThreshold)
			if err != nil {
				return fmt.Errorf("load graph: %w", err)
			}

			logger.Info("graph loaded",
				"input", inputPath,
				"nodes", store.NodeCount(),
				"edges", store.EdgeCount(),
				"warnings", len(report.All()),
			)

			opts := []tui.Option{
				tui.WithReport(report),
				tui.WithDepth(cfg.Graph.Depth),
				tui.WithUI(cfg.UI),
			}
			if viper.GetBool(FlagPlain) {
				opts = append(opts, tui.WithPlain(true))
			} else {
				// Route logging to a rotating file so the alternate screen
				// stays clean. Losing the debug log is not fatal.
				logDir := filepath.Dir(cfg.Paths.Log)
				if mkErr := os.MkdirAll(logDir, 0755); mkErr == nil {
					result, logErr := SetupTUILogger(logDir, logLevel, cfg.LogRotation)
					if logErr == nil {
						defer func() { _ = result.Close() }()
						logger = result.Logger
						slog.SetDefault(result.Logger)
						logger.Info("riffdag starting", "version", version, "input", inputPath)
					} else {
						logger.Warn("debug log unavailable", "error", logErr)
					}
				}
			}

			return tui.New(store, opts...).Run()
		},
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool(FlagVerbose, false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().String(FlagConfig, "", "Config file path (default: .riffdag/config.yaml)")
	rootCmd.PersistentFlags().String(FlagLogFile, "", "Log file path")

	rootCmd.Flags().Int(FlagDepth, graph.DefaultDepth, "Neighborhood traversal depth")
	rootCmd.Flags().Int(FlagWarnThreshold, config.Default().Graph.WarnThreshold, "Node count above which a size warning is recorded (0 disables)")
	rootCmd.Flags().Bool(FlagPlain, false, "Print a one-shot summary instead of the interactive UI")

	// Bind all flags to viper
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	// Version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("riffdag %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
