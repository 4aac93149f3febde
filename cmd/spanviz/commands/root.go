// Package commands holds the spanviz cobra command tree.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spanviz/config"
	"github.com/katalvlaran/spanviz/telemetry"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "spanviz",
	Short: "Step-by-step minimum spanning trees over random points",
	Long: `spanviz builds the complete Euclidean graph over a point set and grows
its minimum spanning tree one edge at a time with Prim's or Kruskal's
algorithm, either interactively (run) or headless (solve).`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "spanviz:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.spanviz.yaml)")
	config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if err := setupViper(viper.GetViper(), rootCmd.PersistentFlags(), cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, "spanviz:", err)
		os.Exit(1)
	}
}

func setupViper(v *viper.Viper, fs *pflag.FlagSet, path string) error {
	if err := config.Setup(v, fs); err != nil {
		return err
	}

	return config.ReadFile(v, path)
}

// session bundles what every command needs after flag parsing.
type session struct {
	cfg      config.Config
	logger   *slog.Logger
	shutdown func()
}

// newSession loads the configuration, builds the logger writing to logOut and
// installs tracing. Call shutdown when done.
func newSession(v *viper.Viper, logOut io.Writer) (*session, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	logger, err := telemetry.NewLogger(logOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	var (
		traceOut io.Writer
		closer   io.Closer
	)
	if cfg.TraceFile != "" {
		f, err := os.Create(cfg.TraceFile)
		if err != nil {
			return nil, fmt.Errorf("trace file: %w", err)
		}
		traceOut, closer = f, f
	}
	stopTracing, err := telemetry.InitTracing(traceOut, "spanviz", Version)
	if err != nil {
		closeTrace(logger, closer)
		return nil, err
	}

	return &session{
		cfg:    cfg,
		logger: logger,
		shutdown: func() {
			if err := stopTracing(context.Background()); err != nil {
				logger.Warn("tracing shutdown failed", slog.Any("error", err))
			}
			closeTrace(logger, closer)
		},
	}, nil
}

// closeTrace closes the trace file, if any, and logs a failed close.
func closeTrace(logger *slog.Logger, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logger.Warn("trace file close failed", slog.Any("error", err))
	}
}
