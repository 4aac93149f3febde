package commands

import (
	"io"
	"log/slog"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/spanviz/controller"
	"github.com/katalvlaran/spanviz/tui"
)

var runLogFile string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive visualizer",
	Long: `Open the terminal visualizer with a generated point set. Click to add
points while idle, press p or k to grow the tree, space to pause.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// the TUI owns the terminal, so logs go to a file or nowhere
		var logOut io.Writer = io.Discard
		if runLogFile != "" {
			f, err := os.OpenFile(runLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return err
			}
			defer f.Close()
			logOut = f
		}

		s, err := newSession(viper.GetViper(), logOut)
		if err != nil {
			return err
		}
		defer s.shutdown()

		cfg := s.cfg
		seed := cfg.ResolveSeed()
		ctrl := controller.New(controllerOptions(s.logger, cfg.RandomStart, seed)...)

		// each "r" press draws a new set from the same seeded sequence
		next := seed
		source := func() ([]r2.Vec, error) {
			c := cfg
			c.Seed = next
			next++
			return c.Points()
		}
		pts, err := source()
		if err != nil {
			return err
		}
		if err := ctrl.AddNodes(pts); err != nil {
			return err
		}
		s.logger.Info("visualizer starting", slog.Int64("seed", seed), slog.Int("nodes", len(pts)))

		return tui.Run(tui.NewModel(ctrl, source, cfg.Delay(), cfg.Width, cfg.Height))
	},
}

func init() {
	runCmd.Flags().StringVar(&runLogFile, "log-file", "", "append logs to this file")
}

func controllerOptions(logger *slog.Logger, randomStart bool, seed int64) []controller.Option {
	opts := []controller.Option{controller.WithLogger(logger)}
	if randomStart {
		opts = append(opts, controller.WithRandomStart(rand.New(rand.NewSource(seed))))
	}

	return opts
}
