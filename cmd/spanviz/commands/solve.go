package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spanviz/config"
	"github.com/katalvlaran/spanviz/controller"
	"github.com/katalvlaran/spanviz/render"
)

type solveFlags struct {
	format     string
	svgPath    string
	traceSteps bool
}

var solveOpts solveFlags

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Compute the spanning tree headless and print a report",
	Long: `Generate points from the configuration, run the selected algorithm
(or --algorithm both, sequentially) to completion and print a report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(viper.GetViper(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer s.shutdown()

		return solve(s.cfg, s.logger, cmd.OutOrStdout(), solveOpts)
	},
}

func init() {
	solveCmd.Flags().StringVarP(&solveOpts.format, "format", "f", "text", "report format: text, yaml or json")
	solveCmd.Flags().StringVar(&solveOpts.svgPath, "svg", "", "write the finished tree as SVG to this path")
	solveCmd.Flags().BoolVar(&solveOpts.traceSteps, "trace-steps", false, "include every accepted edge in the report")
}

// Report is the solve output.
type Report struct {
	Seed   int64       `yaml:"seed" json:"seed"`
	Layout string      `yaml:"layout" json:"layout"`
	Nodes  int         `yaml:"nodes" json:"nodes"`
	Runs   []RunReport `yaml:"runs" json:"runs"`
}

// RunReport describes one finished run.
type RunReport struct {
	RunID       string       `yaml:"run_id" json:"run_id"`
	Algorithm   string       `yaml:"algorithm" json:"algorithm"`
	Start       int          `yaml:"start" json:"start"`
	Edges       int          `yaml:"edges" json:"edges"`
	TotalWeight float64      `yaml:"total_weight" json:"total_weight"`
	Discarded   int          `yaml:"discarded" json:"discarded"`
	Candidates  int          `yaml:"candidates_examined" json:"candidates_examined"`
	Elapsed     string       `yaml:"elapsed" json:"elapsed"`
	SVG         string       `yaml:"svg,omitempty" json:"svg,omitempty"`
	Steps       []StepReport `yaml:"steps,omitempty" json:"steps,omitempty"`
}

// StepReport is one accepted edge.
type StepReport struct {
	Index  int     `yaml:"index" json:"index"`
	U      int     `yaml:"u" json:"u"`
	V      int     `yaml:"v" json:"v"`
	Weight float64 `yaml:"weight" json:"weight"`
}

func solve(cfg config.Config, logger *slog.Logger, out io.Writer, opts solveFlags) error {
	// 1. Validate output options before doing any work.
	switch opts.format {
	case "text", "yaml", "json":
	default:
		return fmt.Errorf("unknown format %q (want text, yaml or json)", opts.format)
	}
	algos, err := cfg.Algorithms()
	if err != nil {
		return err
	}

	// 2. Points.
	seed := cfg.ResolveSeed()
	pts, err := cfg.Points()
	if err != nil {
		return err
	}
	report := Report{Seed: seed, Layout: cfg.Layout, Nodes: len(pts)}

	// 3. One controller per algorithm over the same points.
	for _, algo := range algos {
		ctrl := controller.New(controllerOptions(logger, cfg.RandomStart, seed)...)
		begin := time.Now()
		if err := ctrl.StartWith(algo, pts); err != nil {
			return err
		}

		var steps []StepReport
		for !ctrl.Done() {
			res, err := ctrl.Step()
			if err != nil {
				return err
			}
			if opts.traceSteps {
				steps = append(steps, StepReport{Index: res.Index, U: res.Edge.U, V: res.Edge.V, Weight: res.Edge.Weight})
			}
		}
		elapsed := time.Since(begin)

		snap := ctrl.Snapshot()
		run := RunReport{
			RunID:       snap.RunID,
			Algorithm:   string(algo),
			Start:       snap.Start,
			Edges:       len(snap.Edges),
			TotalWeight: snap.TotalWeight,
			Discarded:   snap.Stats.Discarded,
			Candidates:  snap.Stats.Pops,
			Elapsed:     elapsed.String(),
			Steps:       steps,
		}

		// 4. Optional SVG per run.
		if opts.svgPath != "" {
			path := svgPathFor(opts.svgPath, string(algo), len(algos) > 1)
			if err := writeSVG(path, snap, cfg); err != nil {
				return err
			}
			run.SVG = path
		}
		report.Runs = append(report.Runs, run)
	}

	return writeReport(out, report, opts.format)
}

// svgPathFor returns path, or path with "-<algo>" before the extension when
// several runs share one --svg flag.
func svgPathFor(path, algo string, multi bool) string {
	if !multi {
		return path
	}
	ext := filepath.Ext(path)

	return strings.TrimSuffix(path, ext) + "-" + algo + ext
}

func writeSVG(path string, snap controller.Snapshot, cfg config.Config) error {
	opts := render.NewDefaultOptions()
	opts.Width, opts.Height = cfg.Width, cfg.Height
	data, err := (&render.SVGRenderer{}).Render(render.SceneFrom(snap), opts)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func writeReport(out io.Writer, r Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(out, "seed %d, layout %s, %d nodes\n", r.Seed, r.Layout, r.Nodes)
	for _, run := range r.Runs {
		fmt.Fprintf(out, "%-8s edges=%d weight=%.3f discarded=%d examined=%d start=%d elapsed=%s\n",
			run.Algorithm, run.Edges, run.TotalWeight, run.Discarded, run.Candidates, run.Start, run.Elapsed)
		for _, s := range run.Steps {
			fmt.Fprintf(out, "  %4d  %d-%d  %.3f\n", s.Index, s.U, s.V, s.Weight)
		}
		if run.SVG != "" {
			fmt.Fprintf(out, "  svg: %s\n", run.SVG)
		}
	}

	return nil
}
