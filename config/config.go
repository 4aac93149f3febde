// Package config resolves spanviz settings from flags, SPANVIZ_* environment
// variables and an optional YAML file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/spanviz/builder"
	"github.com/katalvlaran/spanviz/prim_kruskal"
)

// Bounds of the step delay, in milliseconds.
const (
	MinDelayMS = 0
	MaxDelayMS = 10000
)

// EnvPrefix prefixes every environment variable, e.g. SPANVIZ_DELAY.
const EnvPrefix = "SPANVIZ"

// Layout names accepted by Config.Layout.
const (
	LayoutRandom = "random"
	LayoutGrid   = "grid"
	LayoutCircle = "circle"
	LayoutNoise  = "noise"
)

// AlgorithmBoth runs Prim and then Kruskal over the same points (solve only).
const AlgorithmBoth = "both"

// Validation errors.
var (
	ErrBadDelay     = errors.New("config: delay must be an integer in [0, 10000] ms")
	ErrBadCanvas    = errors.New("config: canvas width and height must be positive")
	ErrBadNodeRange = errors.New("config: node range must satisfy 2 <= min <= max")
	ErrBadAlgorithm = errors.New("config: unknown algorithm")
	ErrBadLayout    = errors.New("config: unknown layout")
	ErrBadLogging   = errors.New("config: unknown log level or format")
)

// Config is the resolved application configuration.
type Config struct {
	DelayMS     int     `mapstructure:"delay" yaml:"delay" json:"delay"`
	Width       float64 `mapstructure:"width" yaml:"width" json:"width"`
	Height      float64 `mapstructure:"height" yaml:"height" json:"height"`
	MinNodes    int     `mapstructure:"min-nodes" yaml:"min-nodes" json:"min_nodes"`
	MaxNodes    int     `mapstructure:"max-nodes" yaml:"max-nodes" json:"max_nodes"`
	Seed        int64   `mapstructure:"seed" yaml:"seed" json:"seed"` // 0 picks a time-based seed
	Algorithm   string  `mapstructure:"algorithm" yaml:"algorithm" json:"algorithm"`
	RandomStart bool    `mapstructure:"random-start" yaml:"random-start" json:"random_start"`
	Layout      string  `mapstructure:"layout" yaml:"layout" json:"layout"`
	LogLevel    string  `mapstructure:"log-level" yaml:"log-level" json:"log_level"`
	LogFormat   string  `mapstructure:"log-format" yaml:"log-format" json:"log_format"`
	TraceFile   string  `mapstructure:"trace-file" yaml:"trace-file" json:"trace_file"`
}

// Default returns the stock configuration: a 100 ms delay, an 800×600 canvas
// and 100–124 random points.
func Default() Config {
	return Config{
		DelayMS:   100,
		Width:     800,
		Height:    600,
		MinNodes:  100,
		MaxNodes:  124,
		Algorithm: string(prim_kruskal.Kruskal),
		Layout:    LayoutRandom,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// BindFlags registers one flag per setting on fs, defaulting to Default().
func BindFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int("delay", d.DelayMS, "milliseconds between steps [0, 10000]")
	fs.Float64("width", d.Width, "canvas width")
	fs.Float64("height", d.Height, "canvas height")
	fs.Int("min-nodes", d.MinNodes, "minimum number of generated points")
	fs.Int("max-nodes", d.MaxNodes, "maximum number of generated points")
	fs.Int64("seed", d.Seed, "random seed (0 = time-based)")
	fs.String("algorithm", d.Algorithm, "prim, kruskal or both")
	fs.Bool("random-start", d.RandomStart, "start Prim from a random node instead of node 0")
	fs.String("layout", d.Layout, "point layout: random, grid, circle or noise")
	fs.String("log-level", d.LogLevel, "debug, info, warn or error")
	fs.String("log-format", d.LogFormat, "text or json")
	fs.String("trace-file", d.TraceFile, "write OpenTelemetry spans to this file")
}

// Setup prepares v: defaults for every key, SPANVIZ_* environment lookup and
// the flags in fs (may be nil).
func Setup(v *viper.Viper, fs *pflag.FlagSet) error {
	d := Default()
	v.SetDefault("delay", d.DelayMS)
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("min-nodes", d.MinNodes)
	v.SetDefault("max-nodes", d.MaxNodes)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("algorithm", d.Algorithm)
	v.SetDefault("random-start", d.RandomStart)
	v.SetDefault("layout", d.Layout)
	v.SetDefault("log-level", d.LogLevel)
	v.SetDefault("log-format", d.LogFormat)
	v.SetDefault("trace-file", d.TraceFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs == nil {
		return nil
	}

	return v.BindPFlags(fs)
}

// ReadFile loads path into v. An empty path means ~/.spanviz.yaml, which may
// be absent; an explicit path must exist.
func ReadFile(v *viper.Viper, path string) error {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".spanviz.yaml")
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	return nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field. The first failure is returned.
func (c Config) Validate() error {
	if c.DelayMS < MinDelayMS || c.DelayMS > MaxDelayMS {
		return fmt.Errorf("%w: got %d", ErrBadDelay, c.DelayMS)
	}
	if !(c.Width > 0) || !(c.Height > 0) {
		return fmt.Errorf("%w: got %gx%g", ErrBadCanvas, c.Width, c.Height)
	}
	if c.MinNodes < 2 || c.MaxNodes < c.MinNodes {
		return fmt.Errorf("%w: got [%d, %d]", ErrBadNodeRange, c.MinNodes, c.MaxNodes)
	}
	if !strings.EqualFold(c.Algorithm, AlgorithmBoth) {
		if _, err := prim_kruskal.ParseAlgorithm(c.Algorithm); err != nil {
			return fmt.Errorf("%w: %q", ErrBadAlgorithm, c.Algorithm)
		}
	}
	switch c.Layout {
	case LayoutRandom, LayoutGrid, LayoutCircle, LayoutNoise:
	default:
		return fmt.Errorf("%w: %q", ErrBadLayout, c.Layout)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: level %q", ErrBadLogging, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: format %q", ErrBadLogging, c.LogFormat)
	}

	return nil
}

// Delay returns the step delay as a duration.
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// Algorithms returns the algorithms to run, in order. "both" yields Prim
// then Kruskal.
func (c Config) Algorithms() ([]prim_kruskal.Algorithm, error) {
	if strings.EqualFold(c.Algorithm, AlgorithmBoth) {
		return []prim_kruskal.Algorithm{prim_kruskal.Prim, prim_kruskal.Kruskal}, nil
	}
	a, err := prim_kruskal.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadAlgorithm, c.Algorithm)
	}

	return []prim_kruskal.Algorithm{a}, nil
}

// ResolveSeed replaces a zero seed with a time-based one and returns it.
func (c *Config) ResolveSeed() int64 {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}

	return c.Seed
}

// Points generates a point set for the configured layout. Callers that need
// reproducible output should call ResolveSeed first.
func (c Config) Points() ([]r2.Vec, error) {
	opts := []builder.Option{
		builder.WithSeed(c.Seed),
		builder.WithBounds(c.Width, c.Height),
	}

	var con builder.Constructor
	switch c.Layout {
	case LayoutGrid:
		rows, cols := gridShape(c.MinNodes)
		con = builder.Grid(rows, cols)
	case LayoutCircle:
		con = builder.Circle(c.MinNodes)
	case LayoutNoise:
		con = builder.NoiseField(c.MinNodes, noiseScale, noiseThreshold)
	default:
		con = builder.RandomCount(c.MinNodes, c.MaxNodes)
	}

	pts, err := builder.Build(opts, con)
	if err != nil {
		return nil, err
	}
	// a grid may overshoot MinNodes; its trailing row is cut at MaxNodes
	if len(pts) > c.MaxNodes {
		pts = pts[:c.MaxNodes]
	}

	return pts, nil
}

const (
	noiseScale     = 0.008
	noiseThreshold = 0.15
)

// gridShape returns the most square rows×cols lattice holding at least n
// points: cols is the smallest side whose square holds n, rows the fewest
// rows of that width that do.
func gridShape(n int) (rows, cols int) {
	cols = 1
	for cols*cols < n {
		cols++
	}
	rows = (n + cols - 1) / cols

	return rows, cols
}
