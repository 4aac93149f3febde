package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanviz/config"
	"github.com/katalvlaran/spanviz/prim_kruskal"
)

func newViper(t *testing.T, args ...string) *viper.Viper {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.BindFlags(fs)
	require.NoError(t, fs.Parse(args))

	v := viper.New()
	require.NoError(t, config.Setup(v, fs))

	return v
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100*time.Millisecond, cfg.Delay())
	assert.Equal(t, 100, cfg.MinNodes)
	assert.Equal(t, 124, cfg.MaxNodes)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spanviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("delay: 300\nlayout: grid\nalgorithm: prim\nwidth: 640\n"), 0o600))
	t.Setenv("SPANVIZ_LAYOUT", "circle")
	t.Setenv("SPANVIZ_MIN_NODES", "12")

	v := newViper(t, "--algorithm=kruskal")
	require.NoError(t, config.ReadFile(v, path))
	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, 300, cfg.DelayMS, "file beats default")
	assert.Equal(t, 640.0, cfg.Width)
	assert.Equal(t, "circle", cfg.Layout, "env beats file")
	assert.Equal(t, 12, cfg.MinNodes)
	assert.Equal(t, "kruskal", cfg.Algorithm, "flag beats file")
	assert.Equal(t, 600.0, cfg.Height)
}

func TestReadFile_Missing(t *testing.T) {
	v := newViper(t)
	err := config.ReadFile(v, filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err, "an explicit path must exist")

	t.Setenv("HOME", t.TempDir())
	assert.NoError(t, config.ReadFile(viper.New(), ""), "default path may be absent")
}

func TestLoad_RejectsBadDelay(t *testing.T) {
	v := newViper(t, "--delay=10001")
	_, err := config.Load(v)
	assert.ErrorIs(t, err, config.ErrBadDelay)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*config.Config)
		want error
	}{
		{"delay low", func(c *config.Config) { c.DelayMS = -1 }, config.ErrBadDelay},
		{"delay high", func(c *config.Config) { c.DelayMS = 10001 }, config.ErrBadDelay},
		{"delay zero ok", func(c *config.Config) { c.DelayMS = 0 }, nil},
		{"delay max ok", func(c *config.Config) { c.DelayMS = 10000 }, nil},
		{"width", func(c *config.Config) { c.Width = 0 }, config.ErrBadCanvas},
		{"height", func(c *config.Config) { c.Height = -5 }, config.ErrBadCanvas},
		{"min nodes", func(c *config.Config) { c.MinNodes = 1 }, config.ErrBadNodeRange},
		{"inverted range", func(c *config.Config) { c.MaxNodes = 50 }, config.ErrBadNodeRange},
		{"algorithm", func(c *config.Config) { c.Algorithm = "boruvka" }, config.ErrBadAlgorithm},
		{"both ok", func(c *config.Config) { c.Algorithm = "BOTH" }, nil},
		{"layout", func(c *config.Config) { c.Layout = "spiral" }, config.ErrBadLayout},
		{"log level", func(c *config.Config) { c.LogLevel = "trace" }, config.ErrBadLogging},
		{"log format", func(c *config.Config) { c.LogFormat = "xml" }, config.ErrBadLogging},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mut(&cfg)
			err := cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAlgorithms(t *testing.T) {
	cfg := config.Default()
	cfg.Algorithm = "both"
	algos, err := cfg.Algorithms()
	require.NoError(t, err)
	assert.Equal(t, []prim_kruskal.Algorithm{prim_kruskal.Prim, prim_kruskal.Kruskal}, algos)

	cfg.Algorithm = "Prim's"
	algos, err = cfg.Algorithms()
	require.NoError(t, err)
	assert.Equal(t, []prim_kruskal.Algorithm{prim_kruskal.Prim}, algos)

	cfg.Algorithm = "x"
	_, err = cfg.Algorithms()
	assert.ErrorIs(t, err, config.ErrBadAlgorithm)
}

func TestPoints(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 42
	a, err := cfg.Points()
	require.NoError(t, err)
	b, err := cfg.Points()
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, len(a), 100)
	assert.LessOrEqual(t, len(a), 124)

	cfg.Layout = config.LayoutGrid
	cfg.MinNodes = 10
	grid, err := cfg.Points()
	require.NoError(t, err)
	assert.Len(t, grid, 12)

	cfg.MinNodes, cfg.MaxNodes = 20, 20
	grid, err = cfg.Points()
	require.NoError(t, err)
	assert.Len(t, grid, 20)

	// 3×3 lattice cut at the upper bound
	cfg.MinNodes, cfg.MaxNodes = 7, 7
	grid, err = cfg.Points()
	require.NoError(t, err)
	assert.Len(t, grid, 7)

	cfg.MinNodes, cfg.MaxNodes = 10, 124

	cfg.Layout = config.LayoutCircle
	circle, err := cfg.Points()
	require.NoError(t, err)
	assert.Len(t, circle, 10)

	cfg.Layout = config.LayoutNoise
	noise, err := cfg.Points()
	require.NoError(t, err)
	assert.Len(t, noise, 10)
}

func TestResolveSeed(t *testing.T) {
	cfg := config.Default()
	seed := cfg.ResolveSeed()
	assert.NotZero(t, seed)
	assert.Equal(t, seed, cfg.ResolveSeed())

	cfg.Seed = 9
	assert.Equal(t, int64(9), cfg.ResolveSeed())
}
