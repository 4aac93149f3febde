// Package render turns a controller snapshot into drawable output: SVG for
// files and ASCII for terminals.
package render

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/spanviz/controller"
	"github.com/katalvlaran/spanviz/core"
)

// ErrUnsupportedFormat is returned by GetRenderer for an unknown format name.
var ErrUnsupportedFormat = errors.New("render: unsupported format")

// Options configures a Renderer.
type Options struct {
	Width  float64 // canvas width in scene coordinates
	Height float64 // canvas height in scene coordinates

	Background string  // SVG background fill
	EdgeColor  string  // SVG tree edge stroke
	NodeColor  string  // SVG node fill
	NodeSize   float64 // SVG node square side
	ShowTitle  bool

	Columns int // ASCII grid width
	Rows    int // ASCII grid height
}

// NewDefaultOptions returns the stock look: a white 800×600 canvas, red tree
// edges and 4×4 black node squares.
func NewDefaultOptions() *Options {
	return &Options{
		Width:      800,
		Height:     600,
		Background: "white",
		EdgeColor:  "red",
		NodeColor:  "black",
		NodeSize:   4,
		ShowTitle:  true,
		Columns:    80,
		Rows:       24,
	}
}

// Scene is everything a renderer draws.
type Scene struct {
	Title    string
	Nodes    []r2.Vec
	Segments []core.Segment
	// Latest indexes the most recently accepted segment, or -1.
	Latest int
}

// SceneFrom builds a Scene from a controller snapshot.
func SceneFrom(snap controller.Snapshot) Scene {
	nodes := make([]r2.Vec, len(snap.Nodes))
	for i, n := range snap.Nodes {
		nodes[i] = n.Pos
	}

	return Scene{
		Title:    Title(snap),
		Nodes:    nodes,
		Segments: snap.Segments,
		Latest:   len(snap.Segments) - 1,
	}
}

// Title summarizes a snapshot in one line, e.g.
// "Kruskal's | 12/99 edges | weight 1234.567 | running".
func Title(snap controller.Snapshot) string {
	if snap.Algorithm == "" {
		return fmt.Sprintf("%d nodes | %s", len(snap.Nodes), snap.State)
	}

	return fmt.Sprintf("%s | %d/%d edges | weight %.3f | %s",
		snap.Algorithm, len(snap.Edges), snap.Expected(), snap.TotalWeight, snap.State)
}

// Renderer is a rendering backend.
type Renderer interface {
	// Render draws the scene; a nil opts means NewDefaultOptions.
	Render(scene Scene, opts *Options) ([]byte, error)

	// Name returns the format name accepted by GetRenderer.
	Name() string
}

// GetRenderer returns the renderer for format ("svg" or "ascii").
func GetRenderer(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "svg":
		return &SVGRenderer{}, nil
	case "ascii", "text":
		return &ASCIIRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}

	return val
}
