package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/spanviz/controller"
	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/prim_kruskal"
	"github.com/katalvlaran/spanviz/render"
)

func cornerScene() render.Scene {
	return render.Scene{
		Title: "a < b & c",
		Nodes: []r2.Vec{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 40}},
		Segments: []core.Segment{
			{A: r2.Vec{X: 0, Y: 0}, B: r2.Vec{X: 100, Y: 0}},
			{A: r2.Vec{X: 100, Y: 0}, B: r2.Vec{X: 100, Y: 40}},
		},
		Latest: 1,
	}
}

func TestASCIIRenderer_Corner(t *testing.T) {
	opts := &render.Options{Width: 100, Height: 40, Columns: 11, Rows: 5}
	out, err := (&render.ASCIIRenderer{}).Render(cornerScene(), opts)
	require.NoError(t, err)

	want := strings.Join([]string{
		"o·········o",
		"          #",
		"          #",
		"          #",
		"          o",
	}, "\n") + "\n"
	assert.Equal(t, want, string(out))
}

func TestASCIIRenderer_DiagonalAndClamp(t *testing.T) {
	scene := render.Scene{
		Nodes:    []r2.Vec{{X: -50, Y: -50}, {X: 500, Y: 500}},
		Segments: []core.Segment{{A: r2.Vec{X: 0, Y: 0}, B: r2.Vec{X: 40, Y: 40}}},
		Latest:   -1,
	}
	opts := &render.Options{Width: 40, Height: 40, Columns: 5, Rows: 5}
	out, err := (&render.ASCIIRenderer{}).Render(scene, opts)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "o    ", lines[0])
	assert.Equal(t, " ·   ", lines[1])
	assert.Equal(t, "  ·  ", lines[2])
	assert.Equal(t, "   · ", lines[3])
	assert.Equal(t, "    o", lines[4])
}

func TestASCIIRenderer_BadOptions(t *testing.T) {
	_, err := (&render.ASCIIRenderer{}).Render(cornerScene(), &render.Options{Width: 10, Height: 10})
	assert.ErrorIs(t, err, render.ErrBadCanvas)
}

func TestSVGRenderer(t *testing.T) {
	out, err := (&render.SVGRenderer{}).Render(cornerScene(), nil)
	require.NoError(t, err)
	svg := string(out)

	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.Contains(t, svg, `<rect width="100%" height="100%" fill="white"/>`)
	assert.Equal(t, 2, strings.Count(svg, "<line "))
	assert.Contains(t, svg, `<line x1="0" y1="0" x2="100" y2="0" stroke="red" stroke-width="1"/>`)
	// background plus one square per node
	assert.Equal(t, 4, strings.Count(svg, "<rect "))
	assert.Contains(t, svg, `<rect x="98" y="38" width="4" height="4" fill="black"/>`)
	assert.Contains(t, svg, "a &lt; b &amp; c")
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))

	_, err = (&render.SVGRenderer{}).Render(cornerScene(), &render.Options{})
	assert.ErrorIs(t, err, render.ErrBadCanvas)
}

func TestSceneFromSnapshot(t *testing.T) {
	c := controller.New()
	require.NoError(t, c.StartWith(prim_kruskal.Kruskal, []r2.Vec{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}))

	idle := render.SceneFrom(controller.New().Snapshot())
	assert.Equal(t, -1, idle.Latest)
	assert.Equal(t, "0 nodes | idle", idle.Title)

	_, err := c.Step()
	require.NoError(t, err)
	scene := render.SceneFrom(c.Snapshot())
	assert.Len(t, scene.Nodes, 3)
	assert.Len(t, scene.Segments, 1)
	assert.Equal(t, 0, scene.Latest)
	assert.Equal(t, "Kruskal's | 1/2 edges | weight 10.000 | running", scene.Title)
}

func TestGetRenderer(t *testing.T) {
	r, err := render.GetRenderer("SVG")
	require.NoError(t, err)
	assert.Equal(t, "svg", r.Name())

	r, err = render.GetRenderer("ascii")
	require.NoError(t, err)
	assert.Equal(t, "ascii", r.Name())

	_, err = render.GetRenderer("png")
	assert.ErrorIs(t, err, render.ErrUnsupportedFormat)
}
