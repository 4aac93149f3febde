package render

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	nodeRune   = 'o'
	edgeRune   = '·'
	latestRune = '#'
	emptyRune  = ' '
)

// ASCIIRenderer rasterizes the scene into an opts.Columns × opts.Rows rune
// grid. Scene coordinates in [0, Width] × [0, Height] map linearly onto the
// grid; anything outside is clamped to the border cells. The latest edge is
// drawn with '#', older edges with '·', nodes with 'o' on top.
type ASCIIRenderer struct{}

// Name returns "ascii".
func (r *ASCIIRenderer) Name() string { return "ascii" }

// Render returns Rows newline-terminated lines of exactly Columns runes.
func (r *ASCIIRenderer) Render(scene Scene, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = NewDefaultOptions()
	}
	if opts.Columns < 1 || opts.Rows < 1 || !(opts.Width > 0) || !(opts.Height > 0) {
		return nil, fmt.Errorf("ascii %dx%d over %gx%g: %w", opts.Columns, opts.Rows, opts.Width, opts.Height, ErrBadCanvas)
	}

	grid := make([][]rune, opts.Rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(string(emptyRune), opts.Columns))
	}

	cell := func(p r2.Vec) (int, int) {
		x := int(math.Round(p.X / opts.Width * float64(opts.Columns-1)))
		y := int(math.Round(p.Y / opts.Height * float64(opts.Rows-1)))
		return clamp(x, 0, opts.Columns-1), clamp(y, 0, opts.Rows-1)
	}

	for i, s := range scene.Segments {
		ch := edgeRune
		if i == scene.Latest {
			ch = latestRune
		}
		x1, y1 := cell(s.A)
		x2, y2 := cell(s.B)
		drawLine(grid, x1, y1, x2, y2, ch)
	}
	for _, p := range scene.Nodes {
		x, y := cell(p)
		grid[y][x] = nodeRune
	}

	var out strings.Builder
	for _, row := range grid {
		out.WriteString(string(row))
		out.WriteByte('\n')
	}

	return []byte(out.String()), nil
}

// drawLine plots a Bresenham line from (x1,y1) to (x2,y2) inclusive.
func drawLine(grid [][]rune, x1, y1, x2, y2 int, ch rune) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	for {
		if grid[y1][x1] != latestRune {
			grid[y1][x1] = ch
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
