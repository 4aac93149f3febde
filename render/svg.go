package render

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
)

// ErrBadCanvas is returned when the options describe an empty canvas.
var ErrBadCanvas = errors.New("render: canvas must be positive")

// SVGRenderer draws tree edges as lines and nodes as squares centred on
// their position.
type SVGRenderer struct{}

// Name returns "svg".
func (r *SVGRenderer) Name() string { return "svg" }

// Render writes a standalone SVG document. Edges are drawn before nodes so
// nodes stay visible.
func (r *SVGRenderer) Render(scene Scene, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = NewDefaultOptions()
	}
	if !(opts.Width > 0) || !(opts.Height > 0) {
		return nil, fmt.Errorf("svg %gx%g: %w", opts.Width, opts.Height, ErrBadCanvas)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<svg width="%g" height="%g" viewBox="0 0 %g %g" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
`, opts.Width, opts.Height, opts.Width, opts.Height, opts.Background)

	buf.WriteString(`<g class="edges">` + "\n")
	for _, s := range scene.Segments {
		fmt.Fprintf(&buf, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="1"/>`+"\n",
			s.A.X, s.A.Y, s.B.X, s.B.Y, opts.EdgeColor)
	}
	buf.WriteString("</g>\n")

	half := opts.NodeSize / 2
	buf.WriteString(`<g class="nodes">` + "\n")
	for _, p := range scene.Nodes {
		fmt.Fprintf(&buf, `  <rect x="%g" y="%g" width="%g" height="%g" fill="%s"/>`+"\n",
			p.X-half, p.Y-half, opts.NodeSize, opts.NodeSize, opts.NodeColor)
	}
	buf.WriteString("</g>\n")

	if opts.ShowTitle && scene.Title != "" {
		buf.WriteString(`<text x="8" y="16" font-family="monospace" font-size="12" fill="black">`)
		if err := xml.EscapeText(&buf, []byte(scene.Title)); err != nil {
			return nil, err
		}
		buf.WriteString("</text>\n")
	}
	buf.WriteString("</svg>\n")

	return buf.Bytes(), nil
}
