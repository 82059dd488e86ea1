package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/bugadani/embedded-layout/pkg/document"
	"github.com/bugadani/embedded-layout/pkg/geometry"
)

const (
	boxStroke     = "#1f2937"
	layoutStroke  = "#3b82f6"
	displayStroke = "#9ca3af"
	labelFill     = "#111827"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	labels  bool
	layouts bool
	scale   int
}

// WithLabels writes element names inside boxes.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithLayouts draws dashed layout envelopes.
func WithLayouts() SVGOption { return func(r *svgRenderer) { r.layouts = true } }

// WithScale sets how many output units one display pixel takes (default 4).
func WithScale(s int) SVGOption {
	return func(r *svgRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// RenderSVG renders box outlines on a pixel grid.
func RenderSVG(s *document.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{scale: 4}
	for _, opt := range opts {
		opt(&r)
	}

	frame := s.Bounds()
	if s.Display != nil {
		frame = frame.Enveloping(*s.Display)
	}
	frame.Size.Width = max(frame.Size.Width, 1)
	frame.Size.Height = max(frame.Size.Height, 1)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%d %d %d %d" width="%d" height="%d" shape-rendering="crispEdges">`+"\n",
		frame.TopLeft.X, frame.TopLeft.Y, frame.Size.Width, frame.Size.Height,
		frame.Size.Width*r.scale, frame.Size.Height*r.scale)

	if s.Display != nil {
		writeRect(&buf, "display", "display", *s.Display, displayStroke, "")
	}
	if r.layouts {
		s.Walk(func(e *document.Element, _ int) bool {
			if e.Kind == document.KindLayout {
				writeRect(&buf, "layout", e.Name(), e.View.Bounds(), layoutStroke, ` stroke-dasharray="1 1"`)
			}
			return true
		})
	}
	s.Walk(func(e *document.Element, _ int) bool {
		if e.Kind == document.KindBox {
			writeRect(&buf, "box", e.Name(), e.View.Bounds(), boxStroke, "")
			if r.labels {
				writeLabel(&buf, e.Name(), e.View.Bounds())
			}
		}
		return true
	})

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// writeRect strokes the outermost pixel ring of rect.
func writeRect(buf *bytes.Buffer, class, name string, rect geometry.Rectangle, stroke, extra string) {
	if rect.IsEmpty() {
		return
	}
	fmt.Fprintf(buf, `  <rect class="%s" data-name="%s" x="%.1f" y="%.1f" width="%d" height="%d" fill="none" stroke="%s" stroke-width="1"%s/>`+"\n",
		class, html.EscapeString(name),
		float64(rect.TopLeft.X)+0.5, float64(rect.TopLeft.Y)+0.5,
		rect.Size.Width-1, rect.Size.Height-1,
		stroke, extra)
}

func writeLabel(buf *bytes.Buffer, name string, rect geometry.Rectangle) {
	if rect.Size.Height < 5 {
		return
	}
	c := rect.Center()
	fmt.Fprintf(buf, `  <text x="%d" y="%d" font-family="monospace" font-size="%d" text-anchor="middle" dominant-baseline="central" fill="%s">%s</text>`+"\n",
		c.X, c.Y, min(rect.Size.Height/2, 8), labelFill, html.EscapeString(name))
}
