package sink

import (
	"github.com/bugadani/embedded-layout/pkg/canvas"
	"github.com/bugadani/embedded-layout/pkg/document"
)

// Characters used by RenderText for layout envelopes and the display frame.
const (
	LayoutRune  = '.'
	DisplayRune = ':'
)

// TextOption configures text rendering via [RenderText].
type TextOption func(*textRenderer)

type textRenderer struct {
	layouts bool
	display bool
}

// WithTextLayouts also outlines layout envelopes.
func WithTextLayouts() TextOption { return func(r *textRenderer) { r.layouts = true } }

// WithTextDisplay also outlines the display area.
func WithTextDisplay() TextOption { return func(r *textRenderer) { r.display = true } }

// RenderText draws every box of the scene as a 1px outline.
func RenderText(s *document.Scene, opts ...TextOption) []byte {
	return []byte(Canvas(s, opts...).String() + "\n")
}

// Canvas draws the scene onto a fresh canvas. Boxes are drawn last so they
// are never hidden by envelopes.
func Canvas(s *document.Scene, opts ...TextOption) *canvas.Canvas {
	var r textRenderer
	for _, opt := range opts {
		opt(&r)
	}

	c := canvas.New()
	if r.display && s.Display != nil {
		c.StrokeRect(*s.Display, DisplayRune)
	}
	if r.layouts {
		s.Walk(func(e *document.Element, _ int) bool {
			if e.Kind == document.KindLayout {
				c.StrokeRect(e.View.Bounds(), LayoutRune)
			}
			return true
		})
	}
	for _, b := range s.Boxes() {
		c.StrokeRect(b.Bounds(), canvas.On)
	}
	return c
}
