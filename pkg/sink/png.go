package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/bugadani/embedded-layout/pkg/canvas"
	"github.com/bugadani/embedded-layout/pkg/document"
	"github.com/bugadani/embedded-layout/pkg/geometry"
)

var (
	pngBackground = color.RGBA{R: 0x10, G: 0x18, B: 0x20, A: 0xff}
	pngPixelOn    = color.RGBA{R: 0x7d, G: 0xf9, B: 0xff, A: 0xff}
	pngLayout     = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	pngDisplay    = color.RGBA{R: 0x4b, G: 0x55, B: 0x63, A: 0xff}
)

// PNGOption configures PNG rendering via [RenderPNG].
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	text  []TextOption
	scale int
}

// WithPNGScale sets the integer upscaling factor (default 4).
func WithPNGScale(s int) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithPNGLayouts also draws layout envelopes.
func WithPNGLayouts() PNGOption {
	return func(r *pngRenderer) { r.text = append(r.text, WithTextLayouts()) }
}

// RenderPNG rasterizes the scene like a monochrome display and scales it up
// with nearest-neighbour sampling so pixels stay sharp.
func RenderPNG(s *document.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 4}
	for _, opt := range opts {
		opt(&r)
	}

	c := Canvas(s, append(r.text, WithTextDisplay())...)
	src := image.NewRGBA(image.Rect(0, 0, max(c.Width(), 1), max(c.Height(), 1)))
	draw.Draw(src, src.Bounds(), image.NewUniform(pngBackground), image.Point{}, draw.Src)
	for y := range c.Height() {
		for x := range c.Width() {
			if col, ok := pixelColor(c.At(geometry.Pt(x, y))); ok {
				src.Set(x, y, col)
			}
		}
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*r.scale, b.Dy()*r.scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pixelColor(ch rune) (color.RGBA, bool) {
	switch ch {
	case canvas.On:
		return pngPixelOn, true
	case LayoutRune:
		return pngLayout, true
	case DisplayRune:
		return pngDisplay, true
	default:
		return color.RGBA{}, false
	}
}
