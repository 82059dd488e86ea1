// Package canvas is a character grid for previewing arranged views as text.
//
// The grid grows on demand from the origin to the largest coordinate drawn.
// Pixels with negative coordinates are outside the display and are dropped,
// matching how a physical display clips them.
package canvas

import (
	"strings"

	"github.com/bugadani/embedded-layout/pkg/geometry"
)

const (
	// On is the character used for lit pixels.
	On = '#'
	// Off is the character used for background pixels.
	Off = ' '
)

// Canvas is a growable 2D grid of characters.
type Canvas struct {
	cells  []rune
	width  int
	height int
}

// New returns an empty canvas.
func New() *Canvas {
	return &Canvas{}
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// At returns the character at p, or Off outside the drawn area.
func (c *Canvas) At(p geometry.Point) rune {
	if p.X < 0 || p.Y < 0 || p.X >= c.width || p.Y >= c.height {
		return Off
	}
	return c.cells[p.Y*c.width+p.X]
}

// Set draws ch at p. Negative coordinates are ignored.
func (c *Canvas) Set(p geometry.Point, ch rune) {
	if p.X < 0 || p.Y < 0 {
		return
	}
	c.grow(p.X+1, p.Y+1)
	c.cells[p.Y*c.width+p.X] = ch
}

// StrokeRect draws the 1px outline of r.
func (c *Canvas) StrokeRect(r geometry.Rectangle, ch rune) {
	if r.IsEmpty() {
		return
	}
	br := r.BottomRight()
	c.reserve(br)
	for x := r.TopLeft.X; x <= br.X; x++ {
		c.Set(geometry.Pt(x, r.TopLeft.Y), ch)
		c.Set(geometry.Pt(x, br.Y), ch)
	}
	for y := r.TopLeft.Y; y <= br.Y; y++ {
		c.Set(geometry.Pt(r.TopLeft.X, y), ch)
		c.Set(geometry.Pt(br.X, y), ch)
	}
}

// FillRect fills r.
func (c *Canvas) FillRect(r geometry.Rectangle, ch rune) {
	if r.IsEmpty() {
		return
	}
	br := r.BottomRight()
	c.reserve(br)
	for y := r.TopLeft.Y; y <= br.Y; y++ {
		for x := r.TopLeft.X; x <= br.X; x++ {
			c.Set(geometry.Pt(x, y), ch)
		}
	}
}

// Lines returns the grid row by row. Every row is padded to the full width.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for y := range c.height {
		lines[y] = string(c.cells[y*c.width : (y+1)*c.width])
	}
	return lines
}

func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

// reserve grows the grid once so that it covers br. Drawing a shape pixel
// by pixel would otherwise reallocate the grid for every new row and column.
func (c *Canvas) reserve(br geometry.Point) {
	if br.X < 0 || br.Y < 0 {
		return
	}
	c.grow(br.X+1, br.Y+1)
}

func (c *Canvas) grow(width, height int) {
	if width <= c.width && height <= c.height {
		return
	}
	w, h := max(width, c.width), max(height, c.height)
	cells := make([]rune, w*h)
	for i := range cells {
		cells[i] = Off
	}
	for y := range c.height {
		copy(cells[y*w:y*w+c.width], c.cells[y*c.width:(y+1)*c.width])
	}
	c.cells, c.width, c.height = cells, w, h
}
