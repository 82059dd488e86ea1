package view

import "github.com/bugadani/embedded-layout/pkg/geometry"

// Cached wraps a view whose Bounds is expensive to compute. The bounds are
// computed on first use and shifted on every translation afterwards.
type Cached[V View] struct {
	view   V
	bounds geometry.Rectangle
	valid  bool
}

// NewCached wraps v.
func NewCached[V View](v V) *Cached[V] {
	return &Cached[V]{view: v}
}

// Unwrap returns the wrapped view.
func (c *Cached[V]) Unwrap() V { return c.view }

// Invalidate drops the cached bounds. Call it after changing the wrapped view
// by any means other than Translate.
func (c *Cached[V]) Invalidate() { c.valid = false }

func (c *Cached[V]) Bounds() geometry.Rectangle {
	if !c.valid {
		c.bounds = c.view.Bounds()
		c.valid = true
	}
	return c.bounds
}

func (c *Cached[V]) Translate(by geometry.Point) {
	c.view.Translate(by)
	if c.valid {
		c.bounds = c.bounds.Translate(by)
	}
}
