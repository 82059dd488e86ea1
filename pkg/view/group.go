package view

import "github.com/bugadani/embedded-layout/pkg/geometry"

// Views is a group of views sharing one concrete type.
//
// T must be a pointer type. At hands out the element itself, so a value type
// would be copied and its translations lost.
type Views[T View] struct {
	items  []T
	origin geometry.Point
}

// NewViews wraps items. The slice is used as is; elements are translated in
// place.
func NewViews[T View](items ...T) *Views[T] {
	return &Views[T]{items: items}
}

// Items returns the underlying elements.
func (v *Views[T]) Items() []T { return v.items }

func (v *Views[T]) Len() int { return len(v.items) }

func (v *Views[T]) At(i int) View { return v.items[i] }

func (v *Views[T]) Bounds() geometry.Rectangle {
	if len(v.items) == 0 {
		return geometry.Rectangle{TopLeft: v.origin}
	}
	return GroupBounds(v)
}

func (v *Views[T]) Translate(by geometry.Point) {
	v.origin = v.origin.Add(by)
	for _, item := range v.items {
		item.Translate(by)
	}
}

// Chain is an ordered group of views of mixed types.
type Chain struct {
	items  []View
	origin geometry.Point
}

// NewChain returns a chain holding items in order.
func NewChain(items ...View) *Chain {
	return &Chain{items: items}
}

// Append adds v to the end of the chain and returns the chain.
func (c *Chain) Append(v View) *Chain {
	c.items = append(c.items, v)
	return c
}

func (c *Chain) Len() int { return len(c.items) }

func (c *Chain) At(i int) View { return c.items[i] }

func (c *Chain) Bounds() geometry.Rectangle {
	if len(c.items) == 0 {
		return geometry.Rectangle{TopLeft: c.origin}
	}
	return GroupBounds(c)
}

func (c *Chain) Translate(by geometry.Point) {
	c.origin = c.origin.Add(by)
	for _, item := range c.items {
		item.Translate(by)
	}
}
