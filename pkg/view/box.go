package view

import "github.com/bugadani/embedded-layout/pkg/geometry"

// Box is an identified rectangle. It is the simplest possible view and
// stands in for any fixed-size drawable.
type Box struct {
	ID   string
	Rect geometry.Rectangle
}

// NewBox returns a box of the given size at the origin.
func NewBox(id string, size geometry.Size) *Box {
	return &Box{ID: id, Rect: geometry.Rectangle{Size: size}}
}

// Bounds implements View.
func (b *Box) Bounds() geometry.Rectangle { return b.Rect }

// Translate implements View.
func (b *Box) Translate(by geometry.Point) { b.Rect = b.Rect.Translate(by) }

// DisplayArea returns a view covering a display of the given size, anchored
// at the origin. It is used as a reference for aligning content to the screen.
func DisplayArea(size geometry.Size) *Box {
	return &Box{ID: "display", Rect: geometry.Rectangle{Size: size}}
}
