package view

import "github.com/bugadani/embedded-layout/pkg/geometry"

// View is an object with a bounding box that can be translated.
type View interface {
	// Bounds returns the current bounding box.
	Bounds() geometry.Rectangle
	// Translate moves the view by the given offset.
	Translate(by geometry.Point)
}

// Group is an ordered collection of views.
//
// At must return a live handle: translating the returned view moves the
// element inside the group.
type Group interface {
	View
	Len() int
	At(i int) View
}

// Size returns the size of the view's bounding box.
func Size(v View) geometry.Size {
	return v.Bounds().Size
}

// Translated moves v and returns it, for use in expressions.
func Translated[V View](v V, by geometry.Point) V {
	v.Translate(by)
	return v
}

// GroupBounds returns the envelope of all elements of g. An empty group has
// a zero rectangle at the origin.
func GroupBounds(g Group) geometry.Rectangle {
	n := g.Len()
	if n == 0 {
		return geometry.Rectangle{}
	}
	bounds := g.At(0).Bounds()
	for i := 1; i < n; i++ {
		bounds = bounds.Enveloping(g.At(i).Bounds())
	}
	return bounds
}

// TranslateGroup moves every element of g.
func TranslateGroup(g Group, by geometry.Point) {
	for i := range g.Len() {
		g.At(i).Translate(by)
	}
}
