package linear

import (
	"github.com/bugadani/embedded-layout/pkg/align"
	"github.com/bugadani/embedded-layout/pkg/geometry"
	"github.com/bugadani/embedded-layout/pkg/view"
)

// Layout arranges the elements of a group along one axis.
type Layout struct {
	orientation Orientation
	views       view.Group
	// origin tracks translations so an empty layout keeps a position.
	origin geometry.Point
}

// New returns a layout of views using the given orientation.
func New(o Orientation, views view.Group) *Layout {
	return &Layout{orientation: o, views: views}
}

// NewHorizontal returns a left to right layout with bottom aligned elements
// and tight spacing.
func NewHorizontal(views view.Group) *Layout {
	return New(Horizontal{Secondary: align.Bottom, Spacing: Tight{}}, views)
}

// NewVertical returns a top to bottom layout with left aligned elements and
// tight spacing.
func NewVertical(views view.Group) *Layout {
	return New(Vertical{Secondary: align.Left, Spacing: Tight{}}, views)
}

// WithSpacing replaces the spacing policy.
func (l *Layout) WithSpacing(s Spacing) *Layout {
	l.orientation = l.orientation.WithSpacing(s)
	return l
}

// WithOrientation replaces the orientation.
func (l *Layout) WithOrientation(o Orientation) *Layout {
	l.orientation = o
	return l
}

// Orientation returns the current orientation.
func (l *Layout) Orientation() Orientation { return l.orientation }

// Inner returns the arranged group.
func (l *Layout) Inner() view.Group { return l.views }

// Measure returns the folded size of all elements without spacing.
func (l *Layout) Measure() geometry.Size {
	n := l.views.Len()
	if n == 0 {
		return geometry.Size{}
	}
	size := view.Size(l.views.At(0))
	for i := 1; i < n; i++ {
		size = l.orientation.Measure(size, view.Size(l.views.At(i)))
	}
	return size
}

// Size returns the size the layout occupies once arranged.
func (l *Layout) Size() geometry.Size {
	n := l.views.Len()
	if n == 0 {
		return geometry.Size{}
	}
	return l.orientation.AdjustSize(l.Measure(), n)
}

// Arrange positions every element, anchored at the origin.
func (l *Layout) Arrange() *Layout {
	n := l.views.Len()
	if n == 0 {
		return l
	}
	measured := l.Measure()
	bounds := geometry.Rectangle{Size: l.orientation.AdjustSize(measured, n)}

	l.orientation.PlaceFirst(l.views.At(0), measured, bounds, n)
	for i := 1; i < n; i++ {
		l.orientation.PlaceNth(l.views.At(i), measured, l.views.At(i-1).Bounds(), i, n)
	}
	return l
}

// Bounds returns the envelope of all elements. An empty layout is a zero
// sized rectangle at its current position.
func (l *Layout) Bounds() geometry.Rectangle {
	if l.views.Len() == 0 {
		return geometry.Rectangle{TopLeft: l.origin}
	}
	return view.GroupBounds(l.views)
}

// Translate moves every element.
func (l *Layout) Translate(by geometry.Point) {
	l.origin = l.origin.Add(by)
	view.TranslateGroup(l.views, by)
}

func (l *Layout) Len() int { return l.views.Len() }

func (l *Layout) At(i int) view.View { return l.views.At(i) }
