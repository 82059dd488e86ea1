package linear

import (
	"github.com/bugadani/embedded-layout/pkg/align"
	"github.com/bugadani/embedded-layout/pkg/geometry"
	"github.com/bugadani/embedded-layout/pkg/view"
)

// Orientation decides the primary axis of a layout and how elements are
// placed along it.
type Orientation interface {
	// PlaceFirst aligns the first element to the layout bounds.
	PlaceFirst(v view.View, measured geometry.Size, bounds geometry.Rectangle, count int)
	// PlaceNth aligns element n to the final bounds of element n-1.
	PlaceNth(v view.View, measured geometry.Size, previous geometry.Rectangle, n, count int)
	// AdjustSize applies spacing to the primary axis of a measured size.
	AdjustSize(measured geometry.Size, count int) geometry.Size
	// Measure folds the size of the next element into acc.
	Measure(acc, next geometry.Size) geometry.Size
	// WithSpacing returns a copy using the given spacing.
	WithSpacing(s Spacing) Orientation
}

// Horizontal arranges elements left to right. Secondary aligns elements
// vertically. A nil Spacing means Tight.
type Horizontal struct {
	Secondary align.Vertical
	Spacing   Spacing
}

// Vertical arranges elements top to bottom. Secondary aligns elements
// horizontally. A nil Spacing means Tight.
type Vertical struct {
	Secondary align.Horizontal
	Spacing   Spacing
}

func (o Horizontal) PlaceFirst(v view.View, measured geometry.Size, bounds geometry.Rectangle, count int) {
	b := v.Bounds()
	v.Translate(geometry.Point{
		X: align.Left.Offset(b, bounds, spacingOrTight(o.Spacing).Offset(0, count, measured.Width)),
		Y: o.Secondary.First().Offset(b, bounds, 0),
	})
}

func (o Horizontal) PlaceNth(v view.View, measured geometry.Size, previous geometry.Rectangle, n, count int) {
	b := v.Bounds()
	v.Translate(geometry.Point{
		X: align.LeftToRight.Offset(b, previous, spacingOrTight(o.Spacing).Offset(n, count, measured.Width)),
		Y: o.Secondary.Offset(b, previous, 0),
	})
}

func (o Horizontal) AdjustSize(measured geometry.Size, count int) geometry.Size {
	if count < 2 {
		return measured
	}
	measured.Width = max(0, spacingOrTight(o.Spacing).Total(measured.Width, count))
	return measured
}

func (o Horizontal) Measure(acc, next geometry.Size) geometry.Size {
	return geometry.Size{
		Width:  acc.Width + next.Width,
		Height: foldSecondary(o.Secondary.IsCascading(), acc.Height, next.Height),
	}
}

func (o Horizontal) WithSpacing(s Spacing) Orientation {
	o.Spacing = s
	return o
}

func (o Vertical) PlaceFirst(v view.View, measured geometry.Size, bounds geometry.Rectangle, count int) {
	b := v.Bounds()
	v.Translate(geometry.Point{
		X: o.Secondary.First().Offset(b, bounds, 0),
		Y: align.Top.Offset(b, bounds, spacingOrTight(o.Spacing).Offset(0, count, measured.Height)),
	})
}

func (o Vertical) PlaceNth(v view.View, measured geometry.Size, previous geometry.Rectangle, n, count int) {
	b := v.Bounds()
	v.Translate(geometry.Point{
		X: o.Secondary.Offset(b, previous, 0),
		Y: align.TopToBottom.Offset(b, previous, spacingOrTight(o.Spacing).Offset(n, count, measured.Height)),
	})
}

func (o Vertical) AdjustSize(measured geometry.Size, count int) geometry.Size {
	if count < 2 {
		return measured
	}
	measured.Height = max(0, spacingOrTight(o.Spacing).Total(measured.Height, count))
	return measured
}

func (o Vertical) Measure(acc, next geometry.Size) geometry.Size {
	return geometry.Size{
		Width:  foldSecondary(o.Secondary.IsCascading(), acc.Width, next.Width),
		Height: acc.Height + next.Height,
	}
}

func (o Vertical) WithSpacing(s Spacing) Orientation {
	o.Spacing = s
	return o
}

func foldSecondary(cascading bool, acc, next int) int {
	if cascading {
		return acc + next
	}
	return max(acc, next)
}

func spacingOrTight(s Spacing) Spacing {
	if s == nil {
		return Tight{}
	}
	return s
}
