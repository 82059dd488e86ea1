package align

import "github.com/bugadani/embedded-layout/pkg/geometry"

// Vertical is an alignment mode on the Y axis. Up is the smaller coordinate.
type Vertical uint8

const (
	// VerticalNone keeps the vertical position unchanged.
	VerticalNone Vertical = Vertical(keep)
	// Top aligns the top edges.
	Top Vertical = Vertical(near)
	// VerticalCenter aligns the vertical centers.
	VerticalCenter Vertical = Vertical(center)
	// Bottom aligns the bottom edges.
	Bottom Vertical = Vertical(far)
	// TopToBottom places the object below the reference.
	TopToBottom Vertical = Vertical(nearToFar)
	// BottomToTop places the object above the reference.
	BottomToTop Vertical = Vertical(farToNear)
)

var verticalNames = map[Vertical]string{
	VerticalNone:   "none",
	Top:            "top",
	VerticalCenter: "center",
	Bottom:         "bottom",
	TopToBottom:    "top-to-bottom",
	BottomToTop:    "bottom-to-top",
}

// Offset returns the Y delta that moves object into this relation with
// reference, plus extra.
func (v Vertical) Offset(object, reference geometry.Rectangle, extra int) int {
	return relation(v).offset(ySpan(object), ySpan(reference), extra)
}

// IsCascading reports whether v places objects above or below the reference.
func (v Vertical) IsCascading() bool {
	return relation(v).cascading()
}

// First returns the stacking mode a layout uses for its first element.
func (v Vertical) First() Vertical {
	return Vertical(relation(v).first())
}

func (v Vertical) String() string {
	if name, ok := verticalNames[v]; ok {
		return name
	}
	return "unknown"
}

// Verticals returns every vertical mode in declaration order.
func Verticals() []Vertical {
	return []Vertical{VerticalNone, Top, VerticalCenter, Bottom, TopToBottom, BottomToTop}
}

// ParseVertical parses a mode name such as "top" or "bottom-to-top".
func ParseVertical(s string) (Vertical, bool) {
	key := normalize(s)
	for v, name := range verticalNames {
		if name == key {
			return v, true
		}
	}
	return VerticalNone, false
}
