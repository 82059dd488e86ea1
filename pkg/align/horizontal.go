package align

import (
	"strings"

	"github.com/bugadani/embedded-layout/pkg/geometry"
)

// Horizontal is an alignment mode on the X axis.
type Horizontal uint8

const (
	// HorizontalNone keeps the horizontal position unchanged.
	HorizontalNone Horizontal = Horizontal(keep)
	// Left aligns the left edges.
	Left Horizontal = Horizontal(near)
	// HorizontalCenter aligns the horizontal centers.
	HorizontalCenter Horizontal = Horizontal(center)
	// Right aligns the right edges.
	Right Horizontal = Horizontal(far)
	// LeftToRight places the object to the right of the reference.
	LeftToRight Horizontal = Horizontal(nearToFar)
	// RightToLeft places the object to the left of the reference.
	RightToLeft Horizontal = Horizontal(farToNear)
)

var horizontalNames = map[Horizontal]string{
	HorizontalNone:   "none",
	Left:             "left",
	HorizontalCenter: "center",
	Right:            "right",
	LeftToRight:      "left-to-right",
	RightToLeft:      "right-to-left",
}

// Offset returns the X delta that moves object into this relation with
// reference, plus extra.
func (h Horizontal) Offset(object, reference geometry.Rectangle, extra int) int {
	return relation(h).offset(xSpan(object), xSpan(reference), extra)
}

// IsCascading reports whether h places objects beside the reference.
func (h Horizontal) IsCascading() bool {
	return relation(h).cascading()
}

// First returns the stacking mode a layout uses for its first element:
// LeftToRight becomes Left, RightToLeft becomes Right, other modes are
// returned unchanged.
func (h Horizontal) First() Horizontal {
	return Horizontal(relation(h).first())
}

func (h Horizontal) String() string {
	if name, ok := horizontalNames[h]; ok {
		return name
	}
	return "unknown"
}

// Horizontals returns every horizontal mode in declaration order.
func Horizontals() []Horizontal {
	return []Horizontal{HorizontalNone, Left, HorizontalCenter, Right, LeftToRight, RightToLeft}
}

// ParseHorizontal parses a mode name such as "left" or "left-to-right".
// Underscores are accepted in place of dashes and case is ignored. Blank
// names are rejected; use "none" for HorizontalNone.
func ParseHorizontal(s string) (Horizontal, bool) {
	key := normalize(s)
	for h, name := range horizontalNames {
		if name == key {
			return h, true
		}
	}
	return HorizontalNone, false
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
}
