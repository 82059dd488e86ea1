package align

import (
	"github.com/bugadani/embedded-layout/pkg/geometry"
	"github.com/bugadani/embedded-layout/pkg/view"
)

// Delta returns the translation that aligns object to reference.
func Delta(object, reference geometry.Rectangle, h Horizontal, v Vertical) geometry.Point {
	return geometry.Point{
		X: h.Offset(object, reference, 0),
		Y: v.Offset(object, reference, 0),
	}
}

// Rect returns object aligned to reference.
func Rect(object, reference geometry.Rectangle, h Horizontal, v Vertical) geometry.Rectangle {
	return object.Translate(Delta(object, reference, h, v))
}

// To translates v in place so that it is aligned to reference.
func To(v view.View, reference geometry.Rectangle, h Horizontal, vt Vertical) {
	v.Translate(Delta(v.Bounds(), reference, h, vt))
}
