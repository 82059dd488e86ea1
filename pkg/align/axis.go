package align

import "github.com/bugadani/embedded-layout/pkg/geometry"

// relation is the axis-independent form of an alignment mode.
type relation uint8

const (
	keep relation = iota
	near
	center
	far
	nearToFar
	farToNear
)

// span is one axis of a rectangle.
type span struct {
	near, size int
}

func (s span) far() int {
	if s.size == 0 {
		return s.near
	}
	return s.near + s.size - 1
}

func (s span) center() int {
	return s.near + s.size/2
}

func xSpan(r geometry.Rectangle) span { return span{near: r.TopLeft.X, size: r.Size.Width} }

func ySpan(r geometry.Rectangle) span { return span{near: r.TopLeft.Y, size: r.Size.Height} }

func (rel relation) offset(obj, ref span, extra int) int {
	switch rel {
	case near:
		return ref.near - obj.near + extra
	case center:
		return ref.center() - obj.center() + extra
	case far:
		return ref.far() - obj.far() + extra
	case nearToFar:
		if obj.size == 0 {
			return ref.far() - obj.near + extra
		}
		return ref.far() + 1 - obj.near + extra
	case farToNear:
		if obj.size == 0 {
			return ref.near - obj.far() + extra
		}
		return ref.near - 1 - obj.far() + extra
	default:
		return extra
	}
}

func (rel relation) cascading() bool {
	return rel == nearToFar || rel == farToNear
}

func (rel relation) first() relation {
	switch rel {
	case nearToFar:
		return near
	case farToNear:
		return far
	default:
		return rel
	}
}
