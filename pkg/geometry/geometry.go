package geometry

import "fmt"

// Point is a position in display coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is the extent of a rectangle. Components are non-negative.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

// IsZero reports whether either dimension is zero.
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Rectangle is an axis-aligned box.
type Rectangle struct {
	TopLeft Point `json:"top_left"`
	Size    Size  `json:"size"`
}

// NewRectangle returns the rectangle at topLeft with the given size.
func NewRectangle(topLeft Point, size Size) Rectangle {
	return Rectangle{TopLeft: topLeft, Size: size}
}

// Rect is shorthand for a rectangle at (x, y) of w by h pixels.
func Rect(x, y, w, h int) Rectangle {
	return Rectangle{TopLeft: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// WithCorners returns the smallest rectangle that contains both corners.
// Corners are inclusive and may be given in any order.
func WithCorners(a, b Point) Rectangle {
	left, right := minMax(a.X, b.X)
	top, bottom := minMax(a.Y, b.Y)
	return Rectangle{
		TopLeft: Point{X: left, Y: top},
		Size:    Size{Width: right - left + 1, Height: bottom - top + 1},
	}
}

// BottomRight returns the inclusive far corner. An empty axis yields the near
// coordinate on that axis.
func (r Rectangle) BottomRight() Point {
	return Point{
		X: farEdge(r.TopLeft.X, r.Size.Width),
		Y: farEdge(r.TopLeft.Y, r.Size.Height),
	}
}

// Center returns the center point, rounded towards the top-left.
func (r Rectangle) Center() Point {
	return Point{
		X: r.TopLeft.X + r.Size.Width/2,
		Y: r.TopLeft.Y + r.Size.Height/2,
	}
}

// Translate returns the rectangle moved by the given offset.
func (r Rectangle) Translate(by Point) Rectangle {
	r.TopLeft = r.TopLeft.Add(by)
	return r
}

// IsEmpty reports whether the rectangle covers no pixels.
func (r Rectangle) IsEmpty() bool {
	return r.Size.IsZero()
}

// Contains reports whether p lies inside the rectangle.
func (r Rectangle) Contains(p Point) bool {
	if r.IsEmpty() {
		return false
	}
	br := r.BottomRight()
	return p.X >= r.TopLeft.X && p.X <= br.X && p.Y >= r.TopLeft.Y && p.Y <= br.Y
}

// Enveloping returns the smallest rectangle containing both r and other.
func (r Rectangle) Enveloping(other Rectangle) Rectangle {
	left := min(r.TopLeft.X, other.TopLeft.X)
	top := min(r.TopLeft.Y, other.TopLeft.Y)
	right := max(r.TopLeft.X+r.Size.Width, other.TopLeft.X+other.Size.Width)
	bottom := max(r.TopLeft.Y+r.Size.Height, other.TopLeft.Y+other.Size.Height)
	return Rectangle{
		TopLeft: Point{X: left, Y: top},
		Size:    Size{Width: right - left, Height: bottom - top},
	}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%s+%s", r.TopLeft, r.Size)
}

func farEdge(near, size int) int {
	if size == 0 {
		return near
	}
	return near + size - 1
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
