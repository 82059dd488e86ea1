// Package geometry provides the integer pixel geometry used by every other
// package: points, sizes and axis-aligned rectangles.
//
// # Coordinates
//
// The coordinate system follows display conventions: X grows to the right
// and Y grows downwards. A [Rectangle] is described by its top-left corner
// and its [Size]. Its far edges are inclusive, so a 10x5 rectangle at the
// origin covers columns 0..9 and rows 0..4.
//
// Zero-sized rectangles are valid. Their far edge on an empty axis equals the
// near edge, which keeps [Rectangle.BottomRight] and [Rectangle.Center] total.
//
// All arithmetic is exact signed integer arithmetic. Nothing in this package
// allocates or returns errors.
package geometry
