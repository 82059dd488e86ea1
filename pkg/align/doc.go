// Package align computes alignment offsets between bounding boxes.
//
// Alignment is split into two independent axes. [Horizontal] modes act on X
// and [Vertical] modes act on Y. Every mode answers one question: by how many
// pixels must an object move on this axis so that it relates to a reference
// rectangle in the named way.
//
// # Modes
//
// Stacking modes place the object inside the reference:
//
//	Left, HorizontalCenter, Right
//	Top,  VerticalCenter,   Bottom
//
// Cascading modes place the object next to the reference, separated by a
// single pixel so the two never overlap:
//
//	LeftToRight, RightToLeft
//	TopToBottom, BottomToTop
//
// An object that is empty along the axis attaches directly to the reference
// edge without the gap. HorizontalNone and VerticalNone leave the axis alone.
//
// # Usage
//
//	title := view.NewBox("title", geometry.Sz(90, 8))
//	align.To(title, display, align.HorizontalCenter, align.Top)
//
// The reference is never modified.
package align
