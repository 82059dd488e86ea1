// Package linear arranges a group of views along one axis.
//
// A [Layout] places its elements one after another, either left to right
// ([Horizontal]) or top to bottom ([Vertical]). The axis the elements follow
// is the primary axis. On the other axis, the secondary axis, every element
// is aligned to the one before it using an [align.Horizontal] or
// [align.Vertical] mode.
//
// # Arrangement
//
// Arranging is a two phase process:
//
//  1. Measure: element sizes are folded together. The primary axis sums.
//     The secondary axis takes the maximum for stacking alignments and sums
//     for cascading ones, which produces a staircase.
//  2. Place: the first element is aligned to a rectangle of the measured
//     size at the origin. Every following element is aligned to the final
//     bounds of its predecessor.
//
// The arranged group sits at the origin. Move it into place afterwards,
// typically with [align.To] against a display area:
//
//	l := linear.NewVertical(view.NewChain(title, body)).
//		WithSpacing(linear.FixedMargin(2)).
//		Arrange()
//	align.To(l, display.Bounds(), align.HorizontalCenter, align.VerticalCenter)
//
// # Spacing
//
// A [Spacing] policy adds distance between elements on the primary axis:
// [Tight] adds nothing, [FixedMargin] adds a constant, and [DistributeFill]
// spreads the slack of a fixed target size over the gaps.
//
// A Layout is itself a [view.Group], so layouts nest.
//
// No operation in this package returns an error. Degenerate inputs such as
// empty groups, empty elements or fill targets smaller than the content
// produce deterministic, possibly overlapping results.
package linear
