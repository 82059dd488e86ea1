// Package view defines the objects that layouts position.
//
// A [View] is anything with a bounding box that can be moved. Layout and
// alignment code only ever reads bounds and applies translations, so a view
// can wrap any drawable the caller likes.
//
// A [Group] is an ordered, indexable collection of views. Layouts operate on
// groups and are groups themselves, which lets them nest. Two collections
// are provided:
//
//   - [Views] holds views of one concrete type.
//   - [Chain] holds views of mixed types in insertion order.
//
// [Box] is a plain identified rectangle, [Cached] memoizes the bounds of an
// expensive view, and [DisplayArea] describes the visible display region used
// as an alignment reference.
package view
