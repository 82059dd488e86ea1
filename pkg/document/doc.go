// Package document describes layouts declaratively and builds them into
// arranged scenes.
//
// A document is a tree of nodes. Leaf nodes are fixed-size boxes, inner nodes
// are linear layouts of their children. An optional display section gives
// the final alignment reference for the root:
//
//	[display]
//	width = 128
//	height = 64
//	horizontal = "center"
//	vertical = "center"
//
//	[layout]
//	direction = "vertical"
//	alignment = "center"
//	spacing = "fixed"
//	margin = 4
//
//	  [[layout.children]]
//	  id = "title"
//	  width = 90
//	  height = 8
//
// Documents are read from TOML or JSON with the same schema. [Build] validates
// a document, arranges every layout bottom-up and returns a [Scene] holding
// the positioned views.
package document
