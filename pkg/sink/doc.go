// Package sink provides output format renderers for arranged scenes.
//
// # Overview
//
// A "sink" transforms a [document.Scene] into a final output format:
//
//   - Text: character grid with 1px box outlines, the way a monochrome
//     display would show them
//   - JSON: positions of every element for external tools
//   - SVG: vector preview with optional labels and layout envelopes
//   - PNG: raster preview at an integer pixel scale
//   - DOT: the element hierarchy as a Graphviz graph, and its SVG rendering
//
// Coordinates are display pixels. Renderers that draw onto a grid (text and
// PNG) drop anything at negative coordinates, exactly like a display would.
//
// # Usage
//
//	scene, _ := document.Build(doc)
//	svg := sink.RenderSVG(scene, sink.WithLabels(), sink.WithScale(4))
//	txt := sink.RenderText(scene)
package sink
