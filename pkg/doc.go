// Package pkg provides the libraries behind embedded-layout, a toolkit for
// positioning rectangular views on small pixel displays.
//
// # Overview
//
// Everything works on integer pixel rectangles. A view is any object with a
// bounding box that can be translated; alignment and layout code reads those
// bounds and moves views, it never draws. The pkg directory is organized into
// three areas:
//
//  1. Layout core: [geometry], [align], [view], [layout/linear]
//  2. Documents and output: [document], [canvas], [sink]
//  3. Orchestration: [pipeline], [cache], [observability], [errors],
//     [httputil], [buildinfo]
//
// # Architecture
//
// The typical data flow through embedded-layout:
//
//	TOML/JSON document
//	         ↓
//	    [document] package (parse + build views and layouts)
//	         ↓
//	    [layout/linear] package (measure + arrange)
//	         ↓
//	    [align] package (place the result on the display)
//	         ↓
//	    [sink] package (SVG/PNG/JSON/text/DOT output)
//
// # Quick Start
//
// Stack two boxes horizontally and center them on a 128x64 display:
//
//	import (
//	    "github.com/bugadani/embedded-layout/pkg/align"
//	    "github.com/bugadani/embedded-layout/pkg/geometry"
//	    "github.com/bugadani/embedded-layout/pkg/layout/linear"
//	    "github.com/bugadani/embedded-layout/pkg/view"
//	)
//
//	boxes := view.NewViews(
//	    view.NewBox("a", geometry.Size{Width: 10, Height: 20}),
//	    view.NewBox("b", geometry.Size{Width: 5, Height: 10}),
//	)
//
//	row := linear.NewHorizontal(boxes).
//	    WithSpacing(linear.FixedMargin(2)).
//	    Arrange()
//
//	display := view.DisplayArea(geometry.Size{Width: 128, Height: 64})
//	align.To(row, display.Bounds(), align.HorizontalCenter, align.VerticalCenter)
//
// # Main Packages
//
// [geometry] - Points, sizes and rectangles with saturating corner math.
//
// [align] - Horizontal and vertical alignment modes. Inner modes (left,
// center, right) overlap edges or centers; cascading modes (left-to-right,
// top-to-bottom and their reverses) place an object beside its reference.
//
// [view] - The [view.View] and [view.Group] abstractions plus concrete
// collections for homogeneous and heterogeneous children.
//
// [layout/linear] - Linear layouts that stack a group along one axis with
// tight, fixed-margin or fill-distributed spacing.
//
// [canvas] - A growable character grid used to render scenes as text and as
// the pixel source for PNG output.
//
// [document] - Declarative scene documents in TOML or JSON and the builder
// that turns them into arranged views.
//
// [sink] - Output formats for arranged scenes (SVG, PNG, JSON, text, DOT).
//
// ## Infrastructure
//
// [pipeline] - The complete arrange-then-render pipeline used by the CLI,
// the preview and the HTTP server. Ensures consistent behavior across all
// entry points.
//
// [cache] - Content-addressed artifact caching with file, memory and null
// backends.
//
// [observability] - Hooks for pipeline, cache and HTTP events, with a
// logging implementation.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/layout/...             # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// [geometry]: https://pkg.go.dev/github.com/bugadani/embedded-layout/pkg/geometry
// [align]: https://pkg.go.dev/github.com/bugadani/embedded-layout/pkg/align
// [view]: https://pkg.go.dev/github.com/bugadani/embedded-layout/pkg/view
// [layout/linear]: https://pkg.go.dev/github.com/bugadani/embedded-layout/pkg/layout/linear
// [canvas]: https://pkg.go.dev/github.com/bugadani/embedded-layout/pkg/canvas
// [document]: https://pkg.go.dev/github.com/bugadani/embedded-layout/pkg/document
// [sink]: https://pkg.go.dev/github.com/bugadani/embedded-layout/pkg/sink
// [pipeline]: https://pkg.go.dev/github.com/bugadani/embedded-layout/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/bugadani/embedded-layout/pkg/cache
// [observability]: https://pkg.go.dev/github.com/bugadani/embedded-layout/pkg/observability
// [errors]: https://pkg.go.dev/github.com/bugadani/embedded-layout/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/bugadani/embedded-layout/pkg/httputil
// [buildinfo]: https://pkg.go.dev/github.com/bugadani/embedded-layout/pkg/buildinfo
package pkg
