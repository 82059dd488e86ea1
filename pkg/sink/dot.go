package sink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/bugadani/embedded-layout/pkg/document"
)

// ToDOT converts the element hierarchy of a scene to Graphviz DOT format.
// Layouts are drawn dashed, boxes solid. Every node is labelled with its
// name and final bounds.
func ToDOT(s *document.Scene) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=monospace];\n")
	buf.WriteString("\n")

	s.Walk(func(e *document.Element, _ int) bool {
		label := fmt.Sprintf("%s\n%s", e.Name(), e.View.Bounds())
		attrs := fmt.Sprintf("label=%q", label)
		if e.Kind == document.KindLayout {
			label = fmt.Sprintf("%s\n%s\n%s", e.Name(), DescribeOrientation(e), e.View.Bounds())
			attrs = fmt.Sprintf("label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey", label)
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", e.Path, attrs)
		return true
	})

	buf.WriteString("\n")
	s.Walk(func(e *document.Element, _ int) bool {
		for _, c := range e.Children {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.Path, c.Path)
		}
		return true
	})

	buf.WriteString("}\n")
	return buf.String()
}

// RenderTree renders the element hierarchy to SVG using Graphviz.
func RenderTree(ctx context.Context, s *document.Scene) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(ToDOT(s)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
