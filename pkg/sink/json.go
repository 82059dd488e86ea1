package sink

import (
	"encoding/json"

	"github.com/bugadani/embedded-layout/pkg/document"
	"github.com/bugadani/embedded-layout/pkg/geometry"
)

type jsonOutput struct {
	Size     geometry.Size `json:"size"`
	Bounds   jsonRect      `json:"bounds"`
	Display  *jsonRect     `json:"display,omitempty"`
	Elements []jsonElement `json:"elements"`
}

type jsonElement struct {
	Name        string   `json:"name"`
	ID          string   `json:"id,omitempty"`
	Kind        string   `json:"kind"`
	Depth       int      `json:"depth"`
	Parent      string   `json:"parent,omitempty"`
	Orientation string   `json:"orientation,omitempty"`
	Bounds      jsonRect `json:"bounds"`
}

type jsonRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func toJSONRect(r geometry.Rectangle) jsonRect {
	return jsonRect{X: r.TopLeft.X, Y: r.TopLeft.Y, Width: r.Size.Width, Height: r.Size.Height}
}

// RenderJSON exports the arranged scene. Elements are listed depth-first in
// document order.
func RenderJSON(s *document.Scene) ([]byte, error) {
	out := jsonOutput{
		Size:     s.Size,
		Bounds:   toJSONRect(s.Bounds()),
		Elements: []jsonElement{},
	}
	if s.Display != nil {
		d := toJSONRect(*s.Display)
		out.Display = &d
	}

	parents := make(map[*document.Element]string)
	s.Walk(func(e *document.Element, depth int) bool {
		el := jsonElement{
			Name:   e.Name(),
			ID:     e.ID,
			Kind:   string(e.Kind),
			Depth:  depth,
			Parent: parents[e],
			Bounds: toJSONRect(e.View.Bounds()),
		}
		if e.Layout != nil {
			el.Orientation = DescribeOrientation(e)
		}
		for _, c := range e.Children {
			parents[c] = e.Name()
		}
		out.Elements = append(out.Elements, el)
		return true
	})

	return json.MarshalIndent(out, "", "  ")
}
