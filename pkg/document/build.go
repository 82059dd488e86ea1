package document

import (
	"strconv"
	"strings"

	"github.com/bugadani/embedded-layout/pkg/align"
	"github.com/bugadani/embedded-layout/pkg/errors"
	"github.com/bugadani/embedded-layout/pkg/geometry"
	"github.com/bugadani/embedded-layout/pkg/layout/linear"
	"github.com/bugadani/embedded-layout/pkg/view"
)

// RootPath is the path of the root element.
const RootPath = "root"

// MaxExtent bounds every coordinate, size, margin and fill target in a
// document, and the extent of the arranged scene. Renderers allocate a
// pixel grid covering the scene, so unbounded input is rejected.
const MaxExtent = 4096

// Kind tells boxes and layouts apart.
type Kind string

const (
	KindBox    Kind = "box"
	KindLayout Kind = "layout"
)

// Element is a built node.
type Element struct {
	ID       string
	Path     string
	Kind     Kind
	View     view.View
	Children []*Element

	// Layout is set for KindLayout elements.
	Layout *linear.Layout
}

// Name returns the id, or the path for anonymous elements.
func (e *Element) Name() string {
	if e.ID != "" {
		return e.ID
	}
	return e.Path
}

// Scene is an arranged document.
type Scene struct {
	Root *Element
	// Display is the display area, nil when the document has none.
	Display *geometry.Rectangle
	// Size is the size the root occupies after arrangement.
	Size geometry.Size
}

// Bounds returns the envelope of everything in the scene.
func (s *Scene) Bounds() geometry.Rectangle {
	return s.Root.View.Bounds()
}

// Walk visits every element depth-first in document order. Returning false
// skips the children of e.
func (s *Scene) Walk(fn func(e *Element, depth int) bool) {
	walk(s.Root, 0, fn)
}

func walk(e *Element, depth int, fn func(*Element, int) bool) {
	if !fn(e, depth) {
		return
	}
	for _, c := range e.Children {
		walk(c, depth+1, fn)
	}
}

// Boxes returns every leaf box in document order.
func (s *Scene) Boxes() []*view.Box {
	var boxes []*view.Box
	s.Walk(func(e *Element, _ int) bool {
		if b, ok := e.View.(*view.Box); ok {
			boxes = append(boxes, b)
		}
		return true
	})
	return boxes
}

// Find returns the element with the given id or path.
func (s *Scene) Find(name string) (*Element, bool) {
	var found *Element
	s.Walk(func(e *Element, _ int) bool {
		if found != nil {
			return false
		}
		if e.ID == name || e.Path == name {
			found = e
			return false
		}
		return true
	})
	return found, found != nil
}

// Count returns the number of boxes and layouts in the scene.
func (s *Scene) Count() (boxes, layouts int) {
	s.Walk(func(e *Element, _ int) bool {
		if e.Kind == KindLayout {
			layouts++
		} else {
			boxes++
		}
		return true
	})
	return boxes, layouts
}

// Build validates doc and arranges it.
func Build(doc *Document) (*Scene, error) {
	b := &builder{seen: make(map[string]string)}
	root, err := b.node(doc.Layout, RootPath)
	if err != nil {
		return nil, err
	}

	scene := &Scene{Root: root, Size: view.Size(root.View)}
	if root.Layout != nil {
		scene.Size = root.Layout.Size()
	}
	if err := checkExtent(scene.Size.Width, scene.Size.Height); err != nil {
		return nil, errors.New(errors.ErrCodeInvalidSize, "arranged scene: %s", errors.UserMessage(err))
	}

	if doc.Display != nil {
		display, h, v, err := parseDisplay(*doc.Display)
		if err != nil {
			return nil, err
		}
		area := display.Bounds()
		scene.Display = &area
		align.To(root.View, area, h, v)
	}

	bounds := scene.Bounds()
	br := bounds.BottomRight()
	if err := checkExtent(bounds.TopLeft.X, bounds.TopLeft.Y, br.X, br.Y); err != nil {
		return nil, errors.New(errors.ErrCodeInvalidSize, "arranged scene: %s", errors.UserMessage(err))
	}
	return scene, nil
}

// checkExtent reports an error if any value lies outside ±MaxExtent.
func checkExtent(values ...int) error {
	for _, v := range values {
		if v > MaxExtent || v < -MaxExtent {
			return errors.New(errors.ErrCodeInvalidSize, "%d exceeds the maximum extent of %d", v, MaxExtent)
		}
	}
	return nil
}

type builder struct {
	seen map[string]string
}

func (b *builder) node(n Node, path string) (*Element, error) {
	if err := errors.ValidateID(n.ID); err != nil {
		return nil, errors.New(errors.ErrCodeInvalidID, "%s: %s", path, errors.UserMessage(err))
	}
	if n.ID != "" {
		if prev, ok := b.seen[n.ID]; ok {
			return nil, errors.New(errors.ErrCodeDuplicateID, "id %q used by %s and %s", n.ID, prev, path)
		}
		b.seen[n.ID] = path
	}

	if !n.IsLayout() {
		if n.Width < 0 || n.Height < 0 {
			return nil, errors.New(errors.ErrCodeInvalidSize, "%s: negative size %dx%d", path, n.Width, n.Height)
		}
		if err := checkExtent(n.X, n.Y, n.Width, n.Height); err != nil {
			return nil, errors.New(errors.ErrCodeInvalidSize, "%s: %s", path, errors.UserMessage(err))
		}
		box := &view.Box{ID: n.ID, Rect: geometry.Rect(n.X, n.Y, n.Width, n.Height)}
		return &Element{ID: n.ID, Path: path, Kind: KindBox, View: box}, nil
	}

	if err := checkExtent(n.X, n.Y, n.Margin, n.Fill); err != nil {
		return nil, errors.New(errors.ErrCodeInvalidSize, "%s: %s", path, errors.UserMessage(err))
	}
	orientation, err := ParseOrientation(n)
	if err != nil {
		return nil, errors.New(errors.GetCode(err), "%s: %s", path, errors.UserMessage(err))
	}

	el := &Element{ID: n.ID, Path: path, Kind: KindLayout}
	chain := view.NewChain()
	for i, child := range n.Children {
		c, err := b.node(child, path+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		el.Children = append(el.Children, c)
		chain.Append(c.View)
	}

	el.Layout = linear.New(orientation, chain).Arrange()
	el.Layout.Translate(geometry.Pt(n.X, n.Y))
	el.View = el.Layout
	return el, nil
}

// ParseOrientation returns the orientation described by a layout node.
// An empty direction means vertical. An empty alignment picks the default
// for the direction: bottom for horizontal layouts, left for vertical ones.
func ParseOrientation(n Node) (linear.Orientation, error) {
	spacing, err := ParseSpacing(n)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(n.Direction) {
	case DirectionHorizontal:
		secondary := align.Bottom
		if strings.TrimSpace(n.Alignment) != "" {
			v, ok := align.ParseVertical(n.Alignment)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidAlignment, "unknown vertical alignment %q", n.Alignment)
			}
			secondary = v
		}
		return linear.Horizontal{Secondary: secondary, Spacing: spacing}, nil
	case DirectionVertical, "":
		secondary := align.Left
		if strings.TrimSpace(n.Alignment) != "" {
			h, ok := align.ParseHorizontal(n.Alignment)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidAlignment, "unknown horizontal alignment %q", n.Alignment)
			}
			secondary = h
		}
		return linear.Vertical{Secondary: secondary, Spacing: spacing}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidDirection, "unknown direction %q (want horizontal or vertical)", n.Direction)
	}
}

// ParseSpacing returns the spacing policy of a layout node.
func ParseSpacing(n Node) (linear.Spacing, error) {
	switch strings.ToLower(n.Spacing) {
	case "", SpacingTight:
		return linear.Tight{}, nil
	case SpacingFixed:
		return linear.FixedMargin(n.Margin), nil
	case SpacingFill:
		if n.Fill < 0 {
			return nil, errors.New(errors.ErrCodeInvalidSpacing, "fill target must not be negative, got %d", n.Fill)
		}
		return linear.DistributeFill(n.Fill), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidSpacing, "unknown spacing %q (want tight, fixed or fill)", n.Spacing)
	}
}

func parseDisplay(d Display) (*view.Box, align.Horizontal, align.Vertical, error) {
	if d.Width < 0 || d.Height < 0 {
		return nil, 0, 0, errors.New(errors.ErrCodeInvalidSize, "display: negative size %dx%d", d.Width, d.Height)
	}
	if err := checkExtent(d.Width, d.Height); err != nil {
		return nil, 0, 0, errors.New(errors.ErrCodeInvalidSize, "display: %s", errors.UserMessage(err))
	}
	h, v := align.HorizontalCenter, align.VerticalCenter
	if strings.TrimSpace(d.Horizontal) != "" {
		var ok bool
		if h, ok = align.ParseHorizontal(d.Horizontal); !ok {
			return nil, 0, 0, errors.New(errors.ErrCodeInvalidAlignment, "display: unknown horizontal alignment %q", d.Horizontal)
		}
	}
	if strings.TrimSpace(d.Vertical) != "" {
		var ok bool
		if v, ok = align.ParseVertical(d.Vertical); !ok {
			return nil, 0, 0, errors.New(errors.ErrCodeInvalidAlignment, "display: unknown vertical alignment %q", d.Vertical)
		}
	}
	return view.DisplayArea(geometry.Sz(d.Width, d.Height)), h, v, nil
}
