package linear

import (
	"testing"

	"github.com/bugadani/embedded-layout/pkg/align"
	"github.com/bugadani/embedded-layout/pkg/canvas"
	"github.com/bugadani/embedded-layout/pkg/geometry"
	"github.com/bugadani/embedded-layout/pkg/view"
	"github.com/google/go-cmp/cmp"
)

func box(id string, x, y, w, h int) *view.Box {
	return &view.Box{ID: id, Rect: geometry.Rect(x, y, w, h)}
}

func outline(boxes ...*view.Box) []string {
	c := canvas.New()
	for _, b := range boxes {
		c.StrokeRect(b.Rect, canvas.On)
	}
	return c.Lines()
}

func TestLayoutSize(t *testing.T) {
	tests := []struct {
		name   string
		layout func(view.Group) *Layout
		boxes  []*view.Box
		want   geometry.Size
	}{
		{
			name:   "horizontal",
			layout: NewHorizontal,
			boxes:  []*view.Box{box("a", 0, 0, 10, 20), box("b", 0, 0, 10, 20)},
			want:   geometry.Sz(20, 20),
		},
		{
			name:   "vertical",
			layout: NewVertical,
			boxes:  []*view.Box{box("a", 0, 0, 10, 20), box("b", 0, 0, 10, 20)},
			want:   geometry.Sz(10, 40),
		},
		{
			name: "horizontal fixed margin",
			layout: func(g view.Group) *Layout {
				return NewHorizontal(g).WithSpacing(FixedMargin(2))
			},
			boxes: []*view.Box{box("a", 0, 0, 10, 5), box("b", 0, 0, 5, 10)},
			want:  geometry.Sz(17, 10),
		},
		{
			name: "vertical fill",
			layout: func(g view.Group) *Layout {
				return NewVertical(g).WithSpacing(DistributeFill(64))
			},
			boxes: []*view.Box{box("a", 0, 0, 10, 5), box("b", 0, 0, 5, 10)},
			want:  geometry.Sz(10, 64),
		},
		{
			name: "single element ignores spacing",
			layout: func(g view.Group) *Layout {
				return NewHorizontal(g).WithSpacing(DistributeFill(64))
			},
			boxes: []*view.Box{box("a", 3, 3, 10, 5)},
			want:  geometry.Sz(10, 5),
		},
		{
			name:   "empty",
			layout: NewHorizontal,
			want:   geometry.Size{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layout(view.NewViews(tt.boxes...)).Size(); got != tt.want {
				t.Errorf("Size() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLayoutSizeIndependentOfViewLocation(t *testing.T) {
	size1 := NewHorizontal(view.NewChain(box("a", 0, 0, 10, 20), box("b", 0, 0, 10, 20))).Size()
	size2 := NewHorizontal(view.NewChain(box("a", 30, 50, 10, 20), box("b", 0, 0, 10, 20))).Size()
	if size1 != size2 {
		t.Errorf("sizes differ: %v vs %v", size1, size2)
	}
}

func TestArrangeFixtures(t *testing.T) {
	tests := []struct {
		name   string
		layout func(view.Group) *Layout
		want   []string
	}{
		{
			name:   "vertical",
			layout: NewVertical,
			want: []string{
				"           ",
				"           ",
				" ##########",
				" #        #",
				" #        #",
				" #        #",
				" ##########",
				" #####     ",
				" #   #     ",
				" #   #     ",
				" #   #     ",
				" #   #     ",
				" #   #     ",
				" #   #     ",
				" #   #     ",
				" #   #     ",
				" #####     ",
			},
		},
		{
			name: "vertical right aligned",
			layout: func(g view.Group) *Layout {
				return New(Vertical{Secondary: align.Right}, g)
			},
			want: []string{
				"           ",
				"           ",
				" ##########",
				" #        #",
				" #        #",
				" #        #",
				" ##########",
				"      #####",
				"      #   #",
				"      #   #",
				"      #   #",
				"      #   #",
				"      #   #",
				"      #   #",
				"      #   #",
				"      #   #",
				"      #####",
			},
		},
		{
			name:   "horizontal",
			layout: NewHorizontal,
			want: []string{
				"                ",
				"                ",
				"           #####",
				"           #   #",
				"           #   #",
				"           #   #",
				"           #   #",
				" ###########   #",
				" #        ##   #",
				" #        ##   #",
				" #        ##   #",
				" ###############",
			},
		},
		{
			name: "horizontal top aligned",
			layout: func(g view.Group) *Layout {
				return New(Horizontal{Secondary: align.Top}, g)
			},
			want: []string{
				"                ",
				"                ",
				" ###############",
				" #        ##   #",
				" #        ##   #",
				" #        ##   #",
				" ###########   #",
				"           #   #",
				"           #   #",
				"           #   #",
				"           #   #",
				"           #####",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := box("a", 10, 30, 10, 5)
			b := box("b", -50, 10, 5, 10)

			l := tt.layout(view.NewChain(a, b)).Arrange()
			l.Translate(geometry.Pt(1, 2))

			if diff := cmp.Diff(tt.want, outline(a, b)); diff != "" {
				t.Errorf("pattern mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestArrangePositions(t *testing.T) {
	tests := []struct {
		name   string
		layout func(view.Group) *Layout
		boxes  []*view.Box
		want   []geometry.Rectangle
	}{
		{
			name: "distribute fill overlaps",
			layout: func(g view.Group) *Layout {
				return NewHorizontal(g).WithSpacing(DistributeFill(11))
			},
			boxes: []*view.Box{box("a", 0, 0, 5, 5), box("b", 0, 0, 5, 5), box("c", 0, 0, 5, 5)},
			want:  []geometry.Rectangle{geometry.Rect(0, 0, 5, 5), geometry.Rect(3, 0, 5, 5), geometry.Rect(6, 0, 5, 5)},
		},
		{
			name: "distribute fill spreads",
			layout: func(g view.Group) *Layout {
				return NewHorizontal(g).WithSpacing(DistributeFill(20))
			},
			boxes: []*view.Box{box("a", 0, 0, 5, 5), box("b", 0, 0, 5, 5), box("c", 0, 0, 5, 5)},
			want:  []geometry.Rectangle{geometry.Rect(0, 0, 5, 5), geometry.Rect(8, 0, 5, 5), geometry.Rect(15, 0, 5, 5)},
		},
		{
			name:   "vertical left",
			layout: NewVertical,
			boxes:  []*view.Box{box("r1", 9, 9, 2, 2), box("r2", -4, 0, 6, 3), box("r3", 1, 1, 4, 5)},
			want:   []geometry.Rectangle{geometry.Rect(0, 0, 2, 2), geometry.Rect(0, 2, 6, 3), geometry.Rect(0, 5, 4, 5)},
		},
		{
			name: "vertical right",
			layout: func(g view.Group) *Layout {
				return New(Vertical{Secondary: align.Right}, g)
			},
			boxes: []*view.Box{box("r1", 9, 9, 2, 2), box("r2", -4, 0, 6, 3), box("r3", 1, 1, 4, 5)},
			want:  []geometry.Rectangle{geometry.Rect(4, 0, 2, 2), geometry.Rect(0, 2, 6, 3), geometry.Rect(2, 5, 4, 5)},
		},
		{
			name: "vertical center",
			layout: func(g view.Group) *Layout {
				return New(Vertical{Secondary: align.HorizontalCenter}, g)
			},
			boxes: []*view.Box{box("r1", 0, 0, 2, 2), box("r2", 0, 0, 6, 3), box("r3", 0, 0, 4, 5)},
			want:  []geometry.Rectangle{geometry.Rect(2, 0, 2, 2), geometry.Rect(0, 2, 6, 3), geometry.Rect(1, 5, 4, 5)},
		},
		{
			name: "cascading staircase",
			layout: func(g view.Group) *Layout {
				return New(Vertical{Secondary: align.LeftToRight}, g)
			},
			boxes: []*view.Box{box("a", 0, 0, 2, 2), box("b", 0, 0, 2, 2), box("c", 0, 0, 2, 2)},
			want:  []geometry.Rectangle{geometry.Rect(0, 0, 2, 2), geometry.Rect(2, 2, 2, 2), geometry.Rect(4, 4, 2, 2)},
		},
		{
			name: "vertical fixed margin",
			layout: func(g view.Group) *Layout {
				return NewVertical(g).WithSpacing(FixedMargin(3))
			},
			boxes: []*view.Box{box("a", 0, 0, 4, 2), box("b", 0, 0, 4, 2)},
			want:  []geometry.Rectangle{geometry.Rect(0, 0, 4, 2), geometry.Rect(0, 5, 4, 2)},
		},
		{
			name:   "zero width element chains",
			layout: NewHorizontal,
			boxes:  []*view.Box{box("a", 0, 0, 10, 10), box("gap", 0, 0, 0, 10), box("c", 0, 0, 10, 10)},
			want:   []geometry.Rectangle{geometry.Rect(0, 0, 10, 10), geometry.Rect(9, 0, 0, 10), geometry.Rect(10, 0, 10, 10)},
		},
		{
			name:   "zero height element chains",
			layout: NewVertical,
			boxes:  []*view.Box{box("a", 0, 0, 4, 4), box("gap", 0, 0, 4, 0), box("c", 0, 0, 4, 4)},
			want:   []geometry.Rectangle{geometry.Rect(0, 0, 4, 4), geometry.Rect(0, 3, 4, 0), geometry.Rect(0, 4, 4, 4)},
		},
		{
			name: "negative fixed margin overlaps",
			layout: func(g view.Group) *Layout {
				return NewHorizontal(g).WithSpacing(FixedMargin(-3))
			},
			boxes: []*view.Box{box("a", 0, 0, 5, 5), box("b", 0, 0, 5, 5)},
			want:  []geometry.Rectangle{geometry.Rect(0, 0, 5, 5), geometry.Rect(2, 0, 5, 5)},
		},
		{
			name:   "single element",
			layout: NewHorizontal,
			boxes:  []*view.Box{box("a", 7, -3, 4, 2)},
			want:   []geometry.Rectangle{geometry.Rect(0, 0, 4, 2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.layout(view.NewViews(tt.boxes...)).Arrange()

			got := make([]geometry.Rectangle, len(tt.boxes))
			for i, b := range tt.boxes {
				got[i] = b.Rect
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("positions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestArrangeMeasuredSizes(t *testing.T) {
	boxes := view.NewViews(box("r1", 0, 0, 2, 2), box("r2", 0, 0, 6, 3), box("r3", 0, 0, 4, 5))
	l := NewVertical(boxes)
	if got := l.Size(); got != geometry.Sz(6, 10) {
		t.Errorf("Size() = %v, want 6x10", got)
	}

	staircase := New(Vertical{Secondary: align.LeftToRight}, view.NewViews(
		box("a", 0, 0, 2, 2), box("b", 0, 0, 2, 2), box("c", 0, 0, 2, 2),
	))
	if got := staircase.Size(); got != geometry.Sz(6, 6) {
		t.Errorf("staircase Size() = %v, want 6x6", got)
	}
}

func TestBoundsIsEnvelope(t *testing.T) {
	l := NewHorizontal(view.NewViews(box("a", 0, 0, 5, 5), box("b", 0, 0, 5, 5))).
		WithSpacing(DistributeFill(30)).
		Arrange()

	if got, want := l.Bounds(), geometry.Rect(0, 0, 30, 5); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}

	l.Translate(geometry.Pt(-10, 4))
	if got, want := l.Bounds(), geometry.Rect(-10, 4, 30, 5); got != want {
		t.Errorf("Bounds() after Translate = %v, want %v", got, want)
	}
}

func TestEmptyLayout(t *testing.T) {
	l := NewVertical(view.NewChain()).WithSpacing(DistributeFill(10)).Arrange()
	if l.Bounds() != (geometry.Rectangle{}) {
		t.Errorf("Bounds() = %v, want zero", l.Bounds())
	}
	if l.Size() != (geometry.Size{}) {
		t.Errorf("Size() = %v, want zero", l.Size())
	}
}

func TestEmptyLayoutFollowsTranslation(t *testing.T) {
	l := NewHorizontal(view.NewChain()).Arrange()
	l.Translate(geometry.Pt(3, -2))
	if got, want := l.Bounds(), (geometry.Rectangle{TopLeft: geometry.Pt(3, -2)}); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestArrangeThroughEmptyNestedLayout(t *testing.T) {
	a := box("a", 0, 0, 10, 10)
	empty := NewVertical(view.NewChain()).Arrange()
	c := box("c", 0, 0, 10, 10)
	row := NewHorizontal(view.NewChain(a, empty, c)).Arrange()

	if got, want := row.Size(), geometry.Sz(20, 10); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}
	if got, want := empty.Bounds(), (geometry.Rectangle{TopLeft: geometry.Pt(9, 9)}); got != want {
		t.Errorf("empty = %v, want %v", got, want)
	}
	if want := geometry.Rect(10, 0, 10, 10); c.Rect != want {
		t.Errorf("c = %v, want %v", c.Rect, want)
	}
	if got, want := row.Bounds(), geometry.Rect(0, 0, 20, 10); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestNestedLayouts(t *testing.T) {
	a := box("a", 0, 0, 3, 3)
	b := box("b", 0, 0, 3, 3)
	row := NewHorizontal(view.NewChain(a, b)).WithSpacing(FixedMargin(1)).Arrange()

	title := box("title", 0, 0, 10, 2)
	col := New(Vertical{Secondary: align.HorizontalCenter}, view.NewChain(title, row)).Arrange()

	if got := col.Size(); got != geometry.Sz(10, 5) {
		t.Errorf("Size() = %v, want 10x5", got)
	}
	if want := geometry.Rect(2, 2, 3, 3); a.Rect != want {
		t.Errorf("a = %v, want %v", a.Rect, want)
	}
	if want := geometry.Rect(6, 2, 3, 3); b.Rect != want {
		t.Errorf("b = %v, want %v", b.Rect, want)
	}
}

func TestArrangeDoesNotModifyPreviousElement(t *testing.T) {
	a := box("a", 0, 0, 4, 4)
	b := box("b", 0, 0, 2, 2)
	NewHorizontal(view.NewChain(a, b)).Arrange()
	first := a.Rect

	NewHorizontal(view.NewChain(a, b)).Arrange()
	if a.Rect != first {
		t.Errorf("rearranging moved the first element: %v -> %v", first, a.Rect)
	}
}
