package view

import (
	"testing"

	"github.com/bugadani/embedded-layout/pkg/geometry"
)

type countingView struct {
	rect  geometry.Rectangle
	calls int
}

func (c *countingView) Bounds() geometry.Rectangle {
	c.calls++
	return c.rect
}

func (c *countingView) Translate(by geometry.Point) { c.rect = c.rect.Translate(by) }

func TestGroupBounds(t *testing.T) {
	tests := []struct {
		name  string
		group Group
		want  geometry.Rectangle
	}{
		{
			name:  "empty",
			group: NewChain(),
			want:  geometry.Rectangle{},
		},
		{
			name:  "single",
			group: NewChain(&Box{Rect: geometry.Rect(3, 4, 2, 2)}),
			want:  geometry.Rect(3, 4, 2, 2),
		},
		{
			name: "envelope",
			group: NewViews(
				&Box{Rect: geometry.Rect(10, 30, 10, 5)},
				&Box{Rect: geometry.Rect(-50, 10, 5, 10)},
			),
			want: geometry.Rect(-50, 10, 70, 25),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.group.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChainTranslate(t *testing.T) {
	a := NewBox("a", geometry.Sz(2, 2))
	b := NewBox("b", geometry.Sz(3, 1))
	c := NewChain(a).Append(b)

	c.Translate(geometry.Pt(5, -1))

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if a.Rect.TopLeft != geometry.Pt(5, -1) || b.Rect.TopLeft != geometry.Pt(5, -1) {
		t.Errorf("elements not translated: %v %v", a.Rect, b.Rect)
	}
}

func TestEmptyGroupKeepsPosition(t *testing.T) {
	tests := []struct {
		name  string
		group Group
	}{
		{name: "chain", group: NewChain()},
		{name: "views", group: NewViews[*Box]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.group.Translate(geometry.Pt(9, 9))
			tt.group.Translate(geometry.Pt(1, -2))
			if got, want := tt.group.Bounds(), (geometry.Rectangle{TopLeft: geometry.Pt(10, 7)}); got != want {
				t.Errorf("Bounds() = %v, want %v", got, want)
			}
		})
	}
}

func TestAtReturnsLiveHandle(t *testing.T) {
	boxes := NewViews(NewBox("a", geometry.Sz(1, 1)))
	boxes.At(0).Translate(geometry.Pt(4, 4))
	if got := boxes.Items()[0].Rect.TopLeft; got != geometry.Pt(4, 4) {
		t.Errorf("TopLeft = %v, want (4,4)", got)
	}
}

func TestCached(t *testing.T) {
	inner := &countingView{rect: geometry.Rect(0, 0, 4, 4)}
	c := NewCached(inner)

	c.Bounds()
	c.Bounds()
	if inner.calls != 1 {
		t.Errorf("inner Bounds called %d times, want 1", inner.calls)
	}

	c.Translate(geometry.Pt(2, 3))
	if got := c.Bounds(); got != geometry.Rect(2, 3, 4, 4) {
		t.Errorf("Bounds() after Translate = %v", got)
	}
	if inner.calls != 1 {
		t.Errorf("Translate recomputed bounds")
	}
	if c.Unwrap().rect != geometry.Rect(2, 3, 4, 4) {
		t.Errorf("inner view not translated: %v", c.Unwrap().rect)
	}

	c.Invalidate()
	c.Bounds()
	if inner.calls != 2 {
		t.Errorf("Invalidate did not force recompute")
	}
}

func TestTranslated(t *testing.T) {
	b := Translated(NewBox("x", geometry.Sz(1, 1)), geometry.Pt(1, 2))
	if b.Rect.TopLeft != geometry.Pt(1, 2) {
		t.Errorf("Translated() = %v", b.Rect)
	}
	if Size(b) != geometry.Sz(1, 1) {
		t.Errorf("Size() = %v", Size(b))
	}
}
