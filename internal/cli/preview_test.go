package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/bugadani/embedded-layout/pkg/document"
	"github.com/bugadani/embedded-layout/pkg/errors"
	"github.com/bugadani/embedded-layout/pkg/geometry"
)

func rowDocument() *document.Document {
	return &document.Document{
		Layout: document.Node{
			ID:        "row",
			Direction: document.DirectionHorizontal,
			Children: []document.Node{
				{ID: "a", Width: 10, Height: 5},
				{ID: "b", Width: 5, Height: 10},
			},
		},
	}
}

func press(t *testing.T, m PreviewModel, keys ...string) PreviewModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		m = next.(PreviewModel)
	}
	return m
}

func elementBounds(t *testing.T, m PreviewModel, name string) geometry.Rectangle {
	t.Helper()
	if m.Err != nil {
		t.Fatalf("scene error: %v", m.Err)
	}
	e, ok := m.Scene.Find(name)
	if !ok {
		t.Fatalf("element %q not found", name)
	}
	return e.View.Bounds()
}

func TestPreviewKeys(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		wantSize geometry.Size
		wantB    geometry.Rectangle
	}{
		{"initial", nil, geometry.Sz(15, 10), geometry.Rect(10, 0, 5, 10)},
		{"toggle direction", []string{"d"}, geometry.Sz(10, 15), geometry.Rect(0, 5, 5, 10)},
		{"toggle twice", []string{"d", "d"}, geometry.Sz(15, 10), geometry.Rect(10, 0, 5, 10)},
		{"align top", []string{"a"}, geometry.Sz(15, 10), geometry.Rect(10, 0, 5, 10)},
		{"fixed margin", []string{"s", "+", "+"}, geometry.Sz(17, 10), geometry.Rect(12, 0, 5, 10)},
		{"margin never negative", []string{"s", "-", "-"}, geometry.Sz(15, 10), geometry.Rect(10, 0, 5, 10)},
		{"layouts toggle keeps scene", []string{"l"}, geometry.Sz(15, 10), geometry.Rect(10, 0, 5, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, newPreviewModel("row.toml", rowDocument()), tt.keys...)
			if m.Scene.Size != tt.wantSize {
				t.Errorf("Size = %v, want %v", m.Scene.Size, tt.wantSize)
			}
			if got := elementBounds(t, m, "b"); got != tt.wantB {
				t.Errorf("b = %v, want %v", got, tt.wantB)
			}
		})
	}
}

func TestPreviewAlignTopMovesShortBox(t *testing.T) {
	m := press(t, newPreviewModel("row.toml", rowDocument()), "a")
	if m.Doc.Layout.Alignment != "top" {
		t.Errorf("Alignment = %q, want top", m.Doc.Layout.Alignment)
	}
	if got := elementBounds(t, m, "a"); got != geometry.Rect(0, 0, 10, 5) {
		t.Errorf("a = %v, want (0,0)+10x5", got)
	}
}

func TestPreviewDoesNotMutateInput(t *testing.T) {
	doc := rowDocument()
	press(t, newPreviewModel("row.toml", doc), "d", "s", "+")
	if diff := cmp.Diff(rowDocument(), doc); diff != "" {
		t.Errorf("input document changed (-want +got):\n%s", diff)
	}
}

func TestPreviewReload(t *testing.T) {
	m := newPreviewModel("row.toml", rowDocument())
	m.reload = func(string) (*document.Document, error) {
		doc := rowDocument()
		doc.Layout.Children[1].Width = 7
		return doc, nil
	}
	m = press(t, m, "r")
	if got := elementBounds(t, m, "b"); got != geometry.Rect(10, 0, 7, 10) {
		t.Errorf("b = %v after reload", got)
	}

	m.reload = func(string) (*document.Document, error) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "row.toml not found")
	}
	m = press(t, m, "r")
	if m.Err == nil {
		t.Fatal("reload error should be kept")
	}
	if view := m.View(); !strings.Contains(view, "row.toml not found") {
		t.Errorf("View() should show the error:\n%s", view)
	}
}

func TestPreviewQuit(t *testing.T) {
	m := newPreviewModel("row.toml", rowDocument())
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Error("q should return a quit command")
	}
}

func TestPreviewView(t *testing.T) {
	view := newPreviewModel("row.toml", rowDocument()).View()
	for _, want := range []string{"Preview row.toml", "horizontal · default · tight", "2 boxes", "15x10"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestCycleHelpers(t *testing.T) {
	if got := nextAlignment(document.DirectionHorizontal, ""); got != "top" {
		t.Errorf("nextAlignment(horizontal, \"\") = %q, want top", got)
	}
	if got := nextAlignment(document.DirectionVertical, "right-to-left"); got != "left" {
		t.Errorf("nextAlignment wraps to %q, want left", got)
	}

	spacing := ""
	var seen []string
	for range 3 {
		spacing = nextSpacing(spacing)
		seen = append(seen, spacing)
	}
	if diff := cmp.Diff([]string{"fixed", "fill", "tight"}, seen); diff != "" {
		t.Errorf("nextSpacing cycle mismatch (-want +got):\n%s", diff)
	}
}
