package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bugadani/embedded-layout/pkg/document"
)

func testScene(t *testing.T, doc *document.Document) *document.Scene {
	t.Helper()
	scene, err := document.Build(doc)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return scene
}

func rowDoc() *document.Document {
	return &document.Document{Layout: document.Node{
		ID:        "row",
		Direction: document.DirectionHorizontal,
		Children: []document.Node{
			{ID: "a", Width: 10, Height: 5},
			{ID: "b", Width: 5, Height: 10},
		},
	}}
}

func TestRenderText(t *testing.T) {
	got := strings.Split(strings.TrimSuffix(string(RenderText(testScene(t, rowDoc()))), "\n"), "\n")
	want := []string{
		"          #####",
		"          #   #",
		"          #   #",
		"          #   #",
		"          #   #",
		"###########   #",
		"#        ##   #",
		"#        ##   #",
		"#        ##   #",
		"###############",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RenderText() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTextWithDisplay(t *testing.T) {
	doc := &document.Document{
		Display: &document.Display{Width: 7, Height: 5},
		Layout:  document.Node{ID: "dot", Width: 3, Height: 3},
	}
	got := strings.Split(strings.TrimSuffix(string(RenderText(testScene(t, doc), WithTextDisplay())), "\n"), "\n")
	want := []string{
		":::::::",
		": ### :",
		": # # :",
		": ### :",
		":::::::",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RenderText() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(testScene(t, rowDoc()))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []jsonElement{
		{Name: "row", ID: "row", Kind: "layout", Depth: 0, Orientation: "horizontal bottom tight", Bounds: jsonRect{0, 0, 15, 10}},
		{Name: "a", ID: "a", Kind: "box", Depth: 1, Parent: "row", Bounds: jsonRect{0, 5, 10, 5}},
		{Name: "b", ID: "b", Kind: "box", Depth: 1, Parent: "row", Bounds: jsonRect{10, 0, 5, 10}},
	}
	if diff := cmp.Diff(want, out.Elements); diff != "" {
		t.Errorf("elements mismatch (-want +got):\n%s", diff)
	}
	if out.Display != nil {
		t.Errorf("Display = %v, want nil", out.Display)
	}
	if out.Size.Width != 15 || out.Size.Height != 10 {
		t.Errorf("Size = %v, want 15x10", out.Size)
	}
}

func TestRenderSVG(t *testing.T) {
	scene := testScene(t, rowDoc())

	tests := []struct {
		name        string
		opts        []SVGOption
		wantBoxes   int
		wantLayouts int
		wantLabels  int
	}{
		{name: "default", wantBoxes: 2},
		{name: "with layouts", opts: []SVGOption{WithLayouts()}, wantBoxes: 2, wantLayouts: 1},
		{name: "with labels", opts: []SVGOption{WithLabels()}, wantBoxes: 2, wantLabels: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg := string(RenderSVG(scene, tt.opts...))
			if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
				t.Fatalf("not an svg document:\n%s", svg)
			}
			if got := strings.Count(svg, `class="box"`); got != tt.wantBoxes {
				t.Errorf("boxes = %d, want %d", got, tt.wantBoxes)
			}
			if got := strings.Count(svg, `class="layout"`); got != tt.wantLayouts {
				t.Errorf("layouts = %d, want %d", got, tt.wantLayouts)
			}
			if got := strings.Count(svg, "<text"); got != tt.wantLabels {
				t.Errorf("labels = %d, want %d", got, tt.wantLabels)
			}
		})
	}
}

func TestRenderSVGScale(t *testing.T) {
	svg := string(RenderSVG(testScene(t, rowDoc()), WithScale(2)))
	if !strings.Contains(svg, `viewBox="0 0 15 10" width="30" height="20"`) {
		t.Errorf("unexpected header:\n%s", svg)
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(testScene(t, rowDoc()), WithPNGScale(3))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 45 || b.Dy() != 30 {
		t.Errorf("image size = %dx%d, want 45x30", b.Dx(), b.Dy())
	}

	r, g, b, _ := img.At(0, 15).RGBA()
	wr, wg, wb, _ := pngPixelOn.RGBA()
	if r != wr || g != wg || b != wb {
		t.Errorf("pixel (0,15) is not lit")
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testScene(t, rowDoc()))
	for _, want := range []string{
		`"root" -> "root/0";`,
		`"root" -> "root/1";`,
		`dashed`,
		`horizontal bottom tight`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestRenderTree(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering is slow")
	}
	svg, err := RenderTree(context.Background(), testScene(t, rowDoc()))
	if err != nil {
		t.Fatalf("RenderTree() error = %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("output is not SVG")
	}
}
