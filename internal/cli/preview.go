package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bugadani/embedded-layout/pkg/align"
	"github.com/bugadani/embedded-layout/pkg/document"
	"github.com/bugadani/embedded-layout/pkg/errors"
	"github.com/bugadani/embedded-layout/pkg/sink"
)

var (
	previewCanvasStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
	previewKeyStyle    = lipgloss.NewStyle().Foreground(colorCyan)
	previewErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [layout.toml]",
		Short: "Explore a layout document interactively",
		Long: `Explore a layout document interactively.

The root layout is redrawn as text after every change:

  d      toggle horizontal / vertical
  a      cycle the secondary alignment
  s      cycle the spacing policy (tight, fixed, fill)
  + / -  grow or shrink the margin or fill target
  l      show layout envelopes
  r      reload the document from disk
  q      quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("load document %s: %w", args[0], err)
			}
			m := newPreviewModel(args[0], doc)
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen()).Run()
			return err
		},
	}
}

// =============================================================================
// PreviewModel - Interactive layout explorer
// =============================================================================

// PreviewModel is the bubbletea model of the preview command. Edits apply to
// the root node of a private copy of the document.
type PreviewModel struct {
	Path    string
	Doc     *document.Document
	Scene   *document.Scene
	Err     error
	Layouts bool

	// reload is swapped out in tests.
	reload func(path string) (*document.Document, error)
}

func newPreviewModel(path string, doc *document.Document) PreviewModel {
	m := PreviewModel{Path: path, Doc: doc.Clone(), reload: document.ReadFile}
	if !m.Doc.Layout.IsLayout() {
		m.Doc.Layout.Direction = document.DirectionVertical
	}
	m.rebuild()
	return m
}

func (m *PreviewModel) rebuild() {
	m.Scene, m.Err = document.Build(m.Doc)
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	root := &m.Doc.Layout
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "d":
		if strings.EqualFold(root.Direction, document.DirectionHorizontal) {
			root.Direction = document.DirectionVertical
		} else {
			root.Direction = document.DirectionHorizontal
		}
		root.Alignment = ""
	case "a":
		root.Alignment = nextAlignment(root.Direction, root.Alignment)
	case "s":
		root.Spacing = nextSpacing(root.Spacing)
	case "+", "=":
		adjustSpacing(root, 1)
	case "-":
		adjustSpacing(root, -1)
	case "l":
		m.Layouts = !m.Layouts
		return m, nil
	case "r":
		doc, err := m.reload(m.Path)
		if err != nil {
			m.Err = err
			return m, nil
		}
		m.Doc = doc
	default:
		return m, nil
	}

	m.rebuild()
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Preview " + m.Path))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(m.status()))
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(previewErrorStyle.Render(iconError + " " + errors.UserMessage(m.Err)))
		b.WriteString("\n\n")
	} else if m.Scene != nil {
		opts := []sink.TextOption{sink.WithTextDisplay()}
		if m.Layouts {
			opts = append(opts, sink.WithTextLayouts())
		}
		text := strings.TrimSuffix(string(sink.RenderText(m.Scene, opts...)), "\n")
		b.WriteString(previewCanvasStyle.Render(text))
		b.WriteString("\n")
		boxes, layouts := m.Scene.Count()
		b.WriteString(StyleDim.Render(fmt.Sprintf("%d boxes · %d layouts · %s", boxes, layouts, m.Scene.Size)))
		b.WriteString("\n\n")
	}

	for _, k := range [][2]string{{"d", "direction"}, {"a", "alignment"}, {"s", "spacing"}, {"+/-", "amount"}, {"l", "layouts"}, {"r", "reload"}, {"q", "quit"}} {
		b.WriteString(previewKeyStyle.Render(k[0]) + " " + StyleDim.Render(k[1]) + "  ")
	}
	return b.String()
}

// status describes the root orientation, e.g. "horizontal · center · fixed(2)".
func (m PreviewModel) status() string {
	root := m.Doc.Layout
	direction := strings.ToLower(root.Direction)
	if direction == "" {
		direction = document.DirectionVertical
	}
	alignment := root.Alignment
	if alignment == "" {
		alignment = "default"
	}
	spacing := root.Spacing
	switch strings.ToLower(spacing) {
	case "", document.SpacingTight:
		spacing = document.SpacingTight
	case document.SpacingFixed:
		spacing = fmt.Sprintf("fixed(%d)", root.Margin)
	case document.SpacingFill:
		spacing = fmt.Sprintf("fill(%d)", root.Fill)
	}
	return direction + " · " + alignment + " · " + spacing
}

// =============================================================================
// Helpers
// =============================================================================

// alignmentNames lists the secondary alignment names valid for a direction.
func alignmentNames(direction string) []string {
	var names []string
	if strings.EqualFold(direction, document.DirectionHorizontal) {
		for _, v := range align.Verticals() {
			if v != align.VerticalNone {
				names = append(names, v.String())
			}
		}
	} else {
		for _, h := range align.Horizontals() {
			if h != align.HorizontalNone {
				names = append(names, h.String())
			}
		}
	}
	return names
}

func nextAlignment(direction, current string) string {
	names := alignmentNames(direction)
	for i, name := range names {
		if strings.EqualFold(name, current) {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func nextSpacing(current string) string {
	switch strings.ToLower(current) {
	case "", document.SpacingTight:
		return document.SpacingFixed
	case document.SpacingFixed:
		return document.SpacingFill
	default:
		return document.SpacingTight
	}
}

// adjustSpacing changes the margin or fill target of n by delta. Neither
// goes below zero from here.
func adjustSpacing(n *document.Node, delta int) {
	switch strings.ToLower(n.Spacing) {
	case document.SpacingFixed:
		n.Margin = max(n.Margin+delta, 0)
	case document.SpacingFill:
		n.Fill = max(n.Fill+delta, 0)
	}
}
