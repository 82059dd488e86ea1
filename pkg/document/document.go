package document

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/bugadani/embedded-layout/pkg/errors"
)

// Format is a document serialization format.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Directions accepted by Node.Direction.
const (
	DirectionHorizontal = "horizontal"
	DirectionVertical   = "vertical"
)

// Spacing policies accepted by Node.Spacing.
const (
	SpacingTight = "tight"
	SpacingFixed = "fixed"
	SpacingFill  = "fill"
)

// Document is a layout description.
type Document struct {
	Display *Display `toml:"display,omitempty" json:"display,omitempty"`
	Layout  Node     `toml:"layout" json:"layout"`
}

// Display is the screen the root node is aligned to.
type Display struct {
	Width      int    `toml:"width" json:"width"`
	Height     int    `toml:"height" json:"height"`
	Horizontal string `toml:"horizontal,omitempty" json:"horizontal,omitempty"`
	Vertical   string `toml:"vertical,omitempty" json:"vertical,omitempty"`
}

// Node is a box or, when it has a direction or children, a linear layout.
//
// X and Y give the initial position of a box. Layouts reposition their
// children, so positions only survive on the root.
type Node struct {
	ID        string `toml:"id,omitempty" json:"id,omitempty"`
	X         int    `toml:"x,omitempty" json:"x,omitempty"`
	Y         int    `toml:"y,omitempty" json:"y,omitempty"`
	Width     int    `toml:"width,omitempty" json:"width,omitempty"`
	Height    int    `toml:"height,omitempty" json:"height,omitempty"`
	Direction string `toml:"direction,omitempty" json:"direction,omitempty"`
	Alignment string `toml:"alignment,omitempty" json:"alignment,omitempty"`
	Spacing   string `toml:"spacing,omitempty" json:"spacing,omitempty"`
	Margin    int    `toml:"margin,omitempty" json:"margin,omitempty"`
	Fill      int    `toml:"fill,omitempty" json:"fill,omitempty"`
	Children  []Node `toml:"children,omitempty" json:"children,omitempty"`
}

// IsLayout reports whether n arranges children.
func (n Node) IsLayout() bool {
	return n.Direction != "" || len(n.Children) > 0
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	if err := errors.ValidateDocumentPath(path); err != nil {
		return "", err
	}
	return Format(strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")), nil
}

// ReadFile reads a document, picking the format from the extension.
func ReadFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "document %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return Parse(data, format)
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*Document, error) {
	return Decode(bytes.NewReader(data), format)
}

// Decode reads a document from r. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "unknown key %q", undecoded[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported document format %q", format)
	}
	return &doc, nil
}

// Encode writes the document in the given format.
func (d *Document) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(d)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported document format %q", format)
	}
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{Layout: d.Layout.clone()}
	if d.Display != nil {
		display := *d.Display
		out.Display = &display
	}
	return out
}

func (n Node) clone() Node {
	if n.Children == nil {
		return n
	}
	children := make([]Node, len(n.Children))
	for i, c := range n.Children {
		children[i] = c.clone()
	}
	n.Children = children
	return n
}
