// Package pipeline runs the arrange → render flow shared by the CLI commands
// and the HTTP server.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Arrange: validate a [document.Document] and build its [document.Scene]
//  2. Render: produce one artifact per requested format (SVG, PNG, JSON, text, DOT, tree)
//
// Rendered artifacts are cached by document hash and render options, so a
// repeated run over an unchanged document only pays for the arrangement.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, doc, pipeline.Options{
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatJSON},
//	    Labels:  true,
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bugadani/embedded-layout/pkg/cache"
	"github.com/bugadani/embedded-layout/pkg/document"
	"github.com/bugadani/embedded-layout/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultScale is the pixel size of one layout unit in SVG and PNG output.
	DefaultScale = 4
	// MaxScale bounds the scale so PNG output stays a sane size.
	MaxScale = 32
)

// =============================================================================
// Format Constants
// =============================================================================

const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatText = "txt"
	FormatDOT  = "dot"
	FormatTree = "tree"
)

// ValidFormats lists every format the render stage knows.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
	FormatText: true,
	FormatDOT:  true,
	FormatTree: true,
}

// FormatExtensions maps formats to output file extensions.
var FormatExtensions = map[string]string{
	FormatSVG:  ".svg",
	FormatPNG:  ".png",
	FormatJSON: ".json",
	FormatText: ".txt",
	FormatDOT:  ".dot",
	FormatTree: ".tree.svg",
}

// =============================================================================
// Types
// =============================================================================

// Options configures a pipeline run.
type Options struct {
	Formats []string `json:"formats,omitempty"`
	Scale   int      `json:"scale,omitempty"`
	Labels  bool     `json:"labels,omitempty"`
	Layouts bool     `json:"layouts,omitempty"`

	// Refresh skips cache lookups but still stores fresh artifacts.
	Refresh bool `json:"-"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the arranged document.
	Scene *document.Scene

	// DocHash is the content hash of the document.
	DocHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Boxes       int
	Layouts     int
	ArrangeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, json, txt, dot, tree)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and fills in defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be between 1 and %d, got %d", MaxScale, o.Scale)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	keyOpts := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatSVG:
		keyOpts.Scale = o.Scale
		keyOpts.Labels = o.Labels
		keyOpts.Layouts = o.Layouts
	case FormatPNG:
		keyOpts.Scale = o.Scale
		keyOpts.Layouts = o.Layouts
	case FormatText:
		keyOpts.Layouts = o.Layouts
	}
	return keyOpts
}
