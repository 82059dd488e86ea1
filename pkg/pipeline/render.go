package pipeline

import (
	"context"
	"fmt"

	"github.com/bugadani/embedded-layout/pkg/document"
	"github.com/bugadani/embedded-layout/pkg/errors"
	"github.com/bugadani/embedded-layout/pkg/sink"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, s *document.Scene, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := RenderFormat(ctx, s, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// RenderFormat renders a single format.
func RenderFormat(ctx context.Context, s *document.Scene, format string, opts Options) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatSVG:
		data = sink.RenderSVG(s, svgOptions(opts)...)
	case FormatPNG:
		data, err = sink.RenderPNG(s, pngOptions(opts)...)
	case FormatJSON:
		data, err = sink.RenderJSON(s)
	case FormatText:
		data = sink.RenderText(s, textOptions(opts)...)
	case FormatDOT:
		data = []byte(sink.ToDOT(s))
	case FormatTree:
		data, err = sink.RenderTree(ctx, s)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return data, nil
}

func svgOptions(opts Options) []sink.SVGOption {
	out := []sink.SVGOption{sink.WithScale(opts.Scale)}
	if opts.Labels {
		out = append(out, sink.WithLabels())
	}
	if opts.Layouts {
		out = append(out, sink.WithLayouts())
	}
	return out
}

func pngOptions(opts Options) []sink.PNGOption {
	out := []sink.PNGOption{sink.WithPNGScale(opts.Scale)}
	if opts.Layouts {
		out = append(out, sink.WithPNGLayouts())
	}
	return out
}

func textOptions(opts Options) []sink.TextOption {
	out := []sink.TextOption{sink.WithTextDisplay()}
	if opts.Layouts {
		out = append(out, sink.WithTextLayouts())
	}
	return out
}
