package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bugadani/embedded-layout/pkg/document"
	"github.com/bugadani/embedded-layout/pkg/errors"
	"github.com/bugadani/embedded-layout/pkg/pipeline"
)

// arrangeFlags holds the command-line flags of the arrange command.
type arrangeFlags struct {
	formats string
	output  string
	noCache bool
	refresh bool
	table   bool
}

// arrangeCommand creates the arrange command.
func (c *CLI) arrangeCommand() *cobra.Command {
	var flags arrangeFlags
	opts := pipeline.Options{Scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "arrange [layout.toml]",
		Short: "Arrange a layout document and render it",
		Long: `Arrange a layout document and render it.

The document (TOML or JSON) describes boxes and nested linear layouts. The
arranged scene is written in every requested format. With a single format,
-o names the output file ("-" for stdout); with several, -o is the base path
and each file gets its format extension.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(flags.formats)
			opts.Refresh = flags.refresh
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runArrange(cmd.Context(), args[0], opts, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): svg (default), png, json, txt, dot, tree (comma-separated)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "re-render even when cached")
	cmd.Flags().BoolVar(&flags.table, "table", false, "print the arranged elements as a table")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "label boxes (svg)")
	cmd.Flags().BoolVar(&opts.Layouts, "layouts", false, "draw layout envelopes (svg, png, txt)")
	cmd.Flags().IntVar(&opts.Scale, "scale", opts.Scale, "pixels per layout unit (svg, png)")

	return cmd
}

// runArrange loads the document, runs the pipeline and writes the artifacts.
func (c *CLI) runArrange(ctx context.Context, input string, opts pipeline.Options, flags arrangeFlags) error {
	doc, err := document.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	prog := newProgress(c.Logger)

	spinner := newSpinner(ctx, fmt.Sprintf("Arranging %s...", filepath.Base(input)))
	spinner.Start()
	result, err := runner.Execute(ctx, doc, opts)
	spinner.Stop()
	if err != nil {
		return fmt.Errorf("arrange: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	prog.done("Arranged "+filepath.Base(input), "formats", strings.Join(opts.Formats, ","))

	paths, err := writeArtifacts(c, artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    flags.output,
	})
	if err != nil {
		return err
	}

	if flags.output == "-" {
		return nil
	}
	printSuccess(c.Out, "Arranged %s", input)
	for _, p := range paths {
		printFile(c.Out, p)
	}
	printStats(c.Out, result.Scene, result.CacheInfo.RenderHit)
	if result.Scene.Display != nil && !result.Scene.Display.Contains(result.Scene.Bounds().TopLeft) {
		printWarning(c.Out, "layout starts outside the %s display", result.Scene.Display.Size)
	}
	if flags.table {
		fmt.Fprintln(c.Out, renderElementTable(result.Scene))
	}
	return nil
}

// =============================================================================
// Artifact Output
// =============================================================================

type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
}

// writeArtifacts writes every artifact and returns the written paths.
func writeArtifacts(c *CLI, p artifactWriteParams) ([]string, error) {
	if p.output == "-" {
		if len(p.formats) != 1 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "stdout output needs exactly one format, got %d", len(p.formats))
		}
		_, err := c.Out.Write(p.artifacts[p.formats[0]])
		return nil, err
	}

	var paths []string
	for _, format := range p.formats {
		path := outputPath(p.input, p.output, format, len(p.formats))
		if err := os.WriteFile(path, p.artifacts[format], 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath picks the file for one format. An explicit output is used as is
// for a single format and as a base path otherwise.
func outputPath(input, output, format string, count int) string {
	if output != "" && count == 1 {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	} else {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base + pipeline.FormatExtensions[format]
}
