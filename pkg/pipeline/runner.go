package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bugadani/embedded-layout/pkg/cache"
	"github.com/bugadani/embedded-layout/pkg/document"
	"github.com/bugadani/embedded-layout/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both the CLI and the HTTP server use it.
//
// The Runner holds no per-run state, so multiple goroutines can share one
// Runner with different documents and options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete arrange → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, doc *document.Document, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	docHash, err := cache.HashJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("hash document: %w", err)
	}

	result := &Result{DocHash: docHash}

	// Stage 1: Arrange
	arrangeStart := time.Now()
	scene, err := r.Arrange(ctx, doc)
	if err != nil {
		return nil, err
	}
	result.Scene = scene
	result.Stats.Boxes, result.Stats.Layouts = scene.Count()
	result.Stats.ArrangeTime = time.Since(arrangeStart)

	r.Logger.Info("arranged document",
		"boxes", result.Stats.Boxes,
		"layouts", result.Stats.Layouts,
		"size", scene.Size,
		"duration", result.Stats.ArrangeTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, scene, docHash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = hit
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Arrange validates and builds doc, reporting to the pipeline hooks.
func (r *Runner) Arrange(ctx context.Context, doc *document.Document) (*document.Scene, error) {
	hooks := observability.Pipeline()
	nodes := countNodes(doc.Layout)

	start := time.Now()
	hooks.OnArrangeStart(ctx, nodes)
	scene, err := document.Build(doc)
	hooks.OnArrangeComplete(ctx, nodes, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("arrange: %w", err)
	}
	return scene, nil
}

// RenderWithCacheInfo generates artifacts with caching and reports whether
// every artifact came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, s *document.Scene, docHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	cacheHooks := observability.Cache()

	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)

	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true
	for _, format := range opts.Formats {
		key := r.artifactKey(docHash, format, opts)

		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				cacheHooks.OnCacheHit(ctx, format)
				artifacts[format] = data
				continue
			}
			cacheHooks.OnCacheMiss(ctx, format)
		}
		allCached = false

		data, err := RenderFormat(ctx, s, format, opts)
		if err != nil {
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, false, err
		}
		artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
		} else {
			cacheHooks.OnCacheSet(ctx, format, len(data))
		}
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, allCached, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// artifactKey keys the JSON description by the document alone, since no
// render option changes it.
func (r *Runner) artifactKey(docHash, format string, opts Options) string {
	if format == FormatJSON {
		return r.Keyer.SceneKey(docHash)
	}
	return r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
}

func countNodes(n document.Node) int {
	count := 1
	for _, child := range n.Children {
		count += countNodes(child)
	}
	return count
}
