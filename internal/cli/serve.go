package cli

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/bugadani/embedded-layout/pkg/buildinfo"
	"github.com/bugadani/embedded-layout/pkg/cache"
	"github.com/bugadani/embedded-layout/pkg/document"
	"github.com/bugadani/embedded-layout/pkg/errors"
	"github.com/bugadani/embedded-layout/pkg/httputil"
	"github.com/bugadani/embedded-layout/pkg/observability"
	"github.com/bugadani/embedded-layout/pkg/pipeline"
)

const (
	defaultAddr     = "127.0.0.1:8080"
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
	requestTimeout  = 30 * time.Second
	serveCacheSize  = 512
)

// contentTypes maps formats to response content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatText: "text/plain; charset=utf-8",
	pipeline.FormatDOT:  "text/vnd.graphviz",
	pipeline.FormatTree: "image/svg+xml",
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the arrange pipeline over HTTP",
		Long: `Serve the arrange pipeline over HTTP.

Endpoints:
  POST /v1/arrange?format=svg   arrange the document in the body (TOML, or JSON
                                with Content-Type: application/json)
  GET  /healthz                 liveness probe

Query parameters of /v1/arrange: format, scale, labels, layouts.
Rendered artifacts are kept in an in-memory cache for an hour.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	observability.SetHTTPHooks(observability.NewLogHooks(c.Logger))

	mem := cache.NewMemoryCache(serveCacheSize)
	runner := pipeline.NewRunner(mem, cache.NewScopedKeyer(nil, "serve:"), c.Logger)
	defer runner.Close()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           newRouter(runner),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	printSuccess(c.Out, "Listening on http://%s", ln.Addr())
	c.Logger.Info("server started", "addr", ln.Addr().String(), "version", buildinfo.Version)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	c.Logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		printError(c.Out, "shutdown: %v", err)
		return err
	}
	return ctx.Err()
}

// newRouter builds the HTTP API around runner.
func newRouter(runner *pipeline.Runner) http.Handler {
	r := chi.NewRouter()
	r.Use(httputil.RequestID)
	r.Use(httputil.Observe)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.SetHeader("Server", buildinfo.UserAgent()))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"version": buildinfo.Version,
		})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/arrange", arrangeHandler(runner))
	})

	return r
}

// arrangeHandler runs the pipeline on the request body and returns a single
// artifact.
func arrangeHandler(runner *pipeline.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := arrangeOptions(r)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		format := document.FormatTOML
		if mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err == nil && mt == "application/json" {
			format = document.FormatJSON
		}

		doc, err := document.Decode(io.LimitReader(r.Body, maxBodyBytes), format)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		result, err := runner.Execute(r.Context(), doc, opts)
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		f := opts.Formats[0]
		cacheState := "miss"
		if result.CacheInfo.RenderHit {
			cacheState = "hit"
		}
		w.Header().Set("Content-Type", contentTypes[f])
		w.Header().Set("X-Cache", cacheState)
		w.Header().Set("X-Document-Hash", result.DocHash)
		w.Header().Set("X-Layout-Size", result.Scene.Size.String())
		_, _ = w.Write(result.Artifacts[f])
	}
}

// arrangeOptions reads pipeline options from the query string.
func arrangeOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Formats: []string{pipeline.FormatSVG},
		Labels:  queryBool(q.Get("labels")),
		Layouts: queryBool(q.Get("layouts")),
	}
	if f := q.Get("format"); f != "" {
		if err := pipeline.ValidateFormat(f); err != nil {
			return opts, err
		}
		opts.Formats = []string{f}
	}
	if s := q.Get("scale"); s != "" {
		scale, err := strconv.Atoi(s)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "scale must be an integer, got %q", s)
		}
		opts.Scale = scale
	}
	return opts, nil
}

func queryBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}
