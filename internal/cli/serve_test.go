package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/bugadani/embedded-layout/pkg/cache"
	"github.com/bugadani/embedded-layout/pkg/errors"
	"github.com/bugadani/embedded-layout/pkg/httputil"
	"github.com/bugadani/embedded-layout/pkg/pipeline"
)

const rowTOML = `
[layout]
id = "row"
direction = "horizontal"

  [[layout.children]]
  id = "a"
  width = 10
  height = 5

  [[layout.children]]
  id = "b"
  width = 5
  height = 10
`

const rowJSON = `{"layout": {"id": "row", "direction": "horizontal", "children": [
  {"id": "a", "width": 10, "height": 5},
  {"id": "b", "width": 5, "height": 10}
]}}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(cache.NewMemoryCache(0), cache.NewScopedKeyer(nil, "serve:"), logger)
	srv := httptest.NewServer(newRouter(runner))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, query, contentType, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/v1/arrange"+query, contentType, strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, data
}

func TestServeHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
	if resp.Header.Get(httputil.RequestIDHeader) == "" {
		t.Error("missing request id header")
	}
}

func TestServeArrangeText(t *testing.T) {
	srv := newTestServer(t)
	resp, body := post(t, srv, "?format=txt", "application/toml", rowTOML)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if size := resp.Header.Get("X-Layout-Size"); size != "15x10" {
		t.Errorf("X-Layout-Size = %q, want 15x10", size)
	}

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
	got := strings.Split(strings.TrimSuffix(string(body), "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("text mismatch (-want +got):\n%s", diff)
	}
}

func TestServeArrangeJSONCaches(t *testing.T) {
	srv := newTestServer(t)

	first, _ := post(t, srv, "?format=json", "application/json", rowJSON)
	if first.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", first.StatusCode)
	}
	if got := first.Header.Get("X-Cache"); got != "miss" {
		t.Errorf("first X-Cache = %q, want miss", got)
	}

	second, body := post(t, srv, "?format=json", "application/json", rowJSON)
	if got := second.Header.Get("X-Cache"); got != "hit" {
		t.Errorf("second X-Cache = %q, want hit", got)
	}
	if first.Header.Get("X-Document-Hash") != second.Header.Get("X-Document-Hash") {
		t.Error("identical documents should hash the same")
	}

	var out struct {
		Elements []struct {
			Name string `json:"name"`
		} `json:"elements"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Elements) != 3 {
		t.Errorf("got %d elements, want 3", len(out.Elements))
	}

	// The TOML spelling of the same document shares the cache entry.
	third, _ := post(t, srv, "?format=json", "application/toml", rowTOML)
	if got := third.Header.Get("X-Cache"); got != "hit" {
		t.Errorf("TOML X-Cache = %q, want hit", got)
	}
}

func TestServeArrangeErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		query      string
		body       string
		wantStatus int
		wantCode   errors.Code
	}{
		{"unknown format", "?format=gif", rowTOML, http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"bad scale", "?scale=big", rowTOML, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"scale out of range", "?scale=1000", rowTOML, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"unknown key", "", "[layout]\ncolour = \"red\"\n", http.StatusBadRequest, errors.ErrCodeInvalidDocument},
		{"bad direction", "", "[layout]\ndirection = \"up\"\n", http.StatusBadRequest, errors.ErrCodeInvalidDirection},
		{"oversized box", "?format=txt", "[layout]\nwidth = 100000\nheight = 1\n", http.StatusBadRequest, errors.ErrCodeInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := post(t, srv, tt.query, "application/toml", tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var eb httputil.ErrorBody
			if err := json.Unmarshal(body, &eb); err != nil {
				t.Fatalf("decode %s: %v", body, err)
			}
			if eb.Error != tt.wantCode {
				t.Errorf("code = %s, want %s", eb.Error, tt.wantCode)
			}
			if eb.RequestID == "" || eb.RequestID != resp.Header.Get(httputil.RequestIDHeader) {
				t.Errorf("request id %q does not match header %q", eb.RequestID, resp.Header.Get(httputil.RequestIDHeader))
			}
		})
	}
}

func TestServeMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/v1/arrange")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}
