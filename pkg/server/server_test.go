package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/squaremap/pkg/cache"
	"github.com/matzehuels/squaremap/pkg/observability"
	"github.com/matzehuels/squaremap/pkg/pipeline"
	"github.com/matzehuels/squaremap/pkg/store"
)

const itemsBody = `{
  "items": [
    {"text": "golang tutorial", "weight": 50},
    {"text": "rust tutorial", "weight": 30},
    {"text": "zig tutorial", "weight": 20}
  ],
  "width": 300,
  "height": 200
}`

func newTestServer(t *testing.T) (*Server, *store.MemoryStore) {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	st := store.NewMemoryStore()
	return New(Config{Runner: pipeline.NewRunner(fc, nil, nil), Store: st}), st
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not JSON: %v\n%s", err, rec.Body)
	}
	return body
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status": "ok"`) {
		t.Errorf("body = %s", rec.Body)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("missing X-Request-Id header")
	}
}

func TestRequestIDPassthrough(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-Id"); got != "abc-123" {
		t.Errorf("X-Request-Id = %q", got)
	}
}

func TestCreateAndFetchLayout(t *testing.T) {
	s, st := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/v1/layouts", itemsBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var created layoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.ID == "" || len(created.Layout.Tiles) != 3 || st.Len() != 1 {
		t.Fatalf("created = %+v", created)
	}
	if created.Layout.Width != 300 || created.Layout.MaxDisplay != 50 || created.Layout.Mode != "dark" {
		t.Errorf("defaults not applied: %+v", created.Layout)
	}
	if created.Layout.Tiles[0].Secondary != "50" {
		t.Errorf("secondary = %q, want formatted weight", created.Layout.Tiles[0].Secondary)
	}
	if created.Stats.Tiles != 3 || created.Cached {
		t.Errorf("stats = %+v cached = %v", created.Stats, created.Cached)
	}
	if loc := rec.Header().Get("Location"); loc != "/v1/layouts/"+created.ID {
		t.Errorf("Location = %q", loc)
	}

	rec = do(t, s, http.MethodGet, "/v1/layouts/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var got store.Record
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.ID != created.ID || len(got.Layout.Tiles) != 3 {
		t.Errorf("fetched = %+v", got)
	}

	rec = do(t, s, http.MethodPost, "/v1/layouts", itemsBody)
	var again layoutResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &again)
	if !again.Cached || again.ID == created.ID {
		t.Errorf("second create: cached=%v id=%s", again.Cached, again.ID)
	}
}

func TestRenderStoredLayout(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/v1/layouts", itemsBody)
	var created layoutResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &created)

	tests := []struct {
		target      string
		contentType string
		contains    string
	}{
		{"/render.svg", "image/svg+xml", "<svg"},
		{"/render.svg?style=rounded&links=true", "image/svg+xml", "rx="},
		{"/render.json", "application/json", `"tiles"`},
		{"/render.txt", "text/plain; charset=utf-8", "golang"},
		{"/render.png?scale=1", "image/png", "\x89PNG"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(t, s, http.MethodGet, "/v1/layouts/"+created.ID+tt.target, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
			}
			if ct := rec.Header().Get("Content-Type"); ct != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", ct, tt.contentType)
			}
			if !bytes.Contains(rec.Body.Bytes(), []byte(tt.contains)) {
				t.Errorf("body missing %q", tt.contains)
			}
		})
	}
}

func TestOneShotRender(t *testing.T) {
	s, st := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/v1/render?format=svg", itemsBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), "golang") {
		t.Error("svg missing label")
	}
	if st.Len() != 0 {
		t.Error("one-shot render should not store a layout")
	}

	rec = do(t, s, http.MethodPost, "/v1/render", itemsBody)
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("default format Content-Type = %q", ct)
	}
}

func TestErrors(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
		code   string
	}{
		{"bad json", http.MethodPost, "/v1/layouts", `{"items": [`, 400, "INVALID_INPUT"},
		{"unknown field", http.MethodPost, "/v1/layouts", `{"itemz": []}`, 400, "INVALID_INPUT"},
		{"bad mode", http.MethodPost, "/v1/layouts", `{"items": [], "mode": "sepia"}`, 400, "INVALID_MODE"},
		{"bad width", http.MethodPost, "/v1/layouts", `{"items": [], "width": -5}`, 400, "INVALID_DIMENSIONS"},
		{"item without text", http.MethodPost, "/v1/layouts", `{"items": [{"weight": 3}]}`, 400, "INVALID_ITEMS"},
		{"unknown layout", http.MethodGet, "/v1/layouts/00000000-0000-0000-0000-000000000000", "", 404, "NOT_FOUND"},
		{"unknown layout render", http.MethodGet, "/v1/layouts/nope/render.svg", "", 404, "NOT_FOUND"},
		{"bad format", http.MethodGet, "/v1/layouts/nope/render.gif", "", 400, "INVALID_FORMAT"},
		{"bad one-shot format", http.MethodPost, "/v1/render?format=gif", itemsBody, 400, "INVALID_FORMAT"},
		{"bad style", http.MethodPost, "/v1/render?style=comic", itemsBody, 400, "INVALID_STYLE"},
		{"bad scale", http.MethodPost, "/v1/render?scale=big", itemsBody, 400, "INVALID_INPUT"},
		{"no route", http.MethodGet, "/v2/nothing", "", 404, "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, tt.method, tt.target, tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d, body = %s", rec.Code, tt.status, rec.Body)
			}
			if body := decodeError(t, rec); string(body.Code) != tt.code {
				t.Errorf("code = %s, want %s", body.Code, tt.code)
			}
		})
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	mu       sync.Mutex
	statuses []int
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status, _ int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}

func TestHTTPHooks(t *testing.T) {
	h := &recordingHTTPHooks{}
	observability.SetHTTPHooks(h)
	defer observability.Reset()

	s, _ := newTestServer(t)
	do(t, s, http.MethodGet, "/healthz", "")
	do(t, s, http.MethodGet, "/v1/layouts/nope", "")

	if len(h.statuses) != 2 || h.statuses[0] != 200 || h.statuses[1] != 404 {
		t.Errorf("statuses = %v, want [200 404]", h.statuses)
	}
}

func TestListenAndServeShutdown(t *testing.T) {
	s, _ := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
