package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/gridster/pkg/errors"
	"github.com/matzehuels/gridster/pkg/grid"
	"github.com/matzehuels/gridster/pkg/layout"
	"github.com/matzehuels/gridster/pkg/observability"
)

func intp(v int) *int { return &v }

func newTestServer(t *testing.T) *Server {
	t.Helper()
	l, err := layout.Build(layout.Document{
		Grid: grid.Overrides{Columns: grid.Int(4)},
		Items: []layout.ItemSpec{
			{ID: "a", SizeX: 2, SizeY: 1},
			{ID: "b", SizeX: 2, SizeY: 1},
			{ID: "c", SizeX: 1, SizeY: 1, Row: intp(1), Col: intp(0)},
		},
	})
	if err != nil {
		t.Fatalf("layout.Build() error = %v", err)
	}
	return New(l)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeSnapshot(t *testing.T, rec *httptest.ResponseRecorder) layout.Snapshot {
	t.Helper()
	var s layout.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&s); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	return s
}

func placement(t *testing.T, s layout.Snapshot, id string) layout.Placement {
	t.Helper()
	for _, p := range s.Items {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("item %s not in snapshot", id)
	return layout.Placement{}
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t).Handler(), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestGetLayout(t *testing.T) {
	rec := do(t, newTestServer(t).Handler(), http.MethodGet, "/layout", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	s := decodeSnapshot(t, rec)
	if s.Columns != 4 || s.Height != 2 || len(s.Items) != 3 {
		t.Errorf("snapshot = %+v", s)
	}
	if p := placement(t, s, "b"); p.Row != 0 || p.Col != 2 {
		t.Errorf("b at (%d, %d), want (0, 2)", p.Row, p.Col)
	}
}

func TestMutations(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		status   int
		check    string
		row, col int
		sizeX    int
	}{
		{
			name: "add item", method: http.MethodPost, path: "/items",
			body: `{"id": "d", "size_x": 1}`, status: http.StatusCreated,
			check: "d", row: 1, col: 1, sizeX: 1,
		},
		{
			name: "move pushes down", method: http.MethodPut, path: "/items/c/position",
			body: `{"row": 0, "col": 0}`, status: http.StatusOK,
			check: "a", row: 1, col: 0, sizeX: 2,
		},
		{
			name: "resize", method: http.MethodPut, path: "/items/c/size",
			body: `{"size_x": 3, "size_y": 1}`, status: http.StatusOK,
			check: "c", row: 1, col: 0, sizeX: 3,
		},
		{
			name: "swap", method: http.MethodPost, path: "/items/a/swap/b",
			status: http.StatusOK,
			check:  "a", row: 0, col: 2, sizeX: 2,
		},
		{
			name: "compact", method: http.MethodPost, path: "/compact",
			status: http.StatusOK,
			check:  "c", row: 1, col: 0, sizeX: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestServer(t).Handler()
			rec := do(t, h, tt.method, tt.path, tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
			p := placement(t, decodeSnapshot(t, rec), tt.check)
			if p.Row != tt.row || p.Col != tt.col || p.SizeX != tt.sizeX {
				t.Errorf("%s = %+v, want (%d, %d) width %d", tt.check, p, tt.row, tt.col, tt.sizeX)
			}
		})
	}
}

func TestRemoveItem(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := do(t, h, http.MethodDelete, "/items/a", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	s := decodeSnapshot(t, rec)
	if len(s.Items) != 2 {
		t.Fatalf("items = %+v, want 2", s.Items)
	}
	// c floats into the space a left behind.
	if p := placement(t, s, "c"); p.Row != 0 {
		t.Errorf("c at row %d, want 0", p.Row)
	}

	if rec := do(t, h, http.MethodDelete, "/items/a", ""); rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   errors.Code
	}{
		{name: "unknown item", method: http.MethodPut, path: "/items/zz/position", body: `{"row": 0, "col": 0}`, status: http.StatusNotFound, code: errors.ErrCodeNotFound},
		{name: "missing col", method: http.MethodPut, path: "/items/a/position", body: `{"row": 0}`, status: http.StatusBadRequest, code: errors.ErrCodeInvalidInput},
		{name: "malformed body", method: http.MethodPost, path: "/items", body: `{"id":`, status: http.StatusBadRequest, code: errors.ErrCodeInvalidFormat},
		{name: "unknown field", method: http.MethodPost, path: "/items", body: `{"name": "x"}`, status: http.StatusBadRequest, code: errors.ErrCodeInvalidFormat},
		{name: "duplicate id", method: http.MethodPost, path: "/items", body: `{"id": "a"}`, status: http.StatusBadRequest, code: errors.ErrCodeInvalidInput},
		{name: "swap different sizes", method: http.MethodPost, path: "/items/a/swap/c", status: http.StatusBadRequest, code: errors.ErrCodeInvalidInput},
		{name: "bad container width", method: http.MethodPut, path: "/container", body: `{"width": 0}`, status: http.StatusBadRequest, code: errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestServer(t).Handler(), tt.method, tt.path, tt.body)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			var got errorResponse
			if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if got.Code != tt.code || got.Message == "" {
				t.Errorf("error = %+v, want code %s", got, tt.code)
			}
		})
	}
}

func TestGridFullIsConflict(t *testing.T) {
	l, err := layout.Build(layout.Document{
		Grid:  grid.Overrides{Columns: grid.Int(2), MaxRows: grid.Int(1)},
		Items: []layout.ItemSpec{{ID: "a", SizeX: 2}},
	})
	if err != nil {
		t.Fatalf("layout.Build() error = %v", err)
	}
	rec := do(t, New(l).Handler(), http.MethodPost, "/items", `{"id": "b"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409: %s", rec.Code, rec.Body.String())
	}
}

func TestResizeContainer(t *testing.T) {
	rec := do(t, newTestServer(t).Handler(), http.MethodPut, "/container", `{"width": 410}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	p := placement(t, decodeSnapshot(t, rec), "b")
	want := grid.PixelRect{Top: 10, Left: 210, Width: 190, Height: 90}
	if p.Pixels == nil || *p.Pixels != want {
		t.Errorf("b pixels = %+v, want %+v", p.Pixels, want)
	}
}

func TestGetDocument(t *testing.T) {
	rec := do(t, newTestServer(t).Handler(), http.MethodGet, "/document", "")
	doc, err := layout.ReadJSON(rec.Body)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if len(doc.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(doc.Items))
	}
	for _, spec := range doc.Items {
		if !spec.Pinned() {
			t.Errorf("item %s is not pinned", spec.ID)
		}
	}
}

type recordingHooks struct {
	requests  int
	responses []int
}

func (h *recordingHooks) OnRequest(context.Context, string, string) { h.requests++ }

func (h *recordingHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.responses = append(h.responses, status)
}

func TestObserveReportsToHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	h := newTestServer(t).Handler()
	do(t, h, http.MethodGet, "/healthz", "")
	do(t, h, http.MethodDelete, "/items/missing", "")

	if hooks.requests != 2 {
		t.Errorf("requests = %d, want 2", hooks.requests)
	}
	if len(hooks.responses) != 2 || hooks.responses[0] != http.StatusOK || hooks.responses[1] != http.StatusNotFound {
		t.Errorf("responses = %v, want [200 404]", hooks.responses)
	}
}
