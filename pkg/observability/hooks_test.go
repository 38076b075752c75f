package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGridHooks{}
	g.OnPlace("a", 0, 0)
	g.OnCascade("a", 3)
	g.OnFloat("a", 4, 0, 0, 0)
	g.OnRemove("a")
	g.OnPlacementFailed("a", 2, 2)
	g.OnLayoutChanged(7)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/layout")
	h.OnResponse(ctx, "GET", "/layout", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Grid().(NoopGridHooks); !ok {
		t.Error("Grid() should return NoopGridHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customGrid := &testGridHooks{}
	SetGridHooks(customGrid)
	if Grid() != customGrid {
		t.Error("SetGridHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Grid().(NoopGridHooks); !ok {
		t.Error("Reset() should restore NoopGridHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testGridHooks{}
	SetGridHooks(custom)
	SetGridHooks(nil)

	if Grid() != custom {
		t.Error("SetGridHooks(nil) should be ignored")
	}

	Reset()
}

type testGridHooks struct{ NoopGridHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
