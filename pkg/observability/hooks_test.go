package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGraphHooks{}
	g.OnFinalize(ctx, "graph", 3, 2, 4, time.Millisecond)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "localhost", "/api/graphs")
	h.OnResponse(ctx, "POST", "localhost", "/api/graphs", 201, time.Second)
	h.OnError(ctx, "POST", "localhost", "/api/graphs", errors.New("refused"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Graph().(NoopGraphHooks); !ok {
		t.Error("Graph() should return NoopGraphHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customGraph := &testGraphHooks{}
	SetGraphHooks(customGraph)
	if Graph() != customGraph {
		t.Error("SetGraphHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Graph().(NoopGraphHooks); !ok {
		t.Error("Reset() should restore NoopGraphHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testHTTPHooks{}
	SetHTTPHooks(custom)
	SetHTTPHooks(nil)
	if HTTP() != custom {
		t.Error("SetHTTPHooks(nil) should keep the existing hooks")
	}

	SetGraphHooks(nil)
	if _, ok := Graph().(NoopGraphHooks); !ok {
		t.Error("SetGraphHooks(nil) should keep the existing hooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testHTTPHooks{}
	SetHTTPHooks(h)
	HTTP().OnRequest(context.Background(), "POST", "localhost", "/api/graphs")
	HTTP().OnResponse(context.Background(), "POST", "localhost", "/api/graphs", 201, time.Millisecond)

	if h.requests != 1 || h.responses != 1 {
		t.Errorf("got %d requests, %d responses; want 1, 1", h.requests, h.responses)
	}
}

type testGraphHooks struct {
	NoopGraphHooks
}

type testHTTPHooks struct {
	NoopHTTPHooks
	requests  int
	responses int
}

func (h *testHTTPHooks) OnRequest(context.Context, string, string, string) { h.requests++ }
func (h *testHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {
	h.responses++
}
