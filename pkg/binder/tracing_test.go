package binder

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/statebind/pkg/dom"
)

type recordingTracer struct {
	noop.Tracer
	spans   []string
	attrs   [][]trace.SpanStartOption
	parents []context.Context
}

func (r *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	r.spans = append(r.spans, name)
	r.attrs = append(r.attrs, opts)
	r.parents = append(r.parents, ctx)
	return r.Tracer.Start(ctx, name, opts...)
}

func TestTracer_SpanPerDispatch(t *testing.T) {
	tr := &recordingTracer{}
	b, _, el := newCounterBinder(WithTracer(tr))
	b.AddEventListener(dom.EventInput, func(_ dom.Event, s *counterStore) { increment(s) })

	b.Action(increment)
	el.DispatchEvent(dom.Event{Type: dom.EventInput})

	want := []string{"statebind.action", "statebind.event"}
	if len(tr.spans) != len(want) {
		t.Fatalf("spans = %v, want %v", tr.spans, want)
	}
	for i := range want {
		if tr.spans[i] != want[i] {
			t.Errorf("span[%d] = %q, want %q", i, tr.spans[i], want[i])
		}
	}

	cfg := trace.NewSpanStartConfig(tr.attrs[1]...)
	found := false
	for _, kv := range cfg.Attributes() {
		if string(kv.Key) == "statebind.event" && kv.Value.AsString() == dom.EventInput {
			found = true
		}
	}
	if !found {
		t.Errorf("event span missing statebind.event attribute: %v", cfg.Attributes())
	}
}

func TestTracer_PanicStillPropagates(t *testing.T) {
	tr := &recordingTracer{}
	b, _, _ := newCounterBinder(WithTracer(tr))
	b.AddSubscriber(func(dom.Element, counterState) { panic("boom") }).Subscribe()

	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recover() = %v, want boom", r)
		}
		if len(tr.spans) != 1 {
			t.Errorf("expected one span, got %v", tr.spans)
		}
	}()
	b.Action(increment)
}

func TestWithTracing_UsesGlobalProvider(t *testing.T) {
	b, _, _ := newCounterBinder(WithTracing())
	if b.tracer == nil {
		t.Fatal("WithTracing should set a tracer")
	}
	b.Action(increment)
}

type requestKey struct{}

func TestTracer_ParentContext(t *testing.T) {
	tr := &recordingTracer{}
	conn := context.WithValue(context.Background(), requestKey{}, "conn")
	b, _, el := newCounterBinder(WithTracer(tr), WithContext(conn))
	b.AddEventListener(dom.EventClick, func(_ dom.Event, s *counterStore) { increment(s) })

	req := context.WithValue(context.Background(), requestKey{}, "req")
	b.ActionContext(req, increment)
	b.Action(increment)
	el.DispatchEvent(dom.Event{Type: dom.EventClick})

	want := []string{"req", "conn", "conn"}
	if len(tr.parents) != len(want) {
		t.Fatalf("got %d spans, want %d", len(tr.parents), len(want))
	}
	for i, w := range want {
		if got := tr.parents[i].Value(requestKey{}); got != w {
			t.Errorf("span[%d] parent value = %v, want %q", i, got, w)
		}
	}
}

func TestActionContext_NilFallsBackToBinderContext(t *testing.T) {
	tr := &recordingTracer{}
	b, st, _ := newCounterBinder(WithTracer(tr), WithContext(nil))

	b.ActionContext(nil, increment)
	if st.Get().Count != 1 {
		t.Errorf("Count = %d, want 1", st.Get().Count)
	}
	if len(tr.parents) != 1 || tr.parents[0] == nil {
		t.Fatalf("expected one span with a non-nil parent, got %v", tr.parents)
	}
}
