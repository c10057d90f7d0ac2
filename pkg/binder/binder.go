package binder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/statebind/pkg/dom"
	"github.com/vango-dev/statebind/pkg/token"
)

// ChangeChannel is the container channel every binder subscribes to and
// dispatches on. Binders attached to the same container share it.
const ChangeChannel = "domChange"

// DefaultTokenLength is the length of generated handles.
const DefaultTokenLength = 100

// Dispatch sources, used as metric labels and span attributes.
const (
	sourceAction = "action"
	sourceEvent  = "event"
)

// Store is the container contract a Binder consumes.
type Store[S any] interface {
	// Get returns the current state snapshot.
	Get() S

	// Subscribe registers a standing callback on channel. Callbacks on the
	// same channel must be invoked synchronously in registration order.
	Subscribe(channel string, fn func(S))

	// Dispatch synchronously notifies every subscriber of channel.
	Dispatch(channel string)
}

// Reaction renders state onto an element.
type Reaction[S any] func(el dom.Element, state S)

// Listener handles a DOM event by mutating the container.
type Listener[C any] func(ev dom.Event, store C)

// Binder binds one container to one element.
type Binder[S any, C Store[S]] struct {
	store C
	el    dom.Element

	pending map[string]Reaction[S]
	order   []string
	last    string

	tokens   token.Source
	tokenLen int
	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
	ctx      context.Context
}

// New creates a Binder for store and el.
//
// C is inferred from store; S usually has to be given explicitly:
//
//	b := binder.New[Counter](st, el)
func New[S any, C Store[S]](store C, el dom.Element, opts ...Option) *Binder[S, C] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.tokenLength <= 0 {
		cfg.tokenLength = DefaultTokenLength
	}

	return &Binder[S, C]{
		store:    store,
		el:       el,
		pending:  make(map[string]Reaction[S]),
		tokens:   cfg.tokens,
		tokenLen: cfg.tokenLength,
		logger:   cfg.logger,
		metrics:  cfg.metrics,
		tracer:   cfg.tracer,
		ctx:      cfg.ctx,
	}
}

// Store returns the bound container.
func (b *Binder[S, C]) Store() C { return b.store }

// Element returns the bound element.
func (b *Binder[S, C]) Element() dom.Element { return b.el }

// Pending returns the number of reactions waiting for Subscribe.
func (b *Binder[S, C]) Pending() int { return len(b.pending) }

// AddSubscriber adds reaction to the pending table under a new handle,
// available from LastSubscriberID until the next call.
func (b *Binder[S, C]) AddSubscriber(reaction Reaction[S]) *Binder[S, C] {
	id := b.newHandle()
	b.pending[id] = reaction
	b.order = append(b.order, id)
	b.last = id
	b.metrics.pendingAdded(1)
	return b
}

func (b *Binder[S, C]) newHandle() string {
	for {
		id := b.tokens.Generate(b.tokenLen)
		b.metrics.handleGenerated()
		if _, taken := b.pending[id]; !taken {
			return id
		}
		b.metrics.handleCollision()
		b.logger.Debug("handle collision, regenerating", "pending", len(b.pending))
	}
}

// LastSubscriberID returns the handle most recently generated by
// AddSubscriber, or "" on a fresh binder and after Subscribe. Removing that
// handle does not clear it.
func (b *Binder[S, C]) LastSubscriberID() string {
	return b.last
}

// RemoveSubscriber drops the pending reaction with the given handle.
// Unknown handles are ignored.
func (b *Binder[S, C]) RemoveSubscriber(id string) *Binder[S, C] {
	if _, ok := b.pending[id]; !ok {
		return b
	}
	delete(b.pending, id)
	for i, h := range b.order {
		if h == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	b.metrics.pendingAdded(-1)
	return b
}

// Subscribe activates every pending reaction on ChangeChannel in the order
// they were added, then clears the pending table.
//
// If the container panics while subscribing, the panic propagates and the
// pending table is left as it was.
func (b *Binder[S, C]) Subscribe() *Binder[S, C] {
	n := len(b.order)
	for _, id := range b.order {
		reaction := b.pending[id]
		b.store.Subscribe(ChangeChannel, func(state S) {
			reaction(b.el, state)
		})
	}

	b.pending = make(map[string]Reaction[S])
	b.order = nil
	b.last = ""

	b.metrics.activated(n)
	if n > 0 {
		b.logger.Debug("reactions activated", "count", n)
	}
	return b
}

// AddEventListener registers listener for DOM events named name on the
// bound element. After listener returns, ChangeChannel is dispatched.
func (b *Binder[S, C]) AddEventListener(name string, listener Listener[C]) *Binder[S, C] {
	b.el.AddEventListener(name, func(ev dom.Event) {
		b.action(b.ctx, sourceEvent, ev.Type, func(store C) {
			listener(ev, store)
		})
	})
	return b
}

// Init runs fn once, now, with the element and the current state.
// Nothing is registered.
func (b *Binder[S, C]) Init(fn Reaction[S]) *Binder[S, C] {
	fn(b.el, b.store.Get())
	return b
}

// Action applies mutator to the container and dispatches ChangeChannel.
func (b *Binder[S, C]) Action(mutator func(store C)) {
	b.action(b.ctx, sourceAction, "", mutator)
}

// ActionContext is Action with ctx as the parent of the dispatch span.
func (b *Binder[S, C]) ActionContext(ctx context.Context, mutator func(store C)) {
	if ctx == nil {
		ctx = b.ctx
	}
	b.action(ctx, sourceAction, "", mutator)
}

func (b *Binder[S, C]) action(ctx context.Context, source, event string, mutator func(store C)) {
	if b.tracer != nil {
		attrs := []attribute.KeyValue{
			attribute.String("statebind.channel", ChangeChannel),
			attribute.String("statebind.source", source),
		}
		if event != "" {
			attrs = append(attrs, attribute.String("statebind.event", event))
		}
		_, span := b.tracer.Start(
			ctx,
			"statebind."+source,
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(attrs...),
		)
		defer func() {
			if r := recover(); r != nil {
				span.SetStatus(codes.Error, fmt.Sprint(r))
				span.End()
				panic(r)
			}
			span.SetStatus(codes.Ok, "")
			span.End()
		}()
	}

	start := time.Now()
	mutator(b.store)
	b.store.Dispatch(ChangeChannel)
	b.metrics.dispatched(source, time.Since(start))
}
