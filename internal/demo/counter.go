// Package demo contains the counter application served by the statebind CLI.
package demo

import (
	"strconv"

	"github.com/vango-dev/statebind/pkg/binder"
	"github.com/vango-dev/statebind/pkg/dom"
	"github.com/vango-dev/statebind/pkg/store"
)

// Counter is the demo state.
type Counter struct {
	Count int
}

// CounterStore is the container type backing the demo.
type CounterStore = store.Store[Counter]

// CounterBinder is the binder type returned by Mount.
type CounterBinder = binder.Binder[Counter, *CounterStore]

// Click targets understood by the counter.
const (
	TargetIncrement = "inc"
	TargetDecrement = "dec"
	TargetReset     = "reset"
)

// Mount binds a fresh counter to el: it renders the initial state, keeps
// el in sync on every change, and handles clicks and arrow keys.
func Mount(el dom.Renderer, opts ...binder.Option) *CounterBinder {
	st := store.New(Counter{})

	return binder.New[Counter](st, el, opts...).
		Init(Render).
		AddSubscriber(Render).
		Subscribe().
		AddEventListener(dom.EventClick, onClick).
		AddEventListener(dom.EventKeyDown, onKey)
}

// Render writes the count and its sign onto the element.
func Render(el dom.Element, c Counter) {
	r, ok := el.(dom.Renderer)
	if !ok {
		return
	}
	r.SetText(strconv.Itoa(c.Count))
	if c.Count < 0 {
		r.SetAttr("data-sign", "negative")
	} else {
		r.SetAttr("data-sign", "")
	}
}

// Add returns a mutator that adds delta to the count.
func Add(delta int) func(*CounterStore) {
	return func(s *CounterStore) {
		s.Update(func(c Counter) Counter {
			c.Count += delta
			return c
		})
	}
}

func onClick(ev dom.Event, s *CounterStore) {
	switch ev.Target {
	case TargetDecrement:
		Add(-1)(s)
	case TargetReset:
		s.Set(Counter{})
	default:
		Add(1)(s)
	}
}

func onKey(ev dom.Event, s *CounterStore) {
	switch ev.Str("key") {
	case "ArrowUp":
		Add(1)(s)
	case "ArrowDown":
		Add(-1)(s)
	}
}
