// Package dom defines the element contract the binder consumes and an
// in-memory element for tests and headless use.
//
// An Element only needs to accept event listeners:
//
//	type Element interface {
//	    AddEventListener(name string, handler func(Event))
//	}
//
// Node is a minimal in-memory implementation that records text and
// attributes written by reactions and dispatches events synchronously:
//
//	n := dom.NewNode("counter")
//	n.AddEventListener(dom.EventClick, func(ev dom.Event) { ... })
//	n.DispatchEvent(dom.Event{Type: dom.EventClick})
//
// Event names follow the browser's lowercase names without the "on" prefix.
package dom
