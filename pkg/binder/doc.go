// Package binder ties an observable state container to a single DOM element.
//
// A Binder collects pending reactions, activates them as standing
// subscriptions on the container's change channel, and routes DOM events
// through container mutations so that every standing reaction re-runs
// against the new state.
//
//	st := store.New(Counter{})
//	el := dom.NewNode("counter")
//
//	binder.New[Counter](st, el).
//	    Init(render).
//	    AddSubscriber(render).
//	    Subscribe().
//	    AddEventListener(dom.EventClick, func(_ dom.Event, s *store.Store[Counter]) {
//	        s.Update(func(c Counter) Counter { c.Count++; return c })
//	    })
//
// # Lifecycle
//
// AddSubscriber stores a reaction under a freshly generated handle. Until
// Subscribe is called the reaction is pending and can be dropped again with
// RemoveSubscriber. Subscribe turns every pending reaction into a standing
// subscription on ChangeChannel, in the order the reactions were added, and
// empties the pending table. Standing subscriptions cannot be removed
// through the binder.
//
// # Handles
//
// Handles are DefaultTokenLength random characters. A generated handle that
// is already pending is discarded and a new one drawn; there is no attempt
// limit. With the default source the chance of even one retry is
// negligible, but a Source that keeps returning pending handles will spin
// forever. Use token.Sequence where that matters.
//
// # Dispatch
//
// Action and DOM listeners registered with AddEventListener apply their
// mutation and then dispatch ChangeChannel immediately. There is no
// batching, and the binder does no queueing of its own: ordering of nested
// dispatches is whatever the container provides.
//
// # Thread Safety
//
// A Binder, its container and its element are assumed to live on one event
// loop. None of them are locked.
package binder
