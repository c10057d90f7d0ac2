// Package store provides a minimal observable state container with named
// change channels.
//
// Usage:
//
//	type Counter struct{ Count int }
//
//	s := store.New(Counter{})
//	s.Subscribe("domChange", func(c Counter) {
//	    fmt.Println("count is", c.Count)
//	})
//
//	s.Update(func(c Counter) Counter { c.Count++; return c })
//	s.Dispatch("domChange") // prints "count is 1"
//
// Mutation and notification are separate: Set and Update never notify.
// Callers decide when a channel fires, which lets a binder guarantee that
// every mutation it performs is followed by exactly one dispatch.
//
// # Ordering
//
// Dispatch calls subscribers synchronously, in registration order, each
// with the state as it is at the moment that subscriber runs. A subscriber
// that mutates and dispatches again runs the nested dispatch to completion
// before the outer dispatch continues (depth-first). Subscribers added
// while a dispatch is in progress are not called by that dispatch.
//
// # Thread Safety
//
// A Store is not safe for concurrent use. Give each session or event loop
// its own Store.
package store
