// Package wsdom implements dom.Element on top of a WebSocket connection to
// a browser.
//
// The browser reports DOM events as JSON text frames:
//
//	{"type": "event", "event": "click", "target": "counter"}
//
// and the server renders by sending frames back:
//
//	{"type": "text", "value": "3"}
//	{"type": "attr", "name": "class", "value": "active"}
//
// Each connection is served by one goroutine. Listeners, and any reactions
// they trigger, run on that goroutine in the order frames arrive, so a
// binder mounted on an Element keeps its single-threaded model.
//
// Handler wires this up for net/http:
//
//	http.Handle("/ws", wsdom.Handler(func(el *wsdom.Element) {
//	    demo.Mount(el)
//	}))
package wsdom
