package dom

// Node is an in-memory Element.
//
// Node is not safe for concurrent use; like a browser element it belongs to
// a single event loop.
type Node struct {
	id        string
	text      string
	attrs     map[string]string
	listeners map[string][]func(Event)
}

// NewNode creates a Node with the given ID.
func NewNode(id string) *Node {
	return &Node{
		id:        id,
		attrs:     make(map[string]string),
		listeners: make(map[string][]func(Event)),
	}
}

// ID returns the node ID.
func (n *Node) ID() string { return n.id }

// AddEventListener implements Element.
func (n *Node) AddEventListener(name string, handler func(Event)) {
	n.listeners[name] = append(n.listeners[name], handler)
}

// ListenerCount returns the number of listeners registered for name.
func (n *Node) ListenerCount(name string) int {
	return len(n.listeners[name])
}

// DispatchEvent invokes every listener for ev.Type in registration order.
// An empty ev.Target is filled with the node ID.
// It reports whether any listener ran.
func (n *Node) DispatchEvent(ev Event) bool {
	if ev.Target == "" {
		ev.Target = n.id
	}
	handlers := n.listeners[ev.Type]
	for _, h := range handlers {
		h(ev)
	}
	return len(handlers) > 0
}

// SetText replaces the node's text content.
func (n *Node) SetText(text string) { n.text = text }

// Text returns the node's text content.
func (n *Node) Text() string { return n.text }

// SetAttr sets an attribute. An empty value removes it.
func (n *Node) SetAttr(name, value string) {
	if value == "" {
		delete(n.attrs, name)
		return
	}
	n.attrs[name] = value
}

// Attr returns an attribute value and whether it is set.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}
