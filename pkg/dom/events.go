package dom

// Event is a DOM event delivered to a listener.
type Event struct {
	// Type is the event name (e.g., "click").
	Type string `json:"event"`

	// Target is the ID of the element the event fired on.
	Target string `json:"target,omitempty"`

	// Value carries the element value for form events.
	Value string `json:"value,omitempty"`

	// Data holds any extra event payload (key codes, coordinates, ...).
	Data map[string]any `json:"data,omitempty"`
}

// Element is anything that can have event listeners attached.
type Element interface {
	// AddEventListener registers handler for events named name.
	// Registering the same handler twice registers it twice.
	AddEventListener(name string, handler func(Event))
}

// Renderer is an Element that reactions can write to.
type Renderer interface {
	Element

	// SetText replaces the element's text content.
	SetText(text string)

	// SetAttr sets an attribute; an empty value removes it.
	SetAttr(name, value string)
}

// Mouse events
const (
	EventClick       = "click"
	EventDblClick    = "dblclick"
	EventMouseDown   = "mousedown"
	EventMouseUp     = "mouseup"
	EventMouseEnter  = "mouseenter"
	EventMouseLeave  = "mouseleave"
	EventContextMenu = "contextmenu"
)

// Keyboard events
const (
	EventKeyDown = "keydown"
	EventKeyUp   = "keyup"
)

// Form events
const (
	EventInput  = "input"
	EventChange = "change"
	EventSubmit = "submit"
	EventFocus  = "focus"
	EventBlur   = "blur"
	EventReset  = "reset"
)

// Pointer events
const (
	EventPointerDown = "pointerdown"
	EventPointerUp   = "pointerup"
	EventPointerMove = "pointermove"
)

// Str returns Data[key] as a string, or "" if absent or not a string.
func (e Event) Str(key string) string {
	if e.Data == nil {
		return ""
	}
	s, _ := e.Data[key].(string)
	return s
}
