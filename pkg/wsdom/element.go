package wsdom

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/statebind/internal/errors"
	"github.com/vango-dev/statebind/pkg/dom"
)

var _ dom.Renderer = (*Element)(nil)

// Frame types.
const (
	FrameEvent = "event"
	FrameText  = "text"
	FrameAttr  = "attr"
)

// DefaultWriteTimeout bounds a single frame write.
const DefaultWriteTimeout = 10 * time.Second

// inboundFrame is a frame sent by the browser.
type inboundFrame struct {
	Type string `json:"type"`
	dom.Event
}

// outboundFrame is a render instruction sent to the browser.
type outboundFrame struct {
	Type  string `json:"type"`
	Name  string `json:"name,omitempty"`
	Value string `json:"value"`
}

// Element is a dom.Element whose events arrive over a WebSocket.
type Element struct {
	id        string
	conn      *websocket.Conn
	listeners map[string][]func(dom.Event)
	logger    *slog.Logger
	ctx       context.Context

	writeTimeout time.Duration
}

// NewElement wraps conn. The element is inert until Serve is called.
func NewElement(id string, conn *websocket.Conn, logger *slog.Logger) *Element {
	if logger == nil {
		logger = slog.Default().With("component", "wsdom")
	}
	return &Element{
		id:           id,
		conn:         conn,
		listeners:    make(map[string][]func(dom.Event)),
		logger:       logger.With("element", id),
		ctx:          context.Background(),
		writeTimeout: DefaultWriteTimeout,
	}
}

// ID returns the element ID.
func (e *Element) ID() string { return e.id }

// Context returns the context of the request that opened the connection,
// or context.Background() for an element built with NewElement.
func (e *Element) Context() context.Context { return e.ctx }

// AddEventListener implements dom.Element.
func (e *Element) AddEventListener(name string, handler func(dom.Event)) {
	e.listeners[name] = append(e.listeners[name], handler)
}

// SetText sends a text render frame.
func (e *Element) SetText(text string) {
	e.write(outboundFrame{Type: FrameText, Value: text})
}

// SetAttr sends an attribute render frame.
func (e *Element) SetAttr(name, value string) {
	e.write(outboundFrame{Type: FrameAttr, Name: name, Value: value})
}

// write sends f. Reactions have no error path, so failures are logged; a
// broken connection also ends the read loop in Serve.
func (e *Element) write(f outboundFrame) {
	err := e.conn.SetWriteDeadline(time.Now().Add(e.writeTimeout))
	if err == nil {
		err = e.conn.WriteJSON(f)
	}
	if err != nil {
		e.logger.Warn("render frame dropped", "frame", f.Type, "error", errors.New("E202").Wrap(err).FormatCompact())
	}
}

// Serve reads frames until the peer closes the connection or ctx is done.
// A normal close returns nil.
func (e *Element) Serve(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = e.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
			time.Now().Add(time.Second))
		_ = e.conn.Close()
	})
	defer stop()

	for {
		_, msg, err := e.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}
		e.handleFrame(msg)
	}
}

func (e *Element) handleFrame(msg []byte) {
	var f inboundFrame
	if err := json.Unmarshal(msg, &f); err != nil {
		e.logger.Warn("dropping frame", "error", errors.New("E200").Wrap(err).FormatCompact())
		return
	}
	if f.Type != FrameEvent {
		e.logger.Debug("ignoring frame", "type", f.Type)
		return
	}
	if f.Target == "" {
		f.Target = e.id
	}
	for _, h := range e.listeners[f.Event.Type] {
		h(f.Event)
	}
}

// Close closes the underlying connection.
func (e *Element) Close() error {
	return e.conn.Close()
}
