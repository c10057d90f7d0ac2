package wsdom

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/statebind/internal/errors"
)

// DefaultElementID is used when the request carries no "el" query parameter.
const DefaultElementID = "app"

// HandlerOption configures Handler.
type HandlerOption func(*handler)

// WithUpgrader sets the WebSocket upgrader.
func WithUpgrader(u websocket.Upgrader) HandlerOption {
	return func(h *handler) {
		h.upgrader = u
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(h *handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithReadLimit caps the size of an inbound frame in bytes.
func WithReadLimit(n int64) HandlerOption {
	return func(h *handler) {
		h.readLimit = n
	}
}

type handler struct {
	mount     func(*Element)
	upgrader  websocket.Upgrader
	logger    *slog.Logger
	readLimit int64
}

// Handler returns an http.Handler that upgrades each request, creates an
// Element, passes it to mount and then serves it until the connection
// closes. mount runs on the connection goroutine before any frame is read.
func Handler(mount func(*Element), opts ...HandlerOption) http.Handler {
	h := &handler{
		mount: mount,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:    slog.Default().With("component", "wsdom"),
		readLimit: 64 * 1024,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", errors.New("E201").Wrap(err).FormatCompact(), "remote", r.RemoteAddr)
		return
	}
	defer conn.Close()
	if h.readLimit > 0 {
		conn.SetReadLimit(h.readLimit)
	}

	id := r.URL.Query().Get("el")
	if id == "" {
		id = DefaultElementID
	}
	el := NewElement(id, conn, h.logger)
	el.ctx = r.Context()

	h.logger.Info("element connected", "element", id, "remote", r.RemoteAddr)
	h.mount(el)

	if err := el.Serve(r.Context()); err != nil {
		h.logger.Warn("element connection ended", "element", id, "error", err)
		return
	}
	h.logger.Info("element disconnected", "element", id)
}
