package handlers

import (
	"net/http"
	"time"

	"crowd-server/logging"
	"crowd-server/stream"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

type StreamHandler struct {
	hub            *stream.Hub
	allowedOrigins []string
	upgrader       websocket.Upgrader
	log            zerolog.Logger
}

// NewStreamHandler accepts connections from allowedOrigins; "*" allows any
// origin and requests without an Origin header are always accepted.
func NewStreamHandler(hub *stream.Hub, allowedOrigins []string) *StreamHandler {
	h := &StreamHandler{
		hub:            hub,
		allowedOrigins: allowedOrigins,
		log:            logging.Component("StreamHandler"),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  4096,
		HandshakeTimeout: 10 * time.Second,
		CheckOrigin:      h.checkOrigin,
	}
	return h
}

// Stream handles GET /v1/stream
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	stream.NewClient(h.hub, conn).Start()
}

func (h *StreamHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range h.allowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	h.log.Warn().Str("origin", origin).Msg("websocket connection rejected from unauthorized origin")
	return false
}
