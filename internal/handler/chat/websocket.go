package chat

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type inboundMessage struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// RegisterWebSocketRoutes mounts the realtime chat channel.
func (h *Handler) RegisterWebSocketRoutes(r chi.Router) {
	r.Get("/chat/ws/{sessionID}", h.handleWebSocket)
}

// handleWebSocket is the bidirectional variant of the stream endpoint:
// inbound frames submit messages or acknowledge a crisis, outbound frames
// are full snapshots. Closing the socket only ends the subscription; the
// session itself is discarded via the REST delete.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	snapshots, cancel, err := h.chatSvc.Subscribe(sessionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		cancel()
		log.Printf("[ws] upgrade failed for session=%s: %v", sessionID, err)
		return
	}
	defer conn.Close()
	defer cancel()

	snap, err := h.chatSvc.Snapshot(r.Context(), sessionID)
	if err != nil {
		return
	}
	if err := conn.WriteJSON(snap); err != nil {
		return
	}

	done := make(chan struct{})
	go h.readLoop(conn, sessionID, done)

	for {
		select {
		case <-done:
			return
		case snap, open := <-snapshots:
			if !open {
				return
			}
			if err := conn.WriteJSON(snap); err != nil {
				return
			}
		}
	}
}

func (h *Handler) readLoop(conn *websocket.Conn, sessionID string, done chan<- struct{}) {
	defer close(done)
	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "message":
			if _, err := h.chatSvc.Submit(context.Background(), sessionID, msg.Text); err != nil {
				log.Printf("[ws] submit failed for session=%s: %v", sessionID, err)
				return
			}
		case "acknowledge-crisis":
			if _, err := h.chatSvc.AcknowledgeCrisis(context.Background(), sessionID); err != nil {
				log.Printf("[ws] acknowledge failed for session=%s: %v", sessionID, err)
				return
			}
		default:
			log.Printf("[ws] unknown frame type %q for session=%s", msg.Type, sessionID)
		}
	}
}
