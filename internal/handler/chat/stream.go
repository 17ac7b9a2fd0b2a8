package chat

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campuscare/maya/backend/pkg/utils"
)

// handleStream pushes a session's snapshots over Server-Sent Events so the
// client sees deferred companion replies land without polling.
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	snapshots, cancel, err := h.chatSvc.Subscribe(sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}
	defer cancel()

	utils.SetupSSEHeaders(w)

	// Send the current state first so late subscribers start complete.
	snap, err := h.chatSvc.Snapshot(r.Context(), sessionID)
	if err != nil {
		return
	}
	utils.SendSSEChunk(w, flusher, snap)

	ctx := r.Context()
	log.Printf("[sse] stream open for session=%s", sessionID)
	for {
		select {
		case <-ctx.Done():
			log.Printf("[sse] stream closed for session=%s", sessionID)
			return
		case snap, open := <-snapshots:
			if !open {
				// Session was discarded.
				return
			}
			utils.SendSSEChunk(w, flusher, snap)
		}
	}
}
