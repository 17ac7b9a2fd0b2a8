package challenge

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	challengeservice "github.com/campuscare/maya/backend/internal/service/challenge"
	"github.com/campuscare/maya/backend/pkg/utils"
)

// Handler exposes wellness challenges over HTTP.
type Handler struct {
	challengeSvc *challengeservice.Service
}

// New creates the challenge handler.
func New(challengeSvc *challengeservice.Service) *Handler {
	return &Handler{challengeSvc: challengeSvc}
}

// RegisterRoutes mounts the challenge endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/challenges", h.handleList)
	r.Post("/challenges/{challengeID}/complete", h.handleComplete)
	r.Get("/challenges/stats", h.handleStats)
	r.Get("/challenges/progress", h.handleProgress)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.challengeSvc.List(r.Context()))
}

func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "challengeID"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid challenge id")
		return
	}

	done, stats, err := h.challengeSvc.Complete(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, challengeservice.ErrChallengeNotFound):
			status = http.StatusNotFound
		case errors.Is(err, challengeservice.ErrAlreadyCompleted):
			status = http.StatusConflict
		}
		utils.RespondError(w, status, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"challenge": done,
		"stats":     stats,
	})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.challengeSvc.Stats(r.Context()))
}

func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.challengeSvc.Progress(r.Context()))
}
