package mood

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	moodmodel "github.com/campuscare/maya/backend/internal/model/mood"
	moodservice "github.com/campuscare/maya/backend/internal/service/mood"
	"github.com/campuscare/maya/backend/pkg/utils"
)

// Handler exposes mood tracking over HTTP.
type Handler struct {
	moodSvc *moodservice.Service
}

// New creates the mood handler.
func New(moodSvc *moodservice.Service) *Handler {
	return &Handler{moodSvc: moodSvc}
}

// RegisterRoutes mounts the mood endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/mood/moods", h.handleListMoods)
	r.Post("/mood/entries", h.handleLog)
	r.Get("/mood/entries", h.handleHistory)
	r.Get("/mood/stats", h.handleStats)
}

func (h *Handler) handleListMoods(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, moodmodel.Names())
}

func (h *Handler) handleLog(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Mood   string `json:"mood"`
		Energy int    `json:"energy"`
		Stress int    `json:"stress"`
		Note   string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.moodSvc.Log(r.Context(), payload.Mood, payload.Energy, payload.Stress, payload.Note)
	if err != nil {
		if errors.Is(err, moodservice.ErrUnknownMood) || errors.Is(err, moodservice.ErrLevelOutOfRange) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusCreated, entry)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.RespondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}
	utils.RespondJSON(w, http.StatusOK, h.moodSvc.History(r.Context(), limit))
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.moodSvc.Stats(r.Context()))
}
