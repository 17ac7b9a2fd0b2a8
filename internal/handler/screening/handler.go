package screening

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campuscare/maya/backend/internal/analysis/screening"
	"github.com/campuscare/maya/backend/pkg/utils"
)

// Handler exposes the self-screening questionnaires over HTTP.
type Handler struct{}

// New creates the screening handler.
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the screening endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/screening/{instrument}/questions", h.handleQuestions)
	r.Post("/screening/{instrument}/score", h.handleScore)
}

func (h *Handler) handleQuestions(w http.ResponseWriter, r *http.Request) {
	instrument := screening.Instrument(chi.URLParam(r, "instrument"))
	qs := screening.Questions(instrument)
	if qs == nil {
		utils.RespondError(w, http.StatusNotFound, "unknown instrument")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"instrument": instrument,
		"questions":  qs,
	})
}

type scoreRequest struct {
	Answers []int `json:"answers"`
}

func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := screening.Score(screening.Instrument(chi.URLParam(r, "instrument")), req.Answers)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, result)
}
