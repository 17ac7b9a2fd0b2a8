package nav

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	navmodel "github.com/campuscare/maya/backend/internal/model/nav"
	navservice "github.com/campuscare/maya/backend/internal/service/nav"
	"github.com/campuscare/maya/backend/pkg/utils"
)

// Handler exposes role-aware back navigation over HTTP.
type Handler struct {
	navSvc *navservice.Service
}

// New creates the navigation handler.
func New(navSvc *navservice.Service) *Handler {
	return &Handler{navSvc: navSvc}
}

// RegisterRoutes mounts the navigation endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/nav/sessions", h.handleLogin)
	r.Post("/nav/sessions/{sessionID}/back", h.handleBack)
	r.Post("/nav/resolve-back", h.handleResolveBack)
}

// handleLogin opens an app session for the role picked on the welcome
// screen.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Role navmodel.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.navSvc.Login(r.Context(), payload.Role)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"sessionId": id})
}

// handleBack resolves a back request against the session's stored role.
func (h *Handler) handleBack(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var payload struct {
		Current navmodel.ScreenID `json:"current"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	action, err := h.navSvc.Back(r.Context(), sessionID, payload.Current)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, navservice.ErrSessionNotFound) {
			status = http.StatusNotFound
		}
		utils.RespondError(w, status, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, action)
}

// handleResolveBack is the stateless variant for clients that manage their
// own role value; it never touches session state.
func (h *Handler) handleResolveBack(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Current navmodel.ScreenID `json:"current"`
		Role    navmodel.Role     `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	utils.RespondJSON(w, http.StatusOK, navservice.ResolveBack(payload.Current, payload.Role))
}
