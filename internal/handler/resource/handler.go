package resource

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	resourcemodel "github.com/campuscare/maya/backend/internal/model/resource"
	"github.com/campuscare/maya/backend/pkg/utils"
)

// Handler exposes the resource library over HTTP.
type Handler struct {
	store resourcemodel.Store
}

// New creates the resource handler.
func New(store resourcemodel.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the library endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/resources", h.handleSearch)
	r.Get("/resources/{resourceID}", h.handleGet)
	r.Get("/resources/filters", h.handleFilters)
}

// handleSearch lists the library, optionally narrowed by ?q= and ?category=.
func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	utils.RespondJSON(w, http.StatusOK, h.store.Search(term, category))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "resourceID"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid resource id")
		return
	}

	item, ok := h.store.FindByID(id)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "resource not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, item)
}

func (h *Handler) handleFilters(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string][]string{
		"categories": resourcemodel.Categories(),
		"languages":  resourcemodel.Languages(),
	})
}
