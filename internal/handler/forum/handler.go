package forum

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	forummodel "github.com/campuscare/maya/backend/internal/model/forum"
	forumservice "github.com/campuscare/maya/backend/internal/service/forum"
	"github.com/campuscare/maya/backend/pkg/utils"
)

// Handler exposes the peer-support forum over HTTP.
type Handler struct {
	forumSvc *forumservice.Service
}

// New creates the forum handler.
func New(forumSvc *forumservice.Service) *Handler {
	return &Handler{forumSvc: forumSvc}
}

// RegisterRoutes mounts the forum endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/forum/posts", h.handleList)
	r.Post("/forum/posts", h.handleCreate)
	r.Post("/forum/posts/{postID}/like", h.handleToggleLike)
	r.Get("/forum/categories", h.handleCategories)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.forumSvc.List(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Author   string `json:"author"`
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.forumSvc.Create(r.Context(), payload.Title, payload.Content, payload.Author, payload.Category)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusCreated, post)
}

func (h *Handler) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "postID"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	post, err := h.forumSvc.ToggleLike(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, forumservice.ErrPostNotFound) {
			status = http.StatusNotFound
		}
		utils.RespondError(w, status, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, post)
}

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, forummodel.Categories())
}
