package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	resourcemodel "github.com/campuscare/maya/backend/internal/model/resource"
	bookingservice "github.com/campuscare/maya/backend/internal/service/booking"
	challengeservice "github.com/campuscare/maya/backend/internal/service/challenge"
	chatservice "github.com/campuscare/maya/backend/internal/service/chat"
	forumservice "github.com/campuscare/maya/backend/internal/service/forum"
	moodservice "github.com/campuscare/maya/backend/internal/service/mood"
	"github.com/campuscare/maya/backend/pkg/utils"
)

// Handler aggregates platform activity for the admin dashboard.
type Handler struct {
	chatSvc      *chatservice.Service
	moodSvc      *moodservice.Service
	forumSvc     *forumservice.Service
	bookingSvc   *bookingservice.Service
	challengeSvc *challengeservice.Service
	resources    resourcemodel.Store
}

// New creates the admin handler.
func New(
	chatSvc *chatservice.Service,
	moodSvc *moodservice.Service,
	forumSvc *forumservice.Service,
	bookingSvc *bookingservice.Service,
	challengeSvc *challengeservice.Service,
	resources resourcemodel.Store,
) *Handler {
	return &Handler{
		chatSvc:      chatSvc,
		moodSvc:      moodSvc,
		forumSvc:     forumSvc,
		bookingSvc:   bookingSvc,
		challengeSvc: challengeSvc,
		resources:    resources,
	}
}

// RegisterRoutes mounts the admin endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/admin/overview", h.handleOverview)
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	moodStats := h.moodSvc.Stats(r.Context())
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"activeChatSessions":  h.chatSvc.ActiveSessions(),
		"crisisAlerts":        h.chatSvc.CrisisAlerts(),
		"moodEntries":         moodStats.TotalEntries,
		"forumPosts":          h.forumSvc.Count(),
		"activeBookings":      h.bookingSvc.ActiveBookings(),
		"challengesCompleted": h.challengeSvc.Stats(r.Context()).ChallengesCompleted,
		"resources":           len(h.resources.List()),
	})
}
