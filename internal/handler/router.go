package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	adminHandler "github.com/campuscare/maya/backend/internal/handler/admin"
	bookingHandler "github.com/campuscare/maya/backend/internal/handler/booking"
	challengeHandler "github.com/campuscare/maya/backend/internal/handler/challenge"
	chatHandler "github.com/campuscare/maya/backend/internal/handler/chat"
	forumHandler "github.com/campuscare/maya/backend/internal/handler/forum"
	moodHandler "github.com/campuscare/maya/backend/internal/handler/mood"
	navHandler "github.com/campuscare/maya/backend/internal/handler/nav"
	resourceHandler "github.com/campuscare/maya/backend/internal/handler/resource"
	screeningHandler "github.com/campuscare/maya/backend/internal/handler/screening"
	middlewarePkg "github.com/campuscare/maya/backend/internal/middleware"
	resourceModel "github.com/campuscare/maya/backend/internal/model/resource"
	bookingService "github.com/campuscare/maya/backend/internal/service/booking"
	challengeService "github.com/campuscare/maya/backend/internal/service/challenge"
	chatService "github.com/campuscare/maya/backend/internal/service/chat"
	forumService "github.com/campuscare/maya/backend/internal/service/forum"
	moodService "github.com/campuscare/maya/backend/internal/service/mood"
	navService "github.com/campuscare/maya/backend/internal/service/nav"
	"github.com/campuscare/maya/backend/pkg/utils"
)

// Services bundles everything the router wires up.
type Services struct {
	Chat      *chatService.Service
	Nav       *navService.Service
	Mood      *moodService.Service
	Forum     *forumService.Service
	Booking   *bookingService.Service
	Challenge *challengeService.Service
	Resources resourceModel.Store
}

// NewRouter wires HTTP routes to core services.
func NewRouter(svcs Services) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatH := chatHandler.New(svcs.Chat)
	navH := navHandler.New(svcs.Nav)
	moodH := moodHandler.New(svcs.Mood)
	forumH := forumHandler.New(svcs.Forum)
	resourceH := resourceHandler.New(svcs.Resources)
	bookingH := bookingHandler.New(svcs.Booking)
	challengeH := challengeHandler.New(svcs.Challenge)
	screeningH := screeningHandler.New()
	adminH := adminHandler.New(svcs.Chat, svcs.Mood, svcs.Forum, svcs.Booking, svcs.Challenge, svcs.Resources)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		chatH.RegisterRoutes(api)
		chatH.RegisterWebSocketRoutes(api)
		navH.RegisterRoutes(api)
		moodH.RegisterRoutes(api)
		forumH.RegisterRoutes(api)
		resourceH.RegisterRoutes(api)
		bookingH.RegisterRoutes(api)
		challengeH.RegisterRoutes(api)
		screeningH.RegisterRoutes(api)
		adminH.RegisterRoutes(api)
	})

	return r
}
