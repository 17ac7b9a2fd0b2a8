package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	bookingservice "github.com/campuscare/maya/backend/internal/service/booking"
	"github.com/campuscare/maya/backend/pkg/utils"
)

// Handler exposes counsellor booking over HTTP.
type Handler struct {
	bookingSvc *bookingservice.Service
}

// New creates the booking handler.
func New(bookingSvc *bookingservice.Service) *Handler {
	return &Handler{bookingSvc: bookingSvc}
}

// RegisterRoutes mounts the booking endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/booking/counsellors", h.handleList)
	r.Post("/booking/counsellors/{counsellorID}/book", h.handleBook)
	r.Post("/booking/counsellors/{counsellorID}/cancel", h.handleCancel)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.bookingSvc.List(r.Context()))
}

func (h *Handler) handleBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "counsellorID"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid counsellor id")
		return
	}

	conf, err := h.bookingSvc.Book(r.Context(), id)
	if err != nil {
		utils.RespondError(w, bookingStatus(err), err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusCreated, conf)
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "counsellorID"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid counsellor id")
		return
	}

	if err := h.bookingSvc.Cancel(r.Context(), id); err != nil {
		utils.RespondError(w, bookingStatus(err), err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

func bookingStatus(err error) int {
	switch {
	case errors.Is(err, bookingservice.ErrCounsellorNotFound):
		return http.StatusNotFound
	case errors.Is(err, bookingservice.ErrSlotUnavailable), errors.Is(err, bookingservice.ErrSlotNotBooked):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
