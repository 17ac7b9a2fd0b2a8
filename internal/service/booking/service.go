package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	bookingmodel "github.com/campuscare/maya/backend/internal/model/booking"
)

var (
	ErrCounsellorNotFound = errors.New("counsellor not found")
	ErrSlotUnavailable    = errors.New("slot is not available")
	ErrSlotNotBooked      = errors.New("slot is not booked")
)

// Service manages the daily counsellor roster and slot bookings in memory.
type Service struct {
	mu          sync.RWMutex
	counsellors []bookingmodel.Counsellor
	bookings    int
	refSeq      int
}

// NewService returns a booking service over the supplied roster.
func NewService(roster []bookingmodel.Counsellor) *Service {
	return &Service{counsellors: append([]bookingmodel.Counsellor(nil), roster...)}
}

// List returns the roster with current availability.
func (s *Service) List(_ context.Context) []bookingmodel.Counsellor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]bookingmodel.Counsellor, len(s.counsellors))
	copy(out, s.counsellors)
	return out
}

// Book reserves an available slot and returns a confirmation reference.
func (s *Service) Book(_ context.Context, counsellorID int) (bookingmodel.Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.counsellors {
		if s.counsellors[i].ID != counsellorID {
			continue
		}
		if !s.counsellors[i].Available {
			return bookingmodel.Confirmation{}, ErrSlotUnavailable
		}
		s.counsellors[i].Available = false
		s.bookings++
		s.refSeq++
		return bookingmodel.Confirmation{
			Reference:    fmt.Sprintf("REF-%06d", s.refSeq),
			CounsellorID: counsellorID,
			Counsellor:   s.counsellors[i].Name,
			Time:         s.counsellors[i].Time,
			BookedAt:     time.Now().UTC(),
		}, nil
	}
	return bookingmodel.Confirmation{}, ErrCounsellorNotFound
}

// Cancel frees a previously booked slot.
func (s *Service) Cancel(_ context.Context, counsellorID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.counsellors {
		if s.counsellors[i].ID != counsellorID {
			continue
		}
		if s.counsellors[i].Available {
			return ErrSlotNotBooked
		}
		s.counsellors[i].Available = true
		if s.bookings > 0 {
			s.bookings--
		}
		return nil
	}
	return ErrCounsellorNotFound
}

// ActiveBookings reports how many slots are currently reserved.
func (s *Service) ActiveBookings() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bookings
}
