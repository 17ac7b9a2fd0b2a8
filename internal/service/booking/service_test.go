package booking_test

import (
	"context"
	"strings"
	"testing"

	bookingmodel "github.com/campuscare/maya/backend/internal/model/booking"
	booking "github.com/campuscare/maya/backend/internal/service/booking"
)

func TestBookAvailableSlot(t *testing.T) {
	svc := booking.NewService(bookingmodel.Seed())
	ctx := context.Background()

	conf, err := svc.Book(ctx, 1)
	if err != nil {
		t.Fatalf("Book err: %v", err)
	}
	if !strings.HasPrefix(conf.Reference, "REF-") {
		t.Fatalf("unexpected reference %q", conf.Reference)
	}
	if conf.Counsellor != "Dr. Priya Sharma" {
		t.Fatalf("unexpected counsellor %q", conf.Counsellor)
	}

	// The slot is now taken.
	if _, err := svc.Book(ctx, 1); err != booking.ErrSlotUnavailable {
		t.Fatalf("expected ErrSlotUnavailable, got %v", err)
	}
	if svc.ActiveBookings() != 1 {
		t.Fatalf("active bookings: %d", svc.ActiveBookings())
	}
}

func TestBookSeededUnavailableSlot(t *testing.T) {
	svc := booking.NewService(bookingmodel.Seed())
	if _, err := svc.Book(context.Background(), 3); err != booking.ErrSlotUnavailable {
		t.Fatalf("expected ErrSlotUnavailable, got %v", err)
	}
}

func TestBookUnknownCounsellor(t *testing.T) {
	svc := booking.NewService(bookingmodel.Seed())
	if _, err := svc.Book(context.Background(), 42); err != booking.ErrCounsellorNotFound {
		t.Fatalf("expected ErrCounsellorNotFound, got %v", err)
	}
}

func TestCancelFreesSlot(t *testing.T) {
	svc := booking.NewService(bookingmodel.Seed())
	ctx := context.Background()

	if _, err := svc.Book(ctx, 2); err != nil {
		t.Fatalf("Book err: %v", err)
	}
	if err := svc.Cancel(ctx, 2); err != nil {
		t.Fatalf("Cancel err: %v", err)
	}
	if _, err := svc.Book(ctx, 2); err != nil {
		t.Fatalf("rebooking freed slot: %v", err)
	}

	if err := svc.Cancel(ctx, 1); err != booking.ErrSlotNotBooked {
		t.Fatalf("expected ErrSlotNotBooked, got %v", err)
	}
}
