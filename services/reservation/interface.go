package reservation

import (
	"context"

	"bookexpert/models"
)

// ReservationService coordinates the booking lifecycle across the expert
// directory and the booking ledger, keeping the slot occupancy flag in step
// with the set of active bookings.
type ReservationService interface {
	// Book reserves the slot for the requester and returns the created
	// booking, which always starts Pending.
	Book(ctx context.Context, expertID string, req models.BookingRequest) (*models.Booking, error)

	// SetStatus moves a booking to a new lifecycle status. Completing a
	// booking frees its slot; Pending and Confirmed leave slot state alone.
	SetStatus(ctx context.Context, bookingID, status string) (*models.Booking, error)

	// Delete removes a booking record and frees its slot regardless of the
	// booking's status at deletion time.
	Delete(ctx context.Context, bookingID string) error

	// ListByEmail returns every booking made with the given email, newest
	// first.
	ListByEmail(ctx context.Context, email string) ([]models.Booking, error)
}

// ExpertStore is the slice of the expert repository the coordinator needs.
type ExpertStore interface {
	GetByID(ctx context.Context, id string) (*models.Expert, error)
	MarkSlotBooked(ctx context.Context, expertID, slotID string) (bool, error)
	FreeSlot(ctx context.Context, expertID, slotID string) error
}

// BookingStore is the slice of the booking repository the coordinator needs.
type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
}

// Notifier pushes slot availability changes to connected observers. Delivery
// is best effort; the coordinator never fails an operation over it.
type Notifier interface {
	PublishSlotBooked(expertID, slotID string)
	PublishSlotAvailable(expertID, slotID string)
}

// DefaultReservationService is the production ReservationService.
type DefaultReservationService struct {
	Experts  ExpertStore
	Bookings BookingStore
	Notifier Notifier
}
