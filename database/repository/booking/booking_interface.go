package bookingRepo

import (
	"context"

	"bookexpert/models"
)

// BookingRepository defines the persistence operations for the booking ledger.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error

	// FindByEmail returns every booking made with the given email, newest
	// first.
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)

	// ExistsForSlot reports whether any booking, regardless of status,
	// references the given (expert, slot) pair.
	ExistsForSlot(ctx context.Context, expertID, slotID string) (bool, error)
}
