package reservation

import (
	"context"
	"fmt"

	"bookexpert/models"
)

// ListByEmail returns every booking made with the given email, newest first.
// Read-only; slot state is never touched.
func (s *DefaultReservationService) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
