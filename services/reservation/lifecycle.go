package reservation

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "bookexpert/database/repository/booking"
	expertRepo "bookexpert/database/repository/expert"
	"bookexpert/models"

	"go.uber.org/zap"
)

// SetStatus moves a booking to a new lifecycle status. A transition to
// Completed also frees the booking's slot and notifies observers; Pending and
// Confirmed transitions never touch slot state.
func (s *DefaultReservationService) SetStatus(ctx context.Context, bookingID, status string) (*models.Booking, error) {
	if !models.ValidStatus(status) {
		return nil, &ValidationError{Field: "status", Message: "status must be Pending, Confirmed or Completed"}
	}
	if err := validateHexID("bookingId", bookingID); err != nil {
		return nil, err
	}

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &NotFoundError{Resource: "booking", ID: bookingID}
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	if err := s.Bookings.UpdateStatus(ctx, bookingID, status); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &NotFoundError{Resource: "booking", ID: bookingID}
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	booking.Status = status

	if status == models.StatusCompleted {
		s.freeSlot(ctx, booking)
	}
	return booking, nil
}

// Delete removes a booking record and frees its slot no matter what status
// the booking held. Freeing an already-free slot is a no-op, so deleting a
// Completed booking stays safe.
func (s *DefaultReservationService) Delete(ctx context.Context, bookingID string) error {
	if err := validateHexID("bookingId", bookingID); err != nil {
		return err
	}

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return &NotFoundError{Resource: "booking", ID: bookingID}
		}
		return fmt.Errorf("failed to load booking: %w", err)
	}

	if err := s.Bookings.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return &NotFoundError{Resource: "booking", ID: bookingID}
		}
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.freeSlot(ctx, booking)
	return nil
}

// freeSlot clears the occupancy flag for the booking's slot and publishes the
// availability event. Failures here leave the flag stale rather than failing
// the already-persisted ledger write; the reconciliation pass exists for the
// no-booking flavor of that drift, the rest is logged for the operator.
func (s *DefaultReservationService) freeSlot(ctx context.Context, booking *models.Booking) {
	if err := s.Experts.FreeSlot(ctx, booking.ExpertID, booking.SlotID); err != nil {
		if errors.Is(err, expertRepo.ErrNotFound) {
			zap.L().Warn("slot vanished before it could be freed",
				zap.String("expertId", booking.ExpertID),
				zap.String("slotId", booking.SlotID))
			return
		}
		zap.L().Error("failed to free slot",
			zap.String("expertId", booking.ExpertID),
			zap.String("slotId", booking.SlotID),
			zap.Error(err))
		return
	}
	s.Notifier.PublishSlotAvailable(booking.ExpertID, booking.SlotID)
}
