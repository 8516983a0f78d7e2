package reservation

import (
	"context"
	"errors"
	"fmt"

	expertRepo "bookexpert/database/repository/expert"
	"bookexpert/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Book reserves a slot for the requester. The occupancy decision rides on a
// conditional update that only matches while the slot is free, so concurrent
// attempts on the same slot serialize in the store: exactly one wins, the
// rest see a conflict. The ledger insert happens after the flag is won; if it
// fails the flag is freed again best effort, and any residue is picked up by
// the reconciliation pass.
func (s *DefaultReservationService) Book(ctx context.Context, expertID string, req models.BookingRequest) (*models.Booking, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}
	if err := validateHexID("expertId", expertID); err != nil {
		return nil, err
	}

	expert, err := s.Experts.GetByID(ctx, expertID)
	if err != nil {
		if errors.Is(err, expertRepo.ErrNotFound) {
			return nil, &NotFoundError{Resource: "expert", ID: expertID}
		}
		return nil, fmt.Errorf("failed to load expert: %w", err)
	}

	slot := expert.SlotByID(req.SlotID)
	if slot == nil {
		return nil, &NotFoundError{Resource: "slot", ID: req.SlotID}
	}
	if slot.IsBooked {
		return nil, &ConflictError{ExpertID: expertID, SlotID: req.SlotID}
	}

	won, err := s.Experts.MarkSlotBooked(ctx, expertID, req.SlotID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark slot booked: %w", err)
	}
	if !won {
		// Another request took the slot between our read and the update.
		return nil, &ConflictError{ExpertID: expertID, SlotID: req.SlotID}
	}

	booking := &models.Booking{
		ID:         primitive.NewObjectID().Hex(),
		ExpertID:   expert.ID,
		ExpertName: expert.Name,
		SlotID:     slot.ID,
		Date:       slot.Date,
		Time:       slot.Time,
		UserName:   req.UserName,
		UserEmail:  req.UserEmail,
		UserPhone:  req.UserPhone,
		Notes:      req.Notes,
		Status:     models.StatusPending,
	}

	if err := s.Bookings.Create(ctx, booking); err != nil {
		if freeErr := s.Experts.FreeSlot(ctx, expertID, req.SlotID); freeErr != nil {
			zap.L().Error("failed to release slot after ledger insert failure",
				zap.String("expertId", expertID),
				zap.String("slotId", req.SlotID),
				zap.Error(freeErr))
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.Notifier.PublishSlotBooked(expert.ID, slot.ID)
	return booking, nil
}
