package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"bookexpert/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindByEmail returns every booking made with the given email, newest first.
func (r *MongoBookingRepo) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userEmail": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// ExistsForSlot reports whether any booking, regardless of status, references
// the given (expert, slot) pair. The reconciliation pass deliberately checks
// existence rather than active status: a Completed record still proves the
// slot was freed through the normal lifecycle, not by drift.
func (r *MongoBookingRepo) ExistsForSlot(ctx context.Context, expertID, slotID string) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx,
		bson.M{"expertId": expertID, "slotId": slotID},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, fmt.Errorf("failed to check bookings for slot %s: %w", slotID, err)
	}
	return count > 0, nil
}
