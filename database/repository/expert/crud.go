package expertRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookexpert/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new expert document.
func (r *MongoExpertRepo) Create(ctx context.Context, expert *models.Expert) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	if expert.CreatedAt.IsZero() {
		expert.CreatedAt = now
	}
	expert.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, expert); err != nil {
		return fmt.Errorf("failed to create expert: %w", err)
	}
	return nil
}

// GetByID fetches a single expert document by its id.
func (r *MongoExpertRepo) GetByID(ctx context.Context, id string) (*models.Expert, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var expert models.Expert
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&expert); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch expert with id %s: %w", id, err)
	}
	return &expert, nil
}

// MarkSlotBooked performs the atomic check-and-act for a booking attempt:
// the filter only matches while the slot is still free, so two concurrent
// callers can never both win the flag.
func (r *MongoExpertRepo) MarkSlotBooked(ctx context.Context, expertID, slotID string) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id": expertID,
		"timeSlots": bson.M{
			"$elemMatch": bson.M{
				"id":       slotID,
				"isBooked": false,
			},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"timeSlots.$.isBooked": true,
			"updatedAt":            time.Now().UTC(),
		},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to mark slot %s booked for expert %s: %w", slotID, expertID, err)
	}
	return res.MatchedCount == 1, nil
}

// FreeSlot clears the slot's occupancy flag. The filter matches regardless of
// the current flag value so repeated frees are harmless.
func (r *MongoExpertRepo) FreeSlot(ctx context.Context, expertID, slotID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id": expertID,
		"timeSlots": bson.M{
			"$elemMatch": bson.M{"id": slotID},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"timeSlots.$.isBooked": false,
			"updatedAt":            time.Now().UTC(),
		},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to free slot %s for expert %s: %w", slotID, expertID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
