package expertRepo

import (
	"context"
	"fmt"
	"time"

	"bookexpert/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultPageSize = 10

// List returns one page of the directory, filtered by the query and sorted by
// rating descending.
func (r *MongoExpertRepo) List(ctx context.Context, q Query) (*models.ExpertPage, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultPageSize
	}

	filter := bson.M{}
	if q.Search != "" {
		filter["name"] = bson.M{"$regex": q.Search, "$options": "i"}
	}
	if q.Category != "" && q.Category != "All" {
		filter["category"] = q.Category
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count experts: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list experts: %w", err)
	}
	defer cursor.Close(ctx)

	experts := []models.Expert{}
	if err := cursor.All(ctx, &experts); err != nil {
		return nil, fmt.Errorf("failed to decode experts: %w", err)
	}

	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return &models.ExpertPage{
		Experts: experts,
		Page:    page,
		Pages:   pages,
		Total:   total,
	}, nil
}

// All returns every expert document. Used by the reconciliation pass, which
// needs a full snapshot rather than a page.
func (r *MongoExpertRepo) All(ctx context.Context) ([]models.Expert, error) {
	ctx, cancel := newContext(ctx, 30*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve experts: %w", err)
	}
	defer cursor.Close(ctx)

	var experts []models.Expert
	if err := cursor.All(ctx, &experts); err != nil {
		return nil, fmt.Errorf("failed to decode experts: %w", err)
	}
	return experts, nil
}

// Count returns the number of expert documents.
func (r *MongoExpertRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count experts: %w", err)
	}
	return total, nil
}
