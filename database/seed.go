package database

import (
	"context"
	"fmt"
	"time"

	"bookexpert/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// sampleExperts returns the starter directory used on a fresh database. Slot
// ids are generated per expert so every seeded slot is individually bookable.
func sampleExperts() []models.Expert {
	type seedExpert struct {
		name       string
		category   string
		experience string
		rating     float64
		avatar     string
	}
	seeds := []seedExpert{
		{"Dr. Sarah Mitchell", "Career Coaching", "12 years", 4.9, "https://i.pravatar.cc/150?img=1"},
		{"James Okoro", "Financial Planning", "8 years", 4.7, "https://i.pravatar.cc/150?img=12"},
		{"Priya Raman", "Nutrition", "10 years", 4.8, "https://i.pravatar.cc/150?img=5"},
		{"Miguel Santos", "Fitness Training", "6 years", 4.5, "https://i.pravatar.cc/150?img=14"},
		{"Elena Petrova", "Legal Advice", "15 years", 4.9, "https://i.pravatar.cc/150?img=9"},
	}
	times := []string{"09:00 AM", "10:00 AM", "11:00 AM", "02:00 PM", "03:00 PM", "04:00 PM"}

	now := time.Now().UTC()
	experts := make([]models.Expert, 0, len(seeds))
	for _, s := range seeds {
		slots := make([]models.TimeSlot, 0, len(times)*3)
		for day := 1; day <= 3; day++ {
			date := now.AddDate(0, 0, day).Format("2006-01-02")
			for _, label := range times {
				slots = append(slots, models.TimeSlot{
					ID:   uuid.New().String(),
					Date: date,
					Time: label,
				})
			}
		}
		experts = append(experts, models.Expert{
			ID:         primitive.NewObjectID().Hex(),
			Name:       s.name,
			Category:   s.category,
			Experience: s.experience,
			Rating:     s.rating,
			Avatar:     s.avatar,
			TimeSlots:  slots,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	return experts
}

// SeedExpertsIfEmpty inserts the sample directory when the experts collection
// has no documents. Safe to call on every startup.
func SeedExpertsIfEmpty(ctx context.Context) (int, error) {
	coll := DB().Collection("experts")

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	count, err := coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count experts: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	experts := sampleExperts()
	docs := make([]interface{}, len(experts))
	for i := range experts {
		docs[i] = experts[i]
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return 0, fmt.Errorf("failed to seed experts: %w", err)
	}
	return len(experts), nil
}
