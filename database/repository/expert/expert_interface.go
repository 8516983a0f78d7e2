package expertRepo

import (
	"context"

	"bookexpert/models"
)

// Query narrows and pages a directory listing. A zero value lists everything.
type Query struct {
	Page     int64  // 1-based; values < 1 are treated as 1.
	Limit    int64  // values < 1 fall back to the default page size.
	Search   string // case-insensitive substring match on the expert name.
	Category string // exact category; empty or "All" matches every category.
}

// ExpertRepository defines the persistence operations for the expert directory.
type ExpertRepository interface {
	Create(ctx context.Context, expert *models.Expert) error
	GetByID(ctx context.Context, id string) (*models.Expert, error)
	List(ctx context.Context, q Query) (*models.ExpertPage, error)
	All(ctx context.Context) ([]models.Expert, error)
	Count(ctx context.Context) (int64, error)

	// MarkSlotBooked flips the slot's occupancy flag from false to true and
	// reports whether the conditional update matched. A false return with a
	// nil error means the slot was already booked (or vanished) at update
	// time; the caller must treat that as a conflict, never retry blindly.
	MarkSlotBooked(ctx context.Context, expertID, slotID string) (bool, error)

	// FreeSlot sets the slot's occupancy flag to false. It is idempotent:
	// freeing an already-free slot matches and succeeds. ErrNotFound is
	// returned when the expert or slot does not exist.
	FreeSlot(ctx context.Context, expertID, slotID string) error
}
