package reservation

import "fmt"

// ValidationError reports malformed input. It is always returned before any
// storage access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NotFoundError reports a missing expert, slot or booking.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ConflictError reports a booking attempt against an already occupied slot.
type ConflictError struct {
	ExpertID string
	SlotID   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot %s for expert %s is already booked", e.SlotID, e.ExpertID)
}
