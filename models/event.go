package models

// Slot availability event names pushed to connected observers.
const (
	EventSlotBooked    = "slotBooked"
	EventSlotAvailable = "slotAvailable"
)

// SlotEvent is the payload broadcast when a slot changes occupancy. Delivery
// is best effort; clients re-fetch expert state after reconnecting.
type SlotEvent struct {
	Event    string `json:"event"`
	ExpertID string `json:"expertId"`
	SlotID   string `json:"slotId"`
}
