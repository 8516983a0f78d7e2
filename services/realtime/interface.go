// Package realtime fans slot availability events out to connected observers.
// Delivery is best effort with no replay; disconnected clients re-fetch
// expert state when they resynchronize.
package realtime

import "bookexpert/models"

// Notifier is the publishing side consumed by the reservation service.
type Notifier interface {
	PublishSlotBooked(expertID, slotID string)
	PublishSlotAvailable(expertID, slotID string)
}

// Subscriber is the consuming side used by the event stream handler.
type Subscriber interface {
	// Subscribe registers an observer and returns its event channel plus a
	// cancel function that must be called when the observer disconnects.
	Subscribe() (<-chan models.SlotEvent, func())
}
