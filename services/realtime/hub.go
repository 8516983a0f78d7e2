package realtime

import (
	"sync"

	"bookexpert/models"

	"go.uber.org/zap"
)

// subscriberBuffer bounds how far a slow observer may fall behind before
// events are dropped for it.
const subscriberBuffer = 16

// Hub is the in-process fan-out point. It implements both Notifier and
// Subscriber and never blocks a publisher on a slow observer.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan models.SlotEvent]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan models.SlotEvent]struct{})}
}

// Subscribe registers an observer. The returned cancel function unregisters
// it and closes its channel.
func (h *Hub) Subscribe() (<-chan models.SlotEvent, func()) {
	ch := make(chan models.SlotEvent, subscriberBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Broadcast delivers the event to every current observer, dropping it for
// observers whose buffers are full.
func (h *Hub) Broadcast(ev models.SlotEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
			zap.L().Debug("dropping event for slow observer",
				zap.String("event", ev.Event),
				zap.String("slotId", ev.SlotID))
		}
	}
}

// PublishSlotBooked broadcasts an occupied event.
func (h *Hub) PublishSlotBooked(expertID, slotID string) {
	h.Broadcast(models.SlotEvent{Event: models.EventSlotBooked, ExpertID: expertID, SlotID: slotID})
}

// PublishSlotAvailable broadcasts a freed event.
func (h *Hub) PublishSlotAvailable(expertID, slotID string) {
	h.Broadcast(models.SlotEvent{Event: models.EventSlotAvailable, ExpertID: expertID, SlotID: slotID})
}

// SubscriberCount reports how many observers are currently connected.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
