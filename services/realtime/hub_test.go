package realtime

import (
	"testing"

	"bookexpert/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubFansOutToAllSubscribers(t *testing.T) {
	hub := NewHub()

	ch1, cancel1 := hub.Subscribe()
	defer cancel1()
	ch2, cancel2 := hub.Subscribe()
	defer cancel2()

	hub.PublishSlotBooked("e1", "s1")

	for _, ch := range []<-chan models.SlotEvent{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, models.EventSlotBooked, ev.Event)
			assert.Equal(t, "e1", ev.ExpertID)
			assert.Equal(t, "s1", ev.SlotID)
		default:
			t.Fatal("subscriber did not receive the event")
		}
	}
}

func TestHubDropsForSlowSubscribers(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	defer cancel()

	// Publish past the buffer without reading; the hub must not block.
	for i := 0; i < subscriberBuffer+5; i++ {
		hub.PublishSlotAvailable("e1", "s1")
	}
	assert.Len(t, ch, subscriberBuffer)
}

func TestHubCancelClosesChannel(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	require.Equal(t, 1, hub.SubscriberCount())

	cancel()
	assert.Zero(t, hub.SubscriberCount())

	_, open := <-ch
	assert.False(t, open, "channel must be closed after cancel")

	// Publishing after cancel must not panic.
	hub.PublishSlotBooked("e1", "s1")
	// Double cancel must be safe.
	cancel()
}
