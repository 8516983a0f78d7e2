package realtime

import (
	"context"
	"encoding/json"

	"bookexpert/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// eventsChannel is the Redis pub/sub channel shared by all server instances.
const eventsChannel = "bookexpert:slot-events"

// RedisBridge publishes events through Redis so that observers connected to
// any server instance see every slot change. When Redis is unreachable it
// degrades to local-only fan-out; availability events are a latency
// optimization, never a correctness dependency.
type RedisBridge struct {
	Client *redis.Client
	Hub    *Hub
}

// NewRedisBridge wires a hub to the shared Redis channel.
func NewRedisBridge(client *redis.Client, hub *Hub) *RedisBridge {
	return &RedisBridge{Client: client, Hub: hub}
}

// Run subscribes to the shared channel and forwards incoming events into the
// local hub until ctx is cancelled. Runs in its own goroutine.
func (b *RedisBridge) Run(ctx context.Context) {
	sub := b.Client.Subscribe(ctx, eventsChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var ev models.SlotEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				zap.L().Warn("discarding malformed slot event", zap.Error(err))
				continue
			}
			b.Hub.Broadcast(ev)
		}
	}
}

func (b *RedisBridge) publish(ev models.SlotEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		zap.L().Error("failed to marshal slot event", zap.Error(err))
		return
	}
	if err := b.Client.Publish(context.Background(), eventsChannel, payload).Err(); err != nil {
		zap.L().Warn("redis publish failed, falling back to local fan-out", zap.Error(err))
		b.Hub.Broadcast(ev)
	}
}

// PublishSlotBooked publishes an occupied event to every instance.
func (b *RedisBridge) PublishSlotBooked(expertID, slotID string) {
	b.publish(models.SlotEvent{Event: models.EventSlotBooked, ExpertID: expertID, SlotID: slotID})
}

// PublishSlotAvailable publishes a freed event to every instance.
func (b *RedisBridge) PublishSlotAvailable(expertID, slotID string) {
	b.publish(models.SlotEvent{Event: models.EventSlotAvailable, ExpertID: expertID, SlotID: slotID})
}
