package handlers

import (
	"io"

	"bookexpert/services/realtime"

	"github.com/gin-gonic/gin"
)

// EventsHandler streams slot availability events to browsers over SSE.
type EventsHandler struct {
	Hub realtime.Subscriber
}

// NewEventsHandler creates an EventsHandler.
func NewEventsHandler(hub realtime.Subscriber) *EventsHandler {
	return &EventsHandler{Hub: hub}
}

// StreamHandler handles GET /api/events. The stream is fire-and-forget: a
// client that reconnects re-fetches expert state instead of replaying missed
// events.
func (h *EventsHandler) StreamHandler(c *gin.Context) {
	ch, cancel := h.Hub.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(ev.Event, ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
