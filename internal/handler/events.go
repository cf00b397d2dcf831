package handler

import (
	"fmt"
	"html"
	"net/http"

	"github.com/jmorel/devfolio/internal/notify"
	datastar "github.com/starfederation/datastar-go/datastar"
)

// EventsHandler streams notifications to connected pages over SSE.
type EventsHandler struct {
	hub *notify.Hub
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(hub *notify.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// HandleEvents subscribes the connection to the notification hub and appends a
// toast element into the page's #notifications region for every notification
// until the client disconnects.
// GET /api/events
func (h *EventsHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	sub, cancel := h.hub.Subscribe()
	defer cancel()

	for {
		select {
		case <-r.Context().Done():
			return
		case n, ok := <-sub:
			if !ok {
				return
			}
			if err := sse.PatchElements(renderToast(n),
				datastar.WithSelectorID("notifications"),
				datastar.WithModeAppend(),
			); err != nil {
				return
			}
		}
	}
}

func renderToast(n notify.Notification) string {
	return fmt.Sprintf(
		`<div class="toast toast-%s"><strong>%s</strong><p>%s</p></div>`,
		n.Variant,
		html.EscapeString(n.Title),
		html.EscapeString(n.Description),
	)
}
