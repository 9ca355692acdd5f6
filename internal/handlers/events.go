package handlers

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/devingeorge/global-sales-insights/internal/services"
)

// EventsHandler handles the Slack Events API callback
type EventsHandler struct {
	home *services.HomeService
}

// NewEventsHandler creates the events handler
func NewEventsHandler(home *services.HomeService) *EventsHandler {
	return &EventsHandler{home: home}
}

// Handle acknowledges the event immediately and continues processing in the
// background (Slack retries events that are not acked within 3 seconds).
// POST /slack/events
func (h *EventsHandler) Handle(c *fiber.Ctx) error {
	var body struct {
		Type      string `json:"type"`
		Challenge string `json:"challenge"`
		Event     struct {
			Type string `json:"type"`
			User string `json:"user"`
		} `json:"event"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event body"})
	}

	switch body.Type {
	case "url_verification":
		return c.JSON(fiber.Map{"challenge": body.Challenge})
	case "event_callback":
		if body.Event.Type == "app_home_opened" && body.Event.User != "" {
			userID := body.Event.User
			go func() {
				defer func() {
					if r := recover(); r != nil {
						log.Printf("❌ [EVENTS] Panic publishing App Home for %s: %v", userID, r)
					}
				}()
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				if err := h.home.Publish(ctx, userID); err != nil {
					log.Printf("❌ [EVENTS] Failed to publish App Home for %s: %v", userID, err)
				}
			}()
		}
	}
	return c.SendStatus(fiber.StatusOK)
}
