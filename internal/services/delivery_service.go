package services

import (
	"context"
	"fmt"
	"log"

	"github.com/devingeorge/global-sales-insights/internal/blocks"
	"github.com/devingeorge/global-sales-insights/internal/models"
	"github.com/devingeorge/global-sales-insights/internal/slack"
)

// Messenger is the slice of the Slack client the delivery service needs
type Messenger interface {
	OpenConversation(ctx context.Context, userID string) (string, error)
	PostMessage(ctx context.Context, channel, text string, blocks []map[string]any) error
	ConversationHistory(ctx context.Context, channel, cursor string, limit int) ([]slack.Message, string, error)
	DeleteMessage(ctx context.Context, channel, ts string) error
	AuthTest(ctx context.Context) (userID, botID string, err error)
}

// DeliveryService turns assembled briefs into DM messages and maintains the
// bot's Messages tab.
type DeliveryService struct {
	client Messenger
}

// NewDeliveryService creates the delivery service
func NewDeliveryService(client Messenger) *DeliveryService {
	return &DeliveryService{client: client}
}

// DeliverBrief renders the brief into Block Kit and posts it to the
// requester's DM channel.
func (s *DeliveryService) DeliverBrief(ctx context.Context, userID string, brief *models.BriefContent) error {
	channel, err := s.client.OpenConversation(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to open DM: %w", err)
	}
	if err := s.client.PostMessage(ctx, channel, brief.Title, blocks.BriefMessage(brief)); err != nil {
		return fmt.Errorf("failed to deliver brief: %w", err)
	}
	log.Printf("📨 [DELIVERY] Sent %s brief %q to %s", brief.DataSource, brief.Title, userID)
	return nil
}

// ShareCanvas posts the canvas-share confirmation (title, link, account
// highlights) to the requester's DM channel.
func (s *DeliveryService) ShareCanvas(ctx context.Context, userID string, brief *models.BriefContent) error {
	channel, err := s.client.OpenConversation(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to open DM: %w", err)
	}
	text := fmt.Sprintf("Sharing canvas: %s", brief.CanvasTitle)
	if err := s.client.PostMessage(ctx, channel, text, blocks.CanvasShareMessage(brief)); err != nil {
		return fmt.Errorf("failed to share canvas: %w", err)
	}
	log.Printf("📨 [DELIVERY] Shared canvas %s (%q) with %s", brief.CanvasID, brief.CanvasTitle, userID)
	return nil
}

// ClearMessages walks the user's DM history and deletes every bot-authored
// message. Returns the number deleted; individual delete failures are
// logged and skipped.
func (s *DeliveryService) ClearMessages(ctx context.Context, userID string) (int, error) {
	botUserID, botID, err := s.client.AuthTest(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to identify bot: %w", err)
	}
	channel, err := s.client.OpenConversation(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to open DM: %w", err)
	}

	deleted := 0
	cursor := ""
	for {
		messages, next, err := s.client.ConversationHistory(ctx, channel, cursor, 200)
		if err != nil {
			return deleted, fmt.Errorf("failed to read DM history: %w", err)
		}
		for _, msg := range messages {
			fromBot := (msg.BotID != "" && msg.BotID == botID) ||
				(msg.User != "" && msg.User == botUserID)
			if !fromBot || msg.TS == "" {
				continue
			}
			if err := s.client.DeleteMessage(ctx, channel, msg.TS); err != nil {
				log.Printf("⚠️  [DELIVERY] Failed to delete DM message %s: %v", msg.TS, err)
				continue
			}
			deleted++
		}
		if next == "" {
			break
		}
		cursor = next
	}
	return deleted, nil
}
