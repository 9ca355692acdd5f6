package services

import (
	"context"
	"errors"
	"testing"

	"github.com/devingeorge/global-sales-insights/internal/models"
	"github.com/devingeorge/global-sales-insights/internal/slack"
)

// fakeMessenger scripts the Messenger surface and records posted messages
// and deletions.
type fakeMessenger struct {
	channel string
	history [][]slack.Message
	botUser string
	botID   string

	posted    []string
	deleted   []string
	deleteErr map[string]error
}

func (f *fakeMessenger) OpenConversation(ctx context.Context, userID string) (string, error) {
	if f.channel == "" {
		return "", errors.New("channel_not_found")
	}
	return f.channel, nil
}

func (f *fakeMessenger) PostMessage(ctx context.Context, channel, text string, blocks []map[string]any) error {
	f.posted = append(f.posted, text)
	return nil
}

func (f *fakeMessenger) ConversationHistory(ctx context.Context, channel, cursor string, limit int) ([]slack.Message, string, error) {
	if len(f.history) == 0 {
		return nil, "", nil
	}
	page := f.history[0]
	f.history = f.history[1:]
	next := ""
	if len(f.history) > 0 {
		next = "cursor-next"
	}
	return page, next, nil
}

func (f *fakeMessenger) DeleteMessage(ctx context.Context, channel, ts string) error {
	if err := f.deleteErr[ts]; err != nil {
		return err
	}
	f.deleted = append(f.deleted, ts)
	return nil
}

func (f *fakeMessenger) AuthTest(ctx context.Context) (string, string, error) {
	return f.botUser, f.botID, nil
}

func TestDeliverBriefPostsToDM(t *testing.T) {
	messenger := &fakeMessenger{channel: "D123"}
	svc := NewDeliveryService(messenger)

	brief := &models.BriefContent{
		Title:      "Acme Retail Executive Brief",
		Subtitle:   "Acme Retail Company • $1.2M AOV",
		DataSource: models.DataSourceMock,
		Sections:   []models.BriefSection{{Title: "Customer Snapshot", Body: []string{"Summary."}}},
	}
	if err := svc.DeliverBrief(context.Background(), "U123", brief); err != nil {
		t.Fatalf("delivery failed: %v", err)
	}
	if len(messenger.posted) != 1 || messenger.posted[0] != "Acme Retail Executive Brief" {
		t.Errorf("unexpected posted messages: %v", messenger.posted)
	}
}

func TestDeliverBriefFailsWhenDMCannotOpen(t *testing.T) {
	svc := NewDeliveryService(&fakeMessenger{})
	err := svc.DeliverBrief(context.Background(), "U123", &models.BriefContent{Title: "x"})
	if err == nil {
		t.Fatal("expected an error when the DM cannot be opened")
	}
}

func TestClearMessagesDeletesOnlyBotMessages(t *testing.T) {
	messenger := &fakeMessenger{
		channel: "D123",
		botUser: "UBOT",
		botID:   "B1",
		history: [][]slack.Message{
			{
				{TS: "1", BotID: "B1", Text: "brief"},
				{TS: "2", User: "U123", Text: "hi from the human"},
				{TS: "3", User: "UBOT", Text: "status"},
			},
			{
				{TS: "4", BotID: "B2", Text: "some other app"},
				{TS: "5", BotID: "B1", Text: "older brief"},
			},
		},
	}
	svc := NewDeliveryService(messenger)

	deleted, err := svc.ClearMessages(context.Background(), "U123")
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if deleted != 3 {
		t.Errorf("expected 3 deletions, got %d", deleted)
	}
	want := []string{"1", "3", "5"}
	if len(messenger.deleted) != len(want) {
		t.Fatalf("deleted %v, want %v", messenger.deleted, want)
	}
	for i, ts := range want {
		if messenger.deleted[i] != ts {
			t.Errorf("deletion %d: got %s, want %s", i, messenger.deleted[i], ts)
		}
	}
}

func TestClearMessagesSkipsFailedDeletes(t *testing.T) {
	messenger := &fakeMessenger{
		channel: "D123",
		botID:   "B1",
		history: [][]slack.Message{
			{
				{TS: "1", BotID: "B1"},
				{TS: "2", BotID: "B1"},
			},
		},
		deleteErr: map[string]error{"1": errors.New("cant_delete_message")},
	}
	svc := NewDeliveryService(messenger)

	deleted, err := svc.ClearMessages(context.Background(), "U123")
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected the surviving delete to count, got %d", deleted)
	}
}
