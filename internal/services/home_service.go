package services

import (
	"context"

	"github.com/devingeorge/global-sales-insights/internal/blocks"
	"github.com/devingeorge/global-sales-insights/internal/store"
)

// ViewPublisher is the slice of the Slack client the home service needs
type ViewPublisher interface {
	PublishView(ctx context.Context, userID string, view map[string]any) error
}

// HomeService publishes the App Home view from a user's current preferences
type HomeService struct {
	client ViewPublisher
	prefs  *store.PreferenceStore
}

// NewHomeService creates the home publisher
func NewHomeService(client ViewPublisher, prefs *store.PreferenceStore) *HomeService {
	return &HomeService{client: client, prefs: prefs}
}

// Publish renders and publishes the user's App Home
func (s *HomeService) Publish(ctx context.Context, userID string) error {
	pref := s.prefs.Get(userID)
	return s.client.PublishView(ctx, userID, blocks.HomeView(pref))
}
