package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/devingeorge/global-sales-insights/internal/models"
	"github.com/devingeorge/global-sales-insights/internal/services"
	"github.com/devingeorge/global-sales-insights/internal/store"
)

// fakePublisher records views.publish calls
type fakePublisher struct {
	mu        sync.Mutex
	published []string
}

func (f *fakePublisher) PublishView(ctx context.Context, userID string, view map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, userID)
	return nil
}

func (f *fakePublisher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.published)
}

func newEventsApp(t *testing.T) (*fiber.App, *fakePublisher) {
	t.Helper()
	storage, err := store.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	prefs := store.NewPreferenceStore(storage, models.DataSourceMock, nil)
	publisher := &fakePublisher{}
	handler := NewEventsHandler(services.NewHomeService(publisher, prefs))

	app := fiber.New()
	app.Post("/slack/events", handler.Handle)
	return app, publisher
}

func TestEventsURLVerification(t *testing.T) {
	app, _ := newEventsApp(t)

	body := `{"type":"url_verification","challenge":"abc123"}`
	req := httptest.NewRequest("POST", "/slack/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	data, _ := io.ReadAll(resp.Body)
	var echoed struct {
		Challenge string `json:"challenge"`
	}
	if err := json.Unmarshal(data, &echoed); err != nil {
		t.Fatalf("challenge response is not JSON: %v", err)
	}
	if echoed.Challenge != "abc123" {
		t.Errorf("challenge not echoed, got %q", echoed.Challenge)
	}
}

func TestEventsAppHomeOpenedPublishes(t *testing.T) {
	app, publisher := newEventsApp(t)

	body := `{"type":"event_callback","event":{"type":"app_home_opened","user":"U123"}}`
	req := httptest.NewRequest("POST", "/slack/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected an immediate 200 ack, got %d", resp.StatusCode)
	}

	// Publishing happens after the ack; allow the goroutine to land
	deadline := time.Now().Add(2 * time.Second)
	for publisher.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if publisher.count() != 1 {
		t.Fatalf("expected one App Home publish, got %d", publisher.count())
	}
}

func TestEventsIgnoresUnknownTypes(t *testing.T) {
	app, publisher := newEventsApp(t)

	body := `{"type":"event_callback","event":{"type":"reaction_added","user":"U123"}}`
	req := httptest.NewRequest("POST", "/slack/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for an ignored event, got %d", resp.StatusCode)
	}
	time.Sleep(50 * time.Millisecond)
	if publisher.count() != 0 {
		t.Errorf("unexpected publish for an ignored event type")
	}
}

// panicPublisher blows up on every publish
type panicPublisher struct{}

func (panicPublisher) PublishView(ctx context.Context, userID string, view map[string]any) error {
	panic("publish exploded")
}

func TestEventsSurvivesPanicInPublish(t *testing.T) {
	storage, err := store.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	prefs := store.NewPreferenceStore(storage, models.DataSourceMock, nil)
	handler := NewEventsHandler(services.NewHomeService(panicPublisher{}, prefs))

	app := fiber.New()
	app.Post("/slack/events", handler.Handle)

	body := `{"type":"event_callback","event":{"type":"app_home_opened","user":"U123"}}`
	req := httptest.NewRequest("POST", "/slack/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	// Give the publish goroutine time to panic; the recover must contain it
	time.Sleep(50 * time.Millisecond)

	follow := httptest.NewRequest("POST", "/slack/events",
		strings.NewReader(`{"type":"url_verification","challenge":"still-alive"}`))
	follow.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(follow)
	if err != nil {
		t.Fatalf("follow-up request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("handler should keep serving after a publish panic, got %d", resp.StatusCode)
	}
}

func TestEventsRejectsMalformedBody(t *testing.T) {
	app, _ := newEventsApp(t)

	req := httptest.NewRequest("POST", "/slack/events", strings.NewReader("{broken"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}
