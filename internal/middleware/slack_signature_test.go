package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

const testSecret = "8f742231b10e8888abcd99yyyzzz85a5"

func signedApp() *fiber.App {
	app := fiber.New()
	app.Post("/slack/events", SlackSignature(testSecret), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func sign(secret, timestamp, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "v0:%s:%s", timestamp, body)
	return "v0=" + hex.EncodeToString(mac.Sum(nil))
}

func TestValidSignaturePasses(t *testing.T) {
	app := signedApp()
	body := `{"type":"url_verification","challenge":"abc"}`
	ts := strconv.FormatInt(time.Now().Unix(), 10)

	req := httptest.NewRequest("POST", "/slack/events", strings.NewReader(body))
	req.Header.Set("X-Slack-Request-Timestamp", ts)
	req.Header.Set("X-Slack-Signature", sign(testSecret, ts, body))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestMissingHeadersRejected(t *testing.T) {
	app := signedApp()
	req := httptest.NewRequest("POST", "/slack/events", strings.NewReader("payload=x"))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}

func TestStaleTimestampRejected(t *testing.T) {
	app := signedApp()
	body := "payload=x"
	ts := strconv.FormatInt(time.Now().Add(-10*time.Minute).Unix(), 10)

	req := httptest.NewRequest("POST", "/slack/events", strings.NewReader(body))
	req.Header.Set("X-Slack-Request-Timestamp", ts)
	req.Header.Set("X-Slack-Signature", sign(testSecret, ts, body))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("a correctly signed but stale request must be rejected, got %d", resp.StatusCode)
	}
}

func TestTamperedBodyRejected(t *testing.T) {
	app := signedApp()
	ts := strconv.FormatInt(time.Now().Unix(), 10)

	req := httptest.NewRequest("POST", "/slack/events", strings.NewReader("payload=tampered"))
	req.Header.Set("X-Slack-Request-Timestamp", ts)
	req.Header.Set("X-Slack-Signature", sign(testSecret, ts, "payload=original"))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected 401 for a tampered body, got %d", resp.StatusCode)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	app := signedApp()
	body := "payload=x"
	ts := strconv.FormatInt(time.Now().Unix(), 10)

	req := httptest.NewRequest("POST", "/slack/events", strings.NewReader(body))
	req.Header.Set("X-Slack-Request-Timestamp", ts)
	req.Header.Set("X-Slack-Signature", sign("some-other-secret", ts, body))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected 401 for a foreign signature, got %d", resp.StatusCode)
	}
}
