package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Slack rejects replayed requests older than five minutes; so do we
const signatureMaxAge = 5 * time.Minute

// SlackSignature verifies the v0 request signature Slack attaches to every
// events and interactivity callback. Requests with a missing, stale, or
// mismatched signature are rejected before any handler runs.
func SlackSignature(signingSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		timestamp := c.Get("X-Slack-Request-Timestamp")
		signature := c.Get("X-Slack-Signature")
		if timestamp == "" || signature == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing signature"})
		}

		ts, err := strconv.ParseInt(timestamp, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid timestamp"})
		}
		age := time.Since(time.Unix(ts, 0))
		if age > signatureMaxAge || age < -signatureMaxAge {
			log.Printf("🚫 [SIGNATURE] Rejected request with stale timestamp %s", timestamp)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "stale request"})
		}

		mac := hmac.New(sha256.New, []byte(signingSecret))
		mac.Write([]byte("v0:" + timestamp + ":"))
		mac.Write(c.Body())
		expected := "v0=" + hex.EncodeToString(mac.Sum(nil))

		if !hmac.Equal([]byte(expected), []byte(signature)) {
			log.Printf("🚫 [SIGNATURE] Invalid request signature")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid signature"})
		}
		return c.Next()
	}
}
