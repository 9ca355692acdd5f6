// Package slack is a minimal Slack Web API client covering the calls this
// app makes: message posting, view management, canvas file lookups, and DM
// history maintenance.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://slack.com/api"

// File is the raw canvas file object as Slack returns it. Title/link fields
// vary by file age and sharing state; normalization happens in the canvas
// service.
type File struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Name            string `json:"name"`
	Permalink       string `json:"permalink"`
	PermalinkPublic string `json:"permalink_public"`
	URLPrivate      string `json:"url_private"`
}

// Message is one entry of a conversation history page
type Message struct {
	TS    string `json:"ts"`
	User  string `json:"user"`
	BotID string `json:"bot_id"`
	Text  string `json:"text"`
}

// Client talks to the Slack Web API with a bot token. All calls go through
// a shared rate limiter so bursts of interactivity stay inside Slack's
// per-method limits.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Slack Web API client
func NewClient(token string) *Client {
	return &Client{
		token:   token,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Every(time.Second), 5),
	}
}

// SetBaseURL overrides the API endpoint (tests)
func (c *Client) SetBaseURL(u string) { c.baseURL = strings.TrimRight(u, "/") }

// postJSON calls a JSON-accepting Web API method
func (c *Client) postJSON(ctx context.Context, method string, payload any) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", method, err)
	}
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/"+method, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+c.token)
	return c.do(req, method)
}

// postForm calls a form-encoded Web API method
func (c *Client) postForm(ctx context.Context, method string, values url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/"+method, strings.NewReader(values.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.token)
	return c.do(req, method)
}

func (c *Client) do(req *http.Request, method string) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", method, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d: %s", method, resp.StatusCode, string(body))
	}
	return body, nil
}

// checkEnvelope unmarshals a Web API response and rejects ok=false
func checkEnvelope(method string, body []byte, out any) error {
	var envelope struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	if !envelope.OK {
		return fmt.Errorf("%s failed: %s", method, envelope.Error)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", method, err)
		}
	}
	return nil
}

// PostMessage sends a message to a channel or DM. blocks may be nil for a
// plain text message.
func (c *Client) PostMessage(ctx context.Context, channel, text string, blocks []map[string]any) error {
	payload := map[string]any{
		"channel": channel,
		"text":    text,
	}
	if len(blocks) > 0 {
		payload["blocks"] = blocks
	}
	body, err := c.postJSON(ctx, "chat.postMessage", payload)
	if err != nil {
		return err
	}
	return checkEnvelope("chat.postMessage", body, nil)
}

// OpenView opens a modal against an interaction trigger id
func (c *Client) OpenView(ctx context.Context, triggerID string, view map[string]any) error {
	body, err := c.postJSON(ctx, "views.open", map[string]any{
		"trigger_id": triggerID,
		"view":       view,
	})
	if err != nil {
		return err
	}
	return checkEnvelope("views.open", body, nil)
}

// UpdateView replaces an open modal in place
func (c *Client) UpdateView(ctx context.Context, viewID, hash string, view map[string]any) error {
	payload := map[string]any{
		"view_id": viewID,
		"view":    view,
	}
	if hash != "" {
		payload["hash"] = hash
	}
	body, err := c.postJSON(ctx, "views.update", payload)
	if err != nil {
		return err
	}
	return checkEnvelope("views.update", body, nil)
}

// PublishView publishes a user's App Home view
func (c *Client) PublishView(ctx context.Context, userID string, view map[string]any) error {
	body, err := c.postJSON(ctx, "views.publish", map[string]any{
		"user_id": userID,
		"view":    view,
	})
	if err != nil {
		return err
	}
	return checkEnvelope("views.publish", body, nil)
}

// ListCanvasFiles lists up to 100 canvas files visible to the bot
func (c *Client) ListCanvasFiles(ctx context.Context) ([]File, error) {
	values := url.Values{}
	values.Set("types", "canvas")
	values.Set("limit", "100")
	body, err := c.postForm(ctx, "files.list", values)
	if err != nil {
		return nil, err
	}
	var result struct {
		Files []File `json:"files"`
	}
	if err := checkEnvelope("files.list", body, &result); err != nil {
		return nil, err
	}
	return result.Files, nil
}

// CanvasFileInfo fetches a single file's metadata
func (c *Client) CanvasFileInfo(ctx context.Context, fileID string) (*File, error) {
	values := url.Values{}
	values.Set("file", fileID)
	body, err := c.postForm(ctx, "files.info", values)
	if err != nil {
		return nil, err
	}
	var result struct {
		File File `json:"file"`
	}
	if err := checkEnvelope("files.info", body, &result); err != nil {
		return nil, err
	}
	return &result.File, nil
}

// OpenConversation opens (or resumes) a DM with a user and returns the
// channel id.
func (c *Client) OpenConversation(ctx context.Context, userID string) (string, error) {
	values := url.Values{}
	values.Set("users", userID)
	body, err := c.postForm(ctx, "conversations.open", values)
	if err != nil {
		return "", err
	}
	var result struct {
		Channel struct {
			ID string `json:"id"`
		} `json:"channel"`
	}
	if err := checkEnvelope("conversations.open", body, &result); err != nil {
		return "", err
	}
	return result.Channel.ID, nil
}

// ConversationHistory fetches one page of channel history. The returned
// cursor is empty on the last page.
func (c *Client) ConversationHistory(ctx context.Context, channel, cursor string, limit int) ([]Message, string, error) {
	values := url.Values{}
	values.Set("channel", channel)
	values.Set("limit", strconv.Itoa(limit))
	if cursor != "" {
		values.Set("cursor", cursor)
	}
	body, err := c.postForm(ctx, "conversations.history", values)
	if err != nil {
		return nil, "", err
	}
	var result struct {
		Messages         []Message `json:"messages"`
		ResponseMetadata struct {
			NextCursor string `json:"next_cursor"`
		} `json:"response_metadata"`
	}
	if err := checkEnvelope("conversations.history", body, &result); err != nil {
		return nil, "", err
	}
	return result.Messages, result.ResponseMetadata.NextCursor, nil
}

// DeleteMessage deletes a single message the bot authored
func (c *Client) DeleteMessage(ctx context.Context, channel, ts string) error {
	values := url.Values{}
	values.Set("channel", channel)
	values.Set("ts", ts)
	body, err := c.postForm(ctx, "chat.delete", values)
	if err != nil {
		return err
	}
	return checkEnvelope("chat.delete", body, nil)
}

// AuthTest returns the bot's own user id and bot id
func (c *Client) AuthTest(ctx context.Context) (userID, botID string, err error) {
	body, err := c.postForm(ctx, "auth.test", url.Values{})
	if err != nil {
		return "", "", err
	}
	var result struct {
		UserID string `json:"user_id"`
		BotID  string `json:"bot_id"`
	}
	if err := checkEnvelope("auth.test", body, &result); err != nil {
		return "", "", err
	}
	return result.UserID, result.BotID, nil
}
