package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/devingeorge/global-sales-insights/internal/models"
)

// NarrativeService generates the LLM-written brief narrative. When no API
// key is configured, or the single generation attempt fails for any reason,
// it falls back to a scripted narrative built from the account record, so
// Generate always succeeds from the caller's point of view.
type NarrativeService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewNarrativeService creates the narrative generator. An empty apiKey
// disables the external call entirely.
func NewNarrativeService(apiKey, model, baseURL string) *NarrativeService {
	return &NarrativeService{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Generate returns a markdown narrative for the account, tailored to the
// persona when one is set. One external attempt, no retries: any failure
// goes straight to the deterministic fallback so the user never waits on a
// second round trip.
func (s *NarrativeService) Generate(ctx context.Context, account *models.AccountRecord, personaUserID string) string {
	if s.apiKey == "" {
		return fallbackNarrative(account)
	}

	text, err := s.complete(ctx, buildPrompt(account, personaUserID))
	if err != nil {
		log.Printf("⚠️  [LLM] Falling back to scripted content: %v", err)
		return fallbackNarrative(account)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		log.Printf("⚠️  [LLM] Empty completion, falling back to scripted content")
		return fallbackNarrative(account)
	}
	return text
}

// complete performs a single non-streaming chat completion
func (s *NarrativeService) complete(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]any{
		"model": s.model,
		"messages": []map[string]any{
			{"role": "user", "content": prompt},
		},
		"stream": false,
	}
	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/chat/completions", bytes.NewBuffer(reqJSON))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return result.Choices[0].Message.Content, nil
}

// buildPrompt serializes the account record into a single deterministic
// prompt with the persona hint.
func buildPrompt(account *models.AccountRecord, personaUserID string) string {
	persona := "Sales Leader"
	if personaUserID != "" {
		persona = fmt.Sprintf("<@%s>", personaUserID)
	}
	details, _ := json.Marshal(account)
	return fmt.Sprintf(
		"You are a Salesforce Global Sales Insights assistant. Draft a concise executive meeting brief in markdown with headings for: Customer Snapshot, Carrier Relationship, Metrics Pulse, Goals & Risks, Opportunities & Asks. Reference the following details: %s. Tailor the tone for the persona %s and include clear bullet points.",
		details, persona,
	)
}

// fallbackNarrative synthesizes a scripted narrative directly from the
// account record. Same section structure as the generated path, narrower in
// detail.
func fallbackNarrative(account *models.AccountRecord) string {
	var b strings.Builder
	b.WriteString("## Customer Snapshot\n")
	b.WriteString(account.Summary)
	b.WriteString("\n\n## Carrier Relationship\n")
	b.WriteString(account.CarrierRelationship)
	b.WriteString("\n\n## Metrics Pulse\n")
	fmt.Fprintf(&b, "- Pipe Coverage: %s\n", account.Metrics.PipeCoverage)
	fmt.Fprintf(&b, "- ACV YoY: %s\n", account.Metrics.ACVYoY)
	fmt.Fprintf(&b, "- Adoption: %s\n", account.Metrics.ProductAdoption)
	b.WriteString("\n## Goals & Risks\n")
	for _, goal := range account.Goals {
		fmt.Fprintf(&b, "- Goal: %s\n", goal)
	}
	for _, risk := range account.Risks {
		fmt.Fprintf(&b, "- Risk: %s\n", risk)
	}
	return strings.TrimRight(b.String(), "\n")
}
