// Package blocks builds the Block Kit JSON for the App Home, the modals,
// and the delivered brief messages. Blocks are plain maps, serialized as-is
// into Web API payloads.
package blocks

import "unicode/utf8"

// PlainText is a plain_text text object
func PlainText(text string) map[string]any {
	return map[string]any{"type": "plain_text", "text": text}
}

// Mrkdwn is a mrkdwn text object
func Mrkdwn(text string) map[string]any {
	return map[string]any{"type": "mrkdwn", "text": text}
}

// MarkdownSection is a section block with mrkdwn text
func MarkdownSection(text string) map[string]any {
	return map[string]any{"type": "section", "text": Mrkdwn(text)}
}

// Divider is a divider block
func Divider() map[string]any {
	return map[string]any{"type": "divider"}
}

// ContextText is a context block with a single mrkdwn element
func ContextText(text string) map[string]any {
	return map[string]any{
		"type":     "context",
		"elements": []map[string]any{Mrkdwn(text)},
	}
}

// Option is a plain-text select/radio option
func Option(text, value string) map[string]any {
	return map[string]any{"text": PlainText(text), "value": value}
}

// OptionWithDescription is an option carrying a secondary description line
func OptionWithDescription(text, value, description string) map[string]any {
	opt := Option(text, value)
	opt["description"] = PlainText(description)
	return opt
}

// Button is a button element
func Button(text, actionID string) map[string]any {
	return map[string]any{
		"type":      "button",
		"text":      PlainText(text),
		"action_id": actionID,
	}
}

// truncate keeps option labels inside Slack's 75-character limit. Cuts on
// a rune boundary so multi-byte titles stay valid UTF-8.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
