package models

import "encoding/json"

// ViewMetadata travels through the two-step brief modal flow in the view's
// private_metadata field.
type ViewMetadata struct {
	DataSource   string `json:"dataSource"`
	TemplateID   string `json:"templateId,omitempty"`
	ViewAsUserID string `json:"viewAsUserId,omitempty"`
}

// Encode serializes the metadata for embedding in a view
func (m ViewMetadata) Encode() string {
	data, _ := json.Marshal(m)
	return string(data)
}

// DecodeViewMetadata tolerates empty or malformed metadata and returns the
// zero value in that case.
func DecodeViewMetadata(raw string) ViewMetadata {
	var meta ViewMetadata
	if raw != "" {
		_ = json.Unmarshal([]byte(raw), &meta)
	}
	return meta
}
