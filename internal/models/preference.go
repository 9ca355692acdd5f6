package models

import "time"

// UserPreference holds the sticky per-user settings. One record per Slack
// user id; persisted in the preference snapshot.
type UserPreference struct {
	UserID              string     `json:"userId"`
	DataSource          DataSource `json:"dataSource"`
	ViewAsUserID        string     `json:"viewAsUserId,omitempty"`
	SelectedCanvasID    string     `json:"selectedCanvasId,omitempty"`
	SelectedCanvasTitle string     `json:"selectedCanvasTitle,omitempty"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// PreferencePatch is a partial update to a UserPreference. Nil fields are
// left untouched; a pointer to the zero value clears the field.
type PreferencePatch struct {
	DataSource          *DataSource
	ViewAsUserID        *string
	SelectedCanvasID    *string
	SelectedCanvasTitle *string
}
