package services

import (
	"github.com/devingeorge/global-sales-insights/internal/blocks"
	"github.com/devingeorge/global-sales-insights/internal/models"
	"github.com/devingeorge/global-sales-insights/internal/slack"
)

// DefaultTemplateID is used when a submission names no template
const DefaultTemplateID = "executive_brief"

// ParseBriefSubmission validates the inputs-modal submission and produces a
// BriefRequest, or a FieldError keyed to the offending input block. The
// content source defaults to defaultSource when the metadata does not name
// a known one. The existing-document cross-field requirement (a canvas
// selected in preferences) is checked by the assembler against the store,
// not here.
func ParseBriefSubmission(view *slack.ViewInfo, requesterID string, defaultSource models.DataSource) (*models.BriefRequest, *FieldError) {
	meta := models.DecodeViewMetadata(view.PrivateMetadata)

	source, ok := models.ParseDataSource(meta.DataSource)
	if !ok {
		source = defaultSource
	}

	templateID := meta.TemplateID
	if templateID == "" {
		templateID = DefaultTemplateID
	}

	persona := meta.ViewAsUserID
	if val, ok := view.State.Input(blocks.BlockViewAs, blocks.ActionViewAs); ok && val.SelectedUser != "" {
		persona = val.SelectedUser
	}

	accountID := ""
	if val, ok := view.State.Input(blocks.BlockAccount, blocks.ActionAccount); ok && val.SelectedOption != nil {
		accountID = val.SelectedOption.Value
	}

	var briefSource models.BriefSource
	switch source {
	case models.DataSourceMock:
		if accountID == "" {
			return nil, &FieldError{BlockID: blocks.BlockAccount, Message: "Select an account to continue."}
		}
		briefSource = models.MockSource{AccountID: accountID}
	case models.DataSourceGenerated:
		if accountID == "" {
			return nil, &FieldError{BlockID: blocks.BlockAccount, Message: "Select an account to continue."}
		}
		briefSource = models.GeneratedSource{AccountID: accountID, PersonaUserID: persona}
	case models.DataSourceCanvas:
		briefSource = models.CanvasSource{AccountID: accountID}
	}

	return &models.BriefRequest{
		TemplateID:    templateID,
		Source:        briefSource,
		PersonaUserID: persona,
		RequesterID:   requesterID,
	}, nil
}

// SettingsSubmission is the validated result of the settings modal
type SettingsSubmission struct {
	DataSource  models.DataSource
	CanvasID    string
	CanvasTitle string
}

// ParseSettingsSubmission validates the settings modal state. The canvas
// selection is optional; the "none" placeholder option counts as no
// selection.
func ParseSettingsSubmission(view *slack.ViewInfo) (*SettingsSubmission, *FieldError) {
	val, ok := view.State.Input(blocks.BlockDataSource, blocks.ActionDataSource)
	if !ok || val.SelectedOption == nil {
		return nil, &FieldError{BlockID: blocks.BlockDataSource, Message: "Choose a data source."}
	}
	source, ok := models.ParseDataSource(val.SelectedOption.Value)
	if !ok {
		return nil, &FieldError{BlockID: blocks.BlockDataSource, Message: "Choose a data source."}
	}

	submission := &SettingsSubmission{DataSource: source}
	if canvas, ok := view.State.Input(blocks.BlockCanvas, blocks.ActionCanvas); ok && canvas.SelectedOption != nil {
		if canvas.SelectedOption.Value != blocks.CanvasNoneValue {
			submission.CanvasID = canvas.SelectedOption.Value
			submission.CanvasTitle = canvas.SelectedOption.Text.Text
		}
	}
	return submission, nil
}
