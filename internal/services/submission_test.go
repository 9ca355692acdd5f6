package services

import (
	"testing"

	"github.com/devingeorge/global-sales-insights/internal/blocks"
	"github.com/devingeorge/global-sales-insights/internal/models"
	"github.com/devingeorge/global-sales-insights/internal/slack"
)

// inputsView builds a submitted brief-inputs view from metadata plus state
func inputsView(meta models.ViewMetadata, values map[string]map[string]slack.BlockValue) *slack.ViewInfo {
	return &slack.ViewInfo{
		CallbackID:      blocks.CallbackBriefInputs,
		PrivateMetadata: meta.Encode(),
		State:           slack.ViewState{Values: values},
	}
}

func selectedOption(value, label string) slack.BlockValue {
	opt := &slack.OptionValue{Value: value}
	opt.Text.Text = label
	return slack.BlockValue{SelectedOption: opt}
}

func TestParseBriefSubmissionMock(t *testing.T) {
	view := inputsView(
		models.ViewMetadata{DataSource: "mock", TemplateID: "executive_brief"},
		map[string]map[string]slack.BlockValue{
			blocks.BlockAccount: {blocks.ActionAccount: selectedOption("acc-acme", "Acme Retail")},
		},
	)

	req, ferr := ParseBriefSubmission(view, "U123", models.DataSourceMock)
	if ferr != nil {
		t.Fatalf("unexpected field error: %v", ferr)
	}
	src, ok := req.Source.(models.MockSource)
	if !ok {
		t.Fatalf("expected MockSource, got %T", req.Source)
	}
	if src.AccountID != "acc-acme" {
		t.Errorf("unexpected account id %q", src.AccountID)
	}
	if req.RequesterID != "U123" || req.TemplateID != "executive_brief" {
		t.Errorf("unexpected request %+v", req)
	}
}

func TestParseBriefSubmissionMissingAccount(t *testing.T) {
	view := inputsView(models.ViewMetadata{DataSource: "mock"}, nil)

	_, ferr := ParseBriefSubmission(view, "U123", models.DataSourceMock)
	if ferr == nil {
		t.Fatal("expected a field error for the missing account")
	}
	if ferr.BlockID != blocks.BlockAccount {
		t.Errorf("field error should point at the account block, got %q", ferr.BlockID)
	}
}

func TestParseBriefSubmissionGeneratedCarriesPersona(t *testing.T) {
	// The modal's view_as picker overrides the metadata persona
	view := inputsView(
		models.ViewMetadata{DataSource: "generated", ViewAsUserID: "U888"},
		map[string]map[string]slack.BlockValue{
			blocks.BlockAccount: {blocks.ActionAccount: selectedOption("acc-supercell", "Supercell")},
			blocks.BlockViewAs:  {blocks.ActionViewAs: {SelectedUser: "U999"}},
		},
	)

	req, ferr := ParseBriefSubmission(view, "U123", models.DataSourceMock)
	if ferr != nil {
		t.Fatalf("unexpected field error: %v", ferr)
	}
	src, ok := req.Source.(models.GeneratedSource)
	if !ok {
		t.Fatalf("expected GeneratedSource, got %T", req.Source)
	}
	if src.PersonaUserID != "U999" {
		t.Errorf("picker persona should win, got %q", src.PersonaUserID)
	}
}

func TestParseBriefSubmissionPersonaFromMetadata(t *testing.T) {
	view := inputsView(
		models.ViewMetadata{DataSource: "generated", ViewAsUserID: "U888"},
		map[string]map[string]slack.BlockValue{
			blocks.BlockAccount: {blocks.ActionAccount: selectedOption("acc-supercell", "Supercell")},
		},
	)

	req, ferr := ParseBriefSubmission(view, "U123", models.DataSourceMock)
	if ferr != nil {
		t.Fatalf("unexpected field error: %v", ferr)
	}
	if req.PersonaUserID != "U888" {
		t.Errorf("expected metadata persona, got %q", req.PersonaUserID)
	}
}

func TestParseBriefSubmissionCanvasAllowsNoAccount(t *testing.T) {
	view := inputsView(models.ViewMetadata{DataSource: "existing-document"}, nil)

	req, ferr := ParseBriefSubmission(view, "U123", models.DataSourceMock)
	if ferr != nil {
		t.Fatalf("unexpected field error: %v", ferr)
	}
	if _, ok := req.Source.(models.CanvasSource); !ok {
		t.Fatalf("expected CanvasSource, got %T", req.Source)
	}
}

func TestParseBriefSubmissionUnknownSourceFallsBack(t *testing.T) {
	view := inputsView(
		models.ViewMetadata{DataSource: "bogus"},
		map[string]map[string]slack.BlockValue{
			blocks.BlockAccount: {blocks.ActionAccount: selectedOption("acc-acme", "Acme Retail")},
		},
	)

	req, ferr := ParseBriefSubmission(view, "U123", models.DataSourceMock)
	if ferr != nil {
		t.Fatalf("unexpected field error: %v", ferr)
	}
	if _, ok := req.Source.(models.MockSource); !ok {
		t.Fatalf("unknown metadata source should fall back to the default, got %T", req.Source)
	}
	if req.TemplateID != DefaultTemplateID {
		t.Errorf("expected default template id, got %q", req.TemplateID)
	}
}

func TestParseSettingsSubmission(t *testing.T) {
	view := &slack.ViewInfo{
		CallbackID: blocks.CallbackSettings,
		State: slack.ViewState{Values: map[string]map[string]slack.BlockValue{
			blocks.BlockDataSource: {blocks.ActionDataSource: selectedOption("existing-document", "Existing Canvas (instant send)")},
			blocks.BlockCanvas:     {blocks.ActionCanvas: selectedOption("F1", "Q3 Account Plan")},
		}},
	}

	sub, ferr := ParseSettingsSubmission(view)
	if ferr != nil {
		t.Fatalf("unexpected field error: %v", ferr)
	}
	if sub.DataSource != models.DataSourceCanvas {
		t.Errorf("unexpected data source %q", sub.DataSource)
	}
	if sub.CanvasID != "F1" || sub.CanvasTitle != "Q3 Account Plan" {
		t.Errorf("canvas selection not parsed: %+v", sub)
	}
}

func TestParseSettingsSubmissionNonePlaceholder(t *testing.T) {
	view := &slack.ViewInfo{
		State: slack.ViewState{Values: map[string]map[string]slack.BlockValue{
			blocks.BlockDataSource: {blocks.ActionDataSource: selectedOption("mock", "Mocked Data (demo dataset)")},
			blocks.BlockCanvas:     {blocks.ActionCanvas: selectedOption(blocks.CanvasNoneValue, "No canvases available")},
		}},
	}

	sub, ferr := ParseSettingsSubmission(view)
	if ferr != nil {
		t.Fatalf("unexpected field error: %v", ferr)
	}
	if sub.CanvasID != "" || sub.CanvasTitle != "" {
		t.Errorf("the none placeholder must count as no selection: %+v", sub)
	}
}

func TestParseSettingsSubmissionRequiresDataSource(t *testing.T) {
	view := &slack.ViewInfo{State: slack.ViewState{Values: map[string]map[string]slack.BlockValue{}}}

	_, ferr := ParseSettingsSubmission(view)
	if ferr == nil {
		t.Fatal("expected a field error for the missing data source")
	}
	if ferr.BlockID != blocks.BlockDataSource {
		t.Errorf("field error should point at the data source block, got %q", ferr.BlockID)
	}
}
