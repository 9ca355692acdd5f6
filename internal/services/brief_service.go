package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/devingeorge/global-sales-insights/internal/catalog"
	"github.com/devingeorge/global-sales-insights/internal/models"
	"github.com/devingeorge/global-sales-insights/internal/store"
)

// BriefService assembles a BriefContent from a validated request. It is
// stateless per invocation; the sticky state (content source, persona,
// canvas selection) lives entirely in the preference store.
type BriefService struct {
	prefs     *store.PreferenceStore
	narrative *NarrativeService
	canvases  *CanvasService
}

// NewBriefService creates the brief assembler
func NewBriefService(prefs *store.PreferenceStore, narrative *NarrativeService, canvases *CanvasService) *BriefService {
	return &BriefService{prefs: prefs, narrative: narrative, canvases: canvases}
}

// Build dispatches on the request's content source and produces the
// displayable document. The three source variants are mutually exclusive.
func (s *BriefService) Build(ctx context.Context, req *models.BriefRequest) (*models.BriefContent, error) {
	switch src := req.Source.(type) {
	case models.MockSource:
		return s.buildMock(req, src)
	case models.GeneratedSource:
		return s.buildGenerated(ctx, req, src)
	case models.CanvasSource:
		return s.buildCanvas(ctx, req, src)
	default:
		return nil, fmt.Errorf("unknown brief source %T", req.Source)
	}
}

func resolveAccount(accountID string) (*models.AccountRecord, error) {
	account, ok := catalog.FindByID(accountID)
	if !ok {
		return nil, &ValidationError{Message: "Account details are required to generate this brief."}
	}
	return account, nil
}

func (s *BriefService) buildMock(req *models.BriefRequest, src models.MockSource) (*models.BriefContent, error) {
	account, err := resolveAccount(src.AccountID)
	if err != nil {
		return nil, err
	}

	sections := buildMockSections(account)
	return &models.BriefContent{
		Title:      account.AccountName + " Executive Brief",
		Subtitle:   fmt.Sprintf("%s • %s AOV", account.CompanyName, account.AOV),
		TemplateID: req.TemplateID,
		DataSource: models.DataSourceMock,
		Sections:   sections,
		Markdown:   sectionsToMarkdown(sections, account.AccountName),
	}, nil
}

func (s *BriefService) buildGenerated(ctx context.Context, req *models.BriefRequest, src models.GeneratedSource) (*models.BriefContent, error) {
	account, err := resolveAccount(src.AccountID)
	if err != nil {
		return nil, err
	}

	narrative := s.narrative.Generate(ctx, account, src.PersonaUserID)
	return &models.BriefContent{
		Title:      account.AccountName + " Executive Brief",
		Subtitle:   account.CompanyName,
		TemplateID: req.TemplateID,
		DataSource: models.DataSourceGenerated,
		Sections: []models.BriefSection{
			{Title: "Summary", Body: []string{narrative}},
		},
		Markdown: narrative,
	}, nil
}

// buildCanvas produces a canvas-reference result for direct sharing rather
// than inline rendering. When send-time resolution fails, the last-known
// cached title is used with no link rather than surfacing the hiccup.
func (s *BriefService) buildCanvas(ctx context.Context, req *models.BriefRequest, src models.CanvasSource) (*models.BriefContent, error) {
	pref := s.prefs.Get(req.RequesterID)
	if pref.SelectedCanvasID == "" {
		return nil, ErrCanvasNotConfigured
	}

	title := pref.SelectedCanvasTitle
	link := ""
	if meta, err := s.canvases.GetByID(ctx, pref.SelectedCanvasID); err == nil && meta != nil {
		title = meta.Title
		link = meta.Permalink
	}
	if title == "" {
		title = untitledCanvas
	}

	summary := []string{fmt.Sprintf("Sharing canvas *%s*.", title)}
	if account, ok := catalog.FindByID(src.AccountID); ok {
		summary = append(summary,
			fmt.Sprintf("Account: *%s*", account.AccountName),
			fmt.Sprintf("Highlights: %s · %s · %s", account.Industry, account.Stage, account.Metrics.PipeCoverage),
		)
	}
	if link != "" {
		summary = append(summary, link)
	}

	return &models.BriefContent{
		Title:       title,
		Subtitle:    "Existing Canvas",
		TemplateID:  req.TemplateID,
		DataSource:  models.DataSourceCanvas,
		CanvasID:    pref.SelectedCanvasID,
		CanvasTitle: title,
		CanvasLink:  link,
		Sections: []models.BriefSection{
			{Title: "Canvas Share", Body: summary},
		},
	}, nil
}

// buildMockSections produces the six fixed sections of the scripted brief.
// Section order is significant: presentation order is the documented
// semantic order.
func buildMockSections(account *models.AccountRecord) []models.BriefSection {
	contacts := make([]string, 0, len(account.Contacts))
	for _, contact := range account.Contacts {
		line := fmt.Sprintf("• *%s* — %s", contact.Name, contact.Role)
		if contact.Notes != "" {
			line += fmt.Sprintf(" (%s)", contact.Notes)
		}
		contacts = append(contacts, line)
	}

	opportunities := make([]string, 0, len(account.Opportunities))
	for _, oppty := range account.Opportunities {
		opportunities = append(opportunities,
			fmt.Sprintf("• *%s* · %s\nNext Step: %s", oppty.Name, oppty.Value, oppty.NextStep))
	}

	return []models.BriefSection{
		{
			Title: "Customer Snapshot",
			Body:  []string{account.Summary},
			Fields: []models.BriefSectionField{
				{Label: "Industry", Value: account.Industry},
				{Label: "Stage", Value: account.Stage},
				{Label: "FY End", Value: account.FiscalYearEnd},
			},
		},
		{
			Title: "Carrier Relationship",
			Body:  []string{account.CarrierRelationship},
		},
		{
			Title: "Metrics Pulse",
			Fields: []models.BriefSectionField{
				{Label: "Pipe Coverage", Value: account.Metrics.PipeCoverage},
				{Label: "ACV YoY", Value: account.Metrics.ACVYoY},
				{Label: "Adoption", Value: account.Metrics.ProductAdoption},
				{Label: "Support", Value: account.Metrics.SupportHealth},
				{Label: "CSAT", Value: account.Metrics.CSAT},
			},
		},
		{
			Title: "Goals & Risks",
			Body: []string{
				"*Goals*\n• " + strings.Join(account.Goals, "\n• "),
				"*Risks*\n• " + strings.Join(account.Risks, "\n• "),
			},
		},
		{
			Title: "Key Contacts",
			Body:  contacts,
		},
		{
			Title: "Opportunities & Next Steps",
			Body:  opportunities,
		},
	}
}

// sectionsToMarkdown flattens the sections into one markdown document
func sectionsToMarkdown(sections []models.BriefSection, accountName string) string {
	lines := []string{fmt.Sprintf("# %s Executive Meeting Brief", accountName), ""}
	for _, section := range sections {
		lines = append(lines, "## "+section.Title)
		lines = append(lines, section.Body...)
		for _, field := range section.Fields {
			lines = append(lines, fmt.Sprintf("- **%s:** %s", field.Label, field.Value))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
