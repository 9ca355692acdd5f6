package models

// DataSource selects how a brief's body is produced
type DataSource string

const (
	DataSourceMock      DataSource = "mock"
	DataSourceGenerated DataSource = "generated"
	DataSourceCanvas    DataSource = "existing-document"
)

// ParseDataSource maps a raw option value onto a known DataSource
func ParseDataSource(raw string) (DataSource, bool) {
	switch DataSource(raw) {
	case DataSourceMock, DataSourceGenerated, DataSourceCanvas:
		return DataSource(raw), true
	}
	return "", false
}

// Label returns the human-readable option label shown in settings
func (d DataSource) Label() string {
	switch d {
	case DataSourceMock:
		return "Mocked Data (demo dataset)"
	case DataSourceGenerated:
		return "LLM Generated (OpenAI)"
	case DataSourceCanvas:
		return "Existing Canvas (instant send)"
	}
	return string(d)
}

// BriefSource is the closed set of content sources a brief request can carry.
// Each variant holds only the fields its assembly branch needs.
type BriefSource interface {
	Kind() DataSource
}

// MockSource assembles a brief from the static demo dataset
type MockSource struct {
	AccountID string
}

func (MockSource) Kind() DataSource { return DataSourceMock }

// GeneratedSource assembles a brief from an LLM narrative
type GeneratedSource struct {
	AccountID     string
	PersonaUserID string
}

func (GeneratedSource) Kind() DataSource { return DataSourceGenerated }

// CanvasSource shares a previously selected canvas instead of generating
// content. The canvas id itself lives in the requester's preferences, not
// here. AccountID is optional and only enriches the confirmation summary.
type CanvasSource struct {
	AccountID string
}

func (CanvasSource) Kind() DataSource { return DataSourceCanvas }

// BriefRequest is the validated submission for one brief
type BriefRequest struct {
	TemplateID    string
	Source        BriefSource
	PersonaUserID string
	RequesterID   string
}

// BriefSectionField is a labeled value inside a section
type BriefSectionField struct {
	Label string
	Value string
}

// BriefSection is one ordered block of a brief. A section may carry freeform
// body lines, labeled fields, or both.
type BriefSection struct {
	Title  string
	Body   []string
	Fields []BriefSectionField
}

// BriefContent is the normalized output document
type BriefContent struct {
	Title      string
	Subtitle   string
	TemplateID string
	DataSource DataSource
	Sections   []BriefSection
	Markdown   string

	// Set on the existing-document branch
	CanvasID    string
	CanvasTitle string
	CanvasLink  string
}
