package models

// AccountMetrics is the fixed set of named metric strings for an account
type AccountMetrics struct {
	PipeCoverage    string `json:"pipeCoverage"`
	ACVYoY          string `json:"acvYoY"`
	ProductAdoption string `json:"productAdoption"`
	SupportHealth   string `json:"supportHealth"`
	CSAT            string `json:"csat"`
}

// AccountContact is a named contact on an account
type AccountContact struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Notes string `json:"notes,omitempty"`
}

// AccountOpportunity is an open opportunity with its next step
type AccountOpportunity struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	NextStep string `json:"nextStep"`
}

// AccountRecord is one account in the static demo catalog. Immutable after
// load; the JSON tags feed the narrative prompt serialization.
type AccountRecord struct {
	ID                  string               `json:"id"`
	AccountName         string               `json:"accountName"`
	CompanyName         string               `json:"companyName"`
	LocalName           string               `json:"localName"`
	AOV                 string               `json:"aov"`
	Industry            string               `json:"industry"`
	HQ                  string               `json:"hq"`
	Stage               string               `json:"stage"`
	FiscalYearEnd       string               `json:"fiscalYearEnd"`
	Summary             string               `json:"summary"`
	CarrierRelationship string               `json:"carrierRelationship"`
	Metrics             AccountMetrics       `json:"metrics"`
	Goals               []string             `json:"goals"`
	Risks               []string             `json:"risks"`
	Contacts            []AccountContact     `json:"contacts"`
	Opportunities       []AccountOpportunity `json:"opportunities"`
}
