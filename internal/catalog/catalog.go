// Package catalog holds the static demo account dataset. The catalog is
// compiled in, loaded once, and never mutated at runtime.
package catalog

import "github.com/devingeorge/global-sales-insights/internal/models"

var accounts = []models.AccountRecord{
	{
		ID:            "acc-supercell",
		AccountName:   "Supercell Games - NA",
		CompanyName:   "Supercell",
		LocalName:     "North America Gaming",
		AOV:           "$2.4M",
		Industry:      "Media & Entertainment",
		HQ:            "Helsinki, FI",
		Stage:         "Strategic",
		FiscalYearEnd: "December",
		Summary:       "Supercell is expanding its go-to-market motion for Clash of Clans esports partnerships and needs deeper visibility into carrier-backed subscription bundles.",
		CarrierRelationship: "Carrier partner: BlueSky Wireless since 2020. Joint offers across prepaid gaming bundles with 120k monthly active subscribers. Renewals due in Q2 FY26.",
		Metrics: models.AccountMetrics{
			PipeCoverage:    "3.4x coverage vs. FY25 plan",
			ACVYoY:          "+29% YoY ACV growth",
			ProductAdoption: "89% adoption of Data Cloud + Tableau Pulse pilot",
			SupportHealth:   "3 Sev-2 cases open (all mitigated)",
			CSAT:            "4.7 / 5 CSAT trailing 3 months",
		},
		Goals: []string{
			"Launch gamer loyalty program with carrier bundle in Q1 FY25",
			"Consolidate analytics stack onto Customer 360 + Slack workflows",
		},
		Risks: []string{
			"Gaming ad market volatility could compress marketing budgets",
			"Carrier negotiating for larger MDF offsets if MAU goals missed",
		},
		Contacts: []models.AccountContact{
			{Name: "Priya Narayanan", Role: "VP, Global Partnerships", Notes: "Executive sponsor for carrier initiative"},
			{Name: "Evan Chang", Role: "Director, Growth Operations", Notes: "Key power user of Slack automation"},
		},
		Opportunities: []models.AccountOpportunity{
			{Name: "Slack Workflow Automation Expansion", Value: "$1.2M", NextStep: "Exec alignment workshop on Dec 5"},
			{Name: "Carrier Loyalty Blueprint", Value: "$650k", NextStep: "Finalize value hypothesis deck"},
		},
	},
	{
		ID:            "acc-northwind",
		AccountName:   "Northwind Logistics",
		CompanyName:   "Northwind Group",
		LocalName:     "Supply Chain HQ",
		AOV:           "$1.1M",
		Industry:      "Transportation & Logistics",
		HQ:            "Austin, TX",
		Stage:         "Growth",
		FiscalYearEnd: "March",
		Summary:       "Modernizing dispatch operations and predictive maintenance workflows with real-time telematics streaming into Slack + Customer 360. Needs field-ready executive briefings.",
		CarrierRelationship: "Carrier partner: Velocity Mobile since 2018. Co-developing edge IoT roadmap with 5G fleet coverage expansion.",
		Metrics: models.AccountMetrics{
			PipeCoverage:    "2.1x coverage vs. FY25 plan",
			ACVYoY:          "+18% YoY ACV growth",
			ProductAdoption: "56% adoption of Field Service Lightning mobile app",
			SupportHealth:   "One Sev-1 outage in Oct (resolved)",
			CSAT:            "4.2 / 5 partner CSAT",
		},
		Goals: []string{
			"Reduce truck roll costs by 9% via automation",
			"Launch carrier-backed predictive maintenance offers in EU region",
		},
		Risks: []string{
			"IT talent gap slowing mobile rollouts",
			"Macro freight softness reduces discretionary spend",
		},
		Contacts: []models.AccountContact{
			{Name: "Sandra Martinez", Role: "COO", Notes: "Executive sponsor for modernization program"},
			{Name: "Marcus Lin", Role: "Sr. Director, Fleet Ops", Notes: "Voice of the user for dispatch team"},
		},
		Opportunities: []models.AccountOpportunity{
			{Name: "IoT Dispatch Automation", Value: "$450k", NextStep: "Joint demo with Velocity Mobile"},
			{Name: "Field Service Lightning Seats", Value: "$300k", NextStep: "Finalize legal and security review"},
		},
	},
	{
		ID:            "acc-contoso",
		AccountName:   "Contoso Retail APAC",
		CompanyName:   "Contoso Retail",
		LocalName:     "APAC HQ",
		AOV:           "$3.8M",
		Industry:      "Retail & Consumer Goods",
		HQ:            "Singapore",
		Stage:         "Priority Global",
		FiscalYearEnd: "June",
		Summary:       "Contoso is consolidating loyalty, service, and marketing data to create a cross-carrier shopper program across APAC mega cities.",
		CarrierRelationship: "Carrier partner: Horizon Mobile across SG/HK/AU. Running co-funded media pilots tied to loyalty tiers.",
		Metrics: models.AccountMetrics{
			PipeCoverage:    "4.0x coverage vs. FY25 plan",
			ACVYoY:          "+41% YoY ACV growth",
			ProductAdoption: "74% adoption of Einstein Copilot for Retail",
			SupportHealth:   "Zero Sev-1 incidents in past 6 months",
			CSAT:            "4.9 / 5 executive CSAT",
		},
		Goals: []string{
			"Stand up unified loyalty dashboard for 12 markets",
			"Expand carrier bundles to include same-day delivery perks",
		},
		Risks: []string{
			"Regulatory complexity for cross-border data residency",
			"Carrier procurement renegotiation could delay timeline",
		},
		Contacts: []models.AccountContact{
			{Name: "Aiko Watanabe", Role: "Chief Customer Officer", Notes: "Primary ELT contact"},
			{Name: "Hassan Qureshi", Role: "VP, Digital Stores", Notes: "Owns carrier co-marketing programs"},
		},
		Opportunities: []models.AccountOpportunity{
			{Name: "Einstein Copilot Expansion", Value: "$2.1M", NextStep: "Schedule innovation day with ELT"},
			{Name: "Horizon Joint GTM Pack", Value: "$900k", NextStep: "Align on funding split"},
		},
	},
	{
		ID:            "acc-acme",
		AccountName:   "Acme Retail",
		CompanyName:   "Acme Retail Company",
		LocalName:     "Acme Retail Company",
		AOV:           "$1.2M",
		Industry:      "Retail & Consumer Goods",
		HQ:            "Chicago, IL",
		Stage:         "Expansion",
		FiscalYearEnd: "January",
		Summary:       "Acme Retail is rolling out a unified storefront experience and needs coordinated carrier-backed promotions across flagship outlets.",
		CarrierRelationship: "Carrier partner: Summit Mobile across US & Canada. Joint executive sponsor program focused on connected store experiences.",
		Metrics: models.AccountMetrics{
			PipeCoverage:    "2.6x coverage vs. FY25 plan",
			ACVYoY:          "+15% YoY ACV growth",
			ProductAdoption: "61% adoption of Slack Retail Execution kits",
			SupportHealth:   "No Sev-1s in the last 120 days",
			CSAT:            "4.5 / 5 retail exec CSAT",
		},
		Goals: []string{
			"Launch carrier-backed connected store pilots in five marquee cities",
			"Consolidate merchandising signals into Customer 360 + Slack alerts",
		},
		Risks: []string{
			"In-store ops talent gap slowing rollout of new workflows",
			"Carrier incentives tied to Q3 sell-through thresholds",
		},
		Contacts: []models.AccountContact{
			{Name: "Julia Martinez", Role: "SVP, Stores", Notes: "Executive sponsor for connected store motion"},
			{Name: "Kenji Arai", Role: "Director, Retail Technology", Notes: "Owns Slack workflow expansion"},
		},
		Opportunities: []models.AccountOpportunity{
			{Name: "Retail Execution Automation", Value: "$1.2M", NextStep: "Schedule executive blueprint review"},
			{Name: "Connected Store Analytics", Value: "$450k", NextStep: "Align on carrier-funded pilot budget"},
		},
	},
}

// Accounts returns the catalog in its fixed presentation order
func Accounts() []models.AccountRecord {
	return accounts
}

// FindByID looks up an account by its identifier
func FindByID(id string) (*models.AccountRecord, bool) {
	for i := range accounts {
		if accounts[i].ID == id {
			return &accounts[i], true
		}
	}
	return nil, false
}
