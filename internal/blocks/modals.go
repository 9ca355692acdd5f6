package blocks

import (
	"fmt"

	"github.com/devingeorge/global-sales-insights/internal/catalog"
	"github.com/devingeorge/global-sales-insights/internal/models"
)

// TemplateModal is the first step of the brief flow: template selection.
// The user's sticky data source and persona travel forward in metadata.
func TemplateModal(pref models.UserPreference) map[string]any {
	meta := models.ViewMetadata{
		DataSource:   string(pref.DataSource),
		ViewAsUserID: pref.ViewAsUserID,
	}

	blockList := []map[string]any{
		MarkdownSection("In just a few minutes, I can compile a Canvas with hundreds of customer-facing datapoints, graphs, and insights to help you drive more effective (& efficient) meetings."),
	}
	if pref.DataSource == models.DataSourceCanvas {
		blockList = append(blockList, ContextText("Existing-canvas mode shares the Canvas you selected in Settings once you complete the steps below."))
	}

	execOption := Option("Executive Brief", "executive_brief")
	blockList = append(blockList, map[string]any{
		"type":     "input",
		"block_id": BlockTemplate,
		"label":    PlainText("Template"),
		"element": map[string]any{
			"type":      "static_select",
			"action_id": ActionTemplate,
			"options": []map[string]any{
				execOption,
				OptionWithDescription("ELT Brief (coming soon)", "elt_brief", "Coming soon"),
			},
			"initial_option": execOption,
		},
	})

	return map[string]any{
		"type":             "modal",
		"callback_id":      CallbackBriefTemplate,
		"title":            PlainText("GSI - Executive Brief"),
		"submit":           PlainText("Next"),
		"close":            PlainText("Cancel"),
		"private_metadata": meta.Encode(),
		"blocks":           blockList,
	}
}

// InputsModal is the second step: persona and account inputs. The metadata
// carries the resolved data source and template forward to submission.
func InputsModal(meta models.ViewMetadata) map[string]any {
	templateLabel := meta.TemplateID
	if meta.TemplateID == "executive_brief" {
		templateLabel = "Executive Brief"
	}

	viewAsElement := map[string]any{
		"type":      "users_select",
		"action_id": ActionViewAs,
	}
	if meta.ViewAsUserID != "" {
		viewAsElement["initial_user"] = meta.ViewAsUserID
	}

	accountOption := Option("Account Name", "account")
	blockList := []map[string]any{
		MarkdownSection(fmt.Sprintf("*Template:* %s\n*Data Source:* %s", templateLabel, dataSourceLabel(meta.DataSource))),
		{
			"type":     "input",
			"block_id": BlockViewAs,
			"label":    PlainText("View As"),
			"element":  viewAsElement,
		},
		{
			"type":     "input",
			"block_id": BlockSearchMode,
			"label":    PlainText("Search Using"),
			"element": map[string]any{
				"type":           "radio_buttons",
				"action_id":      ActionSearchMode,
				"initial_option": accountOption,
				"options": []map[string]any{
					accountOption,
					Option("Company Name", "company"),
				},
			},
		},
		{
			"type":     "input",
			"block_id": BlockAccount,
			"label":    PlainText("Account"),
			"element": map[string]any{
				"type":      "static_select",
				"action_id": ActionAccount,
				"options":   AccountOptions(),
			},
		},
		{
			"type":     "input",
			"block_id": BlockLocalAOV,
			"label":    PlainText("Local Name & AOV"),
			"element": map[string]any{
				"type":      "static_select",
				"action_id": ActionLocalAOV,
				"options":   AOVOptions(),
			},
		},
	}

	return map[string]any{
		"type":             "modal",
		"callback_id":      CallbackBriefInputs,
		"title":            PlainText("GSI - Executive Brief"),
		"submit":           PlainText("Generate"),
		"close":            PlainText("Back"),
		"private_metadata": meta.Encode(),
		"blocks":           blockList,
	}
}

func dataSourceLabel(raw string) string {
	switch models.DataSource(raw) {
	case models.DataSourceCanvas:
		return "Existing Canvas"
	case models.DataSourceGenerated:
		return "LLM Generated"
	default:
		return "Mocked Data"
	}
}

// AccountOptions renders the catalog as select options
func AccountOptions() []map[string]any {
	accounts := catalog.Accounts()
	options := make([]map[string]any, 0, len(accounts))
	for _, account := range accounts {
		options = append(options, OptionWithDescription(
			account.AccountName,
			account.ID,
			fmt.Sprintf("%s • %s AOV", account.CompanyName, account.AOV),
		))
	}
	return options
}

// AOVOptions renders the catalog's local name and AOV pairs
func AOVOptions() []map[string]any {
	accounts := catalog.Accounts()
	options := make([]map[string]any, 0, len(accounts))
	for _, account := range accounts {
		options = append(options, Option(
			fmt.Sprintf("%s (%s)", account.LocalName, account.AOV),
			account.ID,
		))
	}
	return options
}
