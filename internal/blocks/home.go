package blocks

import "github.com/devingeorge/global-sales-insights/internal/models"

// HomeView builds the App Home view for a user's current preferences
func HomeView(pref models.UserPreference) map[string]any {
	intro := []map[string]any{
		MarkdownSection("*✨ Welcome to your Sales Intelligence Home ✨*\nThe Global Sales Insights app enables you to self-serve insights, intelligence, and data-driven decks on your accounts to drive pipeline & ACV."),
		{
			"type": "actions",
			"elements": []map[string]any{
				{
					"type":      "button",
					"text":      PlainText("Key Use Cases (4 min)"),
					"action_id": ActionKeyUseCases,
					"url":       "https://www.salesforce.com/resources/",
				},
			},
		},
		Divider(),
	}

	viewAsAccessory := map[string]any{
		"type":        "users_select",
		"placeholder": PlainText("View As"),
		"action_id":   ActionHomeViewAs,
	}
	if pref.ViewAsUserID != "" {
		viewAsAccessory["initial_user"] = pref.ViewAsUserID
	}
	viewAs := map[string]any{
		"type":      "section",
		"text":      Mrkdwn("*Action Hub*\nSelect the Sales Leader or AE/BDR persona you would like to view the data as."),
		"accessory": viewAsAccessory,
	}

	actionHubButtons := map[string]any{
		"type": "actions",
		"elements": []map[string]any{
			{
				"type":      "button",
				"text":      PlainText("Account Insights Menu"),
				"action_id": ActionAccountInsights,
				"value":     "disabled",
			},
			{
				"type":      "button",
				"text":      PlainText("Deck Automation (Midas)"),
				"action_id": ActionDeckAutomation,
				"value":     "disabled",
			},
			{
				"type":      "button",
				"text":      PlainText("Executive Meeting Brief"),
				"style":     "primary",
				"action_id": ActionExecutiveBrief,
			},
			{
				"type":      "button",
				"text":      PlainText("Release Notes"),
				"action_id": ActionReleaseNotes,
				"value":     "disabled",
			},
		},
	}

	actionHubDescriptions := MarkdownSection("*Account Insights Menu*: explore account intelligence (PTB, funding, technographics).\n*Deck Automation (Midas)*: generate data-driven presentations in Slack minutes.\n*Exec Meeting Brief*: automatically generate a meeting brief with customer insights.\n*Release Notes*: latest updates from the Sales Intelligence & GSI world.")

	settingsBlock := map[string]any{
		"type": "actions",
		"elements": []map[string]any{
			Button("Settings", ActionSettings),
		},
	}

	blockList := append(intro, viewAs, actionHubButtons, actionHubDescriptions, Divider(), settingsBlock)
	return map[string]any{
		"type":   "home",
		"blocks": blockList,
	}
}
