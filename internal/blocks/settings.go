package blocks

import "github.com/devingeorge/global-sales-insights/internal/models"

// SettingsViewArgs carries the current preference state into the settings
// modal renderer.
type SettingsViewArgs struct {
	SelectedSource      models.DataSource
	SelectedCanvasID    string
	SelectedCanvasTitle string
	Canvases            []models.CanvasFileMeta
	StatusMessage       string
}

// CanvasOption renders a canvas as a select option
func CanvasOption(meta models.CanvasFileMeta) map[string]any {
	return Option(truncate(meta.Title, 75), meta.ID)
}

// SettingsView builds the settings modal. When the stored canvas selection
// no longer appears in the live list, a "(not found)" fallback option is
// prepended so the selection stays visible instead of silently dropping.
func SettingsView(args SettingsViewArgs) map[string]any {
	canvasOptions := make([]map[string]any, 0, len(args.Canvases)+1)
	var selectedCanvas map[string]any
	for _, canvas := range args.Canvases {
		opt := CanvasOption(canvas)
		if canvas.ID == args.SelectedCanvasID {
			selectedCanvas = opt
		}
		canvasOptions = append(canvasOptions, opt)
	}
	if args.SelectedCanvasID != "" && selectedCanvas == nil && args.SelectedCanvasTitle != "" {
		fallback := Option(truncate(args.SelectedCanvasTitle+" (not found)", 75), args.SelectedCanvasID)
		canvasOptions = append([]map[string]any{fallback}, canvasOptions...)
		selectedCanvas = fallback
	}

	var blockList []map[string]any
	if args.StatusMessage != "" {
		blockList = append(blockList, ContextText(args.StatusMessage))
	}

	blockList = append(blockList, MarkdownSection("Choose how the Executive Meeting Brief should source its content."))

	sourceOptions := make([]map[string]any, 0, 3)
	var selectedSourceOption map[string]any
	for _, source := range []models.DataSource{models.DataSourceMock, models.DataSourceGenerated, models.DataSourceCanvas} {
		opt := Option(source.Label(), string(source))
		if source == args.SelectedSource {
			selectedSourceOption = opt
		}
		sourceOptions = append(sourceOptions, opt)
	}
	blockList = append(blockList, map[string]any{
		"type":     "input",
		"block_id": BlockDataSource,
		"label":    PlainText("Data Source"),
		"element": map[string]any{
			"type":           "radio_buttons",
			"action_id":      ActionDataSource,
			"initial_option": selectedSourceOption,
			"options":        sourceOptions,
		},
	})

	hint := "Pick the Canvas you want sent instantly."
	placeholder := "Select a Canvas"
	if len(canvasOptions) == 0 {
		hint = "No canvases found. Create one in Slack first."
		placeholder = "No canvases available"
		canvasOptions = append(canvasOptions, Option("No canvases available", CanvasNoneValue))
	}
	canvasElement := map[string]any{
		"type":        "static_select",
		"action_id":   ActionCanvas,
		"placeholder": PlainText(placeholder),
		"options":     canvasOptions,
	}
	if selectedCanvas != nil {
		canvasElement["initial_option"] = selectedCanvas
	}
	blockList = append(blockList, map[string]any{
		"type":     "input",
		"block_id": BlockCanvas,
		"optional": true,
		"label":    PlainText("Slack Canvas (used when Existing Canvas is selected)"),
		"hint":     PlainText(hint),
		"element":  canvasElement,
	})

	blockList = append(blockList, map[string]any{
		"type": "actions",
		"elements": []map[string]any{
			{
				"type":      "button",
				"action_id": ActionSettingsClear,
				"text":      PlainText("Clear Messages Tab"),
				"style":     "primary",
				"confirm": map[string]any{
					"title":   PlainText("Clear Messages?"),
					"text":    Mrkdwn("This removes all Global Sales Insights messages from your DM thread."),
					"confirm": PlainText("Clear"),
					"deny":    PlainText("Cancel"),
				},
			},
			{
				"type":      "button",
				"action_id": ActionSettingsReset,
				"text":      PlainText("Reset Settings"),
				"style":     "danger",
				"confirm": map[string]any{
					"title":   PlainText("Reset settings?"),
					"text":    Mrkdwn("This will clear your preferred data source, Canvas selection, and persona. Continue?"),
					"confirm": PlainText("Reset"),
					"deny":    PlainText("Cancel"),
				},
			},
		},
	})

	return map[string]any{
		"type":        "modal",
		"callback_id": CallbackSettings,
		"title":       PlainText("GSI Settings"),
		"submit":      PlainText("Save"),
		"close":       PlainText("Cancel"),
		"blocks":      blockList,
	}
}
