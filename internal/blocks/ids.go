package blocks

// Callback ids for modal submissions
const (
	CallbackSettings      = "settings_modal"
	CallbackBriefTemplate = "executive_brief_template"
	CallbackBriefInputs   = "executive_brief_inputs"
)

// Action ids for App Home and modal elements
const (
	ActionExecutiveBrief  = "action_executive_brief"
	ActionAccountInsights = "action_account_insights"
	ActionDeckAutomation  = "action_deck_automation"
	ActionReleaseNotes    = "action_release_notes"
	ActionSettings        = "action_settings"
	ActionHomeViewAs      = "home_view_as_select"
	ActionSettingsReset   = "settings_reset_action"
	ActionSettingsClear   = "settings_clear_messages"
	ActionKeyUseCases     = "key_use_cases"
)

// Block/action ids for modal inputs, shared with the submission parser
const (
	BlockViewAs      = "view_as"
	ActionViewAs     = "view_as_action"
	BlockSearchMode  = "search_mode"
	ActionSearchMode = "search_mode_action"
	BlockAccount     = "account_select"
	ActionAccount    = "account_action"
	BlockLocalAOV    = "local_aov"
	ActionLocalAOV   = "local_aov_action"
	BlockTemplate    = "template_select"
	ActionTemplate   = "template_action"
	BlockDataSource  = "data_source"
	ActionDataSource = "data_source_action"
	BlockCanvas      = "canvas_select"
	ActionCanvas     = "canvas_select_action"

	// Placeholder option value when no canvases exist
	CanvasNoneValue = "none"
)
