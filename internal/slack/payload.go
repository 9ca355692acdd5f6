package slack

import "encoding/json"

// InteractionPayload is the decoded body of an interactivity callback
// (block_actions or view_submission).
type InteractionPayload struct {
	Type      string `json:"type"`
	TriggerID string `json:"trigger_id"`
	User      struct {
		ID string `json:"id"`
	} `json:"user"`
	Actions []ActionInfo `json:"actions"`
	View    ViewInfo     `json:"view"`
}

// ActionInfo is one triggered block element
type ActionInfo struct {
	ActionID       string       `json:"action_id"`
	Value          string       `json:"value"`
	SelectedUser   string       `json:"selected_user"`
	SelectedOption *OptionValue `json:"selected_option"`
}

// OptionValue is a selected static-select or radio option
type OptionValue struct {
	Value string `json:"value"`
	Text  struct {
		Text string `json:"text"`
	} `json:"text"`
}

// ViewInfo carries the modal identity and its submitted state
type ViewInfo struct {
	ID              string    `json:"id"`
	Hash            string    `json:"hash"`
	CallbackID      string    `json:"callback_id"`
	PrivateMetadata string    `json:"private_metadata"`
	State           ViewState `json:"state"`
}

// ViewState holds submitted input values keyed by block id then action id
type ViewState struct {
	Values map[string]map[string]BlockValue `json:"values"`
}

// BlockValue is one submitted input element value
type BlockValue struct {
	Value          string       `json:"value"`
	SelectedUser   string       `json:"selected_user"`
	SelectedOption *OptionValue `json:"selected_option"`
}

// Input returns the submitted value for a block/action pair
func (v ViewState) Input(blockID, actionID string) (BlockValue, bool) {
	block, ok := v.Values[blockID]
	if !ok {
		return BlockValue{}, false
	}
	val, ok := block[actionID]
	return val, ok
}

// ParseInteractionPayload decodes the form-encoded payload field of an
// interactivity request.
func ParseInteractionPayload(raw string) (*InteractionPayload, error) {
	var payload InteractionPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
