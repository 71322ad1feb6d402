package domain

// AdCreative holds the creative fields carried by a CSV row. The creative
// itself is built remotely from an existing page post (object_story_id),
// these fields only refine it.
type AdCreative struct {
	Message          string `json:"message,omitempty"`
	CallToActionType string `json:"call_to_action_type,omitempty"`
	Link             string `json:"link,omitempty"`
}
