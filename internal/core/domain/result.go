package domain

// CreationResult accumulates the remote IDs produced by the four-step
// creation chain. An unset downstream ID together with a non-empty Error
// tells at which step the chain stopped.
type CreationResult struct {
	CampaignID string `json:"campaign_id,omitempty"`
	AdSetID    string `json:"adset_id,omitempty"`
	CreativeID string `json:"creative_id,omitempty"`
	AdID       string `json:"ad_id,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Failed reports whether the chain stopped before creating the ad.
func (r CreationResult) Failed() bool {
	return r.Error != ""
}

// IDs returns the remote identifiers captured so far.
func (r CreationResult) IDs() FacebookIDs {
	return FacebookIDs{
		CampaignID: r.CampaignID,
		AdSetID:    r.AdSetID,
		CreativeID: r.CreativeID,
		AdID:       r.AdID,
	}
}

// FacebookIDs is the subset of a CreationResult persisted on a log entry.
type FacebookIDs struct {
	CampaignID string `json:"campaign_id,omitempty"`
	AdSetID    string `json:"adset_id,omitempty"`
	CreativeID string `json:"creative_id,omitempty"`
	AdID       string `json:"ad_id,omitempty"`
}

// Empty reports whether no remote object was created at all.
func (f FacebookIDs) Empty() bool {
	return f == FacebookIDs{}
}
