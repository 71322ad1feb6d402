package domain

// Insights is an aggregated spend report for one ad account. Values are
// kept as the strings the remote API returns; this service only passes
// them through to the caller.
type Insights struct {
	Spend       string `json:"spend"`
	Impressions string `json:"impressions"`
	Clicks      string `json:"clicks"`
	DateStart   string `json:"date_start"`
	DateStop    string `json:"date_stop"`
}
