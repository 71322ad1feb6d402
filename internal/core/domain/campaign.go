package domain

// CampaignInput is the canonical campaign record produced from one CSV row.
// Budgets are stored in integer minor currency units.
type CampaignInput struct {
	Name        string
	PageID      string
	PostID      string
	AccountID   string
	DailyBudget int64
	AgeMin      int
	AgeMax      int
	StartTime   string // ISO-8601 offset datetime
	EndTime     string // optional
	Status      string // ACTIVE or PAUSED, derived from the export

	Objective        string
	OptimizationGoal string
	BidStrategy      string
	BillingEvent     string
	DestinationType  string

	Targeting  Targeting
	AdCreative AdCreative

	// RawPageID and RawPostID keep the pre-normalization column values so
	// the validator can flag scientific-notation artifacts in the source
	// file even when reconstruction succeeded.
	RawPageID string
	RawPostID string

	// Extra preserves unmapped CSV columns under their original headers.
	Extra map[string]string
}

// RowError is a validation failure for one CSV row. Row is the 1-based
// line number in the uploaded file, including the header line.
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}
