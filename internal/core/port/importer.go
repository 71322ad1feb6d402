package port

import (
	"context"

	"adlift/internal/core/domain"
)

// ImportReq is one CSV upload together with the credentials it should be
// processed under.
type ImportReq struct {
	FileName    string
	Data        []byte
	AccountID   string
	AccessToken string
	PageID      string
	UserID      string
}

// CampaignResult summarises the outcome of one campaign in a batch.
type CampaignResult struct {
	Name        string              `json:"name"`
	Status      string              `json:"status"` // success or error
	FacebookIDs *domain.FacebookIDs `json:"facebook_ids,omitempty"`
	Error       string              `json:"error,omitempty"`
	LogID       string              `json:"log_id,omitempty"`
	Warnings    []string            `json:"warnings,omitempty"`
}

// ImportResp is the aggregate batch response. Rows that failed validation
// appear only in ParseErrors and are never sent to the remote API.
type ImportResp struct {
	Results        []CampaignResult  `json:"results"`
	ParseErrors    []domain.RowError `json:"parseErrors,omitempty"`
	TotalProcessed int               `json:"totalProcessed"`
	SuccessCount   int               `json:"successCount"`
	ErrorCount     int               `json:"errorCount"`
}

// CampaignImporter is the inbound port exposed to the HTTP layer.
type CampaignImporter interface {
	// ImportCampaigns runs the full pipeline for one upload: decode,
	// normalize, map enums, validate, then create each surviving
	// campaign remotely in order. Input errors (empty or malformed
	// file, missing campaign name column, bad token) fail the whole
	// request; per-campaign errors do not.
	ImportCampaigns(ctx context.Context, req ImportReq) (*ImportResp, error)

	// ListLogs returns recent campaign logs with the given status.
	ListLogs(ctx context.Context, status domain.LogStatus, limit int) ([]domain.CampaignLog, error)

	// AccountInsights passes through aggregated spend for an account.
	AccountInsights(ctx context.Context, creds Credentials, datePreset string) (*domain.Insights, error)
}

// InputError marks a request-level failure that should map to a 400
// response: nothing was processed and no remote call was made.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string {
	return e.Msg
}
