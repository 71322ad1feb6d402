package domain

import (
	"time"

	"github.com/google/uuid"
)

// LogStatus is the lifecycle state of a campaign log entry.
type LogStatus string

const (
	LogStatusPending LogStatus = "pending"
	LogStatusSuccess LogStatus = "success"
	LogStatusError   LogStatus = "error"
)

// CampaignLog records one campaign creation attempt. A pending entry is
// written before the remote chain starts and flipped to success or error
// after it finishes.
type CampaignLog struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Status       LogStatus   `json:"status"`
	AccountID    string      `json:"account_id"`
	UserID       string      `json:"user_id"`
	FacebookIDs  FacebookIDs `json:"facebook_ids"`
	ErrorMessage string      `json:"error_message,omitempty"`
	DailyBudget  int64       `json:"daily_budget"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
