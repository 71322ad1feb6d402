package port

import (
	"context"

	"github.com/google/uuid"

	"adlift/internal/core/domain"
)

// LogUpdate carries the terminal state written to a pending log entry.
type LogUpdate struct {
	Status       domain.LogStatus
	FacebookIDs  domain.FacebookIDs
	ErrorMessage string
}

// LogRepository is the outbound port for campaign creation logs. The core
// only depends on this minimal contract; writes are best-effort from the
// batch runner's point of view.
type LogRepository interface {
	// CreateLog persists a new entry and returns its ID.
	CreateLog(ctx context.Context, log domain.CampaignLog) (uuid.UUID, error)
	// UpdateLog applies upd to an entry, reporting whether it existed.
	UpdateLog(ctx context.Context, id uuid.UUID, upd LogUpdate) (bool, error)
	// GetLogsByStatus returns up to limit entries, newest first.
	GetLogsByStatus(ctx context.Context, status domain.LogStatus, limit int) ([]domain.CampaignLog, error)
}
