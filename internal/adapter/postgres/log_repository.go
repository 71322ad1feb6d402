package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adlift/internal/core/domain"
	"adlift/internal/core/port"
)

// LogRepository implements port.LogRepository using pgxpool for
// PostgreSQL.
type LogRepository struct {
	pool *pgxpool.Pool
}

// NewLogRepository returns a new repository instance.
func NewLogRepository(pool *pgxpool.Pool) *LogRepository {
	return &LogRepository{pool: pool}
}

var _ port.LogRepository = (*LogRepository)(nil)

// CreateLog inserts a new entry and returns its generated ID.
func (r *LogRepository) CreateLog(ctx context.Context, log domain.CampaignLog) (uuid.UUID, error) {
	query := `INSERT INTO campaign_logs
    (name, status, account_id, user_id, campaign_id, adset_id, creative_id, ad_id,
     error_message, daily_budget, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,now(),now())
RETURNING id`
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query,
		log.Name, log.Status, log.AccountID, log.UserID,
		log.FacebookIDs.CampaignID, log.FacebookIDs.AdSetID,
		log.FacebookIDs.CreativeID, log.FacebookIDs.AdID,
		log.ErrorMessage, log.DailyBudget,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// UpdateLog writes the terminal state of an entry. It reports false when
// no entry with that ID exists.
func (r *LogRepository) UpdateLog(ctx context.Context, id uuid.UUID, upd port.LogUpdate) (bool, error) {
	query := `UPDATE campaign_logs
SET status = $2,
    campaign_id = $3,
    adset_id = $4,
    creative_id = $5,
    ad_id = $6,
    error_message = $7,
    updated_at = now()
WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id,
		upd.Status,
		upd.FacebookIDs.CampaignID, upd.FacebookIDs.AdSetID,
		upd.FacebookIDs.CreativeID, upd.FacebookIDs.AdID,
		upd.ErrorMessage,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// GetLogsByStatus returns up to limit entries with the given status,
// newest first.
func (r *LogRepository) GetLogsByStatus(ctx context.Context, status domain.LogStatus, limit int) ([]domain.CampaignLog, error) {
	query := `SELECT id, name, status, account_id, user_id,
       campaign_id, adset_id, creative_id, ad_id,
       error_message, daily_budget, created_at, updated_at
FROM campaign_logs
WHERE status = $1
ORDER BY created_at DESC
LIMIT $2`
	rows, err := r.pool.Query(ctx, query, status, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignLog, error) {
		var l domain.CampaignLog
		err := row.Scan(
			&l.ID,
			&l.Name,
			&l.Status,
			&l.AccountID,
			&l.UserID,
			&l.FacebookIDs.CampaignID,
			&l.FacebookIDs.AdSetID,
			&l.FacebookIDs.CreativeID,
			&l.FacebookIDs.AdID,
			&l.ErrorMessage,
			&l.DailyBudget,
			&l.CreatedAt,
			&l.UpdatedAt,
		)
		return l, err
	})
}
