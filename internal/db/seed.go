package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaign log entries for local development, covering
// all three statuses so the logs endpoint has data to show.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	statuses := []string{"success", "success", "success", "error", "pending"}
	for i := 1; i <= 25; i++ {
		status := statuses[r.Intn(len(statuses))]
		name := fmt.Sprintf("Demo Campaign %d", i)
		accountID := fmt.Sprintf("10%013d", r.Intn(1000))
		userID := fmt.Sprintf("user-%d", r.Intn(5)+1)
		dailyBudget := int64(30000 + r.Intn(20)*10000)

		var campaignID, adsetID, creativeID, adID, errMsg string
		switch status {
		case "success":
			campaignID = fmt.Sprintf("238%012d", r.Intn(1_000_000))
			adsetID = fmt.Sprintf("238%012d", r.Intn(1_000_000))
			creativeID = fmt.Sprintf("120%012d", r.Intn(1_000_000))
			adID = fmt.Sprintf("120%012d", r.Intn(1_000_000))
		case "error":
			campaignID = fmt.Sprintf("238%012d", r.Intn(1_000_000))
			errMsg = "ad set creation failed: graph api error 100: Invalid parameter"
		}

		_, err := db.Exec(ctx, `INSERT INTO campaign_logs
    (name, status, account_id, user_id, campaign_id, adset_id, creative_id, ad_id,
     error_message, daily_budget, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,now(),now()) ON CONFLICT DO NOTHING`,
			name, status, accountID, userID, campaignID, adsetID, creativeID, adID, errMsg, dailyBudget)
		if err != nil {
			return err
		}
	}
	return nil
}
