package port

import (
	"context"
	"errors"
	"fmt"

	"adlift/internal/core/domain"
)

// ErrInvalidToken is returned by VerifyToken when the access token is
// expired or malformed. The whole batch is aborted on it since every
// campaign would fail identically.
var ErrInvalidToken = errors.New("invalid or expired access token")

// APIError is a structured Graph API error response.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("graph api error %d: %s", e.Code, e.Message)
}

// Credentials binds a Graph API client to one upload request.
type Credentials struct {
	AccountID   string
	AccessToken string
	PageID      string
}

// CampaignParams are the fields posted to /act_{account}/campaigns.
type CampaignParams struct {
	Name                string
	Objective           string
	Status              string
	BuyingType          string
	SpecialAdCategories []string
}

// AdSetParams are the fields posted to /act_{account}/adsets.
type AdSetParams struct {
	Name             string
	CampaignID       string
	DailyBudget      int64
	BillingEvent     string
	OptimizationGoal string
	BidStrategy      string
	DestinationType  string
	StartTime        string
	EndTime          string
	Targeting        domain.Targeting
}

// CreativeParams are the fields posted to /act_{account}/adcreatives.
// ObjectStoryID is "<page_id>_<post_id>".
type CreativeParams struct {
	Name             string
	ObjectStoryID    string
	PageID           string
	Message          string
	CallToActionType string
	Link             string
}

// AdParams are the fields posted to /act_{account}/ads.
type AdParams struct {
	Name       string
	AdSetID    string
	CreativeID string
	Status     string
}

// GraphAPI is the outbound port to the remote ad platform. Each creation
// call returns the new object's ID. Implementations are bound to one
// account and access token via GraphFactory.
type GraphAPI interface {
	// VerifyToken probes the token before any campaign is processed.
	VerifyToken(ctx context.Context) error
	CreateCampaign(ctx context.Context, p CampaignParams) (string, error)
	CreateAdSet(ctx context.Context, p AdSetParams) (string, error)
	// GetPost fetches a post by "<page_id>_<post_id>" to check it exists.
	GetPost(ctx context.Context, storyID string) error
	// ListPagePosts returns the IDs of a page's recent posts.
	ListPagePosts(ctx context.Context, pageID string, limit int) ([]string, error)
	CreateCreative(ctx context.Context, p CreativeParams) (string, error)
	CreateAd(ctx context.Context, p AdParams) (string, error)
	// AccountInsights returns aggregated spend for the bound account.
	AccountInsights(ctx context.Context, datePreset string) (*domain.Insights, error)
}

// GraphFactory creates GraphAPI clients bound to request credentials.
// The HTTP adapter implements it once at startup; the use case binds a
// client per upload since every request carries its own token.
type GraphFactory interface {
	Client(creds Credentials) GraphAPI
}
