package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"adlift/internal/core/csvmap"
	"adlift/internal/core/domain"
	"adlift/internal/core/port"
)

// recentPostsLimit caps the fallback page-post listing during the post
// existence check.
const recentPostsLimit = 100

// Orchestrator runs the strictly sequential creation chain for one
// campaign record: Campaign, AdSet, post check, Creative, Ad. Each step
// needs the previous step's ID, so there is no parallelism within a
// campaign. A failed step is terminal for the campaign; already-created
// objects are left in place (paused) since no compensating delete is
// performed.
type Orchestrator struct {
	api             port.GraphAPI
	logger          *slog.Logger
	strictPostCheck bool
}

// NewOrchestrator builds an orchestrator bound to one Graph API client.
func NewOrchestrator(api port.GraphAPI, logger *slog.Logger, strictPostCheck bool) *Orchestrator {
	return &Orchestrator{api: api, logger: logger, strictPostCheck: strictPostCheck}
}

// Create performs the four-step creation chain and returns the
// accumulated result. It never returns an error: a failure is reported
// through the result's Error field so one bad campaign cannot abort a
// batch.
func (o *Orchestrator) Create(ctx context.Context, in domain.CampaignInput) domain.CreationResult {
	var res domain.CreationResult

	// Catch the "<page_id>_<post_id>" paste mistake before anything is
	// created remotely. The corrected value must be confirmed by the
	// user, not guessed, so this is an error rather than a silent fix.
	if suggestion, ok := csvmap.SuggestPostID(in.PageID, in.PostID); ok {
		res.Error = fmt.Sprintf(
			"post ID %q appears to include the page ID %q as a prefix; if the post ID is actually %q, fix the column and re-upload",
			in.PostID, in.PageID, suggestion)
		return res
	}

	campaignID, err := o.api.CreateCampaign(ctx, port.CampaignParams{
		Name:      in.Name,
		Objective: in.Objective,
		// Campaigns are always created paused; the platform must never
		// start spending on an import.
		Status:              "PAUSED",
		BuyingType:          "AUCTION",
		SpecialAdCategories: []string{"NONE"},
	})
	if err != nil {
		res.Error = fmt.Sprintf("campaign creation failed: %v", err)
		return res
	}
	res.CampaignID = campaignID

	budget := in.DailyBudget
	if budget < csvmap.MinDailyBudget {
		budget = csvmap.MinDailyBudget
	}
	adsetID, err := o.api.CreateAdSet(ctx, port.AdSetParams{
		Name:             in.Name,
		CampaignID:       campaignID,
		DailyBudget:      budget,
		BillingEvent:     in.BillingEvent,
		OptimizationGoal: in.OptimizationGoal,
		BidStrategy:      in.BidStrategy,
		DestinationType:  in.DestinationType,
		StartTime:        in.StartTime,
		EndTime:          in.EndTime,
		Targeting:        in.Targeting,
	})
	if err != nil {
		res.Error = fmt.Sprintf("ad set creation failed: %v", err)
		return res
	}
	res.AdSetID = adsetID

	if err = o.validatePost(ctx, in); err != nil {
		res.Error = err.Error()
		return res
	}

	creativeID, err := o.api.CreateCreative(ctx, port.CreativeParams{
		Name:             in.Name,
		ObjectStoryID:    in.PageID + "_" + in.PostID,
		PageID:           in.PageID,
		Message:          in.AdCreative.Message,
		CallToActionType: in.AdCreative.CallToActionType,
		Link:             in.AdCreative.Link,
	})
	if err != nil {
		res.Error = creativeDiagnostics(err, in)
		return res
	}
	res.CreativeID = creativeID

	adID, err := o.api.CreateAd(ctx, port.AdParams{
		Name:       in.Name,
		AdSetID:    adsetID,
		CreativeID: creativeID,
		Status:     "PAUSED",
	})
	if err != nil {
		res.Error = fmt.Sprintf("ad creation failed: %v", err)
		return res
	}
	res.AdID = adID
	return res
}

// validatePost is a best-effort existence check for the target post. The
// remote checks are unreliable (permissions, API version differences),
// so in the default lenient mode a failed check only logs a warning and
// the chain proceeds: creative creation is the authoritative validation
// anyway. In strict mode a confirmed absence aborts the campaign.
func (o *Orchestrator) validatePost(ctx context.Context, in domain.CampaignInput) error {
	storyID := in.PageID + "_" + in.PostID
	if err := o.api.GetPost(ctx, storyID); err == nil {
		return nil
	}

	posts, err := o.api.ListPagePosts(ctx, in.PageID, recentPostsLimit)
	if err == nil {
		for _, id := range posts {
			if id == storyID || id == in.PostID {
				return nil
			}
		}
		if o.strictPostCheck {
			return fmt.Errorf("post %s was not found among the page's %d most recent posts", storyID, recentPostsLimit)
		}
		o.logger.Warn("post not found among recent page posts, proceeding anyway",
			slog.String("story_id", storyID))
		return nil
	}

	// both checks failed; assume the post exists
	o.logger.Warn("post existence could not be verified, assuming valid",
		slog.String("story_id", storyID), slog.Any("error", err))
	return nil
}

// creativeDiagnostics wraps a creative-creation failure with the usual
// suspects. This is the step most likely to fail from data-entry
// mistakes, and the raw remote error ("Invalid parameter") is unhelpful.
func creativeDiagnostics(err error, in domain.CampaignInput) string {
	return fmt.Sprintf(
		"creative creation failed for object_story_id %s_%s: %v; possible causes: "+
			"the post was deleted, the page ID is wrong, the post is private or restricted, "+
			"the access token lacks page permissions, or the post ID is malformed",
		in.PageID, in.PostID, err)
}
