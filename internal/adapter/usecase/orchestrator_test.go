package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"adlift/internal/core/domain"
	"adlift/internal/core/port"
	"adlift/internal/core/port/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testInput() domain.CampaignInput {
	return domain.CampaignInput{
		Name:             "Test Campaign",
		PageID:           "104882000000000",
		PostID:           "998877665544332",
		DailyBudget:      100000,
		AgeMin:           20,
		AgeMax:           40,
		StartTime:        "2025-09-01T00:00:00+0700",
		Objective:        "OUTCOME_ENGAGEMENT",
		OptimizationGoal: "CONVERSATIONS",
		BidStrategy:      "LOWEST_COST_WITHOUT_CAP",
		BillingEvent:     "LINK_CLICKS",
		DestinationType:  "MESSENGER",
		Targeting: domain.Targeting{
			GeoLocations: domain.GeoLocations{Countries: []string{"VN"}},
			Genders:      []int{1, 2},
		},
	}
}

func TestOrchestratorFullChain(t *testing.T) {
	api := mocks.NewMockGraphAPI(t)
	api.EXPECT().CreateCampaign(mock.Anything, mock.MatchedBy(func(p port.CampaignParams) bool {
		return p.Status == "PAUSED" && p.BuyingType == "AUCTION" &&
			len(p.SpecialAdCategories) == 1 && p.SpecialAdCategories[0] == "NONE"
	})).Return("c1", nil)
	api.EXPECT().CreateAdSet(mock.Anything, mock.MatchedBy(func(p port.AdSetParams) bool {
		return p.CampaignID == "c1" && p.DailyBudget == 100000
	})).Return("as1", nil)
	api.EXPECT().GetPost(mock.Anything, "104882000000000_998877665544332").Return(nil)
	api.EXPECT().CreateCreative(mock.Anything, mock.MatchedBy(func(p port.CreativeParams) bool {
		return p.ObjectStoryID == "104882000000000_998877665544332"
	})).Return("cr1", nil)
	api.EXPECT().CreateAd(mock.Anything, mock.MatchedBy(func(p port.AdParams) bool {
		return p.AdSetID == "as1" && p.CreativeID == "cr1" && p.Status == "PAUSED"
	})).Return("ad1", nil)

	orc := NewOrchestrator(api, testLogger(), false)
	res := orc.Create(context.Background(), testInput())

	if res.Failed() {
		t.Fatalf("unexpected failure: %s", res.Error)
	}
	ids := res.IDs()
	if ids.CampaignID != "c1" || ids.AdSetID != "as1" || ids.CreativeID != "cr1" || ids.AdID != "ad1" {
		t.Errorf("ids = %+v", ids)
	}
}

// TestOrchestratorAdSetFailure: a mid-chain failure keeps the IDs created
// so far and stops. No delete call exists on the port, so nothing to
// assert beyond the absence of later create calls.
func TestOrchestratorAdSetFailure(t *testing.T) {
	api := mocks.NewMockGraphAPI(t)
	api.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c1", nil)
	api.EXPECT().CreateAdSet(mock.Anything, mock.Anything).
		Return("", &port.APIError{Code: 100, Message: "Invalid parameter"})

	orc := NewOrchestrator(api, testLogger(), false)
	res := orc.Create(context.Background(), testInput())

	if !res.Failed() {
		t.Fatal("expected failure")
	}
	if res.CampaignID != "c1" {
		t.Errorf("campaign id = %q, want c1", res.CampaignID)
	}
	if res.AdSetID != "" || res.CreativeID != "" || res.AdID != "" {
		t.Errorf("later ids should be empty: %+v", res)
	}
	if !strings.Contains(res.Error, "ad set creation failed") {
		t.Errorf("error = %q", res.Error)
	}
}

func TestOrchestratorBudgetClamped(t *testing.T) {
	in := testInput()
	in.DailyBudget = 10000

	api := mocks.NewMockGraphAPI(t)
	api.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c1", nil)
	api.EXPECT().CreateAdSet(mock.Anything, mock.MatchedBy(func(p port.AdSetParams) bool {
		return p.DailyBudget == 30000
	})).Return("as1", nil)
	api.EXPECT().GetPost(mock.Anything, mock.Anything).Return(nil)
	api.EXPECT().CreateCreative(mock.Anything, mock.Anything).Return("cr1", nil)
	api.EXPECT().CreateAd(mock.Anything, mock.Anything).Return("ad1", nil)

	orc := NewOrchestrator(api, testLogger(), false)
	if res := orc.Create(context.Background(), in); res.Failed() {
		t.Fatalf("unexpected failure: %s", res.Error)
	}
}

// TestOrchestratorPostIDPrefixMistake: the combined-ID paste mistake is
// rejected before any remote call.
func TestOrchestratorPostIDPrefixMistake(t *testing.T) {
	in := testInput()
	in.PostID = in.PageID + "_998877665544332"

	api := mocks.NewMockGraphAPI(t)
	orc := NewOrchestrator(api, testLogger(), false)
	res := orc.Create(context.Background(), in)

	if !res.Failed() {
		t.Fatal("expected failure")
	}
	if !strings.Contains(res.Error, "998877665544332") {
		t.Errorf("error should name the suggested post id: %q", res.Error)
	}
	if res.CampaignID != "" {
		t.Error("no remote objects should have been created")
	}
	api.AssertNotCalled(t, "CreateCampaign", mock.Anything, mock.Anything)
}

// TestOrchestratorPostCheckLenient: in lenient mode an unverifiable post
// does not stop the chain.
func TestOrchestratorPostCheckLenient(t *testing.T) {
	api := mocks.NewMockGraphAPI(t)
	api.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c1", nil)
	api.EXPECT().CreateAdSet(mock.Anything, mock.Anything).Return("as1", nil)
	api.EXPECT().GetPost(mock.Anything, mock.Anything).Return(errors.New("not found"))
	api.EXPECT().ListPagePosts(mock.Anything, "104882000000000", recentPostsLimit).
		Return([]string{"104882000000000_111", "104882000000000_222"}, nil)
	api.EXPECT().CreateCreative(mock.Anything, mock.Anything).Return("cr1", nil)
	api.EXPECT().CreateAd(mock.Anything, mock.Anything).Return("ad1", nil)

	orc := NewOrchestrator(api, testLogger(), false)
	if res := orc.Create(context.Background(), testInput()); res.Failed() {
		t.Fatalf("lenient mode aborted the chain: %s", res.Error)
	}
}

func TestOrchestratorPostCheckStrict(t *testing.T) {
	api := mocks.NewMockGraphAPI(t)
	api.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c1", nil)
	api.EXPECT().CreateAdSet(mock.Anything, mock.Anything).Return("as1", nil)
	api.EXPECT().GetPost(mock.Anything, mock.Anything).Return(errors.New("not found"))
	api.EXPECT().ListPagePosts(mock.Anything, "104882000000000", recentPostsLimit).
		Return([]string{"104882000000000_111"}, nil)

	orc := NewOrchestrator(api, testLogger(), true)
	res := orc.Create(context.Background(), testInput())

	if !res.Failed() {
		t.Fatal("strict mode should abort on a confirmed absence")
	}
	if !strings.Contains(res.Error, "not found among the page's") {
		t.Errorf("error = %q", res.Error)
	}
	if res.AdSetID != "as1" {
		t.Errorf("ad set id = %q, want as1 kept in the partial result", res.AdSetID)
	}
}

// TestOrchestratorPostCheckBothFail: when both checks error out the post
// is assumed valid even in strict mode.
func TestOrchestratorPostCheckBothFail(t *testing.T) {
	api := mocks.NewMockGraphAPI(t)
	api.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c1", nil)
	api.EXPECT().CreateAdSet(mock.Anything, mock.Anything).Return("as1", nil)
	api.EXPECT().GetPost(mock.Anything, mock.Anything).Return(errors.New("permission denied"))
	api.EXPECT().ListPagePosts(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("permission denied"))
	api.EXPECT().CreateCreative(mock.Anything, mock.Anything).Return("cr1", nil)
	api.EXPECT().CreateAd(mock.Anything, mock.Anything).Return("ad1", nil)

	orc := NewOrchestrator(api, testLogger(), true)
	if res := orc.Create(context.Background(), testInput()); res.Failed() {
		t.Fatalf("unverifiable post aborted the chain: %s", res.Error)
	}
}

func TestOrchestratorCreativeDiagnostics(t *testing.T) {
	api := mocks.NewMockGraphAPI(t)
	api.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return("c1", nil)
	api.EXPECT().CreateAdSet(mock.Anything, mock.Anything).Return("as1", nil)
	api.EXPECT().GetPost(mock.Anything, mock.Anything).Return(nil)
	api.EXPECT().CreateCreative(mock.Anything, mock.Anything).
		Return("", &port.APIError{Code: 100, Message: "Invalid parameter"})

	orc := NewOrchestrator(api, testLogger(), false)
	res := orc.Create(context.Background(), testInput())

	if !res.Failed() {
		t.Fatal("expected failure")
	}
	for _, hint := range []string{"object_story_id", "possible causes", "page permissions"} {
		if !strings.Contains(res.Error, hint) {
			t.Errorf("error missing %q: %s", hint, res.Error)
		}
	}
}
