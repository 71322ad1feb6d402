package facebook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"adlift/internal/config/configs"
	"adlift/internal/core/domain"
	"adlift/internal/core/port"
)

func testClient(t *testing.T, handler http.HandlerFunc) port.GraphAPI {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	f := NewFactory(configs.Facebook{
		BaseURL:    srv.URL,
		APIVersion: "v23.0",
		Timeout:    5 * time.Second,
	})
	return f.Client(port.Credentials{AccountID: "123456789012345", AccessToken: "test-token"})
}

func TestCreateCampaignForm(t *testing.T) {
	var gotPath string
	var gotForm url.Values
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		gotForm = r.PostForm
		json.NewEncoder(w).Encode(map[string]string{"id": "238000000000001"})
	})

	id, err := api.CreateCampaign(context.Background(), port.CampaignParams{
		Name:                "Test",
		Objective:           "OUTCOME_ENGAGEMENT",
		Status:              "PAUSED",
		BuyingType:          "AUCTION",
		SpecialAdCategories: []string{"NONE"},
	})
	if err != nil {
		t.Fatalf("CreateCampaign: %v", err)
	}
	if id != "238000000000001" {
		t.Errorf("id = %q", id)
	}
	if gotPath != "/v23.0/act_123456789012345/campaigns" {
		t.Errorf("path = %q", gotPath)
	}
	if gotForm.Get("access_token") != "test-token" {
		t.Error("access token missing from form")
	}
	if gotForm.Get("special_ad_categories") != `["NONE"]` {
		t.Errorf("special_ad_categories = %q", gotForm.Get("special_ad_categories"))
	}
	if gotForm.Get("status") != "PAUSED" || gotForm.Get("buying_type") != "AUCTION" {
		t.Errorf("form = %v", gotForm)
	}
}

func TestAccountPrefixTolerated(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]string{"id": "1"})
	}))
	t.Cleanup(srv.Close)
	f := NewFactory(configs.Facebook{BaseURL: srv.URL, APIVersion: "v23.0", Timeout: time.Second})
	api := f.Client(port.Credentials{AccountID: "act_987", AccessToken: "t"})

	if _, err := api.CreateCampaign(context.Background(), port.CampaignParams{Name: "x"}); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/v23.0/act_987/campaigns" {
		t.Errorf("path = %q, want single act_ prefix", gotPath)
	}
}

func TestCreateAdSetTargetingSpec(t *testing.T) {
	var gotForm url.Values
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotForm = r.PostForm
		json.NewEncoder(w).Encode(map[string]string{"id": "238000000000002"})
	})

	_, err := api.CreateAdSet(context.Background(), port.AdSetParams{
		Name:             "Set",
		CampaignID:       "c1",
		DailyBudget:      100000,
		BillingEvent:     "LINK_CLICKS",
		OptimizationGoal: "CONVERSATIONS",
		BidStrategy:      "LOWEST_COST_WITHOUT_CAP",
		StartTime:        "2025-09-01T00:00:00+0700",
		Targeting: domain.Targeting{
			GeoLocations: domain.GeoLocations{Countries: []string{"VN", "US"}},
			Genders:      []int{2},
			AgeMin:       20,
			AgeMax:       40,
		},
	})
	if err != nil {
		t.Fatalf("CreateAdSet: %v", err)
	}
	if gotForm.Get("daily_budget") != "100000" {
		t.Errorf("daily_budget = %q", gotForm.Get("daily_budget"))
	}
	if gotForm.Get("end_time") != "" {
		t.Error("end_time sent despite being empty")
	}

	var spec struct {
		GeoLocations struct {
			Countries []string `json:"countries"`
		} `json:"geo_locations"`
		Genders             []int `json:"genders"`
		AgeMin              int   `json:"age_min"`
		AgeMax              int   `json:"age_max"`
		TargetingAutomation struct {
			AdvantageAudience int `json:"advantage_audience"`
		} `json:"targeting_automation"`
	}
	if err := json.Unmarshal([]byte(gotForm.Get("targeting")), &spec); err != nil {
		t.Fatalf("targeting not valid JSON: %v", err)
	}
	if len(spec.GeoLocations.Countries) != 2 || spec.GeoLocations.Countries[0] != "VN" {
		t.Errorf("countries = %v", spec.GeoLocations.Countries)
	}
	if len(spec.Genders) != 1 || spec.Genders[0] != 2 {
		t.Errorf("genders = %v", spec.Genders)
	}
	if spec.AgeMin != 20 || spec.AgeMax != 40 {
		t.Errorf("ages = %d..%d", spec.AgeMin, spec.AgeMax)
	}
}

func TestCreateAdSetCustomLocation(t *testing.T) {
	var gotForm url.Values
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotForm = r.PostForm
		json.NewEncoder(w).Encode(map[string]string{"id": "1"})
	})

	_, err := api.CreateAdSet(context.Background(), port.AdSetParams{
		Name: "Geo", CampaignID: "c1", DailyBudget: 50000,
		Targeting: domain.Targeting{
			GeoLocations: domain.GeoLocations{
				CustomLocations: []domain.CustomLocation{
					{Latitude: 10.762622, Longitude: 106.660172, Radius: 25},
				},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	var spec struct {
		GeoLocations struct {
			CustomLocations []struct {
				DistanceUnit string  `json:"distance_unit"`
				Radius       float64 `json:"radius"`
			} `json:"custom_locations"`
			Countries []string `json:"countries"`
		} `json:"geo_locations"`
	}
	if err := json.Unmarshal([]byte(gotForm.Get("targeting")), &spec); err != nil {
		t.Fatal(err)
	}
	locs := spec.GeoLocations.CustomLocations
	if len(locs) != 1 || locs[0].DistanceUnit != "kilometer" || locs[0].Radius != 25 {
		t.Errorf("custom locations = %+v", locs)
	}
	if len(spec.GeoLocations.Countries) != 0 {
		t.Error("countries sent alongside custom locations")
	}
}

func TestErrorEnvelopeDecoded(t *testing.T) {
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "Invalid parameter", "code": 100},
		})
	})

	_, err := api.CreateCampaign(context.Background(), port.CampaignParams{Name: "x"})
	var apiErr *port.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T %v, want *port.APIError", err, err)
	}
	if apiErr.Code != 100 || apiErr.Message != "Invalid parameter" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestErrorRawBodyFallback(t *testing.T) {
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream melted"))
	})

	_, err := api.CreateCampaign(context.Background(), port.CampaignParams{Name: "x"})
	var apiErr *port.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *port.APIError", err)
	}
	if apiErr.Code != http.StatusBadGateway || apiErr.Message != "upstream melted" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestVerifyToken(t *testing.T) {
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v23.0/me" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("access_token") != "test-token" {
			t.Error("access token missing from query")
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "42"})
	})
	if err := api.VerifyToken(context.Background()); err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
}

func TestListPagePosts(t *testing.T) {
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v23.0/104882000000000/posts" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "100" {
			t.Errorf("limit = %q", r.URL.Query().Get("limit"))
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]string{
				{"id": "104882000000000_111"},
				{"id": "104882000000000_222"},
			},
		})
	})
	ids, err := api.ListPagePosts(context.Background(), "104882000000000", 100)
	if err != nil {
		t.Fatalf("ListPagePosts: %v", err)
	}
	if len(ids) != 2 || ids[1] != "104882000000000_222" {
		t.Errorf("ids = %v", ids)
	}
}

func TestCreateCreativeCallToAction(t *testing.T) {
	var gotForm url.Values
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotForm = r.PostForm
		json.NewEncoder(w).Encode(map[string]string{"id": "120000000000001"})
	})

	_, err := api.CreateCreative(context.Background(), port.CreativeParams{
		Name:             "Creative",
		ObjectStoryID:    "104882000000000_998877665544332",
		CallToActionType: "MESSAGE_PAGE",
		Link:             "https://m.me/mypage",
	})
	if err != nil {
		t.Fatal(err)
	}
	if gotForm.Get("object_story_id") != "104882000000000_998877665544332" {
		t.Errorf("object_story_id = %q", gotForm.Get("object_story_id"))
	}
	var cta struct {
		Type  string `json:"type"`
		Value struct {
			Link string `json:"link"`
		} `json:"value"`
	}
	if err := json.Unmarshal([]byte(gotForm.Get("call_to_action")), &cta); err != nil {
		t.Fatal(err)
	}
	if cta.Type != "MESSAGE_PAGE" || cta.Value.Link != "https://m.me/mypage" {
		t.Errorf("cta = %+v", cta)
	}
}

func TestCreateCreativeWithoutCTA(t *testing.T) {
	var gotForm url.Values
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotForm = r.PostForm
		json.NewEncoder(w).Encode(map[string]string{"id": "1"})
	})
	if _, err := api.CreateCreative(context.Background(), port.CreativeParams{
		Name:          "Plain",
		ObjectStoryID: "1_2",
	}); err != nil {
		t.Fatal(err)
	}
	if gotForm.Get("call_to_action") != "" {
		t.Error("call_to_action sent without type and link")
	}
}

func TestCreateAdCreativeField(t *testing.T) {
	var gotForm url.Values
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotForm = r.PostForm
		json.NewEncoder(w).Encode(map[string]string{"id": "120000000000002"})
	})
	if _, err := api.CreateAd(context.Background(), port.AdParams{
		Name: "Ad", AdSetID: "as1", CreativeID: "cr1", Status: "PAUSED",
	}); err != nil {
		t.Fatal(err)
	}
	if gotForm.Get("creative") != `{"creative_id":"cr1"}` {
		t.Errorf("creative = %q", gotForm.Get("creative"))
	}
}

func TestAccountInsights(t *testing.T) {
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v23.0/act_123456789012345/insights" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("date_preset") != "last_30d" {
			t.Errorf("date_preset = %q", r.URL.Query().Get("date_preset"))
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]string{
				{"spend": "123.45", "impressions": "9000", "clicks": "321"},
			},
		})
	})
	ins, err := api.AccountInsights(context.Background(), "last_30d")
	if err != nil {
		t.Fatalf("AccountInsights: %v", err)
	}
	if ins.Spend != "123.45" || ins.Impressions != "9000" || ins.Clicks != "321" {
		t.Errorf("insights = %+v", ins)
	}
}

func TestAccountInsightsEmpty(t *testing.T) {
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})
	ins, err := api.AccountInsights(context.Background(), "today")
	if err != nil {
		t.Fatal(err)
	}
	if ins == nil || ins.Spend != "" {
		t.Errorf("insights = %+v, want zero value", ins)
	}
}

func TestMissingObjectID(t *testing.T) {
	api := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})
	if _, err := api.CreateCampaign(context.Background(), port.CampaignParams{Name: "x"}); err == nil {
		t.Fatal("expected error for response without an id")
	}
}
