// Package facebook is the outbound HTTP adapter for the Marketing Graph
// API. All creation endpoints take form-encoded parameters and answer
// with JSON {"id": "..."} on success or {"error": {"message", "code"}}
// on failure.
package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"adlift/internal/config/configs"
	"adlift/internal/core/domain"
	"adlift/internal/core/port"
)

// maxErrBody caps how much of an error response is kept for diagnostics.
const maxErrBody = 512

// Factory builds per-request Graph API clients. It owns the shared
// http.Client; credentials are bound per upload.
type Factory struct {
	baseURL    string
	version    string
	httpClient *http.Client
}

// NewFactory creates the factory from configuration.
func NewFactory(cfg configs.Facebook) *Factory {
	return &Factory{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		version:    cfg.APIVersion,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Client binds the factory to one request's credentials.
func (f *Factory) Client(creds port.Credentials) port.GraphAPI {
	return &Client{f: f, creds: creds}
}

var _ port.GraphFactory = (*Factory)(nil)

// Client is a Graph API client bound to one ad account and access token.
type Client struct {
	f     *Factory
	creds port.Credentials
}

// accountPath returns the act_{id} path segment, tolerating account IDs
// that already carry the prefix.
func (c *Client) accountPath() string {
	return "/act_" + strings.TrimPrefix(c.creds.AccountID, "act_")
}

func (c *Client) endpoint(path string) string {
	return c.f.baseURL + "/" + c.f.version + path
}

// postForm sends a form-encoded POST and returns the created object ID.
func (c *Client) postForm(ctx context.Context, path string, form url.Values) (string, error) {
	form.Set("access_token", c.creds.AccessToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("POST %s: read body: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", decodeAPIError(resp.StatusCode, body)
	}

	var out struct {
		ID string `json:"id"`
	}
	if err = json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("POST %s: decode response: %w", path, err)
	}
	if out.ID == "" {
		return "", fmt.Errorf("POST %s: response carried no object id", path)
	}
	return out.ID, nil
}

// getJSON sends a GET with the access token in the query and decodes the
// JSON response into dest. A nil dest only checks for success.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, dest any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("access_token", c.creds.AccessToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path)+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("GET %s: read body: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp.StatusCode, body)
	}
	if dest == nil {
		return nil
	}
	if err = json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("GET %s: decode response: %w", path, err)
	}
	return nil
}

// decodeAPIError prefers the structured Graph error envelope and falls
// back to the raw body.
func decodeAPIError(status int, body []byte) error {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
			Code    int    `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return &port.APIError{Code: envelope.Error.Code, Message: envelope.Error.Message}
	}
	msg := string(body)
	if len(msg) > maxErrBody {
		msg = msg[:maxErrBody]
	}
	return &port.APIError{Code: status, Message: msg}
}

// VerifyToken probes the /me endpoint with the bound token.
func (c *Client) VerifyToken(ctx context.Context) error {
	return c.getJSON(ctx, "/me", url.Values{"fields": {"id"}}, nil)
}

// CreateCampaign creates a campaign on the bound account.
func (c *Client) CreateCampaign(ctx context.Context, p port.CampaignParams) (string, error) {
	cats, err := json.Marshal(p.SpecialAdCategories)
	if err != nil {
		return "", err
	}
	form := url.Values{
		"name":                  {p.Name},
		"objective":             {p.Objective},
		"status":                {p.Status},
		"buying_type":           {p.BuyingType},
		"special_ad_categories": {string(cats)},
	}
	return c.postForm(ctx, c.accountPath()+"/campaigns", form)
}

// CreateAdSet creates an ad set under an existing campaign.
func (c *Client) CreateAdSet(ctx context.Context, p port.AdSetParams) (string, error) {
	targeting, err := json.Marshal(targetingSpec(p.Targeting))
	if err != nil {
		return "", err
	}
	form := url.Values{
		"name":              {p.Name},
		"campaign_id":       {p.CampaignID},
		"daily_budget":      {strconv.FormatInt(p.DailyBudget, 10)},
		"billing_event":     {p.BillingEvent},
		"optimization_goal": {p.OptimizationGoal},
		"bid_strategy":      {p.BidStrategy},
		"destination_type":  {p.DestinationType},
		"start_time":        {p.StartTime},
		"targeting":         {string(targeting)},
	}
	if p.EndTime != "" {
		form.Set("end_time", p.EndTime)
	}
	return c.postForm(ctx, c.accountPath()+"/adsets", form)
}

// targetingSpec maps the domain targeting to the Graph API's wire shape.
func targetingSpec(t domain.Targeting) map[string]any {
	geo := map[string]any{}
	if len(t.GeoLocations.CustomLocations) > 0 {
		locs := make([]map[string]any, 0, len(t.GeoLocations.CustomLocations))
		for _, l := range t.GeoLocations.CustomLocations {
			locs = append(locs, map[string]any{
				"latitude":      l.Latitude,
				"longitude":     l.Longitude,
				"radius":        l.Radius,
				"distance_unit": "kilometer",
			})
		}
		geo["custom_locations"] = locs
	} else {
		geo["countries"] = t.GeoLocations.Countries
	}
	return map[string]any{
		"geo_locations": geo,
		"genders":       t.Genders,
		"age_min":       t.AgeMin,
		"age_max":       t.AgeMax,
		"targeting_automation": map[string]any{
			"advantage_audience": t.AdvantageAudience,
		},
	}
}

// GetPost fetches a post by its "<page_id>_<post_id>" story ID.
func (c *Client) GetPost(ctx context.Context, storyID string) error {
	return c.getJSON(ctx, "/"+storyID, url.Values{"fields": {"id"}}, nil)
}

// ListPagePosts returns the IDs of a page's recent posts.
func (c *Client) ListPagePosts(ctx context.Context, pageID string, limit int) ([]string, error) {
	var out struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	query := url.Values{"fields": {"id"}, "limit": {strconv.Itoa(limit)}}
	if err := c.getJSON(ctx, "/"+pageID+"/posts", query, &out); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(out.Data))
	for _, p := range out.Data {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

// CreateCreative creates an ad creative from an existing page post.
func (c *Client) CreateCreative(ctx context.Context, p port.CreativeParams) (string, error) {
	form := url.Values{
		"name":            {p.Name},
		"object_story_id": {p.ObjectStoryID},
	}
	if p.CallToActionType != "" && p.Link != "" {
		cta, err := json.Marshal(map[string]any{
			"type":  p.CallToActionType,
			"value": map[string]string{"link": p.Link},
		})
		if err != nil {
			return "", err
		}
		form.Set("call_to_action", string(cta))
	}
	return c.postForm(ctx, c.accountPath()+"/adcreatives", form)
}

// CreateAd creates the ad linking an ad set to a creative.
func (c *Client) CreateAd(ctx context.Context, p port.AdParams) (string, error) {
	creative, err := json.Marshal(map[string]string{"creative_id": p.CreativeID})
	if err != nil {
		return "", err
	}
	form := url.Values{
		"name":     {p.Name},
		"adset_id": {p.AdSetID},
		"creative": {string(creative)},
		"status":   {p.Status},
	}
	return c.postForm(ctx, c.accountPath()+"/ads", form)
}

// AccountInsights returns aggregated spend for the bound account. The
// numbers are passed through as the API reports them.
func (c *Client) AccountInsights(ctx context.Context, datePreset string) (*domain.Insights, error) {
	var out struct {
		Data []domain.Insights `json:"data"`
	}
	query := url.Values{
		"fields":      {"spend,impressions,clicks"},
		"date_preset": {datePreset},
	}
	if err := c.getJSON(ctx, c.accountPath()+"/insights", query, &out); err != nil {
		return nil, err
	}
	if len(out.Data) == 0 {
		return &domain.Insights{}, nil
	}
	return &out.Data[0], nil
}
