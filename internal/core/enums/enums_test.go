package enums

import (
	"testing"

	"adlift/internal/core/domain"
)

// TestMapObjective covers legacy names, human labels, defaulting and
// passthrough of unknown values.
func TestMapObjective(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"POST_ENGAGEMENT", ObjectiveEngagement},
		{"post_engagement", ObjectiveEngagement},
		{"Messages", ObjectiveEngagement},
		{"CONVERSIONS", ObjectiveSales},
		{"Sales", ObjectiveSales},
		{"LEAD_GENERATION", ObjectiveLeads},
		{"LINK_CLICKS", ObjectiveTraffic},
		{"BRAND_AWARENESS", ObjectiveAwareness},
		{"APP_INSTALLS", ObjectiveAppPromotion},
		{"", DefaultObjective},
		{"   ", DefaultObjective},
		{"SOMETHING_CUSTOM", "SOMETHING_CUSTOM"}, // permissive passthrough
	}
	for _, c := range cases {
		if got := MapObjective(c.in); got != c.want {
			t.Errorf("MapObjective(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// TestMappingIdempotent verifies map(map(x)) == map(x) for values already
// in canonical form, for all five dimensions.
func TestMappingIdempotent(t *testing.T) {
	maps := []struct {
		name string
		fn   func(string) string
		vals []string
	}{
		{"objective", MapObjective, []string{
			ObjectiveEngagement, ObjectiveSales, ObjectiveLeads,
			ObjectiveTraffic, ObjectiveAwareness, ObjectiveAppPromotion,
		}},
		{"optimization goal", MapOptimizationGoal, []string{
			"CONVERSATIONS", "OFFSITE_CONVERSIONS", "LINK_CLICKS",
			"LEAD_GENERATION", "REACH", "IMPRESSIONS", "THRUPLAY",
		}},
		{"bid strategy", MapBidStrategy, []string{
			"LOWEST_COST_WITHOUT_CAP", "LOWEST_COST_WITH_BID_CAP",
			"COST_CAP", "LOWEST_COST_WITH_MIN_ROAS",
		}},
		{"billing event", MapBillingEvent, []string{
			"LINK_CLICKS", "IMPRESSIONS", "THRUPLAY", "POST_ENGAGEMENT",
		}},
		{"destination type", MapDestinationType, []string{
			"WEBSITE", "MESSENGER", "APP", "PHONE_CALL", "CANVAS",
		}},
	}
	for _, m := range maps {
		for _, v := range m.vals {
			once := m.fn(v)
			if twice := m.fn(once); twice != once {
				t.Errorf("%s: mapping not idempotent for %q: %q then %q", m.name, v, once, twice)
			}
		}
	}
}

func TestMapBillingEventDefaults(t *testing.T) {
	if got := MapBillingEvent(""); got != "LINK_CLICKS" {
		t.Fatalf("empty billing event = %q, want LINK_CLICKS", got)
	}
	if got := MapBillingEvent("impressions"); got != "IMPRESSIONS" {
		t.Fatalf("impressions billing event = %q, want IMPRESSIONS", got)
	}
	// an unknown value collapses to the default instead of passing through
	if got := MapBillingEvent("WEIRD_EVENT"); got != "LINK_CLICKS" {
		t.Fatalf("unknown billing event = %q, want LINK_CLICKS", got)
	}
}

func TestMapDestinationTypeWhitelist(t *testing.T) {
	if got := MapDestinationType("messenger"); got != "MESSENGER" {
		t.Fatalf("messenger = %q, want MESSENGER", got)
	}
	if got := MapDestinationType("SOMEWHERE_ELSE"); got != "WEBSITE" {
		t.Fatalf("out-of-whitelist value = %q, want WEBSITE", got)
	}
	if got := MapDestinationType(""); got != "WEBSITE" {
		t.Fatalf("empty value = %q, want WEBSITE", got)
	}
}

// TestAutoMapDefaults ensures no mapped field is ever empty after AutoMap,
// whatever the input.
func TestAutoMapDefaults(t *testing.T) {
	out := AutoMap(domain.CampaignInput{})
	fields := map[string]string{
		"objective":         out.Objective,
		"optimization goal": out.OptimizationGoal,
		"bid strategy":      out.BidStrategy,
		"billing event":     out.BillingEvent,
		"destination type":  out.DestinationType,
	}
	for name, v := range fields {
		if v == "" {
			t.Errorf("%s is empty after AutoMap", name)
		}
	}
	if out.Objective != DefaultObjective {
		t.Errorf("objective = %q, want %q", out.Objective, DefaultObjective)
	}
	if out.OptimizationGoal != DefaultOptimizationGoal {
		t.Errorf("optimization goal = %q, want %q", out.OptimizationGoal, DefaultOptimizationGoal)
	}
}

func TestAutoMapDoesNotMutateInput(t *testing.T) {
	in := domain.CampaignInput{Objective: "conversions"}
	_ = AutoMap(in)
	if in.Objective != "conversions" {
		t.Fatalf("AutoMap mutated its input: objective = %q", in.Objective)
	}
}

// TestAutoMapMessengerCTA checks the LEARN_MORE -> MESSAGE_PAGE adjustment
// for Messenger destinations.
func TestAutoMapMessengerCTA(t *testing.T) {
	in := domain.CampaignInput{
		DestinationType: "MESSENGER",
		AdCreative:      domain.AdCreative{CallToActionType: "LEARN_MORE"},
	}
	out := AutoMap(in)
	if out.AdCreative.CallToActionType != "MESSAGE_PAGE" {
		t.Fatalf("CTA = %q, want MESSAGE_PAGE", out.AdCreative.CallToActionType)
	}

	in.DestinationType = "WEBSITE"
	out = AutoMap(in)
	if out.AdCreative.CallToActionType != "LEARN_MORE" {
		t.Fatalf("CTA = %q, want LEARN_MORE for website destination", out.AdCreative.CallToActionType)
	}
}

func TestCheckCompatibility(t *testing.T) {
	if w := CheckCompatibility(ObjectiveSales, "OFFSITE_CONVERSIONS"); len(w) != 0 {
		t.Fatalf("sales/offsite_conversions flagged: %v", w)
	}
	if w := CheckCompatibility(ObjectiveLeads, "LEAD_GENERATION"); len(w) != 0 {
		t.Fatalf("leads/lead_generation flagged: %v", w)
	}
	if w := CheckCompatibility(ObjectiveAwareness, "CONVERSATIONS"); len(w) != 1 {
		t.Fatalf("awareness/conversations not flagged, got %v", w)
	}
	// passthrough objectives cannot be judged
	if w := CheckCompatibility("SOMETHING_CUSTOM", "CONVERSATIONS"); len(w) != 0 {
		t.Fatalf("unknown objective flagged: %v", w)
	}
}
