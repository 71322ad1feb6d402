// Package enums translates the free-form enum vocabulary found in CSV
// exports (human-readable labels, legacy Graph API names) into the exact
// tokens the current Marketing API accepts. All tables are module-level
// constants; the mapping functions are pure.
package enums

import "strings"

// Canonical objective tokens (ODAX vocabulary).
const (
	ObjectiveEngagement   = "OUTCOME_ENGAGEMENT"
	ObjectiveSales        = "OUTCOME_SALES"
	ObjectiveLeads        = "OUTCOME_LEADS"
	ObjectiveTraffic      = "OUTCOME_TRAFFIC"
	ObjectiveAwareness    = "OUTCOME_AWARENESS"
	ObjectiveAppPromotion = "OUTCOME_APP_PROMOTION"
)

// Defaults applied when a CSV leaves a field empty. Centralised here so
// every call site agrees on the same value.
const (
	DefaultObjective        = ObjectiveEngagement
	DefaultOptimizationGoal = "CONVERSATIONS"
	DefaultBillingEvent     = "LINK_CLICKS"
	DefaultBidStrategy      = "LOWEST_COST_WITHOUT_CAP"
	DefaultDestinationType  = "WEBSITE"
)

// objectiveMap accepts legacy API objectives and human-readable labels.
// Keys are matched case-insensitively.
var objectiveMap = map[string]string{
	// legacy API names
	"POST_ENGAGEMENT": ObjectiveEngagement,
	"PAGE_LIKES":      ObjectiveEngagement,
	"EVENT_RESPONSES": ObjectiveEngagement,
	"MESSAGES":        ObjectiveEngagement,
	"VIDEO_VIEWS":     ObjectiveEngagement,
	"CONVERSIONS":     ObjectiveSales,
	"PRODUCT_CATALOG_SALES": ObjectiveSales,
	"STORE_VISITS":    ObjectiveSales,
	"LEAD_GENERATION": ObjectiveLeads,
	"LINK_CLICKS":     ObjectiveTraffic,
	"TRAFFIC":         ObjectiveTraffic,
	"BRAND_AWARENESS": ObjectiveAwareness,
	"REACH":           ObjectiveAwareness,
	"LOCAL_AWARENESS": ObjectiveAwareness,
	"APP_INSTALLS":    ObjectiveAppPromotion,
	// human-readable labels
	"ENGAGEMENT":    ObjectiveEngagement,
	"SALES":         ObjectiveSales,
	"LEADS":         ObjectiveLeads,
	"AWARENESS":     ObjectiveAwareness,
	"APP PROMOTION": ObjectiveAppPromotion,
	// canonical tokens map to themselves so mapping is idempotent
	ObjectiveEngagement:   ObjectiveEngagement,
	ObjectiveSales:        ObjectiveSales,
	ObjectiveLeads:        ObjectiveLeads,
	ObjectiveTraffic:      ObjectiveTraffic,
	ObjectiveAwareness:    ObjectiveAwareness,
	ObjectiveAppPromotion: ObjectiveAppPromotion,
}

var optimizationGoalMap = map[string]string{
	"CONVERSATIONS":        "CONVERSATIONS",
	"REPLIES":              "CONVERSATIONS",
	"MESSAGING_PURCHASE_CONVERSION": "CONVERSATIONS",
	"OFFSITE_CONVERSIONS":  "OFFSITE_CONVERSIONS",
	"CONVERSIONS":          "OFFSITE_CONVERSIONS",
	"LINK_CLICKS":          "LINK_CLICKS",
	"CLICKS":               "LINK_CLICKS",
	"LANDING_PAGE_VIEWS":   "LANDING_PAGE_VIEWS",
	"LEAD_GENERATION":      "LEAD_GENERATION",
	"LEADS":                "LEAD_GENERATION",
	"QUALITY_LEAD":         "QUALITY_LEAD",
	"POST_ENGAGEMENT":      "POST_ENGAGEMENT",
	"ENGAGEMENT":           "POST_ENGAGEMENT",
	"PAGE_LIKES":           "PAGE_LIKES",
	"REACH":                "REACH",
	"IMPRESSIONS":          "IMPRESSIONS",
	"THRUPLAY":             "THRUPLAY",
	"VIDEO_VIEWS":          "THRUPLAY",
	"TWO_SECOND_CONTINUOUS_VIDEO_VIEWS": "THRUPLAY",
	"APP_INSTALLS":         "APP_INSTALLS",
	"VALUE":                "VALUE",
	"AD_RECALL_LIFT":       "AD_RECALL_LIFT",
}

var bidStrategyMap = map[string]string{
	"LOWEST_COST_WITHOUT_CAP":  "LOWEST_COST_WITHOUT_CAP",
	"LOWEST_COST":              "LOWEST_COST_WITHOUT_CAP",
	"AUTOMATIC":                "LOWEST_COST_WITHOUT_CAP",
	"AUTO":                     "LOWEST_COST_WITHOUT_CAP",
	"HIGHEST_VOLUME":           "LOWEST_COST_WITHOUT_CAP",
	"LOWEST_COST_WITH_BID_CAP": "LOWEST_COST_WITH_BID_CAP",
	"BID_CAP":                  "LOWEST_COST_WITH_BID_CAP",
	"COST_CAP":                 "COST_CAP",
	"COST_PER_RESULT_GOAL":     "COST_CAP",
	"LOWEST_COST_WITH_MIN_ROAS": "LOWEST_COST_WITH_MIN_ROAS",
	"MIN_ROAS":                 "LOWEST_COST_WITH_MIN_ROAS",
	"ROAS_GOAL":                "LOWEST_COST_WITH_MIN_ROAS",
}

var billingEventMap = map[string]string{
	"LINK_CLICKS":     "LINK_CLICKS",
	"CLICKS":          "LINK_CLICKS",
	"CPC":             "LINK_CLICKS",
	"IMPRESSIONS":     "IMPRESSIONS",
	"CPM":             "IMPRESSIONS",
	"THRUPLAY":        "THRUPLAY",
	"PAGE_LIKES":      "PAGE_LIKES",
	"POST_ENGAGEMENT": "POST_ENGAGEMENT",
	"APP_INSTALLS":    "APP_INSTALLS",
}

var destinationTypeMap = map[string]string{
	"WEBSITE":          "WEBSITE",
	"WEB":              "WEBSITE",
	"MESSENGER":        "MESSENGER",
	"MESSAGES":         "MESSENGER",
	"MESSAGING_APPS":   "MESSENGER",
	"APP":              "APP",
	"APPLICATION":      "APP",
	"PHONE_CALL":       "PHONE_CALL",
	"PHONE CALL":       "PHONE_CALL",
	"CALL":             "PHONE_CALL",
	"CANVAS":           "CANVAS",
	"INSTANT_EXPERIENCE": "CANVAS",
}

// destinationWhitelist is the fixed set of destination types the ad set
// endpoint accepts; anything else collapses to WEBSITE.
var destinationWhitelist = map[string]bool{
	"WEBSITE":    true,
	"MESSENGER":  true,
	"APP":        true,
	"PHONE_CALL": true,
	"CANVAS":     true,
}

// lookup matches s against a synonym table, case-insensitively on the
// trimmed upper-cased form. Unknown values pass through unchanged.
func lookup(table map[string]string, s string) (string, bool) {
	key := strings.ToUpper(strings.TrimSpace(s))
	out, ok := table[key]
	if !ok {
		return strings.TrimSpace(s), false
	}
	return out, true
}

// MapObjective maps a campaign objective to its canonical token.
// Empty input yields DefaultObjective; unknown input passes through.
func MapObjective(s string) string {
	if strings.TrimSpace(s) == "" {
		return DefaultObjective
	}
	out, _ := lookup(objectiveMap, s)
	return out
}

// MapOptimizationGoal maps an optimization goal to its canonical token.
// Empty input yields DefaultOptimizationGoal; unknown input passes through.
func MapOptimizationGoal(s string) string {
	if strings.TrimSpace(s) == "" {
		return DefaultOptimizationGoal
	}
	out, _ := lookup(optimizationGoalMap, s)
	return out
}

// MapBidStrategy maps a bid strategy to its canonical token.
// Empty input yields DefaultBidStrategy; unknown input passes through.
func MapBidStrategy(s string) string {
	if strings.TrimSpace(s) == "" {
		return DefaultBidStrategy
	}
	out, _ := lookup(bidStrategyMap, s)
	return out
}

// MapBillingEvent maps a billing event to its canonical token. Anything
// that does not resolve to a known billing event becomes the default
// LINK_CLICKS; only an explicit IMPRESSIONS (or one of the other known
// events) survives.
func MapBillingEvent(s string) string {
	out, ok := lookup(billingEventMap, s)
	if !ok {
		return DefaultBillingEvent
	}
	return out
}

// MapDestinationType maps a destination type to one of the whitelisted
// tokens. Anything outside the whitelist, including empty input, becomes
// WEBSITE.
func MapDestinationType(s string) string {
	out, _ := lookup(destinationTypeMap, s)
	if !destinationWhitelist[out] {
		return DefaultDestinationType
	}
	return out
}
