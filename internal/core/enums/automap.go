package enums

import "adlift/internal/core/domain"

// AutoMap rewrites the five enum fields of a campaign record into their
// canonical tokens and returns the result. The input is not mutated.
func AutoMap(in domain.CampaignInput) domain.CampaignInput {
	out := in
	out.Objective = MapObjective(in.Objective)
	out.OptimizationGoal = MapOptimizationGoal(in.OptimizationGoal)
	out.BidStrategy = MapBidStrategy(in.BidStrategy)
	out.BillingEvent = MapBillingEvent(in.BillingEvent)
	out.DestinationType = MapDestinationType(in.DestinationType)

	// LEARN_MORE is not a valid call to action for Messenger
	// destinations; the API expects MESSAGE_PAGE there.
	if out.DestinationType == "MESSENGER" && out.AdCreative.CallToActionType == "LEARN_MORE" {
		out.AdCreative.CallToActionType = "MESSAGE_PAGE"
	}
	return out
}

// compatibleGoals lists the optimization goals that plausibly pair with
// each objective. Pairs outside this table are flagged as warnings, not
// errors; the API is the final authority.
var compatibleGoals = map[string][]string{
	ObjectiveEngagement: {
		"CONVERSATIONS", "POST_ENGAGEMENT", "PAGE_LIKES", "LINK_CLICKS",
		"REACH", "IMPRESSIONS", "THRUPLAY",
	},
	ObjectiveSales: {
		"OFFSITE_CONVERSIONS", "CONVERSATIONS", "LINK_CLICKS",
		"LANDING_PAGE_VIEWS", "IMPRESSIONS", "VALUE",
	},
	ObjectiveLeads: {
		"LEAD_GENERATION", "QUALITY_LEAD", "CONVERSATIONS", "LINK_CLICKS",
		"OFFSITE_CONVERSIONS",
	},
	ObjectiveTraffic: {
		"LINK_CLICKS", "LANDING_PAGE_VIEWS", "CONVERSATIONS", "REACH",
		"IMPRESSIONS",
	},
	ObjectiveAwareness: {
		"REACH", "IMPRESSIONS", "THRUPLAY", "AD_RECALL_LIFT",
	},
	ObjectiveAppPromotion: {
		"APP_INSTALLS", "LINK_CLICKS", "OFFSITE_CONVERSIONS", "VALUE",
	},
}

// CheckCompatibility returns human-readable warnings when an objective and
// optimization goal look mismatched. An unknown objective produces no
// warning since passthrough values cannot be judged.
func CheckCompatibility(objective, goal string) []string {
	goals, ok := compatibleGoals[objective]
	if !ok {
		return nil
	}
	for _, g := range goals {
		if g == goal {
			return nil
		}
	}
	return []string{
		"optimization goal " + goal + " is unusual for objective " + objective +
			"; the API may reject the ad set or deliver poorly",
	}
}
