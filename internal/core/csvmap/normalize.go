package csvmap

import (
	"regexp"
	"strconv"
	"strings"

	"adlift/internal/core/domain"
)

// Canonical field names used across all supported export formats.
const (
	fCampaignName     = "campaign name"
	fAdSetName        = "ad set name"
	fAdName           = "ad name"
	fPageID           = "page id"
	fPostID           = "post id"
	fLinkObjectID     = "link object id"
	fPermalink        = "permalink"
	fStoryID          = "story id"
	fAccountID        = "account id"
	fCampaignBudget   = "campaign daily budget"
	fAdSetBudget      = "ad set daily budget"
	fLifetimeBudget   = "lifetime budget"
	fAgeMin           = "age min"
	fAgeMax           = "age max"
	fGender           = "gender"
	fCountries        = "countries"
	fAddresses        = "addresses"
	fStartTime        = "start time"
	fEndTime          = "end time"
	fObjective        = "campaign objective"
	fOptimizationGoal = "optimization goal"
	fBillingEvent     = "billing event"
	fBidStrategy      = "bid strategy"
	fBidAmount        = "bid amount"
	fDestinationType  = "destination type"
	fCampaignStatus   = "campaign status"
	fAdSetRunStatus   = "ad set run status"
	fBody             = "body"
	fTitle            = "title"
	fCallToAction     = "call to action"
	fLink             = "link"
	fAdvantage        = "advantage audience"
	fBuyingType       = "buying type"
	fSpecialAdCats    = "special ad categories"
	fVideoID          = "video id"
	fImageHash        = "image hash"
)

// fieldVariants lists, per canonical field, the header names the mapper
// accepts in priority order. Matching is done on the lower-cased header
// with underscores collapsed to spaces, so "Campaign_Name", "campaign
// name" and "CAMPAIGN NAME" all hit the same variant.
var fieldVariants = map[string][]string{
	fCampaignName:     {"campaign name", "name", "campaign"},
	fAdSetName:        {"ad set name", "adset name"},
	fAdName:           {"ad name"},
	fPageID:           {"page id", "pageid", "page"},
	fPostID:           {"post id", "postid", "promoted post id", "object id"},
	fLinkObjectID:     {"link object id"},
	fPermalink:        {"permalink", "permalink url", "post permalink"},
	fStoryID:          {"story id"},
	fAccountID:        {"account id", "ad account id"},
	fCampaignBudget:   {"campaign daily budget", "daily budget"},
	fAdSetBudget:      {"ad set daily budget", "adset daily budget", "ad set budget"},
	fLifetimeBudget:   {"lifetime budget", "campaign lifetime budget", "ad set lifetime budget"},
	fAgeMin:           {"age min", "minimum age"},
	fAgeMax:           {"age max", "maximum age"},
	fGender:           {"gender", "genders"},
	fCountries:        {"countries", "country", "location countries"},
	fAddresses:        {"addresses", "address"},
	fStartTime:        {"ad set time start", "ad set start time", "start time", "campaign start time", "start date"},
	fEndTime:          {"ad set time stop", "ad set end time", "end time", "campaign stop time", "end date"},
	fObjective:        {"campaign objective", "objective"},
	fOptimizationGoal: {"optimization goal", "ad set optimization goal", "optimization goal for ad delivery"},
	fBillingEvent:     {"billing event", "ad set billing event"},
	fBidStrategy:      {"campaign bid strategy", "bid strategy", "ad set bid strategy"},
	fBidAmount:        {"bid amount", "ad set bid amount"},
	fDestinationType:  {"destination type", "ad set destination type"},
	fCampaignStatus:   {"campaign status"},
	fAdSetRunStatus:   {"ad set run status", "ad set status"},
	fBody:             {"body", "message", "ad body", "text", "primary text"},
	fTitle:            {"title", "headline"},
	fCallToAction:     {"call to action", "call to action type", "cta"},
	fLink:             {"link", "website url", "display link"},
	fAdvantage:        {"advantage audience", "advantage+ audience"},
	fBuyingType:       {"buying type"},
	fSpecialAdCats:    {"special ad categories"},
	fVideoID:          {"video id"},
	fImageHash:        {"image hash"},
}

// canonicalOrder fixes the iteration order so that header consumption is
// deterministic when two canonical fields share a variant spelling.
var canonicalOrder = []string{
	fCampaignName, fAdSetName, fAdName, fPageID, fPostID, fLinkObjectID,
	fPermalink, fStoryID, fAccountID, fCampaignBudget, fAdSetBudget,
	fLifetimeBudget, fAgeMin, fAgeMax, fGender, fCountries, fAddresses,
	fStartTime, fEndTime, fObjective, fOptimizationGoal, fBillingEvent,
	fBidStrategy, fBidAmount, fDestinationType, fCampaignStatus,
	fAdSetRunStatus, fBody, fTitle, fCallToAction, fLink, fAdvantage,
	fBuyingType, fSpecialAdCats, fVideoID, fImageHash,
}

// headerKey normalises a header for variant matching.
func headerKey(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, "_", " ")
	return strings.Join(strings.Fields(h), " ")
}

// fieldReader resolves canonical fields against one row's actual headers.
type fieldReader struct {
	values   map[string]string // canonical field -> value
	consumed map[string]bool   // original header -> matched a canonical field
	row      RawRow
}

func newFieldReader(row RawRow) *fieldReader {
	byKey := make(map[string]string, len(row))    // normalised header -> original
	for h := range row {
		k := headerKey(h)
		if _, ok := byKey[k]; !ok {
			byKey[k] = h
		}
	}
	f := &fieldReader{
		values:   make(map[string]string, len(canonicalOrder)),
		consumed: make(map[string]bool, len(row)),
		row:      row,
	}
	for _, field := range canonicalOrder {
		for _, variant := range fieldVariants[field] {
			orig, ok := byKey[variant]
			if !ok {
				continue
			}
			f.values[field] = row[orig]
			f.consumed[orig] = true
			break
		}
	}
	return f
}

func (f *fieldReader) get(field string) string {
	return strings.TrimSpace(f.values[field])
}

// extra returns the unmapped, non-empty columns under their original
// headers, for forward compatibility and debugging.
func (f *fieldReader) extra() map[string]string {
	var out map[string]string
	for h, v := range f.row {
		if f.consumed[h] || strings.TrimSpace(v) == "" {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[h] = v
	}
	return out
}

var (
	linkObjectRe = regexp.MustCompile(`^o:(\d+)$`)
	permalinkRe  = regexp.MustCompile(`facebook\.com/([^/]+)/(?:posts|videos)/([A-Za-z0-9_.-]+)`)
	storyRe      = regexp.MustCompile(`^s:(\d+)$`)
	digitsRe     = regexp.MustCompile(`^\d+$`)
	nonDigitRe   = regexp.MustCompile(`\D`)
	addressRe    = regexp.MustCompile(`\((-?\d+(?:\.\d+)?),\s*(-?\d+(?:\.\d+)?)\)\s*\+(\d+(?:\.\d+)?)km`)
)

// Candidate pairs a normalized campaign record with its source line in
// the uploaded file.
type Candidate struct {
	Line  int
	Input domain.CampaignInput
}

// NormalizeRows maps every raw row to a canonical campaign record and
// drops later rows that reuse an earlier campaign name (first occurrence
// wins). Line numbers account for the header line.
func NormalizeRows(rows []RawRow) []Candidate {
	seen := make(map[string]bool, len(rows))
	out := make([]Candidate, 0, len(rows))
	for i, row := range rows {
		input := Normalize(row)
		if input.Name != "" && seen[input.Name] {
			continue
		}
		seen[input.Name] = true
		out = append(out, Candidate{Line: i + 2, Input: input})
	}
	return out
}

// Normalize maps a raw row with arbitrary headers to the canonical
// campaign record. Enum fields keep their source spelling here; the enums
// package rewrites them afterwards.
func Normalize(row RawRow) domain.CampaignInput {
	f := newFieldReader(row)

	rawPage := f.get(fPageID)
	rawPost := f.get(fPostID)
	pageID := extractPageID(rawPage, f)
	postID := extractPostID(rawPost, f)

	ageMin := atoiOrZero(f.get(fAgeMin))
	ageMax := atoiOrZero(f.get(fAgeMax))

	input := domain.CampaignInput{
		Name:        f.get(fCampaignName),
		PageID:      pageID,
		PostID:      postID,
		AccountID:   NormalizeIDField(f.get(fAccountID)),
		DailyBudget: parseBudget(f.get(fAdSetBudget), f.get(fCampaignBudget)),
		AgeMin:      ageMin,
		AgeMax:      ageMax,
		StartTime:   f.get(fStartTime),
		EndTime:     f.get(fEndTime),
		Status:      deriveStatus(f.get(fCampaignStatus), f.get(fAdSetRunStatus)),

		Objective:        f.get(fObjective),
		OptimizationGoal: f.get(fOptimizationGoal),
		BidStrategy:      f.get(fBidStrategy),
		BillingEvent:     f.get(fBillingEvent),
		DestinationType:  f.get(fDestinationType),

		Targeting: domain.Targeting{
			GeoLocations:      parseGeo(f.get(fAddresses), f.get(fCountries)),
			Genders:           mapGender(f.get(fGender)),
			AgeMin:            ageMin,
			AgeMax:            ageMax,
			AdvantageAudience: 0,
		},
		AdCreative: domain.AdCreative{
			Message:          f.get(fBody),
			CallToActionType: strings.ToUpper(strings.ReplaceAll(f.get(fCallToAction), " ", "_")),
			Link:             f.get(fLink),
		},

		RawPageID: rawPage,
		RawPostID: rawPost,
		Extra:     f.extra(),
	}
	return input
}

// extractPageID resolves the page ID. An explicit Page ID column wins;
// otherwise the Link Object ID ("o:<digits>") is tried first, then the
// Permalink URL segment, which is accepted only when purely numeric
// (vanity page names cannot be used as IDs).
func extractPageID(pageCol string, f *fieldReader) string {
	if pageCol != "" {
		return NormalizeIDField(pageCol)
	}
	if m := linkObjectRe.FindStringSubmatch(f.get(fLinkObjectID)); m != nil {
		return m[1]
	}
	if m := permalinkRe.FindStringSubmatch(f.get(fPermalink)); m != nil {
		if digitsRe.MatchString(m[1]) {
			return m[1]
		}
	}
	return ""
}

// extractPostID resolves the post or video ID. An explicit Post ID column
// wins; otherwise the Permalink path is tried, then the Story ID
// ("s:<digits>" or a bare digit string).
func extractPostID(postCol string, f *fieldReader) string {
	if postCol != "" {
		return NormalizeIDField(postCol)
	}
	if m := permalinkRe.FindStringSubmatch(f.get(fPermalink)); m != nil {
		return m[2]
	}
	story := f.get(fStoryID)
	if m := storyRe.FindStringSubmatch(story); m != nil {
		return m[1]
	}
	if digitsRe.MatchString(story) {
		return story
	}
	return ""
}

// parseBudget takes the first positive integer from the ad set budget,
// then the campaign budget, after stripping currency symbols and
// separators. The platform default is 50,000 minor units.
func parseBudget(adsetBudget, campaignBudget string) int64 {
	for _, s := range []string{adsetBudget, campaignBudget} {
		digits := nonDigitRe.ReplaceAllString(s, "")
		if digits == "" {
			continue
		}
		n, err := strconv.ParseInt(digits, 10, 64)
		if err == nil && n > 0 {
			return n
		}
	}
	return 50000
}

// deriveStatus returns ACTIVE only on a case-sensitive exact match in
// either status column; everything else is PAUSED.
func deriveStatus(campaignStatus, adsetRunStatus string) string {
	if campaignStatus == "ACTIVE" || adsetRunStatus == "ACTIVE" {
		return "ACTIVE"
	}
	return "PAUSED"
}

// mapGender maps the export's gender label to Facebook gender codes.
// Absent or unrecognised values target both genders.
func mapGender(s string) []int {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return []int{1}
	case "female":
		return []int{2}
	default:
		return []int{1, 2}
	}
}

// parseGeo builds geo targeting from the Addresses column
// ("(<lat>, <lon>) +<radius>km") or a comma-separated Countries column,
// falling back to country VN.
func parseGeo(addresses, countries string) domain.GeoLocations {
	if m := addressRe.FindStringSubmatch(addresses); m != nil {
		lat, latErr := strconv.ParseFloat(m[1], 64)
		lon, lonErr := strconv.ParseFloat(m[2], 64)
		radius, radErr := strconv.ParseFloat(m[3], 64)
		if latErr == nil && lonErr == nil && radErr == nil {
			return domain.GeoLocations{
				CustomLocations: []domain.CustomLocation{
					{Latitude: lat, Longitude: lon, Radius: radius},
				},
			}
		}
	}
	if countries != "" {
		var list []string
		for _, c := range strings.Split(countries, ",") {
			if c = strings.TrimSpace(c); c != "" {
				list = append(list, c)
			}
		}
		if len(list) > 0 {
			return domain.GeoLocations{Countries: list}
		}
	}
	return domain.GeoLocations{Countries: []string{"VN"}}
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// HasCampaignNameColumn reports whether the header set carries any
// recognised campaign-name variant. A file without one cannot produce a
// single valid row, so the whole request is rejected up front.
func HasCampaignNameColumn(headers []string) bool {
	for _, h := range headers {
		k := headerKey(h)
		for _, variant := range fieldVariants[fCampaignName] {
			if k == variant {
				return true
			}
		}
	}
	return false
}
