package csvmap

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"adlift/internal/core/domain"
)

// Facebook's platform minimum daily budget in minor currency units.
const MinDailyBudget = 30000

const (
	minAge = 13
	maxAge = 65
	// Facebook object IDs are at least 10 digits; shorter digit strings
	// are almost always truncation artifacts.
	minIDLen = 10
)

var (
	offsetTimeRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}[+-]\d{4}$`)
	plainTimeRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
)

// Validate applies every rule to one candidate and returns all failures.
// Rules do not short-circuit across fields, but each field yields at most
// one error per cause so a single mistake is reported exactly once.
func Validate(c Candidate) []domain.RowError {
	var errs []domain.RowError
	add := func(field, format string, args ...any) {
		errs = append(errs, domain.RowError{
			Row:     c.Line,
			Field:   field,
			Message: fmt.Sprintf("row %d: %s", c.Line, fmt.Sprintf(format, args...)),
		})
	}
	in := c.Input

	if strings.TrimSpace(in.Name) == "" {
		add("name", "campaign name is required")
	}

	validateID(add, "page_id", in.RawPageID, in.PageID)
	validateID(add, "post_id", in.RawPostID, in.PostID)

	switch {
	case in.DailyBudget == 0:
		add("daily_budget", "daily budget is required")
	case in.DailyBudget < MinDailyBudget:
		add("daily_budget", "daily budget %d is below the platform minimum of %d minor units", in.DailyBudget, MinDailyBudget)
	}

	switch {
	case in.AgeMin == 0:
		add("age_min", "minimum age is required")
	case in.AgeMin < minAge:
		add("age_min", "minimum age %d is below %d", in.AgeMin, minAge)
	}
	switch {
	case in.AgeMax == 0:
		add("age_max", "maximum age is required")
	case in.AgeMax > maxAge:
		add("age_max", "maximum age %d is above %d", in.AgeMax, maxAge)
	}
	if in.AgeMin != 0 && in.AgeMax != 0 && in.AgeMin > in.AgeMax {
		add("age_min", "minimum age %d exceeds maximum age %d", in.AgeMin, in.AgeMax)
	}

	if strings.TrimSpace(in.StartTime) == "" {
		add("start_time", "start time is required")
	} else if !validDateTime(in.StartTime) {
		add("start_time", "start time %q must be YYYY-MM-DDTHH:mm:ss±HHMM or YYYY-MM-DD HH:mm:ss", in.StartTime)
	}
	if end := strings.TrimSpace(in.EndTime); end != "" && !validDateTime(end) {
		add("end_time", "end time %q must be YYYY-MM-DDTHH:mm:ss±HHMM or YYYY-MM-DD HH:mm:ss", in.EndTime)
	}

	return errs
}

// validateID checks one ID field, emitting at most one error. A value
// that arrived in scientific notation gets the data-hygiene message even
// when reconstruction succeeded, because the spreadsheet column needs to
// be reformatted as text before the next export.
func validateID(add func(field, format string, args ...any), field, raw, normalized string) {
	if raw != "" && IsSciNotation(raw) {
		add(field, "value %q was exported in scientific notation; reformat the column as text in the spreadsheet", raw)
		return
	}
	switch {
	case normalized == "":
		add(field, "%s is required", strings.ReplaceAll(field, "_", " "))
	case !digitsRe.MatchString(normalized):
		add(field, "%s %q must contain only digits", strings.ReplaceAll(field, "_", " "), normalized)
	case len(normalized) < minIDLen:
		add(field, "%s %q is too short to be a valid ID (need at least %d digits)", strings.ReplaceAll(field, "_", " "), normalized, minIDLen)
	}
}

func validDateTime(s string) bool {
	s = strings.TrimSpace(s)
	switch {
	case offsetTimeRe.MatchString(s):
		_, err := time.Parse("2006-01-02T15:04:05-0700", s)
		return err == nil
	case plainTimeRe.MatchString(s):
		_, err := time.Parse("2006-01-02 15:04:05", s)
		return err == nil
	default:
		return false
	}
}

// SuggestPostID detects the common data-entry mistake of pasting the
// combined "<page_id>_<post_id>" value into the post ID column. It
// returns the stripped candidate when the remainder still looks like a
// valid ID. Callers must surface the suggestion as an error instead of
// silently correcting it.
func SuggestPostID(pageID, postID string) (string, bool) {
	if pageID == "" || postID == "" || postID == pageID {
		return "", false
	}
	if !strings.HasPrefix(postID, pageID) {
		return "", false
	}
	rest := strings.TrimPrefix(strings.TrimPrefix(postID, pageID), "_")
	if digitsRe.MatchString(rest) && len(rest) >= minIDLen {
		return rest, true
	}
	return "", false
}
