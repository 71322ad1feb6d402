package csvmap

import (
	"regexp"
	"strconv"
	"strings"
)

// sciNotationRe matches the scientific-notation shape spreadsheets force
// numeric ID columns into, e.g. "1.04882E+14".
var sciNotationRe = regexp.MustCompile(`^(\d+)(?:\.(\d+))?[eE]([+-]?\d+)$`)

// NormalizeIDField recovers an exact integer string from a spreadsheet-
// corrupted ID value. Scientific notation is expanded by shifting the
// decimal point with string arithmetic; Facebook IDs are 15-16 digits, so
// routing through IEEE-754 floats would silently lose the low digits.
// Quote wrapping and the Excel ="..." formula marker are stripped from
// plain values. Anything else is returned unchanged and left for the
// validator to reject.
func NormalizeIDField(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "=")
	s = strings.Trim(s, `"'`)
	s = strings.TrimSpace(s)

	m := sciNotationRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	out, ok := expandScientific(m[1], m[2], m[3])
	if !ok {
		return s
	}
	return out
}

// expandScientific rebuilds the integer string for intPart.fracPart*10^exp.
// It reports false when the value is not an integer (negative exponent or
// fraction digits left over after the shift).
func expandScientific(intPart, fracPart, expPart string) (string, bool) {
	exp, err := strconv.Atoi(expPart)
	if err != nil || exp < 0 {
		return "", false
	}
	digits := intPart + fracPart
	point := len(intPart) + exp
	if point >= len(digits) {
		return digits + strings.Repeat("0", point-len(digits)), true
	}
	// exponent smaller than the fraction; only valid if the tail is zeros
	if strings.Trim(digits[point:], "0") != "" {
		return "", false
	}
	return digits[:point], true
}

// IsSciNotation reports whether a raw column value carries the scientific-
// notation marker. The validator uses this to tell users to reformat the
// column as text even when reconstruction succeeded.
func IsSciNotation(raw string) bool {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "=")
	s = strings.Trim(s, `"'`)
	return sciNotationRe.MatchString(strings.TrimSpace(s))
}
