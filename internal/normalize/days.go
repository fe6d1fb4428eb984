package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	dayRangeRe  = regexp.MustCompile(`^(\d+)\s*[-a]\s*(\d+)$`)
	daySingleRe = regexp.MustCompile(`^(\d+)$`)
)

// DayRange normalizes day-count input: "4", "4-5", "3 a 4" (the "a" is the
// Spanish conjunction). Reversed endpoints are swapped; anything outside
// 1–7, or unrecognized, is returned unchanged so the caller can re-ask.
func DayRange(input string) string {
	trimmed := strings.TrimSpace(input)
	cleaned := strings.ToLower(trimmed)

	if m := dayRangeRe.FindStringSubmatch(cleaned); m != nil {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		if start > end {
			start, end = end, start
		}
		if start < 1 || end > 7 {
			return trimmed
		}
		return fmt.Sprintf("%d-%d", start, end)
	}
	if daySingleRe.MatchString(cleaned) {
		if n, _ := strconv.Atoi(cleaned); n >= 1 && n <= 7 {
			return strconv.Itoa(n)
		}
	}
	return trimmed
}

// UnavailableDays normalizes a comma- or semicolon-separated list of day
// tokens into canonical comma-joined weekday names. Unrecognized tokens are
// dropped; empty input stays empty, meaning "no restriction".
func UnavailableDays(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	var days []string
	seen := make(map[string]struct{})
	for _, tok := range splitDayList(input) {
		if !IsWeekday(tok) {
			continue
		}
		day := Weekday(tok)
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	return strings.Join(days, ", ")
}

// QualityDays normalizes the preferred quality-session days. The field is
// softer than UnavailableDays: "no preference" phrases collapse to a fixed
// sentinel instead of an empty string.
func QualityDays(input string) string {
	folded := fold(input)
	if folded == "" || folded == "ninguna" || folded == "sin preferencia" || folded == "no" {
		return "Sin preferencia"
	}
	var days []string
	seen := make(map[string]struct{})
	for _, tok := range splitDayList(input) {
		day := Weekday(tok)
		if day == "" {
			continue
		}
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	if len(days) == 0 {
		return "Sin preferencia"
	}
	return strings.Join(days, ", ")
}

func splitDayList(input string) []string {
	for _, sep := range []string{";", " y ", " e "} {
		input = strings.ReplaceAll(input, sep, ",")
	}
	var out []string
	for _, tok := range strings.Split(input, ",") {
		if t := strings.TrimSpace(tok); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// DayCount converts a normalized day-range string to its upper bound:
// "5" → 5, "4-5" → 5. Returns 0,false for anything else.
func DayCount(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if m := dayRangeRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[2])
		return n, n >= 1 && n <= 7
	}
	if daySingleRe.MatchString(s) {
		n, _ := strconv.Atoi(s)
		return n, n >= 1 && n <= 7
	}
	return 0, false
}
