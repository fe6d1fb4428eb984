package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Accepted sports-time forms. The two-field form is minutes:seconds, never
// hours:minutes — runners type "18:30" meaning an 18½-minute 5K. Minutes
// past 59 roll over into hours ("90:00" → "01:30:00").
var durationPatterns = []struct {
	re        *regexp.Regexp
	twoFields bool
}{
	{regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2})$`), false}, // HH:MM:SS
	{regexp.MustCompile(`^(\d{1,3}):(\d{2})$`), true},          // MM:SS
	{regexp.MustCompile(`^(\d+)\.(\d{2})\.(\d{2})$`), false},   // H.MM.SS
	{regexp.MustCompile(`^(\d+)h(\d{2})m(\d{2})s$`), false},    // 1h25m30s
	{regexp.MustCompile(`^(\d+)h(\d{2})m$`), false},            // 1h25m
}

// Duration parses a sports time and renders it as zero-padded "HH:MM:SS".
// Returns ok=false when no pattern matches or a parsed minute/second field
// is out of range.
func Duration(input string) (string, bool) {
	cleaned := strings.TrimSpace(input)
	cleaned = strings.ReplaceAll(cleaned, "'", ":")
	cleaned = strings.ReplaceAll(cleaned, `"`, "")
	cleaned = strings.ToLower(cleaned)

	for _, p := range durationPatterns {
		m := p.re.FindStringSubmatch(cleaned)
		if m == nil {
			continue
		}
		var hours, minutes, seconds int
		if p.twoFields {
			minutes, _ = strconv.Atoi(m[1])
			seconds, _ = strconv.Atoi(m[2])
			if minutes >= 60 {
				hours = minutes / 60
				minutes = minutes % 60
			}
		} else {
			hours, _ = strconv.Atoi(m[1])
			minutes, _ = strconv.Atoi(m[2])
			if len(m) > 3 {
				seconds, _ = strconv.Atoi(m[3])
			}
		}
		if minutes >= 60 || seconds >= 60 {
			return "", false
		}
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds), true
	}
	return "", false
}

// DurationSeconds converts an "HH:MM:SS" or "MM:SS" string to total
// seconds. Used by the derived-metrics engine; same never-raise contract.
func DurationSeconds(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	var h, m, sec int
	var err error
	switch len(parts) {
	case 3:
		if h, err = strconv.Atoi(parts[0]); err != nil {
			return 0, false
		}
		if m, err = strconv.Atoi(parts[1]); err != nil {
			return 0, false
		}
		if sec, err = strconv.Atoi(parts[2]); err != nil {
			return 0, false
		}
	case 2:
		if m, err = strconv.Atoi(parts[0]); err != nil {
			return 0, false
		}
		if sec, err = strconv.Atoi(parts[1]); err != nil {
			return 0, false
		}
	default:
		return 0, false
	}
	total := h*3600 + m*60 + sec
	if total <= 0 {
		return 0, false
	}
	return total, true
}
