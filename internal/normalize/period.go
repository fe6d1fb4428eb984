package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// PeriodStartingNow is the sentinel for athletes with no current training
// streak ("empezando", "starting", "0 - empezando").
const PeriodStartingNow = "Empezando ahora"

// Unit tokens, accent-folded lowercase, Spanish and English with the usual
// abbreviations. Values are the singular Spanish unit.
var periodUnits = map[string]string{
	// días
	"d": "día", "dia": "día", "dias": "día", "day": "día", "days": "día",
	// semanas
	"s": "semana", "semana": "semana", "semanas": "semana",
	"w": "semana", "week": "semana", "weeks": "semana",
	// meses
	"m": "mes", "mes": "mes", "meses": "mes",
	"mo": "mes", "month": "mes", "months": "mes",
	// años
	"a": "año", "ano": "año", "anos": "año",
	"y": "año", "yr": "año", "yrs": "año", "year": "año", "years": "año",
}

var periodPlural = map[string]string{
	"día": "días", "semana": "semanas", "mes": "meses", "año": "años",
}

var periodRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([a-zñ]+)$`)
var bareNumberRe = regexp.MustCompile(`^\d+(?:\.\d+)?$`)

// Period normalizes a training-period phrase ("3 weeks", "2 m", "1 año")
// to "<n> <spanish unit>" with pluralization matching the number. Bare
// numbers default to months. Returns ok=false for unrecognized input.
func Period(input string) (string, bool) {
	text := fold(input)
	if text == "" {
		return "", false
	}
	for _, word := range []string{"empezando", "starting", "comenzando"} {
		if strings.Contains(text, word) {
			return PeriodStartingNow, true
		}
	}
	if m := periodRe.FindStringSubmatch(text); m != nil {
		unit, ok := periodUnits[m[2]]
		if !ok {
			unit, ok = periodUnitPrefix(m[2])
		}
		if !ok {
			return "", false
		}
		return formatPeriod(m[1], unit), true
	}
	if bareNumberRe.MatchString(text) {
		return formatPeriod(text, "mes"), true
	}
	return "", false
}

// periodUnitPrefix resolves partial unit spellings ("seman", "mont") by
// prefix match against the known tokens.
func periodUnitPrefix(token string) (string, bool) {
	for key, unit := range periodUnits {
		if len(key) > 1 && (strings.HasPrefix(token, key) || strings.HasPrefix(key, token)) {
			return unit, true
		}
	}
	return "", false
}

func formatPeriod(number, singular string) string {
	n, _ := strconv.ParseFloat(number, 64)
	display := strconv.FormatFloat(n, 'f', -1, 64)
	if n == 1 {
		return display + " " + singular
	}
	return display + " " + periodPlural[singular]
}
