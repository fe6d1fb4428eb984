package normalize

import "strings"

// Weekdays holds the seven canonical names, Monday first.
var Weekdays = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

// Abbreviation and full-name lookup; keys are accent-folded lowercase.
// "x" is the usual Spanish shorthand for Wednesday.
var weekdayTokens = map[string]string{
	"l": "Lunes", "lun": "Lunes", "lunes": "Lunes",
	"m": "Martes", "mar": "Martes", "martes": "Martes",
	"x": "Miércoles", "mie": "Miércoles", "mier": "Miércoles", "miercoles": "Miércoles",
	"j": "Jueves", "jue": "Jueves", "jueves": "Jueves",
	"v": "Viernes", "vie": "Viernes", "viernes": "Viernes",
	"s": "Sábado", "sab": "Sábado", "sabado": "Sábado",
	"d": "Domingo", "dom": "Domingo", "domingo": "Domingo",
}

// Weekday maps an abbreviation or full name (case- and accent-insensitive)
// to its canonical form. Unmatched input comes back title-cased so the
// caller can still show it.
func Weekday(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	if day, ok := weekdayTokens[fold(input)]; ok {
		return day
	}
	return titleCase(input)
}

// IsWeekday reports whether s resolves to one of the seven canonical names.
func IsWeekday(s string) bool {
	_, ok := weekdayTokens[fold(s)]
	return ok
}

// WeekdayNumber returns the 1-based position (1=Lunes) of a canonical
// weekday name, or 0 when the name is not canonical.
func WeekdayNumber(day string) int {
	for i, d := range Weekdays {
		if d == day {
			return i + 1
		}
	}
	return 0
}
