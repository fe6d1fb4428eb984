package normalize

import "testing"

func TestDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"18:30", "00:18:30", true},  // two fields are minutes:seconds
		{"90:00", "01:30:00", true},  // minutes roll over into hours
		{"1:25:30", "01:25:30", true},
		{"01:25:30", "01:25:30", true},
		{"1.25.30", "01:25:30", true},
		{"1h25m30s", "01:25:30", true},
		{"1h25m", "01:25:00", true},
		{"  18:30  ", "00:18:30", true},
		{"18'30\"", "00:18:30", true}, // apostrophe notation
		{"0:59", "00:00:59", true},
		{"125:45", "02:05:45", true},
		{"18:61", "", false}, // seconds out of range
		{"1:61:00", "", false},
		{"abc", "", false},
		{"", "", false},
		{"18", "", false},
	}

	for _, tt := range tests {
		result, ok := Duration(tt.input)
		if ok != tt.ok || result != tt.expected {
			t.Errorf("Duration(%q) = (%q, %v), want (%q, %v)", tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestDurationSeconds(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		ok       bool
	}{
		{"00:18:30", 1110, true},
		{"18:30", 1110, true},
		{"01:30:00", 5400, true},
		{"00:00:00", 0, false},
		{"nope", 0, false},
	}
	for _, tt := range tests {
		result, ok := DurationSeconds(tt.input)
		if ok != tt.ok || result != tt.expected {
			t.Errorf("DurationSeconds(%q) = (%d, %v), want (%d, %v)", tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestGender(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"M", GenderMale},
		{"masculino", GenderMale},
		{"HOMBRE", GenderMale},
		{"Varón", GenderMale},
		{"f", GenderFemale},
		{"Mujer", GenderFemale},
		{"female", GenderFemale},
		{"no binario", GenderOther},
		{"", GenderOther},
		{"xyz", GenderOther},
	}
	for _, tt := range tests {
		if result := Gender(tt.input); result != tt.expected {
			t.Errorf("Gender(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}

	// the output domain is exactly the three canonical values
	valid := map[string]bool{GenderMale: true, GenderFemale: true, GenderOther: true}
	for _, input := range []string{"", "m", "F", "?", "prefiero no decirlo", "42"} {
		if !valid[Gender(input)] {
			t.Errorf("Gender(%q) = %q, outside canonical set", input, Gender(input))
		}
	}
}

func TestWeekday(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"l", "Lunes"},
		{"LUNES", "Lunes"},
		{"x", "Miércoles"},
		{"miercoles", "Miércoles"},
		{"sab", "Sábado"},
		{"Domingo", "Domingo"},
		{"", ""},
		{"feriado", "Feriado"}, // unmatched comes back title-cased
	}
	for _, tt := range tests {
		if result := Weekday(tt.input); result != tt.expected {
			t.Errorf("Weekday(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestWeekdayNumber(t *testing.T) {
	if n := WeekdayNumber("Lunes"); n != 1 {
		t.Errorf("WeekdayNumber(Lunes) = %d, want 1", n)
	}
	if n := WeekdayNumber("Domingo"); n != 7 {
		t.Errorf("WeekdayNumber(Domingo) = %d, want 7", n)
	}
	if n := WeekdayNumber("lunes"); n != 0 {
		t.Errorf("WeekdayNumber(lunes) = %d, want 0 for non-canonical", n)
	}
}

func TestDayRange(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"4", "4"},
		{"4-5", "4-5"},
		{"5-4", "4-5"}, // reversed endpoints swap
		{"3 a 4", "3-4"},
		{"0", "0"},   // out of range, unchanged
		{"6-9", "6-9"},
		{"muchos", "muchos"},
		{"  4-5  ", "4-5"},
	}
	for _, tt := range tests {
		if result := DayRange(tt.input); result != tt.expected {
			t.Errorf("DayRange(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestDayCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		ok       bool
	}{
		{"5", 5, true},
		{"4-5", 5, true},
		{"1-7", 7, true},
		{"8", 0, false},
		{"varios", 0, false},
	}
	for _, tt := range tests {
		result, ok := DayCount(tt.input)
		if ok != tt.ok || result != tt.expected {
			t.Errorf("DayCount(%q) = (%d, %v), want (%d, %v)", tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestUnavailableDays(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"lunes", "Lunes"},
		{"l, x", "Lunes, Miércoles"},
		{"sabado y domingo", "Sábado, Domingo"},
		{"viernes; sabado", "Viernes, Sábado"},
		{"lunes, lunes", "Lunes"},       // dedupe
		{"lunes, festivo", "Lunes"},     // non-days dropped
		{"nada de esto", ""},
	}
	for _, tt := range tests {
		if result := UnavailableDays(tt.input); result != tt.expected {
			t.Errorf("UnavailableDays(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestQualityDays(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "Sin preferencia"},
		{"no", "Sin preferencia"},
		{"sin preferencia", "Sin preferencia"},
		{"martes y jueves", "Martes, Jueves"},
		{"m, j", "Martes, Jueves"},
	}
	for _, tt := range tests {
		if result := QualityDays(tt.input); result != tt.expected {
			t.Errorf("QualityDays(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestPeriod(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"2 meses", "2 meses", true},
		{"1 mes", "1 mes", true},
		{"3 weeks", "3 semanas", true},
		{"1 semana", "1 semana", true},
		{"2 m", "2 meses", true},
		{"1 año", "1 año", true},
		{"2 anos", "2 años", true},
		{"6", "6 meses", true}, // bare number defaults to months
		{"empezando", PeriodStartingNow, true},
		{"0 - empezando", PeriodStartingNow, true},
		{"starting now", PeriodStartingNow, true},
		{"un rato", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		result, ok := Period(tt.input)
		if ok != tt.ok || result != tt.expected {
			t.Errorf("Period(%q) = (%q, %v), want (%q, %v)", tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestTerrain(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"llano", TerrainFlat},
		{"FLAT", TerrainFlat},
		{"carretera", TerrainFlat},
		{"montañoso", TerrainHilly},
		{"hilly", TerrainHilly},
		{"mixto", TerrainMixed},
		{"trail", TerrainTrail},
		{"pista", TerrainTrack},
		{"adoquines", "Adoquines"}, // open field, title-cased passthrough
		{"", ""},
	}
	for _, tt := range tests {
		if result := Terrain(tt.input); result != tt.expected {
			t.Errorf("Terrain(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}
