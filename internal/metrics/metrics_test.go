package metrics

import (
	"testing"
	"time"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		weight   float64
		height   float64
		expected float64
		ok       bool
	}{
		{70, 175, 22.9, true},
		{80, 180, 24.7, true},
		{41.5, 160, 16.2, true},
		{0, 175, 0, false},
		{70, 0, 0, false},
		{-70, 175, 0, false},
	}
	for _, tt := range tests {
		result, ok := BMI(tt.weight, tt.height)
		if ok != tt.ok || result != tt.expected {
			t.Errorf("BMI(%.1f, %.1f) = (%.1f, %v), want (%.1f, %v)",
				tt.weight, tt.height, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestKarvonenZones(t *testing.T) {
	zones := KarvonenZones(184, 41)

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"zone1", zones.Zone1HR, "113-127"},
		{"zone2", zones.Zone2HR, "127-141"},
		{"zone3", zones.Zone3HR, "141-155"},
		{"zone4", zones.Zone4HR, "155-170"},
		{"zone5", zones.Zone5HR, "170-184"},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s = %s, want %s", tt.name, tt.got, tt.expected)
		}
	}
}

func TestKarvonenZonesContiguous(t *testing.T) {
	// zone5 upper bound is always the max HR itself
	zones := KarvonenZones(190, 50)
	if zones.Zone5HR != "176-190" {
		t.Errorf("zone5 = %s, want 176-190", zones.Zone5HR)
	}
}

func TestEstimateVO2Max(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		time     string
		age      int
		expected float64
		ok       bool
	}{
		// 40:00 10K = 4.0 min/km pace, 483/4 = 120.75 → clamped to 85
		{"fast 10k clamps high", 10.0, "00:40:00", 25, 85.0, true},
		// 60:00 10K = 6.0 min/km, 483/6 = 80.5, age 25 no correction
		{"10k at 25", 10.0, "01:00:00", 25, 80.5, true},
		// same run at 45: 80.5 × 0.80 = 64.4
		{"10k at 45", 10.0, "01:00:00", 45, 64.4, true},
		// half marathon path uses its own coefficient
		{"half marathon", 21.097, "01:30:00", 25, 85.0, true},
		{"unsupported distance", 5.0, "00:18:30", 25, 0, false},
		{"bad time", 10.0, "pronto", 25, 0, false},
	}
	for _, tt := range tests {
		result, ok := EstimateVO2Max(tt.distance, tt.time, tt.age, 70)
		if ok != tt.ok || result != tt.expected {
			t.Errorf("%s: EstimateVO2Max(%.3f, %q, %d) = (%.1f, %v), want (%.1f, %v)",
				tt.name, tt.distance, tt.time, tt.age, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestEstimateVO2MaxClampLow(t *testing.T) {
	// a 3-hour 10K is 18 min/km: raw estimate 26.8, then heavy age
	// discount pushes it under the floor
	result, ok := EstimateVO2Max(10.0, "03:00:00", 90, 70)
	if !ok || result != 25.0 {
		t.Errorf("EstimateVO2Max low clamp = (%.1f, %v), want (25.0, true)", result, ok)
	}
}

func TestPace(t *testing.T) {
	tests := []struct {
		time     string
		distance float64
		expected string
	}{
		{"00:18:30", 5.0, "03:42/km"},
		{"00:40:00", 10.0, "04:00/km"},
		{"01:30:00", 21.097, "04:15/km"},
		{"03:00:00", 42.195, "04:15/km"},
		{"no-time", 10.0, PaceNotApplicable},
		{"00:40:00", 0, PaceNotApplicable},
	}
	for _, tt := range tests {
		if result := Pace(tt.time, tt.distance); result != tt.expected {
			t.Errorf("Pace(%q, %.3f) = %s, want %s", tt.time, tt.distance, result, tt.expected)
		}
	}
}

func TestWeeksUntil(t *testing.T) {
	in10Weeks := time.Now().AddDate(0, 0, 70).Format("2006-01-02")
	weeks, ok := WeeksUntil(in10Weeks)
	if !ok || (weeks != 9 && weeks != 10) {
		t.Errorf("WeeksUntil(+70d) = (%d, %v), want ~10 weeks", weeks, ok)
	}

	past := time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	weeks, ok = WeeksUntil(past)
	if !ok || weeks != 0 {
		t.Errorf("WeeksUntil(past) = (%d, %v), want (0, true)", weeks, ok)
	}

	if _, ok := WeeksUntil("mañana"); ok {
		t.Error("WeeksUntil should fail on unparseable date")
	}
}

func TestSuggestedPlanWeeks(t *testing.T) {
	tests := []struct {
		daysAhead int
		expected  int
	}{
		{28, 3},   // under 6 weeks: exactly what remains
		{70, 8},   // 10 weeks out: 8-week plan
		{100, 12}, // ~14 weeks out: 12-week plan
		{200, 16}, // ~28 weeks out: capped at 16
	}
	for _, tt := range tests {
		date := time.Now().AddDate(0, 0, tt.daysAhead).Format("2006-01-02")
		result, ok := SuggestedPlanWeeks(date)
		if !ok {
			t.Errorf("SuggestedPlanWeeks(+%dd) not ok", tt.daysAhead)
			continue
		}
		// the near-race bucket is time-of-day sensitive by one week
		if tt.daysAhead == 28 {
			if result < 3 || result > 4 {
				t.Errorf("SuggestedPlanWeeks(+28d) = %d, want 3 or 4", result)
			}
			continue
		}
		if result != tt.expected {
			t.Errorf("SuggestedPlanWeeks(+%dd) = %d, want %d", tt.daysAhead, result, tt.expected)
		}
	}

	past := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	if _, ok := SuggestedPlanWeeks(past); ok {
		t.Error("SuggestedPlanWeeks should fail for past dates")
	}
}

func TestDistanceDisplay(t *testing.T) {
	tests := []struct {
		km       float64
		expected string
	}{
		{5.0, "5K"},
		{10.0, "10K"},
		{15.0, "15K"},
		{21.097, "Media Maratón"},
		{21.1, "Media Maratón"},
		{42.195, "Maratón"},
		{8.0, "8K"},
		{12.5, "12.5K"},
	}
	for _, tt := range tests {
		if result := DistanceDisplay(tt.km); result != tt.expected {
			t.Errorf("DistanceDisplay(%.3f) = %s, want %s", tt.km, result, tt.expected)
		}
	}
}
