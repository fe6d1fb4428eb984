// Package metrics is the derived-metrics engine: pure formulas over
// already-validated profile values. Nothing here raises; impossible inputs
// produce a no-value result or a sentinel string.
package metrics

import (
	"fmt"
	"math"
	"time"

	"github.com/joseantonio2001/Running-Fit-Tech/internal/normalize"
	"github.com/joseantonio2001/Running-Fit-Tech/internal/profile"
)

// BMI computes weight(kg)/height(m)² rounded to one decimal. Returns
// ok=false when either input is missing or non-positive.
func BMI(weightKG, heightCM float64) (float64, bool) {
	if weightKG <= 0 || heightCM <= 0 {
		return 0, false
	}
	heightM := heightCM / 100
	return math.Round(weightKG/(heightM*heightM)*10) / 10, true
}

// Karvonen intensity bands as fractions of heart-rate reserve.
var karvonenBands = [5][2]float64{
	{0.50, 0.60}, // Z1 recuperación
	{0.60, 0.70}, // Z2 aeróbico base
	{0.70, 0.80}, // Z3 aeróbico
	{0.80, 0.90}, // Z4 umbral
	{0.90, 1.00}, // Z5 VO2máx
}

// KarvonenZones derives the five training zones from max and resting HR:
// target = resting + band × (max − resting), rounded to the nearest bpm.
// Callers must ensure maxHR > restingHR first; the function is total over
// that domain only.
func KarvonenZones(maxHR, restingHR int) *profile.TrainingZones {
	reserve := float64(maxHR - restingHR)
	bound := func(frac float64) int {
		return int(math.Round(float64(restingHR) + frac*reserve))
	}
	zone := func(i int) string {
		return fmt.Sprintf("%d-%d", bound(karvonenBands[i][0]), bound(karvonenBands[i][1]))
	}
	return &profile.TrainingZones{
		Zone1HR: zone(0),
		Zone2HR: zone(1),
		Zone3HR: zone(2),
		Zone4HR: zone(3),
		Zone5HR: zone(4),
	}
}

// VO2max estimation coefficients per supported race distance: the estimate
// is coefficient / (pace in min/km). Taken from the final revision of the
// source formulas; other distances are unsupported.
const (
	vo2Coeff10K  = 483.0
	vo2CoeffHalf = 460.0
)

// EstimateVO2Max estimates VO2max (ml/kg/min) from a 10K or half-marathon
// result, discounting ~1%/year of age beyond 25 and clamping to the 25–85
// physiological band. Weight is part of the contract but this constant set
// does not use it. Returns ok=false for unsupported distances or a time
// that does not parse.
func EstimateVO2Max(distanceKM float64, timeStr string, age int, weightKG float64) (float64, bool) {
	_ = weightKG
	totalSec, ok := normalize.DurationSeconds(timeStr)
	if !ok {
		return 0, false
	}
	paceMinPerKM := float64(totalSec) / 60 / distanceKM

	var estimate float64
	switch {
	case distanceKM == 10.0:
		estimate = vo2Coeff10K / paceMinPerKM
	case distanceKM == 21.097:
		estimate = vo2CoeffHalf / paceMinPerKM
	default:
		return 0, false
	}

	if age > 25 {
		estimate *= 1.0 - float64(age-25)*0.01
	}
	estimate = math.Max(25.0, math.Min(85.0, estimate))
	return math.Round(estimate*10) / 10, true
}

// PaceNotApplicable is the sentinel Pace returns when a time cannot be
// parsed or the distance is non-positive.
const PaceNotApplicable = "N/A"

// Pace renders average pace as "MM:SS/km" from a finish time and distance.
func Pace(timeStr string, distanceKM float64) string {
	totalSec, ok := normalize.DurationSeconds(timeStr)
	if !ok || distanceKM <= 0 {
		return PaceNotApplicable
	}
	perKM := float64(totalSec) / distanceKM
	return fmt.Sprintf("%02d:%02d/km", int(perKM)/60, int(perKM)%60)
}

// WeeksUntil returns whole weeks from now until an ISO race date, floored
// at zero. ok=false when the date does not parse.
func WeeksUntil(raceDate string) (int, bool) {
	d, err := time.Parse("2006-01-02", raceDate)
	if err != nil {
		return 0, false
	}
	days := int(time.Until(d).Hours() / 24)
	if days < 0 {
		return 0, true
	}
	return days / 7, true
}

// SuggestedPlanWeeks buckets the time until a race into a plan length:
// very near races get exactly the remaining weeks, everything else maps to
// a fixed 8/12/16-week plan. ok=false when the date is unparseable or not
// in the future.
func SuggestedPlanWeeks(raceDate string) (int, bool) {
	d, err := time.Parse("2006-01-02", raceDate)
	if err != nil || !d.After(time.Now()) {
		return 0, false
	}
	weeks := int(time.Until(d).Hours()/24) / 7
	switch {
	case weeks < 6:
		return weeks, true
	case weeks < 12:
		return 8, true
	case weeks < 20:
		return 12, true
	default:
		return 16, true
	}
}

// DistanceDisplay renders a distance with its common race name when one
// matches within 100 m.
func DistanceDisplay(distanceKM float64) string {
	named := []struct {
		km   float64
		name string
	}{
		{5.0, "5K"},
		{10.0, "10K"},
		{15.0, "15K"},
		{21.097, "Media Maratón"},
		{42.195, "Maratón"},
	}
	for _, d := range named {
		if math.Abs(distanceKM-d.km) < 0.1 {
			return d.name
		}
	}
	if distanceKM == math.Trunc(distanceKM) {
		return fmt.Sprintf("%dK", int(distanceKM))
	}
	return fmt.Sprintf("%.1fK", distanceKM)
}
