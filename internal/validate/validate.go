// Package validate holds the coherence validators: pure functions taking
// raw values and returning human-readable warnings, never errors. An empty
// slice means nothing to flag; the caller decides whether to re-ask.
package validate

import (
	"fmt"
	"time"

	"github.com/joseantonio2001/Running-Fit-Tech/internal/metrics"
)

// HeartRates flags physiologically implausible max/resting combinations.
func HeartRates(maxHR, restingHR *int) []string {
	var warnings []string
	if maxHR != nil && restingHR != nil {
		if *maxHR <= *restingHR {
			warnings = append(warnings, "La FCmáx debe ser mayor que la FCrep")
		} else if *maxHR-*restingHR < 20 {
			warnings = append(warnings, "La diferencia entre FCmáx y FCrep parece muy pequeña")
		}
	}
	if maxHR != nil && (*maxHR < 120 || *maxHR > 220) {
		warnings = append(warnings, "FCmáx fuera del rango típico (120-220 ppm)")
	}
	if restingHR != nil && (*restingHR < 30 || *restingHR > 100) {
		warnings = append(warnings, "FCrep fuera del rango típico (30-100 ppm)")
	}
	return warnings
}

// PhysicalMetrics flags out-of-range age/weight/height and a BMI outside
// the runner-typical band.
func PhysicalMetrics(age *int, weightKG *float64, heightCM *int) []string {
	var warnings []string
	if age != nil && (*age < 10 || *age > 100) {
		warnings = append(warnings, "Edad fuera del rango válido (10-100 años)")
	}
	if weightKG != nil && (*weightKG < 30 || *weightKG > 200) {
		warnings = append(warnings, "Peso fuera del rango típico (30-200 kg)")
	}
	if heightCM != nil && (*heightCM < 100 || *heightCM > 250) {
		warnings = append(warnings, "Altura fuera del rango típico (100-250 cm)")
	}
	if weightKG != nil && heightCM != nil {
		if bmi, ok := metrics.BMI(*weightKG, float64(*heightCM)); ok && (bmi < 15 || bmi > 40) {
			warnings = append(warnings, fmt.Sprintf("BMI calculado (%.1f) fuera del rango típico para atletas", bmi))
		}
	}
	return warnings
}

// RaceDate checks an ISO date at entry time: it must parse and lie in the
// future. Races more than two years out are valid but worth a warning.
// Already-persisted historical races are never re-checked with this.
func RaceDate(dateStr, raceName string) (valid bool, message string) {
	raceDate, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return false, "Formato de fecha inválido. Use YYYY-MM-DD"
	}
	if raceName == "" {
		raceName = "la carrera"
	}
	today := time.Now().Truncate(24 * time.Hour)
	if !raceDate.After(today) {
		return false, fmt.Sprintf("La fecha de %s debe ser futura", raceName)
	}
	if days := int(raceDate.Sub(today).Hours() / 24); days > 730 {
		return true, fmt.Sprintf("Advertencia: %s es en %d días", raceName, days)
	}
	return true, ""
}
