package profile

import (
	"fmt"
	"strconv"
	"strings"
)

// IsComplete reports whether the profile holds the minimum data the plan
// generator needs. See MissingFields for the reportable breakdown.
func (p *AthleteProfile) IsComplete() bool {
	return len(p.MissingFields()) == 0
}

// MissingFields lists what still blocks plan generation, in user terms.
func (p *AthleteProfile) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(p.Name) == "" {
		missing = append(missing, "Nombre del atleta")
	}
	if p.Age == nil {
		missing = append(missing, "Edad")
	}
	if p.Gender == "" {
		missing = append(missing, "Género")
	}
	if p.MaxHR == nil && p.RestingHR == nil {
		missing = append(missing, "Frecuencia cardíaca (máxima o en reposo)")
	}
	if p.AvgWeeklyKM == nil && p.TrainingDaysPerWeek == "" {
		missing = append(missing, "Contexto de entrenamiento (volumen semanal o días por semana)")
	}
	if p.MainObjective == nil {
		missing = append(missing, "Objetivo principal")
	}
	return missing
}

// Validate checks structural invariants before persisting. These are
// warnings surfaced to the user, never a hard block.
func (p *AthleteProfile) Validate() []string {
	var errs []string
	if p.MaxHR != nil && p.RestingHR != nil && *p.MaxHR <= *p.RestingHR {
		errs = append(errs, "La FCmáx debe ser mayor que la FCrep")
	}
	if p.Age != nil && (*p.Age < 10 || *p.Age > 100) {
		errs = append(errs, "Edad debe estar entre 10 y 100 años")
	}
	if p.WeightKG != nil && (*p.WeightKG < 30 || *p.WeightKG > 200) {
		errs = append(errs, "Peso debe estar entre 30 y 200 kg")
	}
	if p.HeightCM != nil && (*p.HeightCM < 100 || *p.HeightCM > 250) {
		errs = append(errs, "Altura debe estar entre 100 y 250 cm")
	}
	if p.AvgWeeklyKM != nil && (*p.AvgWeeklyKM < 0 || *p.AvgWeeklyKM > 300) {
		errs = append(errs, "Volumen semanal debe estar entre 0 y 300 km")
	}
	if p.Gender != "" && p.Gender != "Masculino" && p.Gender != "Femenino" && p.Gender != "Otro" {
		errs = append(errs, "Género debe ser uno de: Masculino, Femenino, Otro")
	}
	return errs
}

// ValidateTrainingDaysCoherence warns when the requested available training
// days cannot fit in the week once the unavailable days are removed. It
// never mutates; the caller decides whether to re-ask or clear a field.
func (p *AthleteProfile) ValidateTrainingDaysCoherence() []string {
	if p.AvailableTrainingDays == "" || p.UnavailableDays == "" {
		return nil
	}
	available, ok := dayRangeUpper(p.AvailableTrainingDays)
	if !ok {
		return nil
	}
	blocked := countDays(p.UnavailableDays)
	remaining := 7 - blocked
	if available > remaining {
		return []string{fmt.Sprintf(
			"Días disponibles (%d) superan los días libres de la semana (%d) tras descartar %d día(s) no disponible(s)",
			available, remaining, blocked)}
	}
	return nil
}

// dayRangeUpper reads "4" or "4-5" and returns the most demanding count.
func dayRangeUpper(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '-'); i >= 0 {
		s = s[i+1:]
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 7 {
		return 0, false
	}
	return n, true
}

func countDays(csv string) int {
	n := 0
	for _, tok := range strings.Split(csv, ",") {
		if strings.TrimSpace(tok) != "" {
			n++
		}
	}
	return n
}
