package aidoc

import (
	"math"

	"github.com/joseantonio2001/Running-Fit-Tech/internal/profile"
)

// Readiness bands by completeness percentage.
const (
	readinessOptimal      = "Óptimo para generar plan personalizado de alta calidad"
	readinessGood         = "Bueno, plan personalizado con algunas estimaciones"
	readinessBasic        = "Básico, plan genérico adaptado"
	readinessInsufficient = "Insuficiente, se recomienda completar más datos"
)

// Score computes the weighted completeness of the profile. Core fields
// weigh double because the plan quality degrades fastest without them;
// the remaining optional fields and collections weigh one point each.
func Score(p *profile.AthleteProfile) Completeness {
	const coreWeight = 2

	core := []bool{
		p.Name != "",
		p.Age != nil,
		p.Gender != "",
		p.MaxHR != nil,
		p.RestingHR != nil,
		p.AvgWeeklyKM != nil,
		p.AvailableTrainingDays != "",
		p.MainObjective != nil,
	}
	optional := []bool{
		p.HeightCM != nil,
		p.WeightKG != nil,
		p.VO2Max != nil,
		p.LactateThresholdBPM != nil,
		p.HRVMS != nil,
		p.TrainingDaysPerWeek != "",
		p.RunningExperienceYears != nil,
		p.CurrentTrainingPeriod != "",
		p.QualitySessionPreference != "",
		p.StrengthTrainingHistory.Known(),
		p.IncludeStrengthTraining.Known(),
		p.HasPersonalBests(),
		len(p.IntermediateRaces) > 0,
		len(p.Injuries) > 0,
	}

	total := len(core)*coreWeight + len(optional)
	completed := 0
	for _, present := range core {
		if present {
			completed += coreWeight
		}
	}
	for _, present := range optional {
		if present {
			completed++
		}
	}

	pct := math.Round(float64(completed)/float64(total)*1000) / 10
	return Completeness{
		CompletedPoints: completed,
		TotalPoints:     total,
		Percentage:      pct,
		ReadinessLevel:  readiness(pct),
	}
}

func readiness(pct float64) string {
	switch {
	case pct >= 80:
		return readinessOptimal
	case pct >= 60:
		return readinessGood
	case pct >= 40:
		return readinessBasic
	default:
		return readinessInsufficient
	}
}
