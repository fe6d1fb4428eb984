package report

import (
	"fmt"
	"strings"

	"github.com/joseantonio2001/Running-Fit-Tech/internal/aidoc"
	"github.com/joseantonio2001/Running-Fit-Tech/internal/metrics"
	"github.com/joseantonio2001/Running-Fit-Tech/internal/profile"
)

const notProvided = "No indicado"

// AthleteSheet renders the profile as a Markdown technical sheet.
func AthleteSheet(p *profile.AthleteProfile) string {
	var b strings.Builder

	name := p.Name
	if name == "" {
		name = "Atleta sin nombre"
	}
	fmt.Fprintf(&b, "# Ficha Técnica del Atleta: %s\n\n", name)

	score := aidoc.Score(p)
	fmt.Fprintf(&b, "**Completitud del perfil:** %.1f%% (%s)\n\n", score.Percentage, score.ReadinessLevel)

	b.WriteString("## Datos Personales\n\n")
	writeRow(&b, "Edad", intStr(p.Age, "años"))
	writeRow(&b, "Género", orDefault(p.Gender))
	writeRow(&b, "Altura", intStr(p.HeightCM, "cm"))
	writeRow(&b, "Peso", floatStr(p.WeightKG, "kg"))
	if p.WeightKG != nil && p.HeightCM != nil {
		if bmi, ok := metrics.BMI(*p.WeightKG, float64(*p.HeightCM)); ok {
			writeRow(&b, "IMC", fmt.Sprintf("%.1f", bmi))
		}
	}
	b.WriteString("\n")

	b.WriteString("## Métricas Fisiológicas\n\n")
	writeRow(&b, "FC máxima", intStr(p.MaxHR, "ppm"))
	writeRow(&b, "FC en reposo", intStr(p.RestingHR, "ppm"))
	writeRow(&b, "VO2 máx estimado", floatStr(p.VO2Max, "ml/kg/min"))
	writeRow(&b, "Umbral de lactato", intStr(p.LactateThresholdBPM, "ppm"))
	writeRow(&b, "HRV", intStr(p.HRVMS, "ms"))
	b.WriteString("\n")

	zones := p.TrainingZones
	if zones == nil && p.MaxHR != nil && p.RestingHR != nil && *p.MaxHR > *p.RestingHR {
		zones = metrics.KarvonenZones(*p.MaxHR, *p.RestingHR)
	}
	if zones != nil {
		b.WriteString("### Zonas de Entrenamiento (Karvonen)\n\n")
		b.WriteString("| Zona | Intensidad | Rango FC |\n|------|-----------|----------|\n")
		fmt.Fprintf(&b, "| Z1 Recuperación | 50-60%% | %s |\n", zones.Zone1HR)
		fmt.Fprintf(&b, "| Z2 Aeróbico ligero | 60-70%% | %s |\n", zones.Zone2HR)
		fmt.Fprintf(&b, "| Z3 Aeróbico medio | 70-80%% | %s |\n", zones.Zone3HR)
		fmt.Fprintf(&b, "| Z4 Umbral | 80-90%% | %s |\n", zones.Zone4HR)
		fmt.Fprintf(&b, "| Z5 VO2máx | 90-100%% | %s |\n\n", zones.Zone5HR)
	}

	b.WriteString("## Contexto de Entrenamiento\n\n")
	writeRow(&b, "Volumen semanal", floatStr(p.AvgWeeklyKM, "km"))
	writeRow(&b, "Días de entrenamiento por semana", orDefault(p.TrainingDaysPerWeek))
	writeRow(&b, "Experiencia", floatStr(p.RunningExperienceYears, "años"))
	writeRow(&b, "Período actual de entrenamiento", orDefault(p.CurrentTrainingPeriod))
	writeRow(&b, "Días disponibles", orDefault(p.AvailableTrainingDays))
	writeRow(&b, "Días no disponibles", orDefault(p.UnavailableDays))
	writeRow(&b, "Preferencia sesiones de calidad", orDefault(p.QualitySessionPreference))
	writeRow(&b, "Historial de fuerza", p.StrengthTrainingHistory.String())
	writeRow(&b, "Incluir fuerza en el plan", p.IncludeStrengthTraining.String())
	b.WriteString("\n")

	if p.HasPersonalBests() {
		b.WriteString("## Marcas Personales\n\n")
		b.WriteString("| Distancia | Tiempo | Ritmo medio |\n|-----------|--------|-------------|\n")
		for _, key := range profile.DistanceKeys {
			t := p.PersonalBests[key]
			if t == nil || *t == "" {
				continue
			}
			km := distanceKM(key)
			fmt.Fprintf(&b, "| %s | %s | %s |\n", metrics.DistanceDisplay(km), *t, metrics.Pace(*t, km))
		}
		b.WriteString("\n")
	}

	if p.MainObjective != nil || len(p.IntermediateRaces) > 0 {
		b.WriteString("## Objetivos de Carrera\n\n")
		if r := p.MainObjective; r != nil {
			fmt.Fprintf(&b, "**Objetivo principal:** %s (%s, %s)", r.Name, metrics.DistanceDisplay(r.DistanceKM), r.Date)
			if r.GoalTime != nil {
				fmt.Fprintf(&b, " — objetivo %s", *r.GoalTime)
			}
			if weeks, ok := metrics.WeeksUntil(r.Date); ok {
				fmt.Fprintf(&b, " — faltan %d semanas", weeks)
			}
			b.WriteString("\n\n")
		}
		for _, r := range p.IntermediateRaces {
			fmt.Fprintf(&b, "- %s (%s, %s)\n", r.Name, metrics.DistanceDisplay(r.DistanceKM), r.Date)
		}
		if len(p.IntermediateRaces) > 0 {
			b.WriteString("\n")
		}
	}

	if len(p.Injuries) > 0 {
		b.WriteString("## Historial de Lesiones\n\n")
		for _, inj := range p.Injuries {
			fmt.Fprintf(&b, "- **%s** (%s): %s", inj.Type, inj.DateApprox, inj.RecoveryDesc)
			if inj.CurrentStatus != "" {
				fmt.Fprintf(&b, " — estado actual: %s", inj.CurrentStatus)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "---\n\n_Generado: %s_\n", p.GeneratedAt)
	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "- **%s:** %s\n", label, value)
}

func orDefault(s string) string {
	if s == "" {
		return notProvided
	}
	return s
}

func intStr(v *int, unit string) string {
	if v == nil {
		return notProvided
	}
	return fmt.Sprintf("%d %s", *v, unit)
}

func floatStr(v *float64, unit string) string {
	if v == nil {
		return notProvided
	}
	return fmt.Sprintf("%.1f %s", *v, unit)
}

func distanceKM(key string) float64 {
	switch key {
	case "5k":
		return 5.0
	case "10k":
		return 10.0
	case "half_marathon":
		return 21.097
	case "marathon":
		return 42.195
	}
	return 0
}
