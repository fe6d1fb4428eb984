// Package aidoc derives the AI-optimized document from an athlete profile.
// The output is a structured prompt: every section carries a
// meta_description telling the downstream model what the data means and how
// to use it. The transformer restates facts and adds neutral descriptive
// metadata only — it never bakes a verdict about the athlete into the data,
// so the model's own reasoning stays unbiased.
package aidoc

import (
	"time"

	"github.com/joseantonio2001/Running-Fit-Tech/internal/metrics"
	"github.com/joseantonio2001/Running-Fit-Tech/internal/profile"
)

// Document is the AI-optimized form. Sections are independently optional:
// a section with no data behind it is omitted entirely.
type Document struct {
	AthleteSummary       *SummarySection     `json:"athlete_summary,omitempty"`
	PersonalInfo         *PersonalSection    `json:"personal_info,omitempty"`
	PhysiologicalMetrics *PhysioSection      `json:"physiological_metrics,omitempty"`
	TrainingContext      *ContextSection     `json:"training_context,omitempty"`
	PerformanceData      *PerformanceSection `json:"performance_data,omitempty"`
	RaceGoals            *GoalsSection       `json:"race_goals,omitempty"`
	InjuryHistory        *InjurySection      `json:"injury_history,omitempty"`
}

type SummarySection struct {
	MetaDescription string       `json:"meta_description"`
	Name            string       `json:"name"`
	Age             *int         `json:"age"`
	Gender          string       `json:"gender"`
	GeneratedAt     string       `json:"generated_at"`
	Completeness    Completeness `json:"profile_completeness"`
}

type Completeness struct {
	CompletedPoints int     `json:"completed_points"`
	TotalPoints     int     `json:"total_points"`
	Percentage      float64 `json:"completeness_percentage"`
	ReadinessLevel  string  `json:"readiness_level"`
}

type PersonalSection struct {
	MetaDescription string   `json:"meta_description"`
	Age             *int     `json:"age"`
	Gender          string   `json:"gender"`
	HeightCM        *int     `json:"height_cm"`
	WeightKG        *float64 `json:"weight_kg"`
	BMI             *float64 `json:"bmi"`
}

type PhysioSection struct {
	MetaDescription     string     `json:"meta_description"`
	MaxHR               *int       `json:"max_hr"`
	RestingHR           *int       `json:"resting_hr"`
	VO2Max              *float64   `json:"vo2_max"`
	LactateThresholdBPM *int       `json:"lactate_threshold_bpm"`
	HRVMS               *int       `json:"hrv_ms"`
	TrainingZones       *ZoneTable `json:"training_zones,omitempty"`
}

type ZoneTable struct {
	CalculationMethod string          `json:"calculation_method"`
	Zones             map[string]Zone `json:"zones"`
}

type Zone struct {
	Name      string `json:"name"`
	HRRange   string `json:"hr_range"`
	Intensity string `json:"intensity"`
	Purpose   string `json:"purpose"`
}

type ContextSection struct {
	MetaDescription string           `json:"meta_description"`
	CurrentLoad     CurrentLoad      `json:"current_training_load"`
	Background      Background       `json:"experience_and_background"`
	Availability    Availability     `json:"availability_constraints"`
	Strength        StrengthTraining `json:"strength_training"`
}

type CurrentLoad struct {
	AvgWeeklyKM         *float64 `json:"avg_weekly_km"`
	TrainingDaysPerWeek string   `json:"training_days_per_week"`
}

type Background struct {
	RunningExperienceYears *float64 `json:"running_experience_years"`
	CurrentTrainingPeriod  string   `json:"current_training_period"`
}

type Availability struct {
	AvailableTrainingDays    string `json:"available_training_days"`
	UnavailableDays          string `json:"unavailable_days"`
	QualitySessionPreference string `json:"quality_session_preference"`
}

type StrengthTraining struct {
	History       profile.TriState `json:"history"`
	IncludeInPlan profile.TriState `json:"include_in_plan"`
}

type PerformanceSection struct {
	MetaDescription string                  `json:"meta_description"`
	PersonalBests   map[string]PersonalBest `json:"personal_bests"`
}

type PersonalBest struct {
	DistanceName string  `json:"distance_name"`
	DistanceKM   float64 `json:"distance_km"`
	BestTime     string  `json:"best_time"`
	AveragePace  string  `json:"average_pace"`
}

type GoalsSection struct {
	MetaDescription   string     `json:"meta_description"`
	MainObjective     *RaceGoal  `json:"main_objective"`
	IntermediateRaces []RaceGoal `json:"intermediate_races"`
}

type RaceGoal struct {
	Name               string  `json:"name"`
	Date               string  `json:"date"`
	DistanceKM         float64 `json:"distance_km"`
	DistanceDisplay    string  `json:"distance_display"`
	GoalTime           *string `json:"goal_time"`
	Terrain            string  `json:"terrain"`
	WeeksUntilRace     *int    `json:"weeks_until_race"`
	SuggestedPlanWeeks *int    `json:"suggested_plan_weeks,omitempty"`
}

type InjurySection struct {
	MetaDescription string         `json:"meta_description"`
	Injuries        []InjuryRecord `json:"injuries"`
}

type InjuryRecord struct {
	Type          string `json:"type"`
	DateApprox    string `json:"date_approx"`
	RecoveryDesc  string `json:"recovery_desc"`
	CurrentStatus string `json:"current_status,omitempty"`
}

// Transform builds the AI-optimized document. It is purely derivational:
// two calls on the same profile differ only in generated_at.
func Transform(p *profile.AthleteProfile) Document {
	return TransformAt(p, time.Now())
}

// TransformAt is Transform with an explicit generation instant.
func TransformAt(p *profile.AthleteProfile, now time.Time) Document {
	return Document{
		AthleteSummary:       buildSummary(p, now),
		PersonalInfo:         buildPersonal(p),
		PhysiologicalMetrics: buildPhysio(p),
		TrainingContext:      buildContext(p),
		PerformanceData:      buildPerformance(p),
		RaceGoals:            buildGoals(p),
		InjuryHistory:        buildInjuries(p),
	}
}

func buildSummary(p *profile.AthleteProfile, now time.Time) *SummarySection {
	return &SummarySection{
		MetaDescription: "Resumen ejecutivo del atleta para personalización de la comunicación y contextualización general del perfil.",
		Name:            p.Name,
		Age:             p.Age,
		Gender:          p.Gender,
		GeneratedAt:     now.Format(time.RFC3339),
		Completeness:    Score(p),
	}
}

func buildPersonal(p *profile.AthleteProfile) *PersonalSection {
	if p.Age == nil && p.HeightCM == nil && p.WeightKG == nil && p.Gender == "" {
		return nil
	}
	s := &PersonalSection{
		MetaDescription: "Datos personales básicos del atleta, incluyendo antropometría relevante para cálculos fisiológicos y biomecánicos.",
		Age:             p.Age,
		Gender:          p.Gender,
		HeightCM:        p.HeightCM,
		WeightKG:        p.WeightKG,
	}
	if p.WeightKG != nil && p.HeightCM != nil {
		if bmi, ok := metrics.BMI(*p.WeightKG, float64(*p.HeightCM)); ok {
			s.BMI = &bmi
		}
	}
	return s
}

func buildPhysio(p *profile.AthleteProfile) *PhysioSection {
	if p.MaxHR == nil && p.RestingHR == nil && p.VO2Max == nil &&
		p.LactateThresholdBPM == nil && p.HRVMS == nil {
		return nil
	}
	s := &PhysioSection{
		MetaDescription:     "Métricas fisiológicas clave que definen el perfil de resistencia y el potencial aeróbico del atleta. Fundamentales para establecer zonas de entrenamiento precisas y adaptar la intensidad del plan.",
		MaxHR:               p.MaxHR,
		RestingHR:           p.RestingHR,
		VO2Max:              p.VO2Max,
		LactateThresholdBPM: p.LactateThresholdBPM,
		HRVMS:               p.HRVMS,
	}
	zones := p.TrainingZones
	if zones == nil && p.MaxHR != nil && p.RestingHR != nil && *p.MaxHR > *p.RestingHR {
		zones = metrics.KarvonenZones(*p.MaxHR, *p.RestingHR)
	}
	if zones != nil {
		s.TrainingZones = &ZoneTable{
			CalculationMethod: "Fórmula de Karvonen basada en FC de reserva",
			Zones: map[string]Zone{
				"zone1_recovery": {
					Name:      "Recuperación Activa",
					HRRange:   zones.Zone1HR,
					Intensity: "50-60% FC Reserva",
					Purpose:   "Regeneración y volumen base sin estrés metabólico",
				},
				"zone2_aerobic": {
					Name:      "Aeróbico Ligero",
					HRRange:   zones.Zone2HR,
					Intensity: "60-70% FC Reserva",
					Purpose:   "Base aeróbica y resistencia fundamental",
				},
				"zone3_tempo": {
					Name:      "Aeróbico Medio",
					HRRange:   zones.Zone3HR,
					Intensity: "70-80% FC Reserva",
					Purpose:   "Desarrollo aeróbico y tempo sostenido",
				},
				"zone4_threshold": {
					Name:      "Umbral Anaeróbico",
					HRRange:   zones.Zone4HR,
					Intensity: "80-90% FC Reserva",
					Purpose:   "Potencia aeróbica máxima y mejora del umbral",
				},
				"zone5_vo2max": {
					Name:      "Potencia Máxima",
					HRRange:   zones.Zone5HR,
					Intensity: "90-100% FC Reserva",
					Purpose:   "Capacidad anaeróbica y velocidad máxima",
				},
			},
		}
	}
	return s
}

func buildContext(p *profile.AthleteProfile) *ContextSection {
	if p.AvgWeeklyKM == nil && p.TrainingDaysPerWeek == "" &&
		p.RunningExperienceYears == nil && p.CurrentTrainingPeriod == "" &&
		p.AvailableTrainingDays == "" && p.UnavailableDays == "" &&
		p.QualitySessionPreference == "" &&
		!p.StrengthTrainingHistory.Known() && !p.IncludeStrengthTraining.Known() {
		return nil
	}
	return &ContextSection{
		MetaDescription: "Contexto actual de entrenamiento del atleta: carga de trabajo, experiencia, disponibilidad temporal y preferencias. Crucial para adaptar volumen, frecuencia y distribución de los entrenamientos.",
		CurrentLoad: CurrentLoad{
			AvgWeeklyKM:         p.AvgWeeklyKM,
			TrainingDaysPerWeek: p.TrainingDaysPerWeek,
		},
		Background: Background{
			RunningExperienceYears: p.RunningExperienceYears,
			CurrentTrainingPeriod:  p.CurrentTrainingPeriod,
		},
		Availability: Availability{
			AvailableTrainingDays:    p.AvailableTrainingDays,
			UnavailableDays:          p.UnavailableDays,
			QualitySessionPreference: p.QualitySessionPreference,
		},
		Strength: StrengthTraining{
			History:       p.StrengthTrainingHistory,
			IncludeInPlan: p.IncludeStrengthTraining,
		},
	}
}

// Distance metadata for the four personal-best keys.
var bestDistances = map[string]struct {
	km   float64
	name string
}{
	"5k":            {5.0, "5 Kilómetros"},
	"10k":           {10.0, "10 Kilómetros"},
	"half_marathon": {21.097, "Media Maratón"},
	"marathon":      {42.195, "Maratón"},
}

func buildPerformance(p *profile.AthleteProfile) *PerformanceSection {
	if !p.HasPersonalBests() {
		return nil
	}
	bests := make(map[string]PersonalBest)
	for key, info := range bestDistances {
		t := p.PersonalBests[key]
		if t == nil || *t == "" {
			continue
		}
		bests[key] = PersonalBest{
			DistanceName: info.name,
			DistanceKM:   info.km,
			BestTime:     *t,
			AveragePace:  metrics.Pace(*t, info.km),
		}
	}
	return &PerformanceSection{
		MetaDescription: "Marcas personales del atleta con su ritmo medio por distancia. Permiten establecer objetivos realistas y calibrar la intensidad del entrenamiento.",
		PersonalBests:   bests,
	}
}

func buildGoals(p *profile.AthleteProfile) *GoalsSection {
	if p.MainObjective == nil && len(p.IntermediateRaces) == 0 {
		return nil
	}
	s := &GoalsSection{
		MetaDescription:   "Objetivos de carrera del atleta: objetivo principal y carreras intermedias. Esta sección define el enfoque y la periodización del plan de entrenamiento.",
		IntermediateRaces: []RaceGoal{},
	}
	if p.MainObjective != nil {
		goal := raceGoal(*p.MainObjective)
		if weeks, ok := metrics.SuggestedPlanWeeks(p.MainObjective.Date); ok {
			goal.SuggestedPlanWeeks = &weeks
		}
		s.MainObjective = &goal
	}
	for _, r := range p.IntermediateRaces {
		s.IntermediateRaces = append(s.IntermediateRaces, raceGoal(r))
	}
	return s
}

func raceGoal(r profile.Race) RaceGoal {
	g := RaceGoal{
		Name:            r.Name,
		Date:            r.Date,
		DistanceKM:      r.DistanceKM,
		DistanceDisplay: metrics.DistanceDisplay(r.DistanceKM),
		GoalTime:        r.GoalTime,
		Terrain:         r.Terrain,
	}
	if weeks, ok := metrics.WeeksUntil(r.Date); ok {
		g.WeeksUntilRace = &weeks
	}
	return g
}

func buildInjuries(p *profile.AthleteProfile) *InjurySection {
	if len(p.Injuries) == 0 {
		return nil
	}
	s := &InjurySection{
		MetaDescription: "Historial de lesiones para identificar patrones de riesgo, debilidades estructurales y adaptar el entrenamiento de fuerza y las progresiones de carga.",
	}
	for _, inj := range p.Injuries {
		s.Injuries = append(s.Injuries, InjuryRecord{
			Type:          inj.Type,
			DateApprox:    inj.DateApprox,
			RecoveryDesc:  inj.RecoveryDesc,
			CurrentStatus: inj.CurrentStatus,
		})
	}
	return s
}
