package profile

import (
	"encoding/json"
	"reflect"
)

// Fixed meta descriptions carried inside the persisted document. They guide
// any downstream reader of the raw file, mirroring the AI-optimized form.
const (
	physioMeta = "Métricas fisiológicas clave que definen el perfil de resistencia y el potencial del atleta."
	injuryMeta = "Historial de lesiones para identificar patrones de riesgo, debilidades estructurales y adaptar el entrenamiento de fuerza y las progresiones de carga."
)

// Document is the canonical persisted form of an AthleteProfile. Field names
// are part of the on-disk contract; unknown keys in a file are ignored and
// missing keys decode to documented defaults.
type Document struct {
	AthleteSummary       SummarySection     `json:"athlete_summary"`
	PersonalInfo         PersonalSection    `json:"personal_info"`
	PhysiologicalMetrics PhysioSection      `json:"physiological_metrics"`
	InjuryHistory        InjurySection      `json:"injury_history"`
	TrainingContext      TrainingSection    `json:"training_context"`
	PerformanceData      PerformanceSection `json:"performance_data"`
	RaceGoals            GoalsSection       `json:"race_goals"`
}

type SummarySection struct {
	Name        string `json:"name"`
	GeneratedAt string `json:"generated_at"`
}

type PersonalSection struct {
	Age      *int     `json:"age"`
	Gender   string   `json:"gender"`
	HeightCM *int     `json:"height_cm"`
	WeightKG *float64 `json:"weight_kg"`
}

type PhysioSection struct {
	MetaDescription     string   `json:"meta_description"`
	MaxHR               *int     `json:"max_hr"`
	RestingHR           *int     `json:"resting_hr"`
	HRVMS               *int     `json:"hrv_ms"`
	VO2Max              *float64 `json:"vo2_max"`
	LactateThresholdBPM *int     `json:"lactate_threshold_bpm"`
}

type InjurySection struct {
	MetaDescription string   `json:"meta_description"`
	Injuries        []Injury `json:"injuries"`
}

type TrainingSection struct {
	AvgWeeklyKM              *float64 `json:"avg_weekly_km"`
	TrainingDaysPerWeek      string   `json:"training_days_per_week"`
	RunningExperienceYears   *float64 `json:"running_experience_years"`
	CurrentTrainingPeriod    string   `json:"current_training_period"`
	AvailableTrainingDays    string   `json:"available_training_days"`
	UnavailableDays          string   `json:"unavailable_days"`
	QualitySessionPreference string   `json:"quality_session_preference"`
	StrengthTrainingHistory  TriState `json:"strength_training_history"`
	IncludeStrengthTraining  TriState `json:"include_strength_training"`
}

type PerformanceSection struct {
	PersonalBests map[string]*string `json:"personal_bests"`
	TrainingZones *TrainingZones     `json:"training_zones"`
}

type GoalsSection struct {
	MainObjective     *Race  `json:"main_objective"`
	IntermediateRaces []Race `json:"intermediate_races"`
}

// ToDocument serializes the profile into its canonical document. The mapping
// is total: every field lands in exactly one section.
func (p *AthleteProfile) ToDocument() Document {
	doc := Document{
		AthleteSummary: SummarySection{
			Name:        p.Name,
			GeneratedAt: p.GeneratedAt,
		},
		PersonalInfo: PersonalSection{
			Age:      p.Age,
			Gender:   p.Gender,
			HeightCM: p.HeightCM,
			WeightKG: p.WeightKG,
		},
		PhysiologicalMetrics: PhysioSection{
			MetaDescription:     physioMeta,
			MaxHR:               p.MaxHR,
			RestingHR:           p.RestingHR,
			HRVMS:               p.HRVMS,
			VO2Max:              p.VO2Max,
			LactateThresholdBPM: p.LactateThresholdBPM,
		},
		InjuryHistory: InjurySection{
			MetaDescription: injuryMeta,
			Injuries:        append([]Injury(nil), p.Injuries...),
		},
		TrainingContext: TrainingSection{
			AvgWeeklyKM:              p.AvgWeeklyKM,
			TrainingDaysPerWeek:      p.TrainingDaysPerWeek,
			RunningExperienceYears:   p.RunningExperienceYears,
			CurrentTrainingPeriod:    p.CurrentTrainingPeriod,
			AvailableTrainingDays:    p.AvailableTrainingDays,
			UnavailableDays:          p.UnavailableDays,
			QualitySessionPreference: p.QualitySessionPreference,
			StrengthTrainingHistory:  p.StrengthTrainingHistory,
			IncludeStrengthTraining:  p.IncludeStrengthTraining,
		},
		PerformanceData: PerformanceSection{
			PersonalBests: copyBests(p.PersonalBests),
			TrainingZones: copyZones(p.TrainingZones),
		},
		RaceGoals: GoalsSection{
			MainObjective:     copyRace(p.MainObjective),
			IntermediateRaces: copyRaces(p.IntermediateRaces),
		},
	}
	return doc
}

// FromDocument rebuilds a profile from its canonical document. Missing
// optional fields come back as their zero defaults, and the personal-bests
// map is re-seeded with the four known distance keys.
func FromDocument(doc Document) *AthleteProfile {
	p := &AthleteProfile{
		Name:                     doc.AthleteSummary.Name,
		GeneratedAt:              doc.AthleteSummary.GeneratedAt,
		Age:                      doc.PersonalInfo.Age,
		Gender:                   doc.PersonalInfo.Gender,
		HeightCM:                 doc.PersonalInfo.HeightCM,
		WeightKG:                 doc.PersonalInfo.WeightKG,
		MaxHR:                    doc.PhysiologicalMetrics.MaxHR,
		RestingHR:                doc.PhysiologicalMetrics.RestingHR,
		HRVMS:                    doc.PhysiologicalMetrics.HRVMS,
		VO2Max:                   doc.PhysiologicalMetrics.VO2Max,
		LactateThresholdBPM:      doc.PhysiologicalMetrics.LactateThresholdBPM,
		AvgWeeklyKM:              doc.TrainingContext.AvgWeeklyKM,
		TrainingDaysPerWeek:      doc.TrainingContext.TrainingDaysPerWeek,
		RunningExperienceYears:   doc.TrainingContext.RunningExperienceYears,
		CurrentTrainingPeriod:    doc.TrainingContext.CurrentTrainingPeriod,
		AvailableTrainingDays:    doc.TrainingContext.AvailableTrainingDays,
		UnavailableDays:          doc.TrainingContext.UnavailableDays,
		QualitySessionPreference: doc.TrainingContext.QualitySessionPreference,
		StrengthTrainingHistory:  doc.TrainingContext.StrengthTrainingHistory,
		IncludeStrengthTraining:  doc.TrainingContext.IncludeStrengthTraining,
		PersonalBests:            copyBests(doc.PerformanceData.PersonalBests),
		TrainingZones:            copyZones(doc.PerformanceData.TrainingZones),
		MainObjective:            copyRace(doc.RaceGoals.MainObjective),
		IntermediateRaces:        copyRaces(doc.RaceGoals.IntermediateRaces),
		Injuries:                 append([]Injury(nil), doc.InjuryHistory.Injuries...),
	}
	if p.PersonalBests == nil {
		p.PersonalBests = make(map[string]*string, len(DistanceKeys))
	}
	for _, k := range DistanceKeys {
		if _, ok := p.PersonalBests[k]; !ok {
			p.PersonalBests[k] = nil
		}
	}
	return p
}

// ParseDocument decodes a canonical document from JSON. Unknown keys,
// including the underscore-prefixed template instruction keys, are ignored.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	err := json.Unmarshal(data, &doc)
	return doc, err
}

// EncodeDocument renders a document as indented JSON for human inspection.
func EncodeDocument(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "    ")
}

func documentsEqual(a, b Document) bool {
	return reflect.DeepEqual(a, b)
}

func copyBests(m map[string]*string) map[string]*string {
	if m == nil {
		return nil
	}
	out := make(map[string]*string, len(m))
	for k, v := range m {
		if v != nil {
			vv := *v
			out[k] = &vv
			continue
		}
		out[k] = nil
	}
	return out
}

func copyZones(z *TrainingZones) *TrainingZones {
	if z == nil {
		return nil
	}
	zz := *z
	return &zz
}

func copyRaces(rs []Race) []Race {
	if rs == nil {
		return nil
	}
	out := make([]Race, len(rs))
	for i := range rs {
		out[i] = *copyRace(&rs[i])
	}
	return out
}

func copyRace(r *Race) *Race {
	if r == nil {
		return nil
	}
	rr := *r
	if r.GoalTime != nil {
		gt := *r.GoalTime
		rr.GoalTime = &gt
	}
	return &rr
}
