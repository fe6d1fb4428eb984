// Package profile defines the athlete profile aggregate, the single source
// of truth for every other module. The profile round-trips losslessly to a
// canonical JSON document (see document.go) and owns its own completeness
// and coherence checks.
package profile

import (
	"time"
)

// Distance keys recognized in personal_bests. Values are "HH:MM:SS" strings.
var DistanceKeys = []string{"5k", "10k", "half_marathon", "marathon"}

// Injury is one past injury record. Dates are deliberately free text
// ("2022-10", "hace 2 años"); athletes rarely remember exact dates.
type Injury struct {
	Type          string `json:"type"`
	DateApprox    string `json:"date_approx"`
	RecoveryDesc  string `json:"recovery_desc"`
	CurrentStatus string `json:"current_status,omitempty"`
}

// Race is a competitive goal, either the main objective or an intermediate
// race. Date is an ISO calendar date (YYYY-MM-DD).
type Race struct {
	Name       string  `json:"name"`
	Date       string  `json:"date"`
	DistanceKM float64 `json:"distance_km"`
	GoalTime   *string `json:"goal_time"`
	Terrain    string  `json:"terrain"`
}

// TrainingZones holds the five Karvonen heart-rate ranges as "low-high"
// strings in bpm. Never user-edited: recomputed whenever max and resting HR
// are both present, absent otherwise.
type TrainingZones struct {
	Zone1HR string `json:"zone1_hr"`
	Zone2HR string `json:"zone2_hr"`
	Zone3HR string `json:"zone3_hr"`
	Zone4HR string `json:"zone4_hr"`
	Zone5HR string `json:"zone5_hr"`
}

// AthleteProfile is the aggregate root. Optional numeric fields are
// pointers so "unset" survives the document round trip.
type AthleteProfile struct {
	// Identity
	Name        string
	GeneratedAt string
	Age         *int
	Gender      string // normalized: "Masculino", "Femenino", "Otro"
	HeightCM    *int
	WeightKG    *float64

	// Physiology
	MaxHR               *int
	RestingHR           *int
	HRVMS               *int
	VO2Max              *float64
	LactateThresholdBPM *int
	TrainingZones       *TrainingZones

	// Training context
	AvgWeeklyKM              *float64
	TrainingDaysPerWeek      string // "4" or "4-5"
	RunningExperienceYears   *float64
	CurrentTrainingPeriod    string // "3 semanas", "2 meses", "Empezando ahora"
	AvailableTrainingDays    string // same day-range format
	UnavailableDays          string // "Lunes, Martes"; empty means no restriction
	QualitySessionPreference string
	StrengthTrainingHistory  TriState
	IncludeStrengthTraining  TriState

	// Performance
	PersonalBests map[string]*string

	// Goals
	MainObjective     *Race
	IntermediateRaces []Race

	// Medical
	Injuries []Injury
}

// NewEmpty returns a fresh profile with the personal-bests map pre-seeded
// with the four known distance keys mapped to null.
func NewEmpty() *AthleteProfile {
	p := &AthleteProfile{
		GeneratedAt:   time.Now().Format(time.RFC3339),
		PersonalBests: make(map[string]*string, len(DistanceKeys)),
	}
	for _, k := range DistanceKeys {
		p.PersonalBests[k] = nil
	}
	return p
}

// Clone deep-copies the profile via the canonical document, the same trick
// the editing flow uses for its section snapshots.
func (p *AthleteProfile) Clone() *AthleteProfile {
	return FromDocument(p.ToDocument())
}

// Edit runs fn against a working copy and commits the result back only if
// fn returns nil. A cancelled or failed edit leaves the receiver untouched.
func (p *AthleteProfile) Edit(fn func(*AthleteProfile) error) error {
	work := p.Clone()
	if err := fn(work); err != nil {
		return err
	}
	*p = *work
	return nil
}

// Equal compares two profiles by canonical-document equality, ignoring the
// embedded generation timestamp. This backs the unsaved-changes indicator.
func Equal(a, b *AthleteProfile) bool {
	if a == nil || b == nil {
		return a == b
	}
	da, db := a.ToDocument(), b.ToDocument()
	da.AthleteSummary.GeneratedAt = ""
	db.AthleteSummary.GeneratedAt = ""
	return documentsEqual(da, db)
}

// HasPersonalBests reports whether at least one distance has a recorded time.
func (p *AthleteProfile) HasPersonalBests() bool {
	for _, v := range p.PersonalBests {
		if v != nil && *v != "" {
			return true
		}
	}
	return false
}

// Sample returns the reference profile used by the demo mode and tests.
func Sample() *AthleteProfile {
	p := NewEmpty()
	p.Name = "Tomás Solórzano"
	p.Age = intp(19)
	p.Gender = "Masculino"
	p.HeightCM = intp(180)
	p.WeightKG = floatp(67.0)
	p.MaxHR = intp(184)
	p.RestingHR = intp(41)
	p.VO2Max = floatp(60.0)
	p.LactateThresholdBPM = intp(179)
	p.AvgWeeklyKM = floatp(50.0)
	p.TrainingDaysPerWeek = "5"
	p.AvailableTrainingDays = "5"
	p.UnavailableDays = "Domingo"
	p.CurrentTrainingPeriod = "2 meses"
	p.RunningExperienceYears = floatp(4)
	p.QualitySessionPreference = "Martes, Jueves"
	p.StrengthTrainingHistory = No
	p.IncludeStrengthTraining = Yes
	p.PersonalBests["5k"] = strp("00:18:00")
	p.PersonalBests["10k"] = strp("00:39:50")
	p.PersonalBests["half_marathon"] = strp("01:36:00")
	p.MainObjective = &Race{
		Name:       "Media Maratón de Valencia",
		Date:       "2027-11-30",
		DistanceKM: 21.097,
		GoalTime:   strp("01:28:00"),
		Terrain:    "Llano",
	}
	p.IntermediateRaces = []Race{{
		Name:       "10k de la Ciudad",
		Date:       "2027-10-15",
		DistanceKM: 10.0,
		GoalTime:   strp("00:38:00"),
		Terrain:    "Llano",
	}}
	p.Injuries = []Injury{{
		Type:          "Sobrecarga tibial",
		DateApprox:    "2025-02",
		RecoveryDesc:  "Dos semanas de descarga y vuelta progresiva",
		CurrentStatus: "Sin síntomas",
	}}
	return p
}

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }
func strp(v string) *string     { return &v }
