package profile

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewEmptySeedsBestKeys(t *testing.T) {
	p := NewEmpty()
	if len(p.PersonalBests) != len(DistanceKeys) {
		t.Fatalf("expected %d seeded keys, got %d", len(DistanceKeys), len(p.PersonalBests))
	}
	for _, k := range DistanceKeys {
		v, ok := p.PersonalBests[k]
		if !ok {
			t.Errorf("missing seeded key %q", k)
		}
		if v != nil {
			t.Errorf("seeded key %q should be nil, got %v", k, *v)
		}
	}
	if p.HasPersonalBests() {
		t.Error("empty profile should have no personal bests")
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	p := Sample()

	data, err := EncodeDocument(p.ToDocument())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	restored := FromDocument(doc)

	if !Equal(p, restored) {
		t.Error("profile changed across document round trip")
	}

	// a second round trip is byte-identical
	data2, err := EncodeDocument(restored.ToDocument())
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if string(data) != string(data2) {
		t.Error("document encoding is not stable across round trips")
	}
}

func TestRoundTripPreservesUnspecified(t *testing.T) {
	p := NewEmpty()
	p.Name = "Ana"
	p.StrengthTrainingHistory = No

	restored := p.Clone()
	if restored.StrengthTrainingHistory != No {
		t.Errorf("explicit No became %v", restored.StrengthTrainingHistory)
	}
	if restored.IncludeStrengthTraining != Unspecified {
		t.Errorf("unanswered field became %v", restored.IncludeStrengthTraining)
	}
	if restored.Age != nil {
		t.Error("unset age should stay nil")
	}
}

func TestParseDocumentIgnoresUnknownKeys(t *testing.T) {
	raw := `{
        "_INSTRUCTIONS": {"usage": "rellena y carga"},
        "_FIELD_EXAMPLES": {"gender": "Masculino"},
        "athlete_summary": {"name": "Ana"},
        "personal_info": {"age": 30, "gender": "Femenino"}
    }`
	doc, err := ParseDocument([]byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	p := FromDocument(doc)
	if p.Name != "Ana" || p.Gender != "Femenino" || p.Age == nil || *p.Age != 30 {
		t.Errorf("unexpected decode: name=%q gender=%q age=%v", p.Name, p.Gender, p.Age)
	}
	// bests map comes back re-seeded even though the file had none
	for _, k := range DistanceKeys {
		if _, ok := p.PersonalBests[k]; !ok {
			t.Errorf("missing re-seeded best key %q", k)
		}
	}
}

func TestTriStateJSON(t *testing.T) {
	tests := []struct {
		value    TriState
		expected string
	}{
		{Unspecified, "null"},
		{Yes, "true"},
		{No, "false"},
	}
	for _, tt := range tests {
		data, err := json.Marshal(tt.value)
		if err != nil {
			t.Fatalf("marshal %v: %v", tt.value, err)
		}
		if string(data) != tt.expected {
			t.Errorf("marshal %v = %s, want %s", tt.value, data, tt.expected)
		}
		var back TriState
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != tt.value {
			t.Errorf("round trip %v became %v", tt.value, back)
		}
	}
}

func TestEqualIgnoresTimestamp(t *testing.T) {
	a := Sample()
	b := Sample()
	b.GeneratedAt = "2001-01-01T00:00:00Z"
	if !Equal(a, b) {
		t.Error("profiles differing only in timestamp should be equal")
	}
	b.Name = "Otra Persona"
	if Equal(a, b) {
		t.Error("renamed profile should not be equal")
	}
}

func TestEditCommitsOnlyOnSuccess(t *testing.T) {
	p := Sample()
	original := p.Name

	err := p.Edit(func(w *AthleteProfile) error {
		w.Name = "Cambiado"
		return errors.New("cancelado")
	})
	if err == nil {
		t.Fatal("expected error from cancelled edit")
	}
	if p.Name != original {
		t.Errorf("cancelled edit leaked: name = %q", p.Name)
	}

	if err := p.Edit(func(w *AthleteProfile) error {
		w.Name = "Cambiado"
		return nil
	}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if p.Name != "Cambiado" {
		t.Errorf("committed edit lost: name = %q", p.Name)
	}
}

func TestIsComplete(t *testing.T) {
	p := Sample()
	if !p.IsComplete() {
		t.Fatalf("sample profile should be complete, missing: %v", p.MissingFields())
	}

	// dropping the main objective alone breaks completeness
	q := p.Clone()
	q.MainObjective = nil
	if q.IsComplete() {
		t.Error("profile without main objective should be incomplete")
	}
	found := false
	for _, f := range q.MissingFields() {
		if f == "Objetivo principal" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing fields %v should name the main objective", q.MissingFields())
	}

	// either HR metric satisfies the cardio requirement
	q = p.Clone()
	q.MaxHR = nil
	if !q.IsComplete() {
		t.Error("resting HR alone should satisfy the cardio requirement")
	}
	q.RestingHR = nil
	if q.IsComplete() {
		t.Error("profile with neither HR metric should be incomplete")
	}

	// either volume or frequency satisfies the training-context requirement
	q = p.Clone()
	q.AvgWeeklyKM = nil
	if !q.IsComplete() {
		t.Error("training days alone should satisfy the context requirement")
	}
	q.TrainingDaysPerWeek = ""
	if q.IsComplete() {
		t.Error("profile with no training context should be incomplete")
	}

	if NewEmpty().IsComplete() {
		t.Error("empty profile must not be complete")
	}
}

func TestValidateWarnings(t *testing.T) {
	p := NewEmpty()
	p.MaxHR = intp(120)
	p.RestingHR = intp(130)
	warnings := p.Validate()
	if len(warnings) != 1 || !strings.Contains(warnings[0], "FCmáx") {
		t.Errorf("expected single FCmáx warning, got %v", warnings)
	}

	p = NewEmpty()
	p.Gender = "Masculino"
	if warnings := p.Validate(); len(warnings) != 0 {
		t.Errorf("canonical gender should pass, got %v", warnings)
	}
	p.Gender = "caballero"
	if warnings := p.Validate(); len(warnings) != 1 {
		t.Errorf("non-canonical gender should warn, got %v", warnings)
	}
}

func TestValidateTrainingDaysCoherence(t *testing.T) {
	p := NewEmpty()
	p.AvailableTrainingDays = "5"
	p.UnavailableDays = "Lunes, Martes, Miércoles"
	warnings := p.ValidateTrainingDaysCoherence()
	if len(warnings) != 1 {
		t.Fatalf("5 available vs 3 blocked should conflict, got %v", warnings)
	}

	p.UnavailableDays = "Lunes, Martes"
	if warnings := p.ValidateTrainingDaysCoherence(); len(warnings) != 0 {
		t.Errorf("5 available vs 2 blocked fits, got %v", warnings)
	}

	// the upper endpoint of a range is what must fit
	p.AvailableTrainingDays = "4-5"
	p.UnavailableDays = "Lunes, Martes, Miércoles"
	if warnings := p.ValidateTrainingDaysCoherence(); len(warnings) != 1 {
		t.Errorf("range upper bound should conflict, got %v", warnings)
	}

	// either side empty means nothing to check
	p.UnavailableDays = ""
	if warnings := p.ValidateTrainingDaysCoherence(); len(warnings) != 0 {
		t.Errorf("no unavailable days means no conflict, got %v", warnings)
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := Sample()
	c := p.Clone()

	*c.PersonalBests["5k"] = "00:17:00"
	c.MainObjective.Name = "Otra carrera"
	c.IntermediateRaces[0].Name = "Otra intermedia"
	c.Injuries[0].Type = "Otra lesión"

	if *p.PersonalBests["5k"] != "00:18:00" {
		t.Error("clone shares personal-bests storage")
	}
	if p.MainObjective.Name != "Media Maratón de Valencia" {
		t.Error("clone shares main objective")
	}
	if p.IntermediateRaces[0].Name != "10k de la Ciudad" {
		t.Error("clone shares intermediate races")
	}
	if p.Injuries[0].Type != "Sobrecarga tibial" {
		t.Error("clone shares injuries")
	}
}
