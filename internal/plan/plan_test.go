package plan

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/joseantonio2001/Running-Fit-Tech/internal/profile"
)

const validResponse = `{
  "plan_markdown": "## Informe de Planificación de Entrenamiento para Tomás",
  "plan_structured": [
    {"week": 1, "day_of_week": 1, "day_description": "Semana 1 - Lunes",
     "session_type": "Rodaje Z2",
     "details": "Cal: 15' Z1. Ppal: 40' @ 5:10-5:20/km (FC 127-141, RPE 4/10). Enf: 10' Z1."},
    {"week": 1, "day_of_week": 7, "day_description": "Semana 1 - Domingo",
     "session_type": "Descanso", "details": "Descanso completo."}
  ]
}`

func TestParseResponseAccepts(t *testing.T) {
	result, err := ParseResponse(validResponse)
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	if !strings.HasPrefix(result.Markdown, "## Informe") {
		t.Errorf("markdown = %q", result.Markdown)
	}
	if len(result.Sessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(result.Sessions))
	}
	s := result.Sessions[0]
	if s.Week != 1 || s.DayOfWeek != 1 || s.SessionType != "Rodaje Z2" {
		t.Errorf("unexpected first session: %+v", s)
	}
}

func TestParseResponseStripsCodeFence(t *testing.T) {
	for _, wrapped := range []string{
		"```json\n" + validResponse + "\n```",
		"```\n" + validResponse + "\n```",
		"\n\n" + validResponse + "\n\n",
	} {
		if _, err := ParseResponse(wrapped); err != nil {
			t.Errorf("fenced response rejected: %v", err)
		}
	}
}

func TestParseResponseRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "lo siento, no puedo generar el plan"},
		{"not an object", `["plan_markdown", "plan_structured"]`},
		{"missing markdown", `{"plan_structured": []}`},
		{"missing structured", `{"plan_markdown": "## Plan"}`},
		{"markdown wrong type", `{"plan_markdown": 42, "plan_structured": []}`},
		{"structured wrong type", `{"plan_markdown": "## Plan", "plan_structured": {}}`},
		{"session missing field", `{"plan_markdown": "## Plan", "plan_structured": [
            {"week": 1, "day_of_week": 1, "day_description": "Semana 1 - Lunes", "session_type": "Rodaje"}
        ]}`},
	}
	for _, tt := range tests {
		result, err := ParseResponse(tt.raw)
		if err == nil {
			t.Errorf("%s: accepted %+v, want rejection", tt.name, result)
			continue
		}
		if !strings.Contains(err.Error(), "rechazada") {
			t.Errorf("%s: error %q lacks rejection diagnostic", tt.name, err)
		}
	}
}

func TestParseResponseDiagnosticTruncated(t *testing.T) {
	raw := strings.Repeat("x", 2000)
	_, err := ParseResponse(raw)
	if err == nil {
		t.Fatal("expected rejection")
	}
	if len(err.Error()) > 700 {
		t.Errorf("diagnostic too long: %d bytes", len(err.Error()))
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt(profile.Sample())
	if err != nil {
		t.Fatalf("BuildPrompt: %v", err)
	}
	for _, want := range []string{
		"FICHA TÉCNICA DEL ATLETA",
		"Tomás Solórzano",
		"plan_markdown",
		"plan_structured",
		"unavailable_days",
		"day_of_week",
		"1=Lunes",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt lacks %q", want)
		}
	}
}

type fakeAI struct {
	response string
	err      error
	called   int
	prompt   string
}

func (f *fakeAI) GenerateText(_ context.Context, prompt string) (string, error) {
	f.called++
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestGeneratorSuccess(t *testing.T) {
	ai := &fakeAI{response: "```json\n" + validResponse + "\n```"}
	g := NewGenerator(ai, zerolog.Nop())

	result, err := g.Generate(context.Background(), profile.Sample())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Sessions) != 2 {
		t.Errorf("sessions = %d, want 2", len(result.Sessions))
	}
	if ai.called != 1 {
		t.Errorf("transport called %d times, want exactly 1", ai.called)
	}
	if !strings.Contains(ai.prompt, "Tomás Solórzano") {
		t.Error("dispatched prompt lacks the athlete document")
	}
}

func TestGeneratorIncompleteProfileSkipsDispatch(t *testing.T) {
	ai := &fakeAI{response: validResponse}
	g := NewGenerator(ai, zerolog.Nop())

	p := profile.Sample()
	p.MainObjective = nil

	_, err := g.Generate(context.Background(), p)
	var incomplete *IncompleteProfileError
	if !errors.As(err, &incomplete) {
		t.Fatalf("error = %v, want IncompleteProfileError", err)
	}
	if len(incomplete.Missing) == 0 {
		t.Error("error should list the missing fields")
	}
	if ai.called != 0 {
		t.Errorf("transport called %d times for incomplete profile, want 0", ai.called)
	}
}

func TestGeneratorTransportFailure(t *testing.T) {
	ai := &fakeAI{err: errors.New("connection reset")}
	g := NewGenerator(ai, zerolog.Nop())

	_, err := g.Generate(context.Background(), profile.Sample())
	if err == nil || !strings.Contains(err.Error(), "connection reset") {
		t.Errorf("error = %v, want wrapped transport failure", err)
	}
}

func TestGeneratorMalformedResponse(t *testing.T) {
	ai := &fakeAI{response: "esto no es json"}
	g := NewGenerator(ai, zerolog.Nop())

	if _, err := g.Generate(context.Background(), profile.Sample()); err == nil {
		t.Error("malformed response must reject the attempt")
	}
}
