package plan

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/joseantonio2001/Running-Fit-Tech/internal/profile"
)

// TextGenerator is the transport the generator dispatches through. It takes
// the full prompt and returns the model's raw text output.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// IncompleteProfileError is the terminal local failure when the profile
// cannot back a plan request. No network call is made.
type IncompleteProfileError struct {
	Missing []string
}

func (e *IncompleteProfileError) Error() string {
	return "perfil incompleto para generar plan, faltan: " + strings.Join(e.Missing, ", ")
}

// Generator runs one plan-generation attempt end to end: precondition
// check, prompt construction, a single dispatch, response validation.
type Generator struct {
	ai  TextGenerator
	log zerolog.Logger
}

func NewGenerator(ai TextGenerator, log zerolog.Logger) *Generator {
	return &Generator{ai: ai, log: log}
}

// Generate performs a single attempt. The attempt is atomic: it returns a
// fully-valid two-part plan or an error with nothing persisted. The caller
// may retry by calling Generate again.
func (g *Generator) Generate(ctx context.Context, p *profile.AthleteProfile) (*Plan, error) {
	attemptID := uuid.NewString()
	log := g.log.With().Str("attempt_id", attemptID).Logger()

	if missing := p.MissingFields(); len(missing) > 0 {
		log.Warn().Strs("missing_fields", missing).Msg("plan attempt aborted before dispatch")
		return nil, &IncompleteProfileError{Missing: missing}
	}

	prompt, err := BuildPrompt(p)
	if err != nil {
		return nil, fmt.Errorf("build plan prompt: %w", err)
	}
	log.Info().Int("prompt_bytes", len(prompt)).Msg("dispatching plan request")

	raw, err := g.ai.GenerateText(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("plan attempt failed at transport")
		return nil, fmt.Errorf("plan request failed: %w", err)
	}

	result, err := ParseResponse(raw)
	if err != nil {
		log.Error().Err(err).Msg("plan attempt rejected at validation")
		return nil, err
	}

	log.Info().Int("sessions", len(result.Sessions)).Msg("plan accepted")
	return result, nil
}
