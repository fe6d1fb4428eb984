// Package report renders the human- and machine-readable output files from
// a profile and a generated plan: the Markdown athlete sheet, the
// AI-optimized profile JSON and the two plan artifacts.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/joseantonio2001/Running-Fit-Tech/internal/aidoc"
	"github.com/joseantonio2001/Running-Fit-Tech/internal/plan"
	"github.com/joseantonio2001/Running-Fit-Tech/internal/profile"
)

const DefaultOutputDir = "outputs"

type Generator struct {
	outputDir string
	log       zerolog.Logger
}

func NewGenerator(outputDir string, log zerolog.Logger) *Generator {
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	return &Generator{outputDir: outputDir, log: log}
}

// ProfileOutputs writes the athlete sheet (Markdown) and the AI-optimized
// profile (JSON) into the output directory. It returns the written paths.
func (g *Generator) ProfileOutputs(p *profile.AthleteProfile) (sheetPath, jsonPath string, err error) {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create output dir: %w", err)
	}
	slug := nameSlug(p.Name)

	sheetPath = filepath.Join(g.outputDir, fmt.Sprintf("ficha_tecnica_%s.md", slug))
	if err := os.WriteFile(sheetPath, []byte(AthleteSheet(p)), 0o644); err != nil {
		return "", "", fmt.Errorf("write athlete sheet: %w", err)
	}

	doc := aidoc.Transform(p)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("encode ai profile: %w", err)
	}
	jsonPath = filepath.Join(g.outputDir, fmt.Sprintf("athlete_profile_%s_ai.json", slug))
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return "", "", fmt.Errorf("write ai profile: %w", err)
	}

	g.log.Info().Str("sheet", sheetPath).Str("json", jsonPath).Msg("profile outputs generated")
	return sheetPath, jsonPath, nil
}

// PlanOutputs writes the plan report (Markdown) and the structured sessions
// (JSON). It returns the written paths.
func (g *Generator) PlanOutputs(athleteName string, pl *plan.Plan) (mdPath, jsonPath string, err error) {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create output dir: %w", err)
	}
	base := "plan_" + nameSlug(athleteName)

	mdPath = filepath.Join(g.outputDir, base+".md")
	if err := os.WriteFile(mdPath, []byte(pl.Markdown), 0o644); err != nil {
		return "", "", fmt.Errorf("write plan markdown: %w", err)
	}

	data, err := json.MarshalIndent(pl.Sessions, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("encode plan sessions: %w", err)
	}
	jsonPath = filepath.Join(g.outputDir, base+"_structured.json")
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return "", "", fmt.Errorf("write plan sessions: %w", err)
	}

	g.log.Info().Str("markdown", mdPath).Str("json", jsonPath).Msg("plan outputs generated")
	return mdPath, jsonPath, nil
}

// nameSlug turns an athlete name into a filesystem-friendly token. Unnamed
// profiles fall back to "atleta".
func nameSlug(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_':
			b.WriteRune(unicode.ToLower(r))
		case r == ' ':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "atleta"
	}
	return b.String()
}
