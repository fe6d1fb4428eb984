package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joseantonio2001/Running-Fit-Tech/internal/profile"
)

// WriteTemplate creates an empty-profile JSON template at path so a user
// can fill the fields in an editor and load the result. The underscore
// instruction keys are ignored by the loader, so leaving them in is
// harmless.
func (s *Store) WriteTemplate(path string) error {
	if path == "" {
		path = filepath.Join(filepath.Dir(s.path), DefaultTemplateFilename)
	}

	doc := profile.NewEmpty().ToDocument()
	base, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode template base: %w", err)
	}

	var tpl map[string]any
	if err := json.Unmarshal(base, &tpl); err != nil {
		return fmt.Errorf("decode template base: %w", err)
	}

	tpl["_INSTRUCTIONS"] = map[string]string{
		"description": "Plantilla para crear perfil de atleta manualmente",
		"usage":       "1. Rellena los campos necesarios, 2. Guarda el archivo, 3. Carga en la aplicación",
		"notes":       "Los campos null son opcionales. Las claves que empiezan por '_' se ignoran al cargar.",
	}
	tpl["_FIELD_EXAMPLES"] = map[string]string{
		"gender":                   "Opciones: 'Masculino', 'Femenino', 'Otro'",
		"running_experience_years": "Ejemplos: 5, 2.5, 0.5 (años totales practicando running)",
		"current_training_period":  "Ejemplos: '3 semanas', '2 meses', 'Empezando ahora'",
		"training_days_per_week":   "Ejemplos: '4', '5', '4-5'",
		"personal_bests":           "Formato: 'HH:MM:SS' (ej: '00:18:30')",
		"date_formats":             "Fechas en formato YYYY-MM-DD (ej: '2026-11-30')",
	}

	data, err := json.MarshalIndent(tpl, "", "    ")
	if err != nil {
		return fmt.Errorf("encode template: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create template dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write template: %w", err)
	}

	s.log.Info().Str("path", path).Msg("profile template created")
	return nil
}
