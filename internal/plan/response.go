package plan

import (
	"encoding/json"
	"fmt"
	"strings"
)

// maxDiagnosticLen bounds how much of a rejected response ends up in the
// error message.
const maxDiagnosticLen = 500

// ParseResponse validates a raw AI response against the two-part plan
// contract. The whole response is rejected on the first violation; there is
// no partial acceptance. Rejection errors carry a prefix of the cleaned
// response for diagnosis.
func ParseResponse(raw string) (*Plan, error) {
	cleaned := stripCodeFence(raw)

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &top); err != nil {
		return nil, rejectf(cleaned, "la respuesta no es un objeto JSON: %v", err)
	}

	mdRaw, ok := top["plan_markdown"]
	if !ok {
		return nil, rejectf(cleaned, "falta la clave requerida 'plan_markdown'")
	}
	structRaw, ok := top["plan_structured"]
	if !ok {
		return nil, rejectf(cleaned, "falta la clave requerida 'plan_structured'")
	}

	var markdown string
	if err := json.Unmarshal(mdRaw, &markdown); err != nil {
		return nil, rejectf(cleaned, "'plan_markdown' no es un string válido")
	}

	var sessions []map[string]json.RawMessage
	if err := json.Unmarshal(structRaw, &sessions); err != nil {
		return nil, rejectf(cleaned, "'plan_structured' no es un array válido")
	}

	requiredKeys := []string{"week", "day_of_week", "day_description", "session_type", "details"}
	for i, s := range sessions {
		for _, k := range requiredKeys {
			if _, ok := s[k]; !ok {
				return nil, rejectf(cleaned, "el objeto %d de 'plan_structured' no tiene la clave '%s'", i, k)
			}
		}
	}

	var typed []Session
	if err := json.Unmarshal(structRaw, &typed); err != nil {
		return nil, rejectf(cleaned, "'plan_structured' contiene campos con tipo inválido: %v", err)
	}

	return &Plan{Markdown: markdown, Sessions: typed}, nil
}

// stripCodeFence removes an optional surrounding markdown code fence. Models
// often wrap JSON output in ```json ... ``` despite instructions not to.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func rejectf(cleaned, format string, args ...any) error {
	prefix := cleaned
	if len(prefix) > maxDiagnosticLen {
		prefix = prefix[:maxDiagnosticLen] + "..."
	}
	return fmt.Errorf("respuesta de la IA rechazada: %s (respuesta recibida: %s)",
		fmt.Sprintf(format, args...), prefix)
}
