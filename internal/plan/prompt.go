package plan

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joseantonio2001/Running-Fit-Tech/internal/aidoc"
	"github.com/joseantonio2001/Running-Fit-Tech/internal/profile"
)

// BuildPrompt renders the full instruction payload for the plan request:
// the AI-optimized profile embedded in a prompt that fixes the coaching
// role, the hard planning rules and the exact response schema.
func BuildPrompt(p *profile.AthleteProfile) (string, error) {
	doc := aidoc.Transform(p)
	profileJSON, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode athlete document: %w", err)
	}

	var b strings.Builder
	b.WriteString(promptRole)
	b.WriteString("\n\nFICHA TÉCNICA DEL ATLETA (JSON):\n```json\n")
	b.Write(profileJSON)
	b.WriteString("\n```\n\n")
	b.WriteString(promptTask)
	b.WriteString("\n\n")
	b.WriteString(promptRules)
	b.WriteString("\n\n")
	b.WriteString(promptOutputFormat)
	return b.String(), nil
}

const promptRole = `Eres un entrenador de running de élite mundial, Doctor en fisiología del ejercicio, con certificación USATF Nivel 3 y especialización en biomecánica y prevención de lesiones. Tu misión es crear planes de entrenamiento hiper-personalizados, científicamente fundamentados y extremadamente detallados. Analiza meticulosamente cada dato del perfil adjunto.`

const promptTask = `TAREA PRINCIPAL:
Basándote en un análisis exhaustivo y técnico de CADA CAMPO del JSON anterior (especialmente ` + "`main_objective`, `training_context`, `performance_data`, `physiological_metrics`" + ` y OBLIGATORIAMENTE ` + "`injury_history`" + ` y su ` + "`current_status`" + `), genera un "Informe de Planificación de Entrenamiento" completo y detallado para que el atleta alcance su ` + "`main_objective`."

const promptRules = `REGLAS IMPORTANTES PARA EL PLAN:
1. **Contexto Actual (CRÍTICO):** Analiza ` + "`training_context.experience_and_background.current_training_period`" + ` y ` + "`training_context.current_training_load.avg_weekly_km`" + `. El plan debe comenzar con una carga adecuada al estado actual del atleta. Si viene de inactividad ("Empezando ahora" o período corto), empieza de forma muy conservadora. Si ya lleva semanas/meses entrenando con un volumen X, continúa esa progresión de forma lógica, sin saltos bruscos ni reinicios innecesarios.
2. **Disponibilidad General:** Respeta estrictamente los días indicados en ` + "`training_context.availability_constraints.unavailable_days`" + ` como días de DESCANSO OBLIGATORIO.
3. **EXCEPCIÓN - Semanas de Competición:** IGNORA ` + "`unavailable_days`" + ` ÚNICAMENTE durante las semanas que contengan una carrera (` + "`main_objective` o `intermediate_races`" + `). Programa sesiones de activación/descanso activo apropiadas en esos días si es beneficioso. En el resto de semanas, la restricción es absoluta.
4. **Gestión de Lesiones:** MÁXIMA PRIORIDAD. Dada la ` + "`injury_history`" + ` y el ` + "`current_status`" + `, diseña una progresión de volumen e intensidad extremadamente cautelosa, con notas de prevención dentro de la tabla semanal y una sección de estrategia anti-lesión en la justificación inicial.
5. **Entrenamiento de Fuerza:** Si ` + "`include_strength_training`" + ` es ` + "`true`" + `, integra 1-2 sesiones semanales de fuerza funcional en días de bajo impacto. Si es ` + "`false`/`null`" + `, no incluyas fuerza y menciónalo en la justificación.
6. **Detalle de Sesiones:** Para CADA sesión de entrenamiento (excepto descanso), especifica claramente separado: Calentamiento (Cal.), Parte Principal (Ppal.) con RITMOS específicos y/o RANGOS DE FC precisos derivados del perfil y RPE objetivo (escala 1-10), y Enfriamiento (Enf.).
7. **Ritmos/Zonas:** Basa los ritmos/zonas en los PBs, VO2max, FCmax/reposo y objetivo del atleta. Utiliza los rangos de FC de ` + "`physiological_metrics.training_zones`" + ` cuando indiques Zonas FC.`

const promptOutputFormat = `REQUISITOS OBLIGATORIOS PARA LA ESTRUCTURA DE SALIDA (JSON):
Tu respuesta DEBE ser ÚNICAMENTE un objeto JSON válido, sin texto adicional.
Estructura exacta:
` + "```json" + `
{
  "plan_markdown": "...",
  "plan_structured": [ ... ]
}
` + "```" + `

CONTENIDO REQUERIDO DENTRO DE "plan_markdown":
1. Título: "## Informe de Planificación de Entrenamiento para [Nombre Atleta]".
2. Sección "### Justificación y Estrategia Fisiológica": explica el punto de partida según el contexto actual, objetivo vs. PBs, métricas disponibles, gestión de riesgo de lesión, progresión de volumen/intensidad, distribución semanal, disponibilidad (incluida la excepción de semanas de competición), fuerza y uso de carreras intermedias.
3. "## Plan Detallado Semanal": para CADA SEMANA un encabezado "### Semana X (DD/MM - DD/MM) - Enfoque: ...", un párrafo introductorio corto y una tabla Markdown con columnas | Día | Sesión | Calentamiento | Parte Principal (Ritmo/FC/RPE) | Enfriamiento | Notas Prevención/Ejecución |. En semanas con carrera, incluye estrategia de ritmo en las notas del día de la carrera.

CONTENIDO REQUERIDO DENTRO DE "plan_structured" (array de objetos diarios):
` + "```json" + `
{
  "week": <int>,
  "day_of_week": <int>,
  "day_description": "<str>",
  "session_type": "<str>",
  "details": "<str>"
}
` + "```" + `
day_of_week usa 1=Lunes. details debe reflejar Cal/Ppal/Enf con Ritmos/FC/RPE.

Recuerda: solo el objeto JSON como respuesta final. La seguridad del atleta y la adecuación de la carga inicial al contexto actual son primordiales.`
