package suggest

import "fmt"

const planPrompt = `Eres MetaLogic AI, un experto en productividad. Convierte la meta del usuario en un plan.

Responde SOLO con un objeto JSON, sin markdown, con estos campos:
- title: título corto (ej. "Leer: La Peste")
- type: uno de "reading", "study", "habit", "fitness", "generic"
- paceMode: "deadline" si menciona un plazo, si no "pace"
- deadlineDays: número de días del plazo, 0 si no hay
- minutesPerSession: minutos por sesión (15 a 180)
- daysPerWeek: lista de días de la semana, 0=domingo .. 6=sábado
- targetValue: cantidad total a completar
- unitName: unidad de targetValue ("páginas", "km", "sesiones", "horas")

Meta del usuario: %q`

func buildPrompt(intentText string) string {
	return fmt.Sprintf(planPrompt, intentText)
}
