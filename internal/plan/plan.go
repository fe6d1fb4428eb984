// Package plan builds the AI plan request and validates the response.
package plan

// Plan is a fully-validated training plan: the human-readable report plus
// the machine-readable daily sessions. Both parts come from a single AI
// response; neither exists without the other.
type Plan struct {
	Markdown string    `json:"plan_markdown"`
	Sessions []Session `json:"plan_structured"`
}

// Session is one day of the structured plan. DayOfWeek is 1=Lunes..7=Domingo.
type Session struct {
	Week           int    `json:"week"`
	DayOfWeek      int    `json:"day_of_week"`
	DayDescription string `json:"day_description"`
	SessionType    string `json:"session_type"`
	Details        string `json:"details"`
}
