package adminmail

import "ess-chatbot/internal/model"

// Entities is the validated input shape for the flow: an optional explicitly
// extracted employee name, an optional explicit message, and the raw utterance
// used for fallback resolution.
type Entities struct {
	EmployeeName string
	Message      string
	RawText      string
}

// Reply is the structured outcome of one Handle call.
type Reply struct {
	Success bool
	Message string
	// Completed is true when the flow finished this turn (mail delivered).
	Completed bool
}

// pendingFlow is the per-session state held between the two turns.
type pendingFlow struct {
	ToEmployee model.Employee
}
