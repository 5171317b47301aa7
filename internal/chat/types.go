package chat

// ProcessInput is one conversation turn: the session key identifying the
// conversation and the raw user text.
type ProcessInput struct {
	SessionKey string
	Text       string
}

// Reply is the structured outcome of one turn. Intent fields are zero when the
// turn was a command or nothing cleared the threshold; Confidence is the best
// similarity found either way.
type Reply struct {
	Success      bool
	IntentID     string
	IntentName   string
	Confidence   float64
	Message      string
	RequiresAuth bool
}

// IntentSummary is one catalog entry as surfaced to clients.
type IntentSummary struct {
	ID        string
	Name      string
	IsPrivate bool
}

// IntentListing partitions the catalog by access level.
type IntentListing struct {
	General []IntentSummary
	Private []IntentSummary
}
