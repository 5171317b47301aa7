package intent

// Intent is one entry of the closed intent catalog.
type Intent struct {
	ID        string   `json:"intent_id"`
	Name      string   `json:"name"`
	Examples  []string `json:"examples"`
	IsPrivate bool     `json:"is_private"`
}

// Catalog is the static intent configuration loaded at startup.
// It is immutable after construction of the detector.
type Catalog struct {
	Intents []Intent `json:"intents"`
}

// Match is the result of a detection pass. Intent is nil when no catalog entry
// cleared the threshold; Score is still the best similarity found (0 when the
// catalog is empty or every record scored below zero).
type Match struct {
	Intent *Intent
	Score  float64
}

// embeddingRecord pairs one example's vector with its owning intent.
// Records keep catalog order: ties resolve to the earliest record.
type embeddingRecord struct {
	intent *Intent
	vector []float32
}
