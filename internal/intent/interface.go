package intent

import "context"

// Embedder converts texts into fixed-length semantic vectors.
// Must be deterministic per process and must not return a zero vector for
// non-empty text. pkg/voyage satisfies this.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Detector classifies free text against the catalog.
type Detector interface {
	// Detect embeds the query and returns the best catalog match.
	// Intent is nil when the best score is below threshold; the score is
	// reported either way.
	Detect(ctx context.Context, query string, threshold float64) (Match, error)

	// IsPrivate reports whether the intent requires authentication.
	// Unknown ids are treated as public: the catalog is the closed set of
	// routable intents, documented policy.
	IsPrivate(intentID string) bool

	// GeneralIntents returns the intents that need no authentication.
	GeneralIntents() []Intent

	// PrivateIntents returns the intents that require authentication.
	PrivateIntents() []Intent
}
