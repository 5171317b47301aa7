package chat

import "context"

// Responder phrases a natural-language reply from a prompt. pkg/gemini
// satisfies this; the orchestrator degrades to canned text when it fails.
type Responder interface {
	GenerateText(ctx context.Context, prompt string, temperature float64) (string, error)
}

// UseCase is the conversation orchestrator: it routes one turn to commands,
// a pending admin mail flow, or intent detection, and always answers with a
// Reply value. Errors are reserved for infrastructure failures.
type UseCase interface {
	Process(ctx context.Context, input ProcessInput) (Reply, error)

	// Intents lists the routable catalog split by access level.
	Intents(ctx context.Context) IntentListing
}
