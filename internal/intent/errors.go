package intent

import "errors"

// Domain-specific errors for the intent package.
var (
	ErrEmptyQuery     = errors.New("query text is empty")
	ErrMissingID      = errors.New("intent is missing intent_id")
	ErrMissingName    = errors.New("intent is missing name")
	ErrNoExamples     = errors.New("intent has no examples")
	ErrEmptyExample   = errors.New("intent has an empty example")
	ErrDuplicateID    = errors.New("duplicate intent_id in catalog")
	ErrEmbedderNil    = errors.New("embedder is required")
)
