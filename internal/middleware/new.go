package middleware

import (
	"ess-chatbot/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l       log.Logger
	limiter *sessionLimiter
}

// New creates the middleware set. rateLimitPerMin caps chat turns per session;
// embedding calls are slow and paid, so backpressure lives at this layer.
func New(l log.Logger, rateLimitPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newSessionLimiter(rateLimitPerMin),
	}
}
