package adminmail

import (
	"context"

	"ess-chatbot/internal/model"
)

// Delivery sends one outbound message. The failure reason is opaque here:
// this package only acts on success or failure. pkg/gmail satisfies this.
type Delivery interface {
	Send(ctx context.Context, from, to, subject, htmlBody string) error
}

// UseCase is the two-step admin→employee message flow. Per session key there is
// at most one pending flow: Handle either starts one (resolving the target and
// prompting for the message) or, when a flow is pending, treats the input as
// the message body and dispatches it.
type UseCase interface {
	// HasPending reports whether the session has an open flow awaiting a message.
	HasPending(ctx context.Context, sc model.Scope) bool

	// Handle advances the flow for the session. User-visible failures come back
	// as an unsuccessful Reply, not an error.
	Handle(ctx context.Context, sc model.Scope, entities Entities) (Reply, error)

	// Abort clears any pending flow and reports whether one existed.
	Abort(ctx context.Context, sc model.Scope) bool
}
