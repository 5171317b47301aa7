package auth

import (
	"context"

	"ess-chatbot/internal/model"
)

// Manager tracks which employee is logged in per conversation session key.
// Sessions live in memory only; a restart logs everyone out.
type Manager interface {
	// Login authenticates the employee and binds them to the session key.
	// A successful login replaces any previous identity on the key.
	Login(ctx context.Context, sessionKey, employeeID, password string) (model.Employee, error)

	// Logout unbinds the session key. Logging out an anonymous session is an error.
	Logout(ctx context.Context, sessionKey string) error

	// Current returns the employee bound to the session key, if any.
	Current(ctx context.Context, sessionKey string) (model.Employee, bool)
}
