package auth

import (
	"context"

	"ess-chatbot/internal/model"
)

// Login authenticates against the directory and binds the session key.
func (m *implManager) Login(ctx context.Context, sessionKey, employeeID, password string) (model.Employee, error) {
	emp, err := m.repo.FindByID(ctx, employeeID)
	if err != nil {
		// Same error for unknown id and wrong password: no directory probing.
		return model.Employee{}, ErrInvalidCredentials
	}
	if password == "" || emp.Password != password {
		return model.Employee{}, ErrInvalidCredentials
	}

	m.mu.Lock()
	m.sessions[sessionKey] = emp
	m.mu.Unlock()

	m.l.Infof(ctx, "auth: session %s logged in as %s", sessionKey, emp.ID)
	return emp, nil
}

// Logout unbinds the session key.
func (m *implManager) Logout(ctx context.Context, sessionKey string) error {
	m.mu.Lock()
	_, ok := m.sessions[sessionKey]
	delete(m.sessions, sessionKey)
	m.mu.Unlock()

	if !ok {
		return ErrNotLoggedIn
	}
	m.l.Infof(ctx, "auth: session %s logged out", sessionKey)
	return nil
}

// Current returns the employee bound to the session key, if any.
func (m *implManager) Current(ctx context.Context, sessionKey string) (model.Employee, bool) {
	m.mu.RLock()
	emp, ok := m.sessions[sessionKey]
	m.mu.RUnlock()
	return emp, ok
}
