package auth

import (
	"sync"

	"ess-chatbot/internal/employee"
	"ess-chatbot/internal/model"
	pkgLog "ess-chatbot/pkg/log"
)

type implManager struct {
	l    pkgLog.Logger
	repo employee.Repository

	mu       sync.RWMutex
	sessions map[string]model.Employee // session key -> logged-in employee
}

// Ensure implManager implements Manager.
var _ Manager = (*implManager)(nil)

// New creates a new in-memory auth Manager backed by the employee directory.
func New(l pkgLog.Logger, repo employee.Repository) *implManager {
	return &implManager{
		l:        l,
		repo:     repo,
		sessions: make(map[string]model.Employee),
	}
}
