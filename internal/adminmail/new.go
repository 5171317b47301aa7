package adminmail

import (
	"ess-chatbot/internal/employee"
	"ess-chatbot/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	repo     employee.Repository
	delivery Delivery
	store    *PendingStore

	subject      string
	fromFallback string
}

// New builds the admin mail use case. fromFallback is used as the sender
// address when the admin's own directory record has no email.
func New(l log.Logger, repo employee.Repository, delivery Delivery, store *PendingStore, subject, fromFallback string) UseCase {
	return &implUseCase{
		l:            l,
		repo:         repo,
		delivery:     delivery,
		store:        store,
		subject:      subject,
		fromFallback: fromFallback,
	}
}
