package usecase

import (
	"ess-chatbot/internal/adminmail"
	"ess-chatbot/internal/auth"
	"ess-chatbot/internal/chat"
	"ess-chatbot/internal/intent"
	pkgLog "ess-chatbot/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	detector  intent.Detector
	threshold float64
	auth      auth.Manager
	adminMail adminmail.UseCase
	responder chat.Responder
}

// New creates the conversation orchestrator. responder may be nil; canned
// replies are used then.
func New(
	l pkgLog.Logger,
	detector intent.Detector,
	threshold float64,
	authMgr auth.Manager,
	adminMail adminmail.UseCase,
	responder chat.Responder,
) *implUseCase {
	return &implUseCase{
		l:         l,
		detector:  detector,
		threshold: threshold,
		auth:      authMgr,
		adminMail: adminMail,
		responder: responder,
	}
}
