package usecase

import (
	"context"
	"errors"
	"strings"

	"ess-chatbot/internal/adminmail"
	"ess-chatbot/internal/chat"
	"ess-chatbot/internal/intent"
	"ess-chatbot/internal/model"
)

func (uc *implUseCase) Process(ctx context.Context, input chat.ProcessInput) (chat.Reply, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return chat.Reply{Message: chat.MsgEmptyInput}, nil
	}

	sc := uc.scopeFor(ctx, input.SessionKey)

	if strings.HasPrefix(text, "/") {
		return uc.handleCommand(ctx, sc, text)
	}

	// A pending admin mail flow consumes the turn before any detection:
	// the text is the message body, not a new query.
	if uc.adminMail.HasPending(ctx, sc) {
		r, err := uc.adminMail.Handle(ctx, sc, adminmail.Entities{RawText: text})
		if err != nil {
			return chat.Reply{}, err
		}
		return adminMailReply(r, 0), nil
	}

	match, err := uc.detector.Detect(ctx, text, uc.threshold)
	if err != nil {
		if errors.Is(err, intent.ErrEmptyQuery) {
			return chat.Reply{Message: chat.MsgEmptyInput}, nil
		}
		uc.l.Errorf(ctx, "chat.Process.Detect: %v", err)
		return chat.Reply{}, err
	}

	if match.Intent == nil {
		return uc.fallback(ctx, text, match.Score), nil
	}

	it := match.Intent
	if it.IsPrivate && !sc.IsAuthenticated() {
		return chat.Reply{
			IntentID:     it.ID,
			IntentName:   it.Name,
			Confidence:   match.Score,
			Message:      chat.MsgLoginRequired,
			RequiresAuth: true,
		}, nil
	}

	if it.ID == chat.IntentAdminSendEmail {
		r, err := uc.adminMail.Handle(ctx, sc, adminmail.Entities{RawText: text})
		if err != nil {
			return chat.Reply{}, err
		}
		return adminMailReply(r, match.Score), nil
	}

	return uc.businessReply(ctx, sc, it, text, match.Score), nil
}

func (uc *implUseCase) Intents(ctx context.Context) chat.IntentListing {
	return chat.IntentListing{
		General: summarize(uc.detector.GeneralIntents()),
		Private: summarize(uc.detector.PrivateIntents()),
	}
}

// scopeFor resolves the session key to a caller scope; anonymous sessions get
// a scope carrying only the key.
func (uc *implUseCase) scopeFor(ctx context.Context, sessionKey string) model.Scope {
	sc := model.Scope{SessionKey: sessionKey}
	if emp, ok := uc.auth.Current(ctx, sessionKey); ok {
		sc.EmployeeID = emp.ID
		sc.Name = emp.Name
		sc.Role = emp.Role
	}
	return sc
}

func adminMailReply(r adminmail.Reply, score float64) chat.Reply {
	return chat.Reply{
		Success:    r.Success,
		IntentID:   chat.IntentAdminSendEmail,
		IntentName: "Admin send email",
		Confidence: score,
		Message:    r.Message,
	}
}

func summarize(intents []intent.Intent) []chat.IntentSummary {
	out := make([]chat.IntentSummary, len(intents))
	for i, it := range intents {
		out[i] = chat.IntentSummary{ID: it.ID, Name: it.Name, IsPrivate: it.IsPrivate}
	}
	return out
}
