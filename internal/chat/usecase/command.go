package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ess-chatbot/internal/auth"
	"ess-chatbot/internal/chat"
	"ess-chatbot/internal/model"
)

// handleCommand dispatches slash commands. Commands never reach the detector.
func (uc *implUseCase) handleCommand(ctx context.Context, sc model.Scope, text string) (chat.Reply, error) {
	fields := strings.Fields(text)
	cmd := strings.ToLower(fields[0])

	switch cmd {
	case "/login":
		return uc.login(ctx, sc, fields[1:])
	case "/logout":
		return uc.logout(ctx, sc)
	case "/status":
		return uc.status(ctx, sc)
	case "/help":
		return uc.help(ctx, sc)
	default:
		return chat.Reply{Message: chat.MsgUnknownCommand}, nil
	}
}

func (uc *implUseCase) login(ctx context.Context, sc model.Scope, args []string) (chat.Reply, error) {
	if len(args) != 2 {
		return chat.Reply{Message: chat.MsgLoginUsage}, nil
	}

	emp, err := uc.auth.Login(ctx, sc.SessionKey, args[0], args[1])
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return chat.Reply{Message: chat.MsgLoginFailed}, nil
		}
		uc.l.Errorf(ctx, "chat.login: %v", err)
		return chat.Reply{}, err
	}

	return chat.Reply{
		Success: true,
		Message: fmt.Sprintf("✅ Welcome, %s! You are logged in as %s.", emp.Name, strings.ToLower(string(emp.Role))),
	}, nil
}

func (uc *implUseCase) logout(ctx context.Context, sc model.Scope) (chat.Reply, error) {
	// Leaving a session also drops any half-open mail flow.
	uc.adminMail.Abort(ctx, sc)

	if err := uc.auth.Logout(ctx, sc.SessionKey); err != nil {
		if errors.Is(err, auth.ErrNotLoggedIn) {
			return chat.Reply{Message: chat.MsgAlreadyOut}, nil
		}
		uc.l.Errorf(ctx, "chat.logout: %v", err)
		return chat.Reply{}, err
	}
	return chat.Reply{Success: true, Message: chat.MsgLoggedOut}, nil
}

func (uc *implUseCase) status(ctx context.Context, sc model.Scope) (chat.Reply, error) {
	if !sc.IsAuthenticated() {
		return chat.Reply{Success: true, Message: "You are not logged in."}, nil
	}
	msg := fmt.Sprintf("You are logged in as %s (%s).", sc.Name, strings.ToLower(string(sc.Role)))
	if uc.adminMail.HasPending(ctx, sc) {
		msg += " An email draft is awaiting its message; send it or /logout to discard."
	}
	return chat.Reply{Success: true, Message: msg}, nil
}

func (uc *implUseCase) help(ctx context.Context, sc model.Scope) (chat.Reply, error) {
	var sb strings.Builder
	sb.WriteString("Commands: /login <employee_id> <password>, /logout, /status, /help.\n")

	if general := uc.detector.GeneralIntents(); len(general) > 0 {
		sb.WriteString("I can help with: ")
		sb.WriteString(joinNames(general))
		sb.WriteString(".\n")
	}
	if private := uc.detector.PrivateIntents(); len(private) > 0 {
		sb.WriteString("After login: ")
		sb.WriteString(joinNames(private))
		sb.WriteString(".")
	}
	return chat.Reply{Success: true, Message: sb.String()}, nil
}
