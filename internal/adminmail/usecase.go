package adminmail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ess-chatbot/internal/employee"
	"ess-chatbot/internal/model"
)

func (uc *implUseCase) HasPending(ctx context.Context, sc model.Scope) bool {
	return uc.store.Has(sc.SessionKey)
}

func (uc *implUseCase) Abort(ctx context.Context, sc model.Scope) bool {
	return uc.store.Delete(sc.SessionKey)
}

func (uc *implUseCase) Handle(ctx context.Context, sc model.Scope, entities Entities) (Reply, error) {
	if !sc.IsAdmin() {
		return Reply{Message: MsgNotAuthorized}, nil
	}

	admin, err := uc.repo.FindByID(ctx, sc.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			return Reply{Message: MsgAdminConfigMissing}, nil
		}
		uc.l.Errorf(ctx, "adminmail.Handle.FindByID: %v", err)
		return Reply{}, err
	}

	from := admin.Email
	if from == "" {
		from = uc.fromFallback
	}
	if from == "" {
		return Reply{Message: MsgAdminConfigMissing}, nil
	}

	if flow, ok := uc.store.Get(sc.SessionKey); ok {
		return uc.dispatch(ctx, sc, admin, from, flow, entities)
	}
	return uc.start(ctx, sc, entities)
}

// start resolves the target employee and opens the flow. Any previous pending
// flow for the session is replaced wholesale.
func (uc *implUseCase) start(ctx context.Context, sc model.Scope, entities Entities) (Reply, error) {
	name := strings.TrimSpace(entities.EmployeeName)
	if name == "" {
		var err error
		name, err = uc.matchNameInText(ctx, entities.RawText)
		if err != nil {
			return Reply{}, err
		}
	}
	if name == "" {
		return Reply{Message: MsgSpecifyEmployee}, nil
	}

	emp, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			return Reply{Message: fmt.Sprintf(MsgEmployeeNotFound, name)}, nil
		}
		uc.l.Errorf(ctx, "adminmail.start.FindByName: %v", err)
		return Reply{}, err
	}
	if !emp.HasEmail() {
		return Reply{Message: fmt.Sprintf(MsgNoEmailFor, emp.Name)}, nil
	}

	uc.store.Set(sc.SessionKey, pendingFlow{ToEmployee: emp})
	return Reply{Success: true, Message: fmt.Sprintf(MsgAskMessage, emp.Name)}, nil
}

// dispatch consumes the pending flow using the turn's text as the message
// body. The flow is removed only after the delivery call succeeds, so a
// failed send leaves the session awaiting the message and the admin can
// simply repeat it.
func (uc *implUseCase) dispatch(ctx context.Context, sc model.Scope, admin model.Employee, from string, flow pendingFlow, entities Entities) (Reply, error) {
	message := strings.TrimSpace(entities.Message)
	if message == "" {
		message = strings.TrimSpace(entities.RawText)
	}
	if message == "" {
		return Reply{Message: MsgProvideMessage}, nil
	}

	to := flow.ToEmployee
	body := buildBody(to.Name, admin.Name, message)
	if err := uc.delivery.Send(ctx, from, to.Email, uc.subject, body); err != nil {
		uc.l.Errorf(ctx, "adminmail.dispatch.Send: to=%s: %v", to.Email, err)
		return Reply{Message: fmt.Sprintf(MsgDeliveryFailed, to.Name)}, nil
	}

	uc.store.Delete(sc.SessionKey)
	uc.l.Infof(ctx, "adminmail.dispatch: sent to %s (%s)", to.Name, to.Email)
	return Reply{Success: true, Completed: true, Message: fmt.Sprintf(MsgSent, to.Name)}, nil
}

// matchNameInText scans the directory for the first employee whose full name
// appears in the utterance, case-insensitively.
func (uc *implUseCase) matchNameInText(ctx context.Context, text string) (string, error) {
	text = strings.ToLower(text)
	if text == "" {
		return "", nil
	}
	employees, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "adminmail.matchNameInText.List: %v", err)
		return "", err
	}
	for _, e := range employees {
		if strings.Contains(text, strings.ToLower(e.Name)) {
			return e.Name, nil
		}
	}
	return "", nil
}

func buildBody(toName, adminName, message string) string {
	return fmt.Sprintf(
		"Hello <b>%s</b>,<br><br>%s<br><br>Regards,<br>%s<br>TechCorp HR",
		toName, message, adminName,
	)
}
