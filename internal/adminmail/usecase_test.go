package adminmail

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"ess-chatbot/internal/employee"
	"ess-chatbot/internal/model"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type stubDirectory struct {
	employees []model.Employee
}

func (s *stubDirectory) FindByID(ctx context.Context, id string) (model.Employee, error) {
	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Employee{}, employee.ErrNotFound
}

func (s *stubDirectory) FindByName(ctx context.Context, name string) (model.Employee, error) {
	for _, e := range s.employees {
		if strings.EqualFold(e.Name, name) {
			return e, nil
		}
	}
	return model.Employee{}, employee.ErrNotFound
}

func (s *stubDirectory) List(ctx context.Context) ([]model.Employee, error) {
	return s.employees, nil
}

type stubDelivery struct {
	calls int
	err   error

	lastFrom, lastTo, lastSubject, lastBody string
}

func (d *stubDelivery) Send(ctx context.Context, from, to, subject, htmlBody string) error {
	d.calls++
	d.lastFrom, d.lastTo, d.lastSubject, d.lastBody = from, to, subject, htmlBody
	return d.err
}

func testDirectory() *stubDirectory {
	return &stubDirectory{employees: []model.Employee{
		{ID: "E001", Name: "Alice Admin", Email: "alice@techcorp.example", Role: model.RoleAdmin},
		{ID: "E002", Name: "Bob Nguyen", Email: "bob@techcorp.example", Role: model.RoleEmployee},
		{ID: "E003", Name: "Carol Tran", Role: model.RoleEmployee},
	}}
}

func adminScope() model.Scope {
	return model.Scope{SessionKey: "sess-admin", EmployeeID: "E001", Name: "Alice Admin", Role: model.RoleAdmin}
}

func newTestUseCase(delivery *stubDelivery) (UseCase, *PendingStore) {
	store := NewPendingStore()
	uc := New(nopLogger{}, testDirectory(), delivery, store, "Official Communication", "hr@techcorp.example")
	return uc, store
}

func TestHandle_FullFlow(t *testing.T) {
	ctx := context.Background()
	delivery := &stubDelivery{}
	uc, store := newTestUseCase(delivery)
	sc := adminScope()

	reply, err := uc.Handle(ctx, sc, Entities{RawText: "send an email to Bob Nguyen"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reply.Success || reply.Completed {
		t.Fatalf("expected open flow, got %+v", reply)
	}
	if reply.Message != fmt.Sprintf(MsgAskMessage, "Bob Nguyen") {
		t.Errorf("unexpected prompt: %q", reply.Message)
	}
	if !store.Has(sc.SessionKey) {
		t.Fatalf("flow not pending after start")
	}
	if delivery.calls != 0 {
		t.Fatalf("nothing should be sent yet")
	}

	reply, err = uc.Handle(ctx, sc, Entities{RawText: "Please submit your timesheet by Friday."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reply.Success || !reply.Completed {
		t.Fatalf("expected completed flow, got %+v", reply)
	}
	if reply.Message != fmt.Sprintf(MsgSent, "Bob Nguyen") {
		t.Errorf("unexpected confirmation: %q", reply.Message)
	}
	if store.Has(sc.SessionKey) {
		t.Errorf("flow still pending after send")
	}
	if delivery.calls != 1 {
		t.Fatalf("expected one send, got %d", delivery.calls)
	}
	if delivery.lastFrom != "alice@techcorp.example" || delivery.lastTo != "bob@techcorp.example" {
		t.Errorf("unexpected addresses: from=%q to=%q", delivery.lastFrom, delivery.lastTo)
	}
	if !strings.Contains(delivery.lastBody, "Hello <b>Bob Nguyen</b>") ||
		!strings.Contains(delivery.lastBody, "Please submit your timesheet by Friday.") ||
		!strings.Contains(delivery.lastBody, "Alice Admin") {
		t.Errorf("unexpected body: %q", delivery.lastBody)
	}
}

func TestHandle_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("Explicit Entity Wins Over Raw Text", func(t *testing.T) {
		delivery := &stubDelivery{}
		uc, store := newTestUseCase(delivery)
		sc := adminScope()

		reply, err := uc.Handle(ctx, sc, Entities{EmployeeName: "Bob Nguyen", RawText: "message Carol Tran"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Message != fmt.Sprintf(MsgAskMessage, "Bob Nguyen") {
			t.Errorf("unexpected prompt: %q", reply.Message)
		}
		flow, ok := store.Get(sc.SessionKey)
		if !ok || flow.ToEmployee.ID != "E002" {
			t.Errorf("unexpected pending target: %+v", flow)
		}
	})

	t.Run("No Target Named", func(t *testing.T) {
		delivery := &stubDelivery{}
		uc, store := newTestUseCase(delivery)
		sc := adminScope()

		reply, err := uc.Handle(ctx, sc, Entities{RawText: "send an email"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Success || reply.Message != MsgSpecifyEmployee {
			t.Errorf("unexpected reply: %+v", reply)
		}
		if store.Has(sc.SessionKey) {
			t.Errorf("no flow should open without a target")
		}
	})

	t.Run("Unknown Employee", func(t *testing.T) {
		delivery := &stubDelivery{}
		uc, store := newTestUseCase(delivery)
		sc := adminScope()

		reply, err := uc.Handle(ctx, sc, Entities{EmployeeName: "Dave Unknown"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Success || reply.Message != fmt.Sprintf(MsgEmployeeNotFound, "Dave Unknown") {
			t.Errorf("unexpected reply: %+v", reply)
		}
		if store.Has(sc.SessionKey) {
			t.Errorf("no flow should open for an unknown target")
		}
	})

	t.Run("Target Without Email", func(t *testing.T) {
		delivery := &stubDelivery{}
		uc, store := newTestUseCase(delivery)
		sc := adminScope()

		reply, err := uc.Handle(ctx, sc, Entities{EmployeeName: "Carol Tran"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Success || reply.Message != fmt.Sprintf(MsgNoEmailFor, "Carol Tran") {
			t.Errorf("unexpected reply: %+v", reply)
		}
		if store.Has(sc.SessionKey) {
			t.Errorf("no flow should open for a target without an address")
		}
	})

	t.Run("Restart Replaces Pending Target", func(t *testing.T) {
		delivery := &stubDelivery{}
		uc, store := newTestUseCase(delivery)
		sc := adminScope()
		store.Set(sc.SessionKey, pendingFlow{ToEmployee: model.Employee{ID: "E999", Name: "Stale", Email: "stale@techcorp.example"}})

		// A pending flow consumes the turn as the message body, so the text
		// goes out to the stale target rather than starting over.
		reply, err := uc.Handle(ctx, sc, Entities{RawText: "send an email to Bob Nguyen"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reply.Completed {
			t.Fatalf("pending flow must win, got %+v", reply)
		}
		if delivery.lastTo != "stale@techcorp.example" {
			t.Errorf("unexpected recipient: %q", delivery.lastTo)
		}
	})
}

func TestHandle_Dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Blank Message Keeps Flow Open", func(t *testing.T) {
		delivery := &stubDelivery{}
		uc, store := newTestUseCase(delivery)
		sc := adminScope()
		store.Set(sc.SessionKey, pendingFlow{ToEmployee: model.Employee{ID: "E002", Name: "Bob Nguyen", Email: "bob@techcorp.example"}})

		reply, err := uc.Handle(ctx, sc, Entities{RawText: "   "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Success || reply.Message != MsgProvideMessage {
			t.Errorf("unexpected reply: %+v", reply)
		}
		if !store.Has(sc.SessionKey) {
			t.Errorf("blank input must not consume the flow")
		}
		if delivery.calls != 0 {
			t.Errorf("nothing should be sent")
		}
	})

	t.Run("Delivery Failure Keeps Flow Open", func(t *testing.T) {
		delivery := &stubDelivery{err: errors.New("smtp 550")}
		uc, store := newTestUseCase(delivery)
		sc := adminScope()
		store.Set(sc.SessionKey, pendingFlow{ToEmployee: model.Employee{ID: "E002", Name: "Bob Nguyen", Email: "bob@techcorp.example"}})

		reply, err := uc.Handle(ctx, sc, Entities{RawText: "hello"})
		if err != nil {
			t.Fatalf("delivery failure must not surface as an error: %v", err)
		}
		if reply.Success || reply.Completed {
			t.Errorf("unexpected reply: %+v", reply)
		}
		if reply.Message != fmt.Sprintf(MsgDeliveryFailed, "Bob Nguyen") {
			t.Errorf("unexpected message: %q", reply.Message)
		}
		if !store.Has(sc.SessionKey) {
			t.Errorf("failed send must leave the flow pending for a retry")
		}

		// Retry succeeds and closes the flow.
		delivery.err = nil
		reply, err = uc.Handle(ctx, sc, Entities{RawText: "hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reply.Completed || store.Has(sc.SessionKey) {
			t.Errorf("retry did not close the flow: %+v", reply)
		}
		if delivery.calls != 2 {
			t.Errorf("expected two send attempts, got %d", delivery.calls)
		}
	})
}

func TestHandle_Guards(t *testing.T) {
	ctx := context.Background()

	t.Run("Non Admin Rejected", func(t *testing.T) {
		delivery := &stubDelivery{}
		uc, store := newTestUseCase(delivery)
		sc := model.Scope{SessionKey: "sess-bob", EmployeeID: "E002", Name: "Bob Nguyen", Role: model.RoleEmployee}

		reply, err := uc.Handle(ctx, sc, Entities{EmployeeName: "Carol Tran"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Success || reply.Message != MsgNotAuthorized {
			t.Errorf("unexpected reply: %+v", reply)
		}
		if store.Has(sc.SessionKey) {
			t.Errorf("no flow should open for a non-admin")
		}
	})

	t.Run("Admin Missing From Directory", func(t *testing.T) {
		delivery := &stubDelivery{}
		uc, _ := newTestUseCase(delivery)
		sc := model.Scope{SessionKey: "sess-x", EmployeeID: "E999", Name: "Ghost", Role: model.RoleAdmin}

		reply, err := uc.Handle(ctx, sc, Entities{EmployeeName: "Bob Nguyen"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Message != MsgAdminConfigMissing {
			t.Errorf("unexpected reply: %+v", reply)
		}
	})

	t.Run("Fallback Sender Address", func(t *testing.T) {
		store := NewPendingStore()
		dir := testDirectory()
		dir.employees[0].Email = "" // admin record has no address
		delivery := &stubDelivery{}
		uc := New(nopLogger{}, dir, delivery, store, "Official Communication", "hr@techcorp.example")
		sc := adminScope()
		store.Set(sc.SessionKey, pendingFlow{ToEmployee: model.Employee{ID: "E002", Name: "Bob Nguyen", Email: "bob@techcorp.example"}})

		if _, err := uc.Handle(ctx, sc, Entities{RawText: "hi"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if delivery.lastFrom != "hr@techcorp.example" {
			t.Errorf("expected fallback sender, got %q", delivery.lastFrom)
		}
	})
}

func TestHasPendingAndAbort(t *testing.T) {
	ctx := context.Background()
	delivery := &stubDelivery{}
	uc, store := newTestUseCase(delivery)
	sc := adminScope()

	if uc.HasPending(ctx, sc) {
		t.Fatalf("fresh session must have no pending flow")
	}
	store.Set(sc.SessionKey, pendingFlow{ToEmployee: model.Employee{ID: "E002", Name: "Bob Nguyen", Email: "bob@techcorp.example"}})
	if !uc.HasPending(ctx, sc) {
		t.Fatalf("pending flow not visible")
	}
	if !uc.Abort(ctx, sc) {
		t.Fatalf("abort should report an existing flow")
	}
	if uc.HasPending(ctx, sc) || uc.Abort(ctx, sc) {
		t.Errorf("abort did not clear the flow")
	}
}
