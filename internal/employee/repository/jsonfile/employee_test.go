package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ess-chatbot/internal/employee"
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

const seed = `{
	"employees": [
		{"employee_id": "E001", "name": "Alice Admin", "email": "alice@techcorp.example", "role": "ADMIN", "password": "pass123"},
		{"employee_id": "E002", "name": "Bob", "email": "bob@techcorp.example", "role": "EMPLOYEE", "password": "pass456"},
		{"employee_id": "E003", "name": "Carol", "role": "EMPLOYEE", "password": "pass789"}
	]
}`

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employees.json")
	if err := os.WriteFile(path, []byte(seed), 0o600); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	r, err := New(nopLogger{}, path)
	if err != nil {
		t.Fatalf("failed to load repository: %v", err)
	}
	return r
}

func TestRepository(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	t.Run("FindByID", func(t *testing.T) {
		e, err := r.FindByID(ctx, "E002")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Name != "Bob" {
			t.Errorf("expected Bob, got %q", e.Name)
		}
	})

	t.Run("FindByID Unknown", func(t *testing.T) {
		if _, err := r.FindByID(ctx, "E999"); !errors.Is(err, employee.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("FindByName Is Case Insensitive", func(t *testing.T) {
		e, err := r.FindByName(ctx, "bOb")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.ID != "E002" {
			t.Errorf("expected E002, got %q", e.ID)
		}
	})

	t.Run("Missing Email Preserved", func(t *testing.T) {
		e, err := r.FindByName(ctx, "Carol")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.HasEmail() {
			t.Errorf("Carol must have no contact address")
		}
	})

	t.Run("List Preserves Order", func(t *testing.T) {
		all, err := r.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(all) != 3 || all[0].ID != "E001" || all[2].ID != "E003" {
			t.Errorf("unexpected list: %+v", all)
		}
	})

	t.Run("Malformed File Fails Fast", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte(`{"employees": [{"name": "NoID"}]}`), 0o600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		if _, err := New(nopLogger{}, path); err == nil {
			t.Errorf("expected configuration error for entry without id")
		}
	})
}
