package jsonfile

import (
	"context"
	"strings"

	"ess-chatbot/internal/employee"
	"ess-chatbot/internal/model"
)

// FindByID looks up an employee by their stable id.
func (r *Repository) FindByID(ctx context.Context, id string) (model.Employee, error) {
	if i, ok := r.byID[id]; ok {
		return r.employees[i], nil
	}
	return model.Employee{}, employee.ErrNotFound
}

// FindByName looks up an employee by case-insensitive exact name match.
func (r *Repository) FindByName(ctx context.Context, name string) (model.Employee, error) {
	if i, ok := r.byName[strings.ToLower(name)]; ok {
		return r.employees[i], nil
	}
	return model.Employee{}, employee.ErrNotFound
}

// List returns every directory entry in file order.
func (r *Repository) List(ctx context.Context) ([]model.Employee, error) {
	out := make([]model.Employee, len(r.employees))
	copy(out, r.employees)
	return out, nil
}
