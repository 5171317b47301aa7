package employee

import (
	"context"

	"ess-chatbot/internal/model"
)

// Repository is the employee directory the chatbot reads from.
type Repository interface {
	// FindByID looks up an employee by their stable id.
	FindByID(ctx context.Context, id string) (model.Employee, error)

	// FindByName looks up an employee by case-insensitive exact name match.
	FindByName(ctx context.Context, name string) (model.Employee, error)

	// List returns every directory entry in catalog order.
	List(ctx context.Context) ([]model.Employee, error)
}
