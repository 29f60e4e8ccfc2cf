package template

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrTemplateNotFound is returned when a template record is not found.
var ErrTemplateNotFound = errors.New("template not found")

// Repository provides CRUD operations on the project_templates table.
type Repository interface {
	Create(ctx context.Context, t *Template) error
	GetByID(ctx context.Context, id uuid.UUID) (*Template, error)
	List(ctx context.Context) ([]Template, error)
	Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*Template, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetDisplayOrder(ctx context.Context, id uuid.UUID, position int) error
}
