package portfolio

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrProjectNotFound is returned when a portfolio project is not found.
var ErrProjectNotFound = errors.New("portfolio project not found")

// Repository provides CRUD operations on the portfolio_projects table.
type Repository interface {
	Create(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetDisplayOrder(ctx context.Context, id uuid.UUID, position int) error
}
