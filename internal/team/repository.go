package team

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrMemberNotFound is returned when a team member record is not found.
var ErrMemberNotFound = errors.New("team member not found")

// Repository provides CRUD operations on the team_members table.
type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, id uuid.UUID) (*Member, error)
	List(ctx context.Context) ([]Member, error)
	Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*Member, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
