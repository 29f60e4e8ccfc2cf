package contact

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrSubmissionNotFound is returned when a contact submission is not found.
var ErrSubmissionNotFound = errors.New("contact submission not found")

// Repository provides operations on the contact_submissions table.
type Repository interface {
	Create(ctx context.Context, s *Submission) error
	List(ctx context.Context) ([]Submission, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*Submission, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
