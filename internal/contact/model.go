package contact

import (
	"time"

	"github.com/google/uuid"
)

// Submission represents a row in the contact_submissions table. Only IsRead
// is mutable after creation.
type Submission struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	ProjectType string    `json:"project_type"`
	Phone       string    `json:"phone"`
	IsRead      bool      `json:"is_read"`
	SubmittedAt time.Time `json:"submitted_at"`
}
