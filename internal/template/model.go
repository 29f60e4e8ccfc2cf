package template

import (
	"time"

	"github.com/google/uuid"
)

// Template represents a row in the project_templates table.
type Template struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ImageURL       *string   `json:"image_url"`
	Difficulty     string    `json:"difficulty"` // "Beginner", "Intermediate" or "Advanced"
	Tags           []string  `json:"tags"`
	LivePreviewURL *string   `json:"live_preview_url"`
	IsFeatured     bool      `json:"is_featured"`
	DisplayOrder   *int      `json:"display_order"`
	CreatedAt      time.Time `json:"created_at"`
}

// UpdateFields holds the optional fields of a partial template update.
// Nil pointers mean "leave unchanged".
type UpdateFields struct {
	Title          *string
	Description    *string
	ImageURL       *string
	Difficulty     *string
	Tags           *[]string
	LivePreviewURL *string
	IsFeatured     *bool
	DisplayOrder   *int
}
