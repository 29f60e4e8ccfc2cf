package portfolio

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a row in the portfolio_projects table.
type Project struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     *string   `json:"image_url"`
	Tags         []string  `json:"tags"`
	LiveLink     *string   `json:"live_link"`
	IsFeatured   bool      `json:"is_featured"`
	DisplayOrder *int      `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// UpdateFields holds the optional fields of a partial project update.
// Nil pointers mean "leave unchanged".
type UpdateFields struct {
	Title        *string
	Description  *string
	ImageURL     *string
	Tags         *[]string
	LiveLink     *string
	IsFeatured   *bool
	DisplayOrder *int
}
