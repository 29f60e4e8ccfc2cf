package team

import (
	"time"

	"github.com/google/uuid"
)

// Member represents a row in the team_members table.
type Member struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Bio          *string   `json:"bio"`
	Skills       []string  `json:"skills"`
	AvatarURL    *string   `json:"avatar_url"`
	GitHubURL    *string   `json:"github_url"`
	LinkedInURL  *string   `json:"linkedin_url"`
	ColorTheme   string    `json:"color_theme"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// UpdateFields holds the optional fields of a partial member update.
// Nil pointers mean "leave unchanged".
type UpdateFields struct {
	Name         *string
	Role         *string
	Bio          *string
	Skills       *[]string
	AvatarURL    *string
	GitHubURL    *string
	LinkedInURL  *string
	ColorTheme   *string
	DisplayOrder *int
}
