package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/devforge/devforge/internal/api/response"
	"github.com/devforge/devforge/internal/team"
)

type updateMemberRequest struct {
	Name         *string   `json:"name"`
	Role         *string   `json:"role"`
	Bio          *string   `json:"bio"`
	Skills       *[]string `json:"skills"`
	AvatarURL    *string   `json:"avatar_url"`
	GitHubURL    *string   `json:"github_url"`
	LinkedInURL  *string   `json:"linkedin_url"`
	ColorTheme   *string   `json:"color_theme"`
	DisplayOrder *int      `json:"display_order"`
}

// TeamHandler handles public reads and admin CRUD for team members.
type TeamHandler struct {
	repo team.Repository
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(repo team.Repository) *TeamHandler {
	return &TeamHandler{repo: repo}
}

// List handles GET /team and GET /admin/team.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list team members", "error", err)
		response.Err(w, http.StatusInternalServerError, "Failed to list team members")
		return
	}

	response.Success(w, http.StatusOK, members)
}

// Create handles POST /admin/team.
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var m team.Member
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		response.Err(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	if err := h.repo.Create(r.Context(), &m); err != nil {
		slog.Error("failed to create team member", "error", err)
		response.Err(w, http.StatusInternalServerError, "Failed to create team member")
		return
	}

	response.Success(w, http.StatusCreated, m)
}

// Update handles PUT /admin/team/{id}. Provided fields are merged into the
// row; an unknown id is a no-op returning empty data.
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req updateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	m, err := h.repo.Update(r.Context(), id, team.UpdateFields{
		Name:         req.Name,
		Role:         req.Role,
		Bio:          req.Bio,
		Skills:       req.Skills,
		AvatarURL:    req.AvatarURL,
		GitHubURL:    req.GitHubURL,
		LinkedInURL:  req.LinkedInURL,
		ColorTheme:   req.ColorTheme,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		if errors.Is(err, team.ErrMemberNotFound) {
			response.Success(w, http.StatusOK, nil)
			return
		}
		slog.Error("failed to update team member", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "Failed to update team member")
		return
	}

	response.Success(w, http.StatusOK, m)
}

// Delete handles DELETE /admin/team/{id}.
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		slog.Error("failed to delete team member", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "Failed to delete team member")
		return
	}

	response.Message(w, http.StatusOK, "Team member deleted")
}
