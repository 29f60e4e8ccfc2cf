package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/devforge/devforge/internal/api/response"
	"github.com/devforge/devforge/internal/portfolio"
)

type updateProjectRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	ImageURL     *string   `json:"image_url"`
	Tags         *[]string `json:"tags"`
	LiveLink     *string   `json:"live_link"`
	IsFeatured   *bool     `json:"is_featured"`
	DisplayOrder *int      `json:"display_order"`
}

// PortfolioHandler handles public reads and admin CRUD for portfolio projects.
type PortfolioHandler struct {
	repo portfolio.Repository
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(repo portfolio.Repository) *PortfolioHandler {
	return &PortfolioHandler{repo: repo}
}

// List handles GET /portfolio and GET /admin/portfolio.
func (h *PortfolioHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list portfolio projects", "error", err)
		response.Err(w, http.StatusInternalServerError, "Failed to list portfolio projects")
		return
	}

	response.Success(w, http.StatusOK, projects)
}

// Create handles POST /admin/portfolio.
func (h *PortfolioHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var p portfolio.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		response.Err(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	if err := h.repo.Create(r.Context(), &p); err != nil {
		slog.Error("failed to create portfolio project", "error", err)
		response.Err(w, http.StatusInternalServerError, "Failed to create portfolio project")
		return
	}

	response.Success(w, http.StatusCreated, p)
}

// Update handles PUT /admin/portfolio/{id}. Provided fields are merged into
// the row; an unknown id is a no-op returning empty data.
func (h *PortfolioHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	p, err := h.repo.Update(r.Context(), id, portfolio.UpdateFields{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Tags:         req.Tags,
		LiveLink:     req.LiveLink,
		IsFeatured:   req.IsFeatured,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		if errors.Is(err, portfolio.ErrProjectNotFound) {
			response.Success(w, http.StatusOK, nil)
			return
		}
		slog.Error("failed to update portfolio project", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "Failed to update portfolio project")
		return
	}

	response.Success(w, http.StatusOK, p)
}

// Delete handles DELETE /admin/portfolio/{id}.
func (h *PortfolioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		slog.Error("failed to delete portfolio project", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "Failed to delete portfolio project")
		return
	}

	response.Message(w, http.StatusOK, "Project deleted")
}

// Reorder handles POST /admin/portfolio/reorder. Same abort-on-first-failure
// semantics as template reordering.
func (h *PortfolioHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	ids, ok := decodeReorderRequest(w, r)
	if !ok {
		return
	}

	for i, id := range ids {
		if err := h.repo.SetDisplayOrder(r.Context(), id, i); err != nil {
			slog.Error("failed to reorder portfolio", "error", err, "id", id, "position", i)
			response.Err(w, http.StatusInternalServerError, "Failed to update order")
			return
		}
	}

	response.Message(w, http.StatusOK, "Order updated")
}
