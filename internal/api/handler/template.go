package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/devforge/devforge/internal/api/response"
	"github.com/devforge/devforge/internal/template"
)

type updateTemplateRequest struct {
	Title          *string   `json:"title"`
	Description    *string   `json:"description"`
	ImageURL       *string   `json:"image_url"`
	Difficulty     *string   `json:"difficulty"`
	Tags           *[]string `json:"tags"`
	LivePreviewURL *string   `json:"live_preview_url"`
	IsFeatured     *bool     `json:"is_featured"`
	DisplayOrder   *int      `json:"display_order"`
}

// TemplateHandler handles public reads and admin CRUD for project templates.
type TemplateHandler struct {
	repo template.Repository
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(repo template.Repository) *TemplateHandler {
	return &TemplateHandler{repo: repo}
}

// List handles GET /templates and GET /admin/templates.
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list templates", "error", err)
		response.Err(w, http.StatusInternalServerError, "Failed to list templates")
		return
	}

	response.Success(w, http.StatusOK, templates)
}

// GetByID handles GET /templates/{id}.
func (h *TemplateHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	t, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, template.ErrTemplateNotFound) {
			response.Err(w, http.StatusNotFound, "Template not found")
			return
		}
		slog.Error("failed to get template", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "Failed to get template")
		return
	}

	response.Success(w, http.StatusOK, t)
}

// Create handles POST /admin/templates.
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var t template.Template
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		response.Err(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	if err := h.repo.Create(r.Context(), &t); err != nil {
		slog.Error("failed to create template", "error", err)
		response.Err(w, http.StatusInternalServerError, "Failed to create template")
		return
	}

	response.Success(w, http.StatusCreated, t)
}

// Update handles PUT /admin/templates/{id}. Provided fields are merged into
// the row; an unknown id is a no-op returning empty data.
func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req updateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	t, err := h.repo.Update(r.Context(), id, template.UpdateFields{
		Title:          req.Title,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		Difficulty:     req.Difficulty,
		Tags:           req.Tags,
		LivePreviewURL: req.LivePreviewURL,
		IsFeatured:     req.IsFeatured,
		DisplayOrder:   req.DisplayOrder,
	})
	if err != nil {
		if errors.Is(err, template.ErrTemplateNotFound) {
			response.Success(w, http.StatusOK, nil)
			return
		}
		slog.Error("failed to update template", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "Failed to update template")
		return
	}

	response.Success(w, http.StatusOK, t)
}

// Delete handles DELETE /admin/templates/{id}.
func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		slog.Error("failed to delete template", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "Failed to delete template")
		return
	}

	response.Message(w, http.StatusOK, "Template deleted")
}

// Reorder handles POST /admin/templates/reorder. Each id in the body is
// assigned its 0-based position as display_order. Writes are independent;
// the first failure aborts and reports an error, leaving earlier writes in
// place.
func (h *TemplateHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	ids, ok := decodeReorderRequest(w, r)
	if !ok {
		return
	}

	for i, id := range ids {
		if err := h.repo.SetDisplayOrder(r.Context(), id, i); err != nil {
			slog.Error("failed to reorder templates", "error", err, "id", id, "position", i)
			response.Err(w, http.StatusInternalServerError, "Failed to update order")
			return
		}
	}

	response.Message(w, http.StatusOK, "Order updated")
}
