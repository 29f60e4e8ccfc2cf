package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/devforge/devforge/internal/api/response"
	"github.com/devforge/devforge/internal/api/validation"
	"github.com/devforge/devforge/internal/contact"
	"github.com/devforge/devforge/internal/mailer"
)

type submitContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Message     string `json:"message"`
	Phone       string `json:"phone"`
	ProjectType string `json:"project_type"`
}

// Notifier dispatches a contact notification without blocking the caller.
type Notifier interface {
	NotifyAsync(n mailer.ContactNotification)
}

// ContactHandler handles the public contact form and the admin inbox.
type ContactHandler struct {
	repo     contact.Repository
	notifier Notifier
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(repo contact.Repository, notifier Notifier) *ContactHandler {
	return &ContactHandler{repo: repo, notifier: notifier}
}

// Submit handles POST /contact. The notification is dispatched after the row
// is persisted and is never awaited; its outcome cannot change the response.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req submitContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	fieldErrors := validation.ValidateContactRequest(validation.ContactRequest{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if len(fieldErrors) > 0 {
		response.Err(w, http.StatusBadRequest, fieldErrors[0].Message)
		return
	}

	s := &contact.Submission{
		Name:        req.Name,
		Email:       req.Email,
		Message:     req.Message,
		ProjectType: req.ProjectType,
		Phone:       req.Phone,
	}

	if err := h.repo.Create(r.Context(), s); err != nil {
		slog.Error("failed to store contact submission", "error", err)
		response.Err(w, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}

	if h.notifier != nil {
		h.notifier.NotifyAsync(mailer.ContactNotification{
			Name:        s.Name,
			Email:       s.Email,
			Phone:       s.Phone,
			Message:     s.Message,
			SubmittedAt: s.SubmittedAt,
		})
	}

	response.Message(w, http.StatusCreated, "Contact form submitted successfully")
}

// List handles GET /admin/contacts.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list contact submissions", "error", err)
		response.Err(w, http.StatusInternalServerError, "Failed to list contacts")
		return
	}

	response.Success(w, http.StatusOK, submissions)
}

// MarkRead handles PUT /admin/contacts/{id}/read. Idempotent; an unknown id
// is a no-op returning empty data.
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	s, err := h.repo.MarkRead(r.Context(), id)
	if err != nil {
		if errors.Is(err, contact.ErrSubmissionNotFound) {
			response.Success(w, http.StatusOK, nil)
			return
		}
		slog.Error("failed to mark contact read", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "Failed to mark contact as read")
		return
	}

	response.Success(w, http.StatusOK, s)
}

// Delete handles DELETE /admin/contacts/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		slog.Error("failed to delete contact submission", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "Failed to delete contact")
		return
	}

	response.Message(w, http.StatusOK, "Contact deleted")
}
