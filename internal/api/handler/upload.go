package handler

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/devforge/devforge/internal/api/response"
	"github.com/devforge/devforge/internal/storage"
)

const maxUploadBytes = 10 << 20

// UploadHandler stores admin-uploaded images in hosted object storage.
type UploadHandler struct {
	store storage.ObjectStore
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(store storage.ObjectStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload handles POST /admin/upload. Multipart field "file"; query params
// "bucket" (default "images") and "folder" (optional path prefix). The
// stored name is a generated UUID keeping the original extension, "png"
// when the filename has none.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Err(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		response.Err(w, http.StatusBadRequest, "No file selected")
		return
	}

	bucket := r.URL.Query().Get("bucket")
	if bucket == "" {
		bucket = "images"
	}
	folder := r.URL.Query().Get("folder")

	ext := strings.TrimPrefix(filepath.Ext(header.Filename), ".")
	if ext == "" {
		ext = "png"
	}

	name := uuid.New().String() + "." + ext
	path := name
	if folder != "" {
		path = folder + "/" + name
	}

	contentType := header.Header.Get("Content-Type")

	url, err := h.store.Upload(r.Context(), bucket, path, contentType, file)
	if err != nil {
		slog.Error("failed to upload file", "error", err, "bucket", bucket, "path", path)
		response.Err(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"url":      url,
		"filename": path,
	})
}
