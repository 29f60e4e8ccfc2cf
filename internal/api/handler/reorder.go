package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/devforge/devforge/internal/api/response"
)

type reorderRequest struct {
	Order []string `json:"order"`
}

// decodeReorderRequest parses a reorder body into ids. It writes a 400
// response and returns false when the body or any id is invalid.
func decodeReorderRequest(w http.ResponseWriter, r *http.Request) ([]uuid.UUID, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "Request body must be valid JSON")
		return nil, false
	}

	ids := make([]uuid.UUID, 0, len(req.Order))
	for _, raw := range req.Order {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Err(w, http.StatusBadRequest, "order must contain valid UUIDs")
			return nil, false
		}
		ids = append(ids, id)
	}

	return ids, true
}
