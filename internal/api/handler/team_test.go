package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devforge/devforge/internal/api/handler"
	"github.com/devforge/devforge/internal/team"
)

// --- Mock Team Repository ---

type mockTeamRepo struct {
	createFn  func(ctx context.Context, m *team.Member) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*team.Member, error)
	listFn    func(ctx context.Context) ([]team.Member, error)
	updateFn  func(ctx context.Context, id uuid.UUID, fields team.UpdateFields) (*team.Member, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTeamRepo) Create(ctx context.Context, mem *team.Member) error {
	if m.createFn != nil {
		return m.createFn(ctx, mem)
	}
	mem.ID = uuid.New()
	mem.CreatedAt = time.Now().UTC()
	return nil
}

func (m *mockTeamRepo) GetByID(ctx context.Context, id uuid.UUID) (*team.Member, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, team.ErrMemberNotFound
}

func (m *mockTeamRepo) List(ctx context.Context) ([]team.Member, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []team.Member{}, nil
}

func (m *mockTeamRepo) Update(ctx context.Context, id uuid.UUID, fields team.UpdateFields) (*team.Member, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, fields)
	}
	return nil, team.ErrMemberNotFound
}

func (m *mockTeamRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func TestTeamList_OrderedByDisplayOrder(t *testing.T) {
	t.Parallel()

	repo := &mockTeamRepo{
		listFn: func(ctx context.Context) ([]team.Member, error) {
			return []team.Member{
				{ID: uuid.New(), Name: "Lead", DisplayOrder: 0},
				{ID: uuid.New(), Name: "Designer", DisplayOrder: 1},
			}, nil
		},
	}
	h := handler.NewTeamHandler(repo)

	req, w := makeChiRequest(http.MethodGet, "/team", nil, nil)
	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := parseEnvelope(t, w)
	data := env["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "Lead", data[0].(map[string]interface{})["name"])
	assert.Equal(t, "Designer", data[1].(map[string]interface{})["name"])
}

func TestTeamCreate_Success(t *testing.T) {
	t.Parallel()

	h := handler.NewTeamHandler(&mockTeamRepo{})

	body, _ := json.Marshal(map[string]interface{}{
		"name":          "Grace Hopper",
		"role":          "Backend Lead",
		"skills":        []string{"Go", "Postgres"},
		"color_theme":   "blue",
		"display_order": 2,
	})
	req, w := makeChiRequest(http.MethodPost, "/admin/team", body, nil)
	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	env := parseEnvelope(t, w)
	data := env["data"].(map[string]interface{})
	assert.Equal(t, "Grace Hopper", data["name"])
	assert.Equal(t, float64(2), data["display_order"])
}

func TestTeamUpdate_PartialFields(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	var gotFields team.UpdateFields
	repo := &mockTeamRepo{
		updateFn: func(ctx context.Context, gotID uuid.UUID, fields team.UpdateFields) (*team.Member, error) {
			gotFields = fields
			return &team.Member{ID: gotID, Role: "CTO"}, nil
		},
	}
	h := handler.NewTeamHandler(repo)

	body, _ := json.Marshal(map[string]interface{}{"role": "CTO"})
	req, w := makeChiRequest(http.MethodPut, "/admin/team/"+id.String(), body, map[string]string{"id": id.String()})
	h.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotFields.Role)
	assert.Equal(t, "CTO", *gotFields.Role)
	assert.Nil(t, gotFields.Name)
	assert.Nil(t, gotFields.Skills)
}

func TestTeamUpdate_UnknownID_NoOp(t *testing.T) {
	t.Parallel()

	h := handler.NewTeamHandler(&mockTeamRepo{})

	id := uuid.New().String()
	body, _ := json.Marshal(map[string]interface{}{"name": "x"})
	req, w := makeChiRequest(http.MethodPut, "/admin/team/"+id, body, map[string]string{"id": id})
	h.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := parseEnvelope(t, w)
	assert.Nil(t, env["data"])
}

func TestTeamDelete_Success(t *testing.T) {
	t.Parallel()

	h := handler.NewTeamHandler(&mockTeamRepo{})

	id := uuid.New().String()
	req, w := makeChiRequest(http.MethodDelete, "/admin/team/"+id, nil, map[string]string{"id": id})
	h.Delete(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := parseEnvelope(t, w)
	assert.Equal(t, "Team member deleted", env["message"])
}
