package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm-lead-tracker/internal/application"
	"crm-lead-tracker/internal/domain/entity"
	"crm-lead-tracker/internal/domain/repository"
	"crm-lead-tracker/internal/interface/middleware"
)

type memAlertRepo struct {
	rows map[string]*entity.Alert
}

func newMemAlertRepo() *memAlertRepo {
	return &memAlertRepo{rows: map[string]*entity.Alert{}}
}

func (m *memAlertRepo) Create(ctx context.Context, a *entity.Alert) error {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	m.rows[a.ID] = &cp
	return nil
}

func (m *memAlertRepo) ListByOwner(ctx context.Context, userID string) ([]entity.AlertWithClient, error) {
	out := make([]entity.AlertWithClient, 0)
	for _, a := range m.rows {
		if a.UserID == userID {
			out = append(out, entity.AlertWithClient{Alert: *a})
		}
	}
	return out, nil
}

func (m *memAlertRepo) Update(ctx context.Context, userID, id string, in repository.AlertUpdate) (*entity.Alert, error) {
	a, ok := m.rows[id]
	if !ok || a.UserID != userID {
		return nil, repository.ErrNotFound
	}
	if in.Title != nil {
		a.Title = *in.Title
	}
	if in.IsCompleted != nil {
		a.IsCompleted = *in.IsCompleted
	}
	if in.ClearDue {
		a.DueDate = nil
	} else if in.DueDate != nil {
		a.DueDate = in.DueDate
	}
	a.UpdatedAt = time.Now()
	return a, nil
}

func (m *memAlertRepo) Delete(ctx context.Context, userID, id string) error {
	a, ok := m.rows[id]
	if !ok || a.UserID != userID {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func alertRouter(alerts repository.AlertRepository, clients repository.ClientRepository, userID string) *gin.Engine {
	svc := application.NewAlertService(alerts, clients, nil, discardLogger(), false)
	h := NewAlertHandler(svc, discardLogger())

	r := gin.New()
	grp := r.Group("/api/alerts")
	grp.Use(func(c *gin.Context) {
		c.Set(middleware.CtxUserIDKey, userID)
		c.Set(middleware.CtxUserEmailKey, userID+"@example.com")
		c.Set(middleware.CtxUserNameKey, "Test User")
	})
	grp.GET("", h.List)
	grp.POST("", h.Create)
	grp.PUT("/:id", h.Update)
	grp.DELETE("/:id", h.Delete)
	return r
}

func TestAlertCreate_ForeignClientReadsAsMissing(t *testing.T) {
	clients := newMemClientRepo()
	foreignClient := seedClient(t, clients, "user-a", "Sunrise")

	r := alertRouter(newMemAlertRepo(), clients, "user-b")
	req := httptest.NewRequest("POST", "/api/alerts", jsonBody(
		`{"title":"Call Margaret","clientId":"`+foreignClient+`"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Client not found"}`, w.Body.String())
}

func TestAlertCreate_DefaultsAndOwnerStamp(t *testing.T) {
	alerts := newMemAlertRepo()
	r := alertRouter(alerts, newMemClientRepo(), "user-a")

	req := httptest.NewRequest("POST", "/api/alerts", jsonBody(
		`{"title":"Renew listing","dueDate":"2026-09-15"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var created entity.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "user-a", created.UserID)
	assert.Equal(t, entity.AlertTypeInfo, created.Type)
	require.NotNil(t, created.DueDate)
	assert.Equal(t, 2026, created.DueDate.Year())
}

func TestAlertCreate_BadDueDate(t *testing.T) {
	r := alertRouter(newMemAlertRepo(), newMemClientRepo(), "user-a")

	req := httptest.NewRequest("POST", "/api/alerts", jsonBody(
		`{"title":"Renew listing","dueDate":"next tuesday"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAlertUpdate_ClearDueDate(t *testing.T) {
	alerts := newMemAlertRepo()
	due := time.Now().Add(48 * time.Hour)
	a := &entity.Alert{UserID: "user-a", Title: "Call", Type: entity.AlertTypeInfo, DueDate: &due}
	require.NoError(t, alerts.Create(context.Background(), a))

	r := alertRouter(alerts, newMemClientRepo(), "user-a")

	// empty dueDate clears; absent leaves unchanged
	req := httptest.NewRequest("PUT", "/api/alerts/"+a.ID, jsonBody(`{"dueDate":""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var updated entity.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Nil(t, updated.DueDate)
}

func TestAlertUpdate_CrossTenant404(t *testing.T) {
	alerts := newMemAlertRepo()
	a := &entity.Alert{UserID: "user-a", Title: "Call", Type: entity.AlertTypeInfo}
	require.NoError(t, alerts.Create(context.Background(), a))

	r := alertRouter(alerts, newMemClientRepo(), "user-b")

	req := httptest.NewRequest("PUT", "/api/alerts/"+a.ID, jsonBody(`{"isCompleted":true}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Alert not found"}`, w.Body.String())
	assert.False(t, alerts.rows[a.ID].IsCompleted)
}
