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

// memClientRepo is an in-memory ClientRepository enforcing the same owner
// scoping as the SQL implementation: a row owned by someone else does not
// exist as far as the caller can tell.
type memClientRepo struct {
	rows map[string]*entity.Client
}

func newMemClientRepo() *memClientRepo {
	return &memClientRepo{rows: map[string]*entity.Client{}}
}

func (m *memClientRepo) Create(ctx context.Context, c *entity.Client) error {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *memClientRepo) ListByOwner(ctx context.Context, userID string) ([]entity.ClientSummary, error) {
	out := make([]entity.ClientSummary, 0)
	for _, c := range m.rows {
		if c.UserID == userID {
			out = append(out, entity.ClientSummary{Client: *c})
		}
	}
	return out, nil
}

func (m *memClientRepo) GetByID(ctx context.Context, userID, id string) (*entity.ClientDetail, error) {
	c, ok := m.rows[id]
	if !ok || c.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return &entity.ClientDetail{
		Client: *c,
		Alerts: []entity.Alert{},
		Images: []entity.Image{},
		Files:  []entity.File{},
		Buyers: []entity.Buyer{},
	}, nil
}

func (m *memClientRepo) Exists(ctx context.Context, userID, id string) (bool, error) {
	c, ok := m.rows[id]
	return ok && c.UserID == userID, nil
}

func (m *memClientRepo) Update(ctx context.Context, userID, id string, in repository.ClientUpdate) (*entity.Client, error) {
	c, ok := m.rows[id]
	if !ok || c.UserID != userID {
		return nil, repository.ErrNotFound
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Status != nil {
		c.Status = *in.Status
	}
	c.UpdatedAt = time.Now()
	return c, nil
}

func (m *memClientRepo) Delete(ctx context.Context, userID, id string) error {
	c, ok := m.rows[id]
	if !ok || c.UserID != userID {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memClientRepo) LinkBuyer(ctx context.Context, userID, clientID, buyerID string) error {
	c, ok := m.rows[clientID]
	if !ok || c.UserID != userID {
		return repository.ErrNotFound
	}
	return nil
}

func (m *memClientRepo) UnlinkBuyer(ctx context.Context, userID, clientID, buyerID string) error {
	c, ok := m.rows[clientID]
	if !ok || c.UserID != userID {
		return repository.ErrNotFound
	}
	return nil
}

// clientRouter wires the client routes with the acting user injected, as the
// auth middleware would after resolving a session.
func clientRouter(repo repository.ClientRepository, userID string) *gin.Engine {
	svc := application.NewClientService(repo, discardLogger(), nil, "")
	h := NewClientHandler(svc, discardLogger())

	r := gin.New()
	grp := r.Group("/api/clients")
	grp.Use(func(c *gin.Context) {
		c.Set(middleware.CtxUserIDKey, userID)
	})
	grp.GET("", h.List)
	grp.POST("", h.Create)
	grp.GET("/:id", h.Get)
	grp.PUT("/:id", h.Update)
	grp.DELETE("/:id", h.Delete)
	return r
}

func seedClient(t *testing.T, repo *memClientRepo, userID, name string) string {
	t.Helper()
	c := &entity.Client{
		UserID:       userID,
		Name:         name,
		BusinessName: name + " Ltd",
		BusinessType: entity.BusinessTypeCareHome,
		Status:       entity.ClientStatusActive,
	}
	require.NoError(t, repo.Create(context.Background(), c))
	return c.ID
}

func TestClientGet_CrossTenantLooksLikeMissing(t *testing.T) {
	repo := newMemClientRepo()
	ownedByA := seedClient(t, repo, "user-a", "Sunrise")

	r := clientRouter(repo, "user-b")

	// user B asking for A's client
	wForeign := httptest.NewRecorder()
	r.ServeHTTP(wForeign, httptest.NewRequest("GET", "/api/clients/"+ownedByA, nil))

	// user B asking for an id that never existed
	wMissing := httptest.NewRecorder()
	r.ServeHTTP(wMissing, httptest.NewRequest("GET", "/api/clients/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, wForeign.Code)
	assert.Equal(t, http.StatusNotFound, wMissing.Code)
	// the two responses must be byte-identical so ids cannot be probed
	assert.Equal(t, wMissing.Body.String(), wForeign.Body.String())
	assert.JSONEq(t, `{"error":"Client not found"}`, wForeign.Body.String())
}

func TestClientMutations_CrossTenant404(t *testing.T) {
	repo := newMemClientRepo()
	ownedByA := seedClient(t, repo, "user-a", "Sunrise")
	r := clientRouter(repo, "user-b")

	update := httptest.NewRequest("PUT", "/api/clients/"+ownedByA, jsonBody(`{"name":"Hijacked"}`))
	update.Header.Set("Content-Type", "application/json")
	wUpdate := httptest.NewRecorder()
	r.ServeHTTP(wUpdate, update)
	assert.Equal(t, http.StatusNotFound, wUpdate.Code)

	wDelete := httptest.NewRecorder()
	r.ServeHTTP(wDelete, httptest.NewRequest("DELETE", "/api/clients/"+ownedByA, nil))
	assert.Equal(t, http.StatusNotFound, wDelete.Code)

	// the row is untouched
	detail, err := repo.GetByID(context.Background(), "user-a", ownedByA)
	require.NoError(t, err)
	assert.Equal(t, "Sunrise", detail.Name)
}

func TestClientList_ScopedToOwner(t *testing.T) {
	repo := newMemClientRepo()
	seedClient(t, repo, "user-a", "Sunrise")
	seedClient(t, repo, "user-a", "Meadow")
	seedClient(t, repo, "user-b", "Harbor")

	r := clientRouter(repo, "user-a")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/clients", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var rows []entity.ClientSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "user-a", row.UserID)
	}
}

func TestClientCreate_StampsOwnerAndDefaults(t *testing.T) {
	repo := newMemClientRepo()
	r := clientRouter(repo, "user-a")

	req := httptest.NewRequest("POST", "/api/clients", jsonBody(
		`{"name":"Margaret Hill","businessName":"Sunrise Care Home","businessType":"care home"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var created entity.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "user-a", created.UserID)
	assert.Equal(t, entity.ClientStatusActive, created.Status)
	assert.NotEmpty(t, created.ID)
}

func TestClientCreate_RejectsBadBusinessType(t *testing.T) {
	repo := newMemClientRepo()
	r := clientRouter(repo, "user-a")

	req := httptest.NewRequest("POST", "/api/clients", jsonBody(
		`{"name":"X","businessName":"Y","businessType":"laundromat"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.rows)
}
