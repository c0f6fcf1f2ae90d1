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

	"crm-lead-tracker/config"
	"crm-lead-tracker/internal/application"
	"crm-lead-tracker/internal/domain/entity"
	"crm-lead-tracker/internal/domain/repository"
	"crm-lead-tracker/pkg/auth"
)

type memUserRepo struct {
	byID map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[string]*entity.User{}}
}

func (m *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func authRouter(t *testing.T, repo repository.UserRepository) *gin.Engine {
	t.Helper()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	cookies := auth.NewCookieManager("localhost", false)
	svc := application.NewAuthService(repo, tokens, discardLogger())
	h := NewAuthHandler(svc, cookies, discardLogger(), &config.Config{})

	r := gin.New()
	grp := r.Group("/api/auth")
	grp.POST("/login", h.Login)
	grp.POST("/register", h.Register)
	grp.POST("/logout", h.Logout)
	return r
}

func registerUser(t *testing.T, repo *memUserRepo, email, password, name string) *entity.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	u := &entity.User{Email: email, PasswordHash: hash, Name: name}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, jsonBody(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	return nil
}

func TestLogin_Success(t *testing.T) {
	repo := newMemUserRepo()
	registerUser(t, repo, "ann@example.com", "s3cret-pass", "Ann")

	w := postJSON(authRouter(t, repo), "/api/auth/login", `{"email":"ann@example.com","password":"s3cret-pass"}`)

	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie, "login must set the session cookie")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		User    struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Login successful", body.Message)
	assert.Equal(t, "ann@example.com", body.User.Email)
	assert.NotContains(t, w.Body.String(), "passwordHash")
}

// Wrong password and unknown email must be the same response, so the login
// endpoint cannot confirm which addresses have accounts.
func TestLogin_InvalidCredentialsIndistinguishable(t *testing.T) {
	repo := newMemUserRepo()
	registerUser(t, repo, "ann@example.com", "s3cret-pass", "Ann")
	r := authRouter(t, repo)

	wrongPass := postJSON(r, "/api/auth/login", `{"email":"ann@example.com","password":"bad-pass1"}`)
	unknown := postJSON(r, "/api/auth/login", `{"email":"nobody@example.com","password":"bad-pass1"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrongPass.Body.String(), unknown.Body.String())
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, wrongPass.Body.String())
	assert.Nil(t, sessionCookie(wrongPass))
}

func TestRegister_Success(t *testing.T) {
	repo := newMemUserRepo()
	w := postJSON(authRouter(t, repo), "/api/auth/register",
		`{"email":"new@example.com","password":"longenough","name":"New User"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var body struct {
		User entity.Principal `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.User.ID)
	assert.Equal(t, "new@example.com", body.User.Email)

	// password is stored hashed
	u, err := repo.GetByEmail(context.Background(), "new@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "longenough", u.PasswordHash)
	assert.True(t, auth.VerifyPassword(u.PasswordHash, "longenough"))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	registerUser(t, repo, "ann@example.com", "s3cret-pass", "Ann")

	w := postJSON(authRouter(t, repo), "/api/auth/register",
		`{"email":"ann@example.com","password":"longenough","name":"Other"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"A user with this email already exists"}`, w.Body.String())
}

func TestRegister_ShortPassword(t *testing.T) {
	repo := newMemUserRepo()
	w := postJSON(authRouter(t, repo), "/api/auth/register",
		`{"email":"new@example.com","password":"short","name":"New User"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.byID)
}

func TestLogout_ClearsCookie(t *testing.T) {
	repo := newMemUserRepo()
	w := postJSON(authRouter(t, repo), "/api/auth/logout", `{}`)

	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}
