package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"crm-lead-tracker/internal/domain/entity"
	"crm-lead-tracker/internal/domain/repository"
	"crm-lead-tracker/pkg/auth"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")

	// ErrPrincipalNotFound means the token verified but its user row is
	// gone: revocation-by-deletion.
	ErrPrincipalNotFound = errors.New("principal not found")
)

// AuthService owns login, registration and session resolution.
type AuthService struct {
	Repo   repository.UserRepository
	Tokens *auth.TokenManager
	Logger *logrus.Logger
}

func NewAuthService(repo repository.UserRepository, tokens *auth.TokenManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, Tokens: tokens, Logger: logger}
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if !auth.VerifyPassword(u.PasswordHash, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.Tokens.Issue(u.ID, u.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

// Register creates a user with a freshly hashed password.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*entity.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, PasswordHash: hash, Name: name}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Resolve turns a raw token string into an authenticated principal. It is
// the single choke point for session resolution: verify the signature and
// expiry, then confirm the user still exists. Every failure is returned as a
// typed error so callers can log the reason while responding uniformly.
func (s *AuthService) Resolve(ctx context.Context, rawToken string) (*entity.Principal, error) {
	claims, err := s.Tokens.Verify(rawToken)
	if err != nil {
		return nil, err
	}
	u, err := s.Repo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPrincipalNotFound
		}
		return nil, err
	}
	p := u.Public()
	return &p, nil
}

// DebugLogin issues a token for the configured demo account without a
// password check. The route calling this is only registered outside
// production with an explicit flag.
func (s *AuthService) DebugLogin(ctx context.Context, email string) (*entity.User, string, time.Time, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.Tokens.Issue(u.ID, u.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}
