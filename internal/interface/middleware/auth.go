package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"crm-lead-tracker/internal/application"
	"crm-lead-tracker/pkg/auth"
	"crm-lead-tracker/pkg/response"
)

// Context keys set on successful session resolution.
const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
	CtxUserNameKey  = "userName"
)

// Messages for the two 401 variants. Clients treat both as "log in again";
// tests exercise them separately.
const (
	MsgNotAuthenticated = "Not authenticated"
	MsgInvalidToken     = "Invalid token"
)

// MsgDatabaseUnavailable is the 503 body when the credential store cannot be
// reached during session resolution.
const MsgDatabaseUnavailable = "Database unavailable"

// Auth resolves the session cookie into a principal before any handler runs.
// A missing cookie, a token that fails verification, and a token whose user
// was deleted all abort with a 401; the reasons stay distinguishable only in
// logs so the response is not an oracle. A credential-store error is not an
// auth failure: it aborts with a 503 so a database blip does not read as a
// mass logout.
func Auth(svc *application.AuthService, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil || token == "" {
			response.AbortError(c, http.StatusUnauthorized, MsgNotAuthenticated)
			return
		}

		principal, err := svc.Resolve(c.Request.Context(), token)
		if err != nil {
			if !isAuthFailure(err) {
				if logger != nil {
					logger.WithFields(logrus.Fields{
						"request_id": c.GetString("request_id"),
					}).WithError(err).Error("session lookup failed")
				}
				response.AbortError(c, http.StatusServiceUnavailable, MsgDatabaseUnavailable)
				return
			}
			if logger != nil {
				logger.WithFields(logrus.Fields{
					"reason":     resolveReason(err),
					"request_id": c.GetString("request_id"),
				}).Debug("session resolution failed")
			}
			response.AbortError(c, http.StatusUnauthorized, MsgInvalidToken)
			return
		}

		c.Set(CtxUserIDKey, principal.ID)
		c.Set(CtxUserEmailKey, principal.Email)
		c.Set(CtxUserNameKey, principal.Name)
		c.Next()
	}
}

// isAuthFailure reports whether the resolution error means the session itself
// is bad, as opposed to the credential store being unreachable.
func isAuthFailure(err error) bool {
	return errors.Is(err, auth.ErrMalformed) ||
		errors.Is(err, auth.ErrInvalidSignature) ||
		errors.Is(err, auth.ErrExpired) ||
		errors.Is(err, application.ErrPrincipalNotFound)
}

func resolveReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrMalformed):
		return "malformed"
	case errors.Is(err, auth.ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, auth.ErrExpired):
		return "expired"
	case errors.Is(err, application.ErrPrincipalNotFound):
		return "principal_not_found"
	default:
		return "lookup_error"
	}
}
