package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"crm-lead-tracker/config"
	"crm-lead-tracker/internal/application"
	"crm-lead-tracker/internal/interface/middleware"
	"crm-lead-tracker/pkg/auth"
	"crm-lead-tracker/pkg/response"
	"crm-lead-tracker/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AuthService
	Cookies *auth.CookieManager
	Logger  *logrus.Logger
	Cfg     *config.Config
}

func NewAuthHandler(svc *application.AuthService, cookies *auth.CookieManager, logger *logrus.Logger, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Svc: svc, Cookies: cookies, Logger: logger, Cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"required"`
}

// Login POST /api/auth/login
// Unknown email and wrong password produce the same 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := validation.BindStrict(c, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", validation.ToDetails(err))
		return
	}

	u, token, exp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid credentials", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	h.Cookies.Set(c, token, exp)
	c.JSON(http.StatusOK, gin.H{
		"user":    u.Public(),
		"success": true,
		"message": "Login successful",
	})
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := validation.BindStrict(c, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Error(c, http.StatusConflict, "A user with this email already exists", nil)
			return
		}
		h.Logger.WithError(err).Error("registration failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": u.Public()})
}

// Me GET /api/auth/me (auth required)
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    c.GetString(middleware.CtxUserIDKey),
			"email": c.GetString(middleware.CtxUserEmailKey),
			"name":  c.GetString(middleware.CtxUserNameKey),
		},
	})
}

// Logout POST /api/auth/logout
// Stateless tokens cannot be revoked server-side, so logout only clears the
// cookie. Deleting the user row is the server-side kill switch.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DebugLogin POST /api/auth/debug-login
// Only routed when the debug flag is set outside production. Logs into the
// configured demo account without a password.
func (h *AuthHandler) DebugLogin(c *gin.Context) {
	u, token, exp, err := h.Svc.DebugLogin(c.Request.Context(), h.Cfg.DebugLoginEmail)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}
	h.Cookies.Set(c, token, exp)
	c.JSON(http.StatusOK, gin.H{
		"user":    u.Public(),
		"success": true,
		"message": "Login successful",
	})
}
