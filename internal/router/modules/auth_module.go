package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"crm-lead-tracker/internal/container"
	handlers "crm-lead-tracker/internal/interface/http"
	"crm-lead-tracker/internal/interface/middleware"
)

// AuthModule wires session routes.
// Public: POST /api/auth/login, POST /api/auth/register, POST /api/auth/logout
// Protected: GET /api/auth/me

type AuthModule struct {
	Handler *handlers.AuthHandler
	Auth    gin.HandlerFunc
}

func NewAuthModule(h *handlers.AuthHandler, authMW gin.HandlerFunc) *AuthModule {
	return &AuthModule{Handler: h, Auth: authMW}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	grp := rg.Group("/auth")
	grp.POST("/login", loginLimiter, m.Handler.Login)
	grp.POST("/register", registerLimiter, m.Handler.Register)
	grp.POST("/logout", m.Handler.Logout)
	grp.GET("/me", m.Auth, m.Handler.Me)
}
