package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"crm-lead-tracker/internal/container"
	handlers "crm-lead-tracker/internal/interface/http"
	"crm-lead-tracker/internal/interface/middleware"
)

// DebugModule registers development-only routes. The caller decides whether
// to add it at all; in production it is never constructed.

type DebugModule struct {
	Auth *handlers.AuthHandler
}

func NewDebugModule(auth *handlers.AuthHandler) *DebugModule {
	return &DebugModule{Auth: auth}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
	rg.POST("/auth/debug-login", rl, m.Auth.DebugLogin)
}
