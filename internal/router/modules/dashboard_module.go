package modules

import (
	"github.com/gin-gonic/gin"

	handlers "crm-lead-tracker/internal/interface/http"
)

type DashboardModule struct {
	Handler *handlers.DashboardHandler
	Auth    gin.HandlerFunc
}

func NewDashboardModule(h *handlers.DashboardHandler, authMW gin.HandlerFunc) *DashboardModule {
	return &DashboardModule{Handler: h, Auth: authMW}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	grp := rg.Group("/dashboard")
	grp.Use(m.Auth)
	grp.GET("/stats", m.Handler.Stats)
}
