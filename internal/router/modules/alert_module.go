package modules

import (
	"github.com/gin-gonic/gin"

	handlers "crm-lead-tracker/internal/interface/http"
)

type AlertModule struct {
	Handler *handlers.AlertHandler
	Auth    gin.HandlerFunc
}

func NewAlertModule(h *handlers.AlertHandler, authMW gin.HandlerFunc) *AlertModule {
	return &AlertModule{Handler: h, Auth: authMW}
}

func (m *AlertModule) Register(rg *gin.RouterGroup) {
	grp := rg.Group("/alerts")
	grp.Use(m.Auth)
	{
		grp.GET("", m.Handler.List)
		grp.POST("", m.Handler.Create)
		grp.PUT("/:id", m.Handler.Update)
		grp.DELETE("/:id", m.Handler.Delete)
	}
}
