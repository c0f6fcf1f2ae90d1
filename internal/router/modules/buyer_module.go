package modules

import (
	"github.com/gin-gonic/gin"

	handlers "crm-lead-tracker/internal/interface/http"
)

type BuyerModule struct {
	Handler *handlers.BuyerHandler
	Auth    gin.HandlerFunc
}

func NewBuyerModule(h *handlers.BuyerHandler, authMW gin.HandlerFunc) *BuyerModule {
	return &BuyerModule{Handler: h, Auth: authMW}
}

func (m *BuyerModule) Register(rg *gin.RouterGroup) {
	grp := rg.Group("/buyers")
	grp.Use(m.Auth)
	{
		grp.GET("", m.Handler.List)
		grp.POST("", m.Handler.Create)
		grp.GET("/:id", m.Handler.Get)
		grp.PUT("/:id", m.Handler.Update)
		grp.DELETE("/:id", m.Handler.Delete)
	}
}
