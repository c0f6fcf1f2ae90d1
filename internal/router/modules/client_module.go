package modules

import (
	"github.com/gin-gonic/gin"

	handlers "crm-lead-tracker/internal/interface/http"
)

// ClientModule wires client CRUD, search and buyer linking.
// All routes require an authenticated session.

type ClientModule struct {
	Handler *handlers.ClientHandler
	Auth    gin.HandlerFunc
}

func NewClientModule(h *handlers.ClientHandler, authMW gin.HandlerFunc) *ClientModule {
	return &ClientModule{Handler: h, Auth: authMW}
}

func (m *ClientModule) Register(rg *gin.RouterGroup) {
	grp := rg.Group("/clients")
	grp.Use(m.Auth)
	{
		grp.GET("", m.Handler.List)
		grp.POST("", m.Handler.Create)
		grp.GET("/search", m.Handler.Search)
		grp.GET("/:id", m.Handler.Get)
		grp.PUT("/:id", m.Handler.Update)
		grp.DELETE("/:id", m.Handler.Delete)
		grp.POST("/:id/buyers", m.Handler.LinkBuyer)
		grp.DELETE("/:id/buyers/:buyerId", m.Handler.UnlinkBuyer)
	}
}
