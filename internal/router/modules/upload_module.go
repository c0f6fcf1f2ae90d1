package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"crm-lead-tracker/internal/container"
	handlers "crm-lead-tracker/internal/interface/http"
	"crm-lead-tracker/internal/interface/middleware"
)

// UploadModule wires file and image upload routes. Upload endpoints carry a
// per-user rate limit on top of auth since they move real bytes.

type UploadModule struct {
	Files  *handlers.FileHandler
	Images *handlers.ImageHandler
	Auth   gin.HandlerFunc
}

func NewUploadModule(files *handlers.FileHandler, images *handlers.ImageHandler, authMW gin.HandlerFunc) *UploadModule {
	return &UploadModule{Files: files, Images: images, Auth: authMW}
}

func (m *UploadModule) Register(rg *gin.RouterGroup) {
	uploadLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil)

	files := rg.Group("/files")
	files.Use(m.Auth)
	{
		files.GET("", m.Files.List)
		files.POST("", uploadLimiter, m.Files.Upload)
		files.DELETE("/:id", m.Files.Delete)
	}

	images := rg.Group("/images")
	images.Use(m.Auth)
	{
		images.GET("", m.Images.List)
		images.POST("", uploadLimiter, m.Images.Upload)
	}
}
