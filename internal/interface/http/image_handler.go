package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"crm-lead-tracker/internal/application"
	"crm-lead-tracker/internal/interface/middleware"
	"crm-lead-tracker/pkg/response"
)

type ImageHandler struct {
	Svc    *application.UploadService
	Logger *logrus.Logger
}

func NewImageHandler(svc *application.UploadService, logger *logrus.Logger) *ImageHandler {
	return &ImageHandler{Svc: svc, Logger: logger}
}

// List GET /api/images
// Lists images across all of the caller's clients.
func (h *ImageHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	images, err := h.Svc.ListImages(c.Request.Context(), userID)
	if err != nil {
		h.Logger.WithError(err).Error("image list failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch images", nil)
		return
	}
	c.JSON(http.StatusOK, images)
}

// Upload POST /api/images (multipart/form-data)
// Form fields: file (required, image/*), clientId (required). The client must
// belong to the caller.
func (h *ImageHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No file provided", nil)
		return
	}
	clientID := c.PostForm("clientId")
	if clientID == "" {
		response.Error(c, http.StatusBadRequest, "Client ID is required for image uploads", nil)
		return
	}
	if fh.Size > application.MaxImageSize {
		response.Error(c, http.StatusBadRequest, "Image too large. Maximum size is 5MB", nil)
		return
	}

	src, err := fh.Open()
	if err != nil {
		h.Logger.WithError(err).Error("image open failed")
		response.Error(c, http.StatusInternalServerError, "Failed to upload image", nil)
		return
	}
	defer func() { _ = src.Close() }()

	userID := c.GetString(middleware.CtxUserIDKey)
	img, err := h.Svc.SaveImage(c.Request.Context(), userID, clientID, src, fh.Filename,
		fh.Header.Get("Content-Type"), fh.Size)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNotAnImage):
			response.Error(c, http.StatusBadRequest, "File must be an image", nil)
		case errors.Is(err, application.ErrFileTooLarge):
			response.Error(c, http.StatusBadRequest, "Image too large. Maximum size is 5MB", nil)
		case errors.Is(err, application.ErrClientNotFound):
			response.Error(c, http.StatusNotFound, "Client not found", nil)
		default:
			h.Logger.WithError(err).Error("image upload failed")
			response.Error(c, http.StatusInternalServerError, "Failed to upload image", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, img)
}
