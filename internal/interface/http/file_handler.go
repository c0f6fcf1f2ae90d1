package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"crm-lead-tracker/internal/application"
	"crm-lead-tracker/internal/domain/repository"
	"crm-lead-tracker/internal/interface/middleware"
	"crm-lead-tracker/pkg/response"
)

type FileHandler struct {
	Svc    *application.UploadService
	Logger *logrus.Logger
}

func NewFileHandler(svc *application.UploadService, logger *logrus.Logger) *FileHandler {
	return &FileHandler{Svc: svc, Logger: logger}
}

// List GET /api/files
func (h *FileHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	files, err := h.Svc.ListFiles(c.Request.Context(), userID)
	if err != nil {
		h.Logger.WithError(err).Error("file list failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch files", nil)
		return
	}
	c.JSON(http.StatusOK, files)
}

// Upload POST /api/files (multipart/form-data)
// Form fields: file (required), clientId, buyerId (optional associations).
func (h *FileHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "No file provided", nil)
		return
	}
	if fh.Size > application.MaxFileSize {
		response.Error(c, http.StatusBadRequest, "File too large. Maximum size is 10MB", nil)
		return
	}

	var clientID, buyerID *string
	if v := c.PostForm("clientId"); v != "" {
		clientID = &v
	}
	if v := c.PostForm("buyerId"); v != "" {
		buyerID = &v
	}

	src, err := fh.Open()
	if err != nil {
		h.Logger.WithError(err).Error("file open failed")
		response.Error(c, http.StatusInternalServerError, "Failed to upload file", nil)
		return
	}
	defer func() { _ = src.Close() }()

	userID := c.GetString(middleware.CtxUserIDKey)
	file, err := h.Svc.SaveFile(c.Request.Context(), userID, src, fh.Filename,
		fh.Header.Get("Content-Type"), fh.Size, clientID, buyerID)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrFileTooLarge):
			response.Error(c, http.StatusBadRequest, "File too large. Maximum size is 10MB", nil)
		case errors.Is(err, application.ErrClientNotFound):
			response.Error(c, http.StatusNotFound, "Client not found", nil)
		case errors.Is(err, application.ErrBuyerNotFound):
			response.Error(c, http.StatusNotFound, "Buyer not found", nil)
		default:
			h.Logger.WithError(err).Error("file upload failed")
			response.Error(c, http.StatusInternalServerError, "Failed to upload file", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, file)
}

// Delete DELETE /api/files/:id
func (h *FileHandler) Delete(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.DeleteFile(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "File not found", nil)
			return
		}
		h.Logger.WithError(err).Error("file delete failed")
		response.Error(c, http.StatusInternalServerError, "Failed to delete file", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
