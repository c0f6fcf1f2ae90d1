package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"crm-lead-tracker/internal/application"
	"crm-lead-tracker/internal/domain/entity"
	"crm-lead-tracker/internal/domain/repository"
	"crm-lead-tracker/internal/interface/middleware"
	"crm-lead-tracker/pkg/response"
	"crm-lead-tracker/pkg/validation"
)

type ClientHandler struct {
	Svc    *application.ClientService
	Logger *logrus.Logger
}

func NewClientHandler(svc *application.ClientService, logger *logrus.Logger) *ClientHandler {
	return &ClientHandler{Svc: svc, Logger: logger}
}

type createClientRequest struct {
	Name         string   `json:"name" binding:"required"`
	BusinessName string   `json:"businessName" binding:"required"`
	BusinessType string   `json:"businessType" binding:"required,oneof='care home' 'care agency'"`
	Email        *string  `json:"email" binding:"omitempty,email"`
	Phone        *string  `json:"phone"`
	Address      *string  `json:"address"`
	Notes        *string  `json:"notes"`
	Status       string   `json:"status" binding:"omitempty,oneof=active inactive sold"`
	AskingPrice  *float64 `json:"askingPrice" binding:"omitempty,gte=0"`
}

type updateClientRequest struct {
	Name         *string  `json:"name"`
	BusinessName *string  `json:"businessName"`
	BusinessType *string  `json:"businessType" binding:"omitempty,oneof='care home' 'care agency'"`
	Email        *string  `json:"email" binding:"omitempty,email"`
	Phone        *string  `json:"phone"`
	Address      *string  `json:"address"`
	Notes        *string  `json:"notes"`
	Status       *string  `json:"status" binding:"omitempty,oneof=active inactive sold"`
	AskingPrice  *float64 `json:"askingPrice" binding:"omitempty,gte=0"`
}

type linkBuyerRequest struct {
	BuyerID string `json:"buyerId" binding:"required,uuid"`
}

// List GET /api/clients
func (h *ClientHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	clients, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		h.Logger.WithError(err).Error("client list failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch clients", nil)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req createClientRequest
	if err := validation.BindStrict(c, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", validation.ToDetails(err))
		return
	}

	status := req.Status
	if status == "" {
		status = entity.ClientStatusActive
	}
	client := &entity.Client{
		UserID:       c.GetString(middleware.CtxUserIDKey),
		Name:         req.Name,
		BusinessName: req.BusinessName,
		BusinessType: req.BusinessType,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Notes:        req.Notes,
		Status:       status,
		AskingPrice:  req.AskingPrice,
	}
	if err := h.Svc.Create(c.Request.Context(), client); err != nil {
		h.Logger.WithError(err).Error("client create failed")
		response.Error(c, http.StatusInternalServerError, "Failed to create client", nil)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// Get GET /api/clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	detail, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Client not found", nil)
			return
		}
		h.Logger.WithError(err).Error("client get failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch client", nil)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Update PUT /api/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	var req updateClientRequest
	if err := validation.BindStrict(c, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", validation.ToDetails(err))
		return
	}

	userID := c.GetString(middleware.CtxUserIDKey)
	client, err := h.Svc.Update(c.Request.Context(), userID, c.Param("id"), repository.ClientUpdate{
		Name:         req.Name,
		BusinessName: req.BusinessName,
		BusinessType: req.BusinessType,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Notes:        req.Notes,
		Status:       req.Status,
		AskingPrice:  req.AskingPrice,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Client not found", nil)
			return
		}
		h.Logger.WithError(err).Error("client update failed")
		response.Error(c, http.StatusInternalServerError, "Failed to update client", nil)
		return
	}
	c.JSON(http.StatusOK, client)
}

// Delete DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Client not found", nil)
			return
		}
		h.Logger.WithError(err).Error("client delete failed")
		response.Error(c, http.StatusInternalServerError, "Failed to delete client", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Search GET /api/clients/search?q=...&size=...
func (h *ClientHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "Query parameter q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	userID := c.GetString(middleware.CtxUserIDKey)
	hits, err := h.Svc.Search(c.Request.Context(), userID, q, size)
	if err != nil {
		h.Logger.WithError(err).Error("client search failed")
		response.Error(c, http.StatusInternalServerError, "Failed to search clients", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": hits})
}

// LinkBuyer POST /api/clients/:id/buyers
// Both sides must belong to the caller; any foreign id reads as not found.
func (h *ClientHandler) LinkBuyer(c *gin.Context) {
	var req linkBuyerRequest
	if err := validation.BindStrict(c, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", validation.ToDetails(err))
		return
	}

	userID := c.GetString(middleware.CtxUserIDKey)
	err := h.Svc.LinkBuyer(c.Request.Context(), userID, c.Param("id"), req.BuyerID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "Client not found", nil)
	case errors.Is(err, repository.ErrDuplicate):
		response.Error(c, http.StatusConflict, "Buyer already linked to this client", nil)
	case err != nil:
		h.Logger.WithError(err).Error("buyer link failed")
		response.Error(c, http.StatusInternalServerError, "Failed to link buyer", nil)
	default:
		c.JSON(http.StatusCreated, gin.H{"success": true})
	}
}

// UnlinkBuyer DELETE /api/clients/:id/buyers/:buyerId
func (h *ClientHandler) UnlinkBuyer(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	err := h.Svc.UnlinkBuyer(c.Request.Context(), userID, c.Param("id"), c.Param("buyerId"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Client not found", nil)
			return
		}
		h.Logger.WithError(err).Error("buyer unlink failed")
		response.Error(c, http.StatusInternalServerError, "Failed to unlink buyer", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
