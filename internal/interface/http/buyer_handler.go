package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"crm-lead-tracker/internal/application"
	"crm-lead-tracker/internal/domain/entity"
	"crm-lead-tracker/internal/domain/repository"
	"crm-lead-tracker/internal/interface/middleware"
	"crm-lead-tracker/pkg/response"
	"crm-lead-tracker/pkg/validation"
)

type BuyerHandler struct {
	Svc    *application.BuyerService
	Logger *logrus.Logger
}

func NewBuyerHandler(svc *application.BuyerService, logger *logrus.Logger) *BuyerHandler {
	return &BuyerHandler{Svc: svc, Logger: logger}
}

type createBuyerRequest struct {
	Name         string   `json:"name" binding:"required"`
	Email        *string  `json:"email" binding:"omitempty,email"`
	Phone        *string  `json:"phone"`
	Company      *string  `json:"company"`
	Budget       *float64 `json:"budget" binding:"omitempty,gte=0"`
	Requirements *string  `json:"requirements"`
	Status       string   `json:"status" binding:"omitempty,oneof=active inactive"`
	Notes        *string  `json:"notes"`
}

type updateBuyerRequest struct {
	Name         *string  `json:"name"`
	Email        *string  `json:"email" binding:"omitempty,email"`
	Phone        *string  `json:"phone"`
	Company      *string  `json:"company"`
	Budget       *float64 `json:"budget" binding:"omitempty,gte=0"`
	Requirements *string  `json:"requirements"`
	Status       *string  `json:"status" binding:"omitempty,oneof=active inactive"`
	Notes        *string  `json:"notes"`
}

// List GET /api/buyers
func (h *BuyerHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	buyers, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		h.Logger.WithError(err).Error("buyer list failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch buyers", nil)
		return
	}
	c.JSON(http.StatusOK, buyers)
}

// Create POST /api/buyers
func (h *BuyerHandler) Create(c *gin.Context) {
	var req createBuyerRequest
	if err := validation.BindStrict(c, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", validation.ToDetails(err))
		return
	}

	status := req.Status
	if status == "" {
		status = entity.BuyerStatusActive
	}
	buyer := &entity.Buyer{
		UserID:       c.GetString(middleware.CtxUserIDKey),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		Budget:       req.Budget,
		Requirements: req.Requirements,
		Status:       status,
		Notes:        req.Notes,
	}
	if err := h.Svc.Create(c.Request.Context(), buyer); err != nil {
		h.Logger.WithError(err).Error("buyer create failed")
		response.Error(c, http.StatusInternalServerError, "Failed to create buyer", nil)
		return
	}
	c.JSON(http.StatusCreated, buyer)
}

// Get GET /api/buyers/:id
func (h *BuyerHandler) Get(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	detail, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Buyer not found", nil)
			return
		}
		h.Logger.WithError(err).Error("buyer get failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch buyer", nil)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Update PUT /api/buyers/:id
func (h *BuyerHandler) Update(c *gin.Context) {
	var req updateBuyerRequest
	if err := validation.BindStrict(c, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", validation.ToDetails(err))
		return
	}

	userID := c.GetString(middleware.CtxUserIDKey)
	buyer, err := h.Svc.Update(c.Request.Context(), userID, c.Param("id"), repository.BuyerUpdate{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		Budget:       req.Budget,
		Requirements: req.Requirements,
		Status:       req.Status,
		Notes:        req.Notes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Buyer not found", nil)
			return
		}
		h.Logger.WithError(err).Error("buyer update failed")
		response.Error(c, http.StatusInternalServerError, "Failed to update buyer", nil)
		return
	}
	c.JSON(http.StatusOK, buyer)
}

// Delete DELETE /api/buyers/:id
func (h *BuyerHandler) Delete(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Buyer not found", nil)
			return
		}
		h.Logger.WithError(err).Error("buyer delete failed")
		response.Error(c, http.StatusInternalServerError, "Failed to delete buyer", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
