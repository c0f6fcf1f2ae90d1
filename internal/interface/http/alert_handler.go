package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"crm-lead-tracker/internal/application"
	"crm-lead-tracker/internal/domain/entity"
	"crm-lead-tracker/internal/domain/repository"
	"crm-lead-tracker/internal/interface/middleware"
	"crm-lead-tracker/pkg/response"
	"crm-lead-tracker/pkg/validation"
)

type AlertHandler struct {
	Svc    *application.AlertService
	Logger *logrus.Logger
}

func NewAlertHandler(svc *application.AlertService, logger *logrus.Logger) *AlertHandler {
	return &AlertHandler{Svc: svc, Logger: logger}
}

type createAlertRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Type        string  `json:"type" binding:"omitempty,oneof=info warning urgent"`
	DueDate     *string `json:"dueDate"`
	ClientID    *string `json:"clientId" binding:"omitempty,uuid"`
}

// updateAlertRequest treats an explicit empty dueDate as "clear the date";
// an absent field leaves it unchanged.
type updateAlertRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Type        *string `json:"type" binding:"omitempty,oneof=info warning urgent"`
	DueDate     *string `json:"dueDate"`
	IsCompleted *bool   `json:"isCompleted"`
	ClientID    *string `json:"clientId" binding:"omitempty,uuid"`
}

func parseDueDate(raw string) (*time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("invalid date")
}

// List GET /api/alerts
func (h *AlertHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	alerts, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		h.Logger.WithError(err).Error("alert list failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch alerts", nil)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// Create POST /api/alerts
func (h *AlertHandler) Create(c *gin.Context) {
	var req createAlertRequest
	if err := validation.BindStrict(c, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", validation.ToDetails(err))
		return
	}

	var due *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, err := parseDueDate(*req.DueDate)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid request body", map[string]string{"dueDate": "must be a valid date"})
			return
		}
		due = parsed
	}

	alertType := req.Type
	if alertType == "" {
		alertType = entity.AlertTypeInfo
	}
	alert := &entity.Alert{
		Title:       req.Title,
		Description: req.Description,
		Type:        alertType,
		DueDate:     due,
		ClientID:    req.ClientID,
	}
	principal := &entity.Principal{
		ID:    c.GetString(middleware.CtxUserIDKey),
		Email: c.GetString(middleware.CtxUserEmailKey),
		Name:  c.GetString(middleware.CtxUserNameKey),
	}
	if err := h.Svc.Create(c.Request.Context(), principal, alert); err != nil {
		if errors.Is(err, application.ErrClientNotFound) {
			response.Error(c, http.StatusNotFound, "Client not found", nil)
			return
		}
		h.Logger.WithError(err).Error("alert create failed")
		response.Error(c, http.StatusInternalServerError, "Failed to create alert", nil)
		return
	}
	c.JSON(http.StatusCreated, alert)
}

// Update PUT /api/alerts/:id
func (h *AlertHandler) Update(c *gin.Context) {
	var req updateAlertRequest
	if err := validation.BindStrict(c, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", validation.ToDetails(err))
		return
	}

	in := repository.AlertUpdate{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		IsCompleted: req.IsCompleted,
		ClientID:    req.ClientID,
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			in.ClearDue = true
		} else {
			parsed, err := parseDueDate(*req.DueDate)
			if err != nil {
				response.Error(c, http.StatusBadRequest, "Invalid request body", map[string]string{"dueDate": "must be a valid date"})
				return
			}
			in.DueDate = parsed
		}
	}

	userID := c.GetString(middleware.CtxUserIDKey)
	alert, err := h.Svc.Update(c.Request.Context(), userID, c.Param("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrClientNotFound):
			response.Error(c, http.StatusNotFound, "Client not found", nil)
		case errors.Is(err, repository.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Alert not found", nil)
		default:
			h.Logger.WithError(err).Error("alert update failed")
			response.Error(c, http.StatusInternalServerError, "Failed to update alert", nil)
		}
		return
	}
	c.JSON(http.StatusOK, alert)
}

// Delete DELETE /api/alerts/:id
func (h *AlertHandler) Delete(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Alert not found", nil)
			return
		}
		h.Logger.WithError(err).Error("alert delete failed")
		response.Error(c, http.StatusInternalServerError, "Failed to delete alert", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
