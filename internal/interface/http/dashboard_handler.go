package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"crm-lead-tracker/internal/application"
	"crm-lead-tracker/internal/interface/middleware"
	"crm-lead-tracker/pkg/response"
)

type DashboardHandler struct {
	Svc    *application.StatsService
	Logger *logrus.Logger
}

func NewDashboardHandler(svc *application.StatsService, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{Svc: svc, Logger: logger}
}

// Stats GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)
	stats, err := h.Svc.Dashboard(c.Request.Context(), userID)
	if err != nil {
		h.Logger.WithError(err).Error("dashboard stats failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch dashboard stats", nil)
		return
	}
	c.JSON(http.StatusOK, stats)
}
