package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"crm-lead-tracker/pkg/response"
)

type HealthHandler struct {
	Pool   *pgxpool.Pool
	Logger *logrus.Logger
}

func NewHealthHandler(pool *pgxpool.Pool, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{Pool: pool, Logger: logger}
}

// Check GET /api/health
// Reports readiness: the process is up and the database answers a round trip.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	var one int
	if err := h.Pool.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		h.Logger.WithError(err).Error("health check db ping failed")
		response.Error(c, http.StatusServiceUnavailable, "Database unavailable", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
