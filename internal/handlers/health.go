package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/alimgiray/showcase/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WorkerStatusReporter reports whether each background worker is running
type WorkerStatusReporter interface {
	GetWorkerStatus() map[string]bool
}

type HealthHandler struct {
	db      *gorm.DB
	workers WorkerStatusReporter
}

func NewHealthHandler(db *gorm.DB, workers WorkerStatusReporter) *HealthHandler {
	return &HealthHandler{db: db, workers: workers}
}

// HealthCheck reports whether the database answers, along with the worker states
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	workers := map[string]bool{}
	if h.workers != nil {
		workers = h.workers.GetWorkerStatus()
	}

	sqlDB, err := h.db.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logger.WithError(err).Warn("Health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "workers": workers})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "workers": workers})
}
