package handlers

import (
	"context"
	"net/http"
	"time"

	"collab-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	healthVersion = "1.0.0"
	probeTimeout  = 2 * time.Second
	probeRef      = "health/probe"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db    *gorm.DB
	files storage.FileStorage
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, files storage.FileStorage) *HealthHandler {
	return &HealthHandler{
		db:    db,
		files: files,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database and logo storage connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	services, healthy := h.probe(c.Request.Context(), "healthy", "error: ")

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   healthVersion,
		Services:  services,
	}

	statusCode := http.StatusOK
	if !healthy {
		response.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the application is ready to serve requests
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	services, ready := h.probe(c.Request.Context(), "ready", "not ready: ")

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

// probe checks the database and the logo store
func (h *HealthHandler) probe(ctx context.Context, okStatus, failPrefix string) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	services := make(map[string]string)
	ok := true

	if sqlDB, err := h.db.DB(); err != nil {
		ok = false
		services["database"] = failPrefix + err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		ok = false
		services["database"] = failPrefix + err.Error()
	} else {
		services["database"] = okStatus
	}

	if h.files != nil {
		if _, err := h.files.Exists(ctx, probeRef); err != nil {
			ok = false
			services["storage"] = failPrefix + err.Error()
		} else {
			services["storage"] = okStatus
		}
	}

	return services, ok
}
