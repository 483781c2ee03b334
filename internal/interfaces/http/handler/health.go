package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marwan-sadiq/deptapp/internal/infrastructure/persistence"
)

// HealthHandler reports service liveness and dependency status
type HealthHandler struct {
	BaseHandler
	db      *persistence.Database
	appName string
	started time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *persistence.Database, appName string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		appName: appName,
		started: time.Now(),
	}
}

// RegisterRoutes registers health endpoints
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// HealthStatus is the health endpoint payload
type HealthStatus struct {
	Status   string `json:"status"`
	App      string `json:"app"`
	Uptime   string `json:"uptime"`
	Database string `json:"database"`
}

// Health reports overall service health including database connectivity
func (h *HealthHandler) Health(c *gin.Context) {
	status := HealthStatus{
		Status:   "ok",
		App:      h.appName,
		Uptime:   time.Since(h.started).Truncate(time.Second).String(),
		Database: "ok",
	}

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			status.Status = "degraded"
			status.Database = "unreachable"
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
	}

	c.JSON(http.StatusOK, status)
}
