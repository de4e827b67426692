package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AhmedGamal2004/My-Personal-final/internal/bootstrap"
)

type HealthHandler struct {
	app *bootstrap.App
}

type dependencyStatus struct {
	Configured bool   `json:"configured"`
	OK         bool   `json:"ok"`
	Message    string `json:"message,omitempty"`
}

func NewHealthHandler(app *bootstrap.App) *HealthHandler {
	return &HealthHandler{app: app}
}

// Check reports configuration and dependency status. Only a configured
// dependency that fails its ping degrades the response.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := h.checkDatabase(ctx)
	redisStatus := h.checkRedis(ctx)
	rmqStatus := h.checkRabbitMQ()

	status := "ok"
	statusCode := http.StatusOK
	for _, dep := range []dependencyStatus{dbStatus, redisStatus, rmqStatus} {
		if dep.Configured && !dep.OK {
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}
	}

	cfg := h.app.Config
	c.JSON(statusCode, gin.H{
		"status":              status,
		"database_configured": cfg.Database.Configured(),
		"db_url_prefix":       cfg.Database.URLPrefix(),
		"app":                 cfg.App.Name,
		"env":                 cfg.App.Env,
		"uptime_sec":          int(time.Since(h.app.StartedAt).Seconds()),
		"dependencies": gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
			"rabbitmq": rmqStatus,
		},
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) dependencyStatus {
	if h.app.DB == nil {
		return dependencyStatus{Message: "not configured"}
	}
	sqlDB, err := h.app.DB.DB()
	if err != nil {
		return dependencyStatus{Configured: true, Message: err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return dependencyStatus{Configured: true, Message: err.Error()}
	}
	return dependencyStatus{Configured: true, OK: true}
}

func (h *HealthHandler) checkRedis(ctx context.Context) dependencyStatus {
	if h.app.Redis == nil {
		return dependencyStatus{Message: "not configured"}
	}
	if err := h.app.Redis.Ping(ctx).Err(); err != nil {
		return dependencyStatus{Configured: true, Message: err.Error()}
	}
	return dependencyStatus{Configured: true, OK: true}
}

func (h *HealthHandler) checkRabbitMQ() dependencyStatus {
	if !h.app.Config.RabbitMQ.Enabled() {
		return dependencyStatus{Message: "not configured"}
	}
	if h.app.MQConn == nil || h.app.MQConn.IsClosed() {
		return dependencyStatus{Configured: true, Message: "connection closed"}
	}
	return dependencyStatus{Configured: true, OK: true}
}
