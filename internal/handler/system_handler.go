package handler

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/coursehub/coursehub-backend/internal/config"
	"github.com/coursehub/coursehub-backend/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const healthTimeout = 2 * time.Second

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler reports the health of the process and its backing stores.
type SystemHandler struct {
	db        Pinger
	rdb       redis.Cmdable
	startTime time.Time
	log       zerolog.Logger
}

func NewSystemHandler(db Pinger, rdb redis.Cmdable, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		db:        db,
		rdb:       rdb,
		startTime: time.Now(),
		log:       log.With().Str("component", "system_handler").Logger(),
	}
}

type healthReport struct {
	Status      string `json:"status"`
	Postgres    string `json:"postgres"`
	Redis       string `json:"redis"`
	AlertsQueue int64  `json:"alerts_queue"`
	Uptime      string `json:"uptime"`
	Goroutines  int    `json:"goroutines"`
	GoVersion   string `json:"go_version"`
}

// Health godoc
// GET /health
// Returns 503 when Postgres or Redis cannot be reached.
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	rep := healthReport{
		Status:     "ok",
		Postgres:   "ok",
		Redis:      "ok",
		Uptime:     formatDuration(time.Since(h.startTime)),
		Goroutines: runtime.NumGoroutine(),
		GoVersion:  runtime.Version(),
	}

	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn().Err(err).Msg("Postgres health check failed")
		rep.Postgres, rep.Status = "down", "degraded"
	}
	n, err := h.rdb.LLen(ctx, config.WorkerKey.ExamResultAlertsQueue).Result()
	if err != nil {
		h.log.Warn().Err(err).Msg("Redis health check failed")
		rep.Redis, rep.Status = "down", "degraded"
	}
	rep.AlertsQueue = n

	status := http.StatusOK
	if rep.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	response.Success(c, status, rep)
}

// formatDuration renders d as "3d 4h 12m".
func formatDuration(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
