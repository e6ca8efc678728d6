package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/l3montree-dev/deppkg/dtos"
	"github.com/l3montree-dev/deppkg/shared"
)

const healthCheckTimeout = 5 * time.Second

type HealthController struct {
	healthChecker shared.HealthChecker
}

func NewHealthController(healthChecker shared.HealthChecker) *HealthController {
	return &HealthController{healthChecker: healthChecker}
}

func (c *HealthController) Health(ctx shared.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := c.healthChecker.Ping(pingCtx); err != nil {
		slog.Error("health check failed", "err", err)
		return ctx.JSON(http.StatusServiceUnavailable, dtos.HealthResponse{Status: "DOWN", ServiceName: shared.ServiceName})
	}
	return ctx.JSON(http.StatusOK, dtos.HealthResponse{Status: "UP", ServiceName: shared.ServiceName})
}
