package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// GET /health
func HandleHealth(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{
			"status":  "ok",
			"service": "job-board",
			"version": ctx.Version,
		}

		if len(ctx.Checks) == 0 {
			c.JSON(http.StatusOK, body)
			return
		}

		status := http.StatusOK
		checks := make(map[string]string, len(ctx.Checks))

		for name, pinger := range ctx.Checks {
			pingCtx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
			err := pinger.Ping(pingCtx)
			cancel()

			if err != nil {
				ctx.Logger.Warn("health check failed", zap.String("check", name), zap.Error(err))
				checks[name] = "unavailable"
				status = http.StatusServiceUnavailable
				continue
			}
			checks[name] = "ok"
		}

		body["checks"] = checks
		if status != http.StatusOK {
			body["status"] = "degraded"
		}

		c.JSON(status, body)
	}
}
