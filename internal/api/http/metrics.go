package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/readme-maestro/maestro-backend/internal/provider"
)

// MetricsHandler exposes a snapshot of the provider call counters.
func MetricsHandler(c *gin.Context) {
	m := provider.GetMetrics()
	c.JSON(http.StatusOK, gin.H{
		"ok": true,
		"provider": gin.H{
			"calls":          m.Calls(),
			"errors":         m.Errors(),
			"avg_latency_ms": m.AverageLatency(),
			"error_rate":     m.ErrorRate(),
		},
	})
}
