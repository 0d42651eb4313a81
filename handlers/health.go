package handlers

import (
	"net/http"

	"boardroom/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the monitor's latest snapshot.
type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

// HealthCheck handles GET /health. Degraded dependencies are reported with a
// 503 so load balancers can rotate the instance out.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status := h.Monitor.Snapshot()

	healthy := status.Mongo
	for _, ok := range status.Redis {
		healthy = healthy && ok
	}

	code := http.StatusOK
	label := "ok"
	if !healthy {
		code = http.StatusServiceUnavailable
		label = "degraded"
	}
	c.JSON(code, gin.H{"status": label, "checks": status})
}
