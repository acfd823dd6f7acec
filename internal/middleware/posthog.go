package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/ct_order_jobs/internal/utils"
	"github.com/gin-gonic/gin"
)

// JobAnalyticsMiddleware sends one PostHog event per finished job request.
// The event name is derived from the route, e.g. "/jobs/orders/aggregate"
// becomes "jobs_orders_aggregate".
func JobAnalyticsMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip if PostHog is not initialized
		if posthogClient == nil || !posthogClient.IsInitialized() {
			c.Next()
			return
		}

		// Process request first
		c.Next()

		// Skip unmatched routes (404s without a handler)
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		schedulerID, ok := GetSchedulerIDFromContext(c)
		if !ok {
			schedulerID = anonymousScheduler
		}

		posthogClient.Enqueue(schedulerID, eventName, map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
			"succeeded":   c.Writer.Status() < http.StatusInternalServerError,
		})
	}
}
