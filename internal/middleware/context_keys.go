package middleware

import "github.com/gin-gonic/gin"

// schedulerIDKey is the key used to store the authenticated scheduler's
// identity (the token subject) in the request context.
const schedulerIDKey = contextKey("schedulerID")

// anonymousScheduler identifies callers when scheduler auth is disabled.
const anonymousScheduler = "anonymous-scheduler"

// GetSchedulerIDFromContext retrieves the caller identity set by SchedulerAuthMiddleware.
// It returns the identity and a boolean indicating if it was found.
func GetSchedulerIDFromContext(c *gin.Context) (string, bool) {
	schedulerID, ok := c.Request.Context().Value(schedulerIDKey).(string)
	if !ok || schedulerID == "" {
		return "", false
	}
	return schedulerID, true
}
