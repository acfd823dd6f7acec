package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/ct_order_jobs/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJobRateLimiter_InvalidFormat(t *testing.T) {
	_, err := middleware.NewJobRateLimiter("lots")
	assert.Error(t, err)
}

func TestRateLimit_PerScheduler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim, err := middleware.NewJobRateLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.SchedulerAuthMiddleware(testSecret), middleware.RateLimit(lim))
	r.POST("/jobs/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(subject string) int {
		req := httptest.NewRequest(http.MethodPost, "/jobs/ping", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(testSecret, validClaims(subject)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("a"))
	assert.Equal(t, http.StatusOK, call("a"))
	assert.Equal(t, http.StatusTooManyRequests, call("a"))
	// Budgets are per scheduler.
	assert.Equal(t, http.StatusOK, call("b"))
}
