package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/ct_order_jobs/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

const testSecret = "test-secret-key-that-is-long-enough"

type SchedulerAuthTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *SchedulerAuthTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = newAuthRouter(testSecret)
}

// newAuthRouter echoes the scheduler identity seen by the handler.
func newAuthRouter(secret string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.SchedulerAuthMiddleware(secret))
	r.POST("/jobs/ping", func(c *gin.Context) {
		id, _ := middleware.GetSchedulerIDFromContext(c)
		c.String(http.StatusOK, id)
	})
	return r
}

func signToken(secret string, claims jwt.RegisteredClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		panic(err)
	}
	return signed
}

func validClaims(subject string) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    "scheduler-test",
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
}

func (suite *SchedulerAuthTestSuite) do(authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/jobs/ping", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SchedulerAuthTestSuite) TestValidToken() {
	w := suite.do("Bearer " + signToken(testSecret, validClaims("nightly-cron")))

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("nightly-cron", w.Body.String())
}

func (suite *SchedulerAuthTestSuite) TestMissingHeader() {
	w := suite.do("")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.JSONEq(`{"error":"Authorization header required"}`, w.Body.String())
}

func (suite *SchedulerAuthTestSuite) TestMalformedHeader() {
	w := suite.do("Token abc")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.JSONEq(`{"error":"Authorization header format must be Bearer {token}"}`, w.Body.String())
}

func (suite *SchedulerAuthTestSuite) TestWrongSecret() {
	w := suite.do("Bearer " + signToken("another-secret", validClaims("nightly-cron")))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.JSONEq(`{"error":"Invalid token"}`, w.Body.String())
}

func (suite *SchedulerAuthTestSuite) TestExpiredToken() {
	claims := validClaims("nightly-cron")
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	w := suite.do("Bearer " + signToken(testSecret, claims))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.JSONEq(`{"error":"Token has expired"}`, w.Body.String())
}

func (suite *SchedulerAuthTestSuite) TestMissingSubject() {
	w := suite.do("Bearer " + signToken(testSecret, validClaims("")))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.JSONEq(`{"error":"Invalid token claims"}`, w.Body.String())
}

func (suite *SchedulerAuthTestSuite) TestDisabledSecretAcceptsAnyCaller() {
	suite.router = newAuthRouter("")

	w := suite.do("")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("anonymous-scheduler", w.Body.String())
}

func TestSchedulerAuthTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerAuthTestSuite))
}
