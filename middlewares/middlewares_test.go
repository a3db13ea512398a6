package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, RequestIDFromContext(c))
	})
	return router
}

func get(router *gin.Engine, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for key, values := range header {
		req.Header[key] = values
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	router := newEngine(RequestID())

	w := get(router, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	generated := w.Header().Get("X-Request-ID")
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	w = get(router, http.Header{"X-Request-Id": {"  client-supplied  "}})
	assert.Equal(t, "client-supplied", w.Header().Get("X-Request-ID"))
}

func TestRateLimiterWindow(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.windowStart = now
	limiter.now = func() time.Time { return now }
	router := newEngine(limiter.Middleware())

	assert.Equal(t, http.StatusOK, get(router, nil).Code)
	assert.Equal(t, http.StatusOK, get(router, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(router, nil).Code)

	now = now.Add(time.Minute)
	assert.Equal(t, http.StatusOK, get(router, nil).Code)
}

func TestAuthRateLimit(t *testing.T) {
	router := newEngine(AuthRateLimit(1, time.Minute))

	assert.Equal(t, http.StatusOK, get(router, nil).Code)

	w := get(router, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"message":"Too many attempts, try again later"}`, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	setRole := func(role string) gin.HandlerFunc {
		return func(c *gin.Context) { c.Set(RoleKey, role) }
	}

	assert.Equal(t, http.StatusOK, get(newEngine(setRole("admin"), RequireRole("admin")), nil).Code)
	assert.Equal(t, http.StatusForbidden, get(newEngine(setRole("member"), RequireRole("admin")), nil).Code)
	assert.Equal(t, http.StatusForbidden, get(newEngine(RequireRole("admin")), nil).Code)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer  abc "))
	assert.Empty(t, bearerToken("abc"))
	assert.Empty(t, bearerToken("Basic abc"))
	assert.Empty(t, bearerToken(""))
}
