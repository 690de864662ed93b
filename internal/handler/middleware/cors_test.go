//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"backroom-api/internal/handler/middleware"
	"backroom-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cors.New panics when every origin source is disabled, so the test config
// must carry a usable CORS block for any suite that builds the full router.
func TestNewCORSMiddlewareAcceptsTestConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var mw gin.HandlerFunc
	require.NotPanics(t, func() {
		mw = middleware.NewCORSMiddleware(config.NewTestConfig().CORS)
	})

	engine := gin.New()
	engine.Use(mw)
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:8081")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:8081", w.Header().Get("Access-Control-Allow-Origin"))
}
