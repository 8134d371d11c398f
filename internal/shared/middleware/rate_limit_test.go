package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":12345"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	// Burst của 3 requests đầu pass
	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, do("10.0.0.1"), "request %d", i+1)
	}

	// Request thứ 4 bị chặn
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1"))

	// IP khác vẫn được phục vụ
	assert.Equal(t, http.StatusOK, do("10.0.0.2"))
}
