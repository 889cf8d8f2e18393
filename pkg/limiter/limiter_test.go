package limiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Limit(1, 2, time.Minute))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	status := func(addr string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, status("10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, status("10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, status("10.0.0.1:1234"), "burst exhausted")
	assert.Equal(t, http.StatusOK, status("10.0.0.2:1234"), "buckets are per client")
}
