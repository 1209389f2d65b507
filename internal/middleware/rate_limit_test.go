package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-paydesk/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.RateLimitByIP(1, 2))
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	doGet := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		return w
	}

	// Burst of 2 passes, the third request in the same instant is rejected.
	assert.Equal(t, http.StatusOK, doGet().Code)
	assert.Equal(t, http.StatusOK, doGet().Code)

	w := doGet()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests from this IP")
}

func TestRateLimitByIP_SeparateClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.RateLimitByIP(1, 1))
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	doGet := func(addr string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = addr
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, doGet("10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet("10.0.0.1:1234").Code)
	// A different client has its own bucket.
	assert.Equal(t, http.StatusOK, doGet("10.0.0.2:1234").Code)
}
