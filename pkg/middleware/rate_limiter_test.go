package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter(60, 2) // burst of 2

	handler := limiter.RateLimitMiddleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	doRequest := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, handler(c))
		return rec
	}

	// Burst allows the first two requests through
	assert.Equal(t, http.StatusOK, doRequest().Code)
	assert.Equal(t, http.StatusOK, doRequest().Code)

	// Third immediate request exceeds the burst
	assert.Equal(t, http.StatusTooManyRequests, doRequest().Code)
}

func TestRateLimiterPerIP(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter(60, 1)

	handler := limiter.RateLimitMiddleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	doRequest := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		require.NoError(t, handler(c))
		return rec
	}

	// Exhaust the first IP's budget
	assert.Equal(t, http.StatusOK, doRequest("10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest("10.0.0.1:1234").Code)

	// A different IP has its own limiter
	assert.Equal(t, http.StatusOK, doRequest("10.0.0.2:1234").Code)
}
