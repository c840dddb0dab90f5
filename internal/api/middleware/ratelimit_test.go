package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lobbyboard/lobbyboard/internal/api/middleware"
)

func TestRateLimitByIP_AllowsWithinLimit(t *testing.T) {
	limiter := middleware.RateLimitByIP(middleware.RateLimitConfig{
		RequestLimit: 5,
		WindowLength: time.Minute,
	})

	handler := limiter(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}
}

func TestRateLimitByIP_RejectsOverLimit(t *testing.T) {
	limiter := middleware.RateLimitByIP(middleware.RateLimitConfig{
		RequestLimit: 2,
		WindowLength: time.Minute,
	})

	handler := limiter(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var lastRec *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
		req.RemoteAddr = "10.0.0.2:1234"
		lastRec = httptest.NewRecorder()
		handler.ServeHTTP(lastRec, req)
	}

	assert.Equal(t, http.StatusTooManyRequests, lastRec.Code)
	assert.Equal(t, "application/problem+json", lastRec.Header().Get("Content-Type"))
	assert.NotEmpty(t, lastRec.Header().Get("Retry-After"))
	assert.Contains(t, lastRec.Body.String(), "Rate limit exceeded")
}

func TestBoardRateLimit_LeavesHeadroomForPolling(t *testing.T) {
	// The page script polls once per second; one screen uses 60 req/min.
	assert.GreaterOrEqual(t, middleware.BoardRateLimit.RequestLimit, 60)
	assert.Equal(t, time.Minute, middleware.BoardRateLimit.WindowLength)
}
