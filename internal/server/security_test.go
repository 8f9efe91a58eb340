package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	const apiKey = "test-key"
	mw := AuthMiddleware(apiKey, nil, NewSuspiciousActivityDetector())(okHandler())

	t.Run("Missing Key Rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/garage", nil)
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Wrong Key Rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/garage", nil)
		req.Header.Set(HeaderAPIKey, "wrong")
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Valid Key Accepted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/garage", nil)
		req.Header.Set(HeaderAPIKey, apiKey)
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Public Paths Bypass Auth", func(t *testing.T) {
		for _, path := range PublicPaths {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()
			mw.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, "path %s should be public", path)
		}
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	mw := SecurityHeadersMiddleware()(okHandler())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	mw.ServeHTTP(w, req)

	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, w.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, w.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, w.Header().Get(HeaderReferrerPolicy))
}

func TestRateLimit(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	mw := SecurityLoggingMiddleware(nil, detector)(okHandler())

	var lastCode int
	for i := 0; i < 1001; i++ {
		req := httptest.NewRequest("GET", "/api/v1/garage", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)
		lastCode = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, lastCode)

	// A different IP is unaffected
	req := httptest.NewRequest("GET", "/api/v1/garage", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	mw.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExtractIP(t *testing.T) {
	t.Run("Untrusted Proxy Ignores Forwarded Header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "203.0.113.5:4321"
		req.Header.Set(HeaderForwardedFor, "198.51.100.1")
		assert.Equal(t, "203.0.113.5", extractIP(req, nil))
	})

	t.Run("Trusted Proxy Uses Rightmost Forwarded IP", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "10.0.0.1:4321"
		req.Header.Set(HeaderForwardedFor, "198.51.100.1, 192.0.2.7")
		assert.Equal(t, "192.0.2.7", extractIP(req, []string{"10.0.0.1"}))
	})
}
