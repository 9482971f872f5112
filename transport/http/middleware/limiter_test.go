package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/infras/otel/mocks"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/middleware"
)

func limited(t *testing.T, enable bool) (*cacheMocks.MockRedisCache, http.Handler) {
	t.Helper()

	cfg := newConfig()
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	store := cacheMocks.NewMockRedisCache(gomock.NewController(t))
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, store)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return store, mw.Tracing(mw.RateLimit()(next))
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled passes through", func(t *testing.T) {
		_, handler := limited(t, false)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/x", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("first request starts the window", func(t *testing.T) {
		store, handler := limited(t, true)
		store.EXPECT().Increment(gomock.Any(), "limiter:203.0.113.7:front-desk-ui", 60).Return(int64(1), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/x", nil)
		req.Header.Set(constant.RequestHeaderForwardedFor, "203.0.113.7, 10.0.0.1")
		req.Header.Set(constant.RequestHeaderUserAgent, "front-desk-ui")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("over the limit", func(t *testing.T) {
		store, handler := limited(t, true)
		store.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(3), nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/x", nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "0", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("peer address without port", func(t *testing.T) {
		store, handler := limited(t, true)
		store.EXPECT().Increment(gomock.Any(), "limiter:192.0.2.1:unknown", 60).Return(int64(1), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/x", nil)
		req.RemoteAddr = "192.0.2.1:1234"

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("cache outage fails open", func(t *testing.T) {
		store, handler := limited(t, true)
		store.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection refused"))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/x", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
