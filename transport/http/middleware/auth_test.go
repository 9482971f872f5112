package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/otel/mocks"
	"frontdesk/permissions"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/middleware"
)

const secret = "test-secret"

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "frontdesk"
	cfg.App.APIKey = "internal-key"
	cfg.JWT.AccessSecret = secret

	return cfg
}

func sign(t *testing.T, userID, role string) string {
	t.Helper()

	claims := jwt.Claims{
		UserID:   userID,
		Email:    userID + "@hotel.test",
		Role:     role,
		TokenID:  "tok-1",
		Type:     jwt.AccessToken,
		IssuedAt: time.Now(),
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    "frontdesk",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

// newRouter mounts the middleware stack in front of a handler echoing the actor.
func newRouter() chi.Router {
	cfg := newConfig()
	mw := middleware.NewAuthRoleMiddleware(jwt.New(cfg), mocks.NewOtel(), permissions.Get(), cfg)

	router := chi.NewRouter()
	router.Use(mw.APIKey, mw.Auth, mw.RBAC)

	echo := func(w http.ResponseWriter, r *http.Request) {
		actor, _ := r.Context().Value(constant.ContextKeyUserID).(string)
		_, _ = w.Write([]byte(actor))
	}

	router.Post("/v1/properties/{property_id}/reservations/{reservation_id}/extend", echo)
	router.Post("/v1/properties/{property_id}/overstays/detect", echo)

	return router
}

func call(router chi.Router, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, nil)
	for k, v := range header {
		req.Header[http.CanonicalHeaderKey(k)] = v
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestAuth(t *testing.T) {
	router := newRouter()
	extend := "/v1/properties/p-1/reservations/res-1/extend"

	t.Run("missing header", func(t *testing.T) {
		rec := call(router, extend, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		rec := call(router, extend, http.Header{constant.RequestHeaderAuthorization: {"Token abc"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token carries the actor", func(t *testing.T) {
		rec := call(router, extend, http.Header{
			constant.RequestHeaderAuthorization: {"Bearer " + sign(t, "u-1", permissions.RoleFrontDesk)},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "u-1", rec.Body.String())
	})

	t.Run("role outside the route permissions", func(t *testing.T) {
		rec := call(router, extend, http.Header{
			constant.RequestHeaderAuthorization: {"Bearer " + sign(t, "u-2", permissions.RoleHousekeeping)},
		})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAPIKey(t *testing.T) {
	router := newRouter()
	detect := "/v1/properties/p-1/overstays/detect"

	t.Run("internal caller acts as system", func(t *testing.T) {
		rec := call(router, detect, http.Header{constant.RequestHeaderAPIKey: {"internal-key"}})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constant.ActorSystem, rec.Body.String())
	})

	t.Run("wrong key is forbidden", func(t *testing.T) {
		rec := call(router, detect, http.Header{constant.RequestHeaderAPIKey: {"guess"}})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("front desk cannot trigger a sweep", func(t *testing.T) {
		rec := call(router, detect, http.Header{
			constant.RequestHeaderAuthorization: {"Bearer " + sign(t, "u-1", permissions.RoleFrontDesk)},
		})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
