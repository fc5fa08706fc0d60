package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"virtusim-backend/pkg/utils"
)

func serveWithAPIKey(t *testing.T, configured, authHeader string) (*httptest.ResponseRecorder, string, bool) {
	t.Helper()

	e := echo.New()
	mw := NewAPIKeyMiddleware(configured, zap.NewNop())

	var seenKey string
	called := false
	e.GET("/order", func(c echo.Context) error {
		called = true
		key, err := utils.GetAPIKeyFromCtx(c.Request().Context())
		require.NoError(t, err)
		seenKey = key
		return c.NoContent(http.StatusNoContent)
	}, mw.RequireAPIKey)

	req := httptest.NewRequest(http.MethodGet, "/order", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, seenKey, called
}

func TestRequireAPIKey(t *testing.T) {
	t.Run("configured_key", func(t *testing.T) {
		rec, key, called := serveWithAPIKey(t, "env-key", "Bearer ignored")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.True(t, called)
		assert.Equal(t, "env-key", key)
	})

	t.Run("bearer_fallback", func(t *testing.T) {
		rec, key, called := serveWithAPIKey(t, "", "Bearer client-key")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.True(t, called)
		assert.Equal(t, "client-key", key)
	})

	t.Run("non_bearer_header_is_rejected", func(t *testing.T) {
		rec, _, called := serveWithAPIKey(t, "", "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
		assert.Contains(t, rec.Body.String(), "Bearer <api_key>")
	})

	t.Run("missing_key_stops_request", func(t *testing.T) {
		rec, _, called := serveWithAPIKey(t, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
		assert.Contains(t, rec.Body.String(), `"success":false`)
		assert.Contains(t, rec.Body.String(), `"status_code":401`)
	})
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	e := echo.New()
	e.Use(RequestLogger(zap.NewNop()))

	var fromCtx string
	e.GET("/health", func(c echo.Context) error {
		fromCtx = utils.GetRequestIDFromCtx(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		id := rec.Header().Get(HeaderRequestID)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, fromCtx)
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(HeaderRequestID, "req-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))
		assert.Equal(t, "req-123", fromCtx)
	})
}

func TestInjectLoggerCarriesRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	e := echo.New()
	e.Use(RequestLogger(zap.NewNop()))
	e.Use(InjectLogger(zap.New(core)))

	e.GET("/order", func(c echo.Context) error {
		utils.LoggerFromCtx(c.Request().Context(), zap.NewNop()).Info("внутри обработчика")
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/order", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	e.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("внутри обработчика").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
}
