package virtusim

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"virtusim-backend/pkg/config"
	apperrors "virtusim-backend/pkg/errors"
)

type capturedRequest struct {
	method      string
	contentType string
	userAgent   string
	form        url.Values
}

func newUpstream(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		form, err := url.ParseQuery(string(raw))
		assert.NoError(t, err)

		captured.method = r.Method
		captured.contentType = r.Header.Get("Content-Type")
		captured.userAgent = r.Header.Get("User-Agent")
		captured.form = form

		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func newProvider(baseURL string, timeout time.Duration) *Provider {
	return New(config.VirtuSIMConfig{BaseURL: baseURL, Timeout: timeout}, zap.NewNop())
}

func TestCallSendsFormPayload(t *testing.T) {
	srv, captured := newUpstream(t, http.StatusOK, `{"status":true,"data":{"id":123456789012345678}}`)
	p := newProvider(srv.URL, time.Second)

	doc, err := p.Call(context.Background(), "secret", "set_status", map[string]string{
		"id":      "987",
		"status":  "2",
		"api_key": "spoofed",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "application/x-www-form-urlencoded", captured.contentType)
	assert.Equal(t, userAgent, captured.userAgent)
	assert.Equal(t, url.Values{
		"api_key": {"secret"},
		"action":  {"set_status"},
		"id":      {"987"},
		"status":  {"2"},
	}, captured.form)

	data := doc.(map[string]any)["data"].(map[string]any)
	assert.Equal(t, json.Number("123456789012345678"), data["id"], "большие id не должны терять точность")
}

func TestCallWrapsNonJSONBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"plain_text", "ACCESS_BALANCE:1500"},
		{"empty", ""},
		{"trailing_garbage", `{"status":true} extra`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newUpstream(t, http.StatusOK, tt.body)
			p := newProvider(srv.URL, time.Second)

			doc, err := p.Call(context.Background(), "secret", "services", nil)
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"response": tt.body}, doc)
		})
	}
}

func TestCallReturnsArrayDocument(t *testing.T) {
	srv, _ := newUpstream(t, http.StatusOK, `[{"id":"1"},{"id":"2"}]`)
	p := newProvider(srv.URL, time.Second)

	doc, err := p.Call(context.Background(), "secret", "active_order", nil)
	require.NoError(t, err)
	assert.Len(t, doc.([]any), 2)
}

func TestCallUpstreamFailures(t *testing.T) {
	t.Run("http_error_status", func(t *testing.T) {
		srv, _ := newUpstream(t, http.StatusBadGateway, "bad gateway")
		p := newProvider(srv.URL, time.Second)

		_, err := p.Call(context.Background(), "secret", "services", nil)
		assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		t.Cleanup(func() {
			close(release)
			srv.Close()
		})
		p := newProvider(srv.URL, 50*time.Millisecond)

		_, err := p.Call(context.Background(), "secret", "services", nil)
		assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	})

	t.Run("connection_refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		addr := srv.URL
		srv.Close()
		p := newProvider(addr, time.Second)

		_, err := p.Call(context.Background(), "secret", "services", nil)
		assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	})

	t.Run("canceled_context", func(t *testing.T) {
		srv, _ := newUpstream(t, http.StatusOK, `{}`)
		p := newProvider(srv.URL, time.Second)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := p.Call(ctx, "secret", "services", nil)
		assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("malformed_url", func(t *testing.T) {
		p := newProvider("http://[::1", time.Second)

		_, err := p.Call(context.Background(), "secret", "services", nil)
		assert.ErrorIs(t, err, apperrors.ErrUpstreamUnexpected)
	})
}
