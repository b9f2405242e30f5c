package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mysessions/api"
	"mysessions/interfaces/mock"
	"mysessions/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidatedEcho(t *testing.T, registry *mock.SessionRegistryMock) *echo.Echo {
	t.Helper()
	doc, err := api.Load()
	require.NoError(t, err)
	validator, err := NewRequestValidator(doc)
	require.NoError(t, err)

	e := echo.New()
	e.Use(validator)
	registerHandlers(e, NewHTTPServer(registry, log.NewNopLogger()))
	e.GET("/metrics", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	return e
}

func TestRequestValidator(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "valid register",
			method:         http.MethodPost,
			target:         "/v1/apis",
			body:           `{"apis":["http://e1/api"]}`,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "empty api list",
			method:         http.MethodPost,
			target:         "/v1/apis",
			body:           `{"apis":[]}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   service.ErrBadParameter,
		},
		{
			name:           "apis of wrong type",
			method:         http.MethodPost,
			target:         "/v1/apis",
			body:           `{"apis":"http://e1/api"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   service.ErrBadParameter,
		},
		{
			name:           "missing file url",
			method:         http.MethodPost,
			target:         "/v1/sessions/s1/files",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   service.ErrBadParameter,
		},
		{
			name:           "route outside the document",
			method:         http.MethodGet,
			target:         "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown route",
			method:         http.MethodGet,
			target:         "/v2/sessions",
			expectedStatus: http.StatusNotFound,
			expectedCode:   service.ErrEntityNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := &mock.SessionRegistryMock{
				RegisterEndpointsFunc: func(ctx context.Context, urls ...string) error { return nil },
			}
			e := newValidatedEcho(t, registry)

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, errorCode(t, rec))
			}
			if tt.expectedStatus == http.StatusBadRequest {
				assert.Empty(t, registry.RegisterEndpointsCalls())
				assert.Empty(t, registry.CacheFileCalls())
			}
		})
	}
}
