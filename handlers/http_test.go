package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mysessions/domain"
	"mysessions/interfaces/mock"
	"mysessions/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ServerInterface = (*HTTPServer)(nil)

func registerHandlers(e *echo.Echo, server ServerInterface) {
	RegisterHandlers(e, server)
	service.RegisterErrorHandler(e, log.NewNopLogger())
}

func serve(t *testing.T, registry *mock.SessionRegistryMock, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	registerHandlers(e, NewHTTPServer(registry, log.NewNopLogger()))

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.NotEmpty(t, body.Error.Message)
	return body.Error.Code
}

func TestNewHTTPServer_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "handlers.http.go: session registry is required", func() {
		NewHTTPServer(nil, log.NewNopLogger())
	})
}

func TestHTTPServer_CreateSession(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{name: "201", expectedStatus: http.StatusCreated},
		{name: "503 no capacity", err: service.NewNoCapacityError("full", nil), expectedStatus: http.StatusServiceUnavailable, expectedCode: service.ErrNoCapacity},
		{name: "502 transport", err: service.NewTransportError("refused", nil), expectedStatus: http.StatusBadGateway, expectedCode: service.ErrTransport},
		{name: "500 store", err: assert.AnError, expectedStatus: http.StatusInternalServerError, expectedCode: service.ErrInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := &mock.SessionRegistryMock{
				CreateSessionFunc: func(ctx context.Context) (string, error) {
					if tt.err != nil {
						return "", tt.err
					}
					return "c2Vzc2lvbi1pZC0xMjM0NQ", nil
				},
			}
			rec := serve(t, registry, http.MethodPost, "/v1/sessions", "")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, errorCode(t, rec))
				return
			}
			var got SessionCreated
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, "c2Vzc2lvbi1pZC0xMjM0NQ", got.SessionId)
		})
	}
}

func TestHTTPServer_ListSessions(t *testing.T) {
	t.Run("200", func(t *testing.T) {
		registry := &mock.SessionRegistryMock{
			ListSessionsFunc: func(ctx context.Context) ([]string, error) {
				return []string{"a", "b"}, nil
			},
		}
		rec := serve(t, registry, http.MethodGet, "/v1/sessions", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"sessions":["a","b"]}`, rec.Body.String())
	})

	t.Run("200 empty", func(t *testing.T) {
		rec := serve(t, &mock.SessionRegistryMock{}, http.MethodGet, "/v1/sessions", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"sessions":[]}`, rec.Body.String())
	})
}

func TestHTTPServer_GetSession(t *testing.T) {
	lease := domain.Lease{SessionID: "s1", ManagementURL: "http://e1/api/instances/1", Hostname: "10.0.0.1", Port: 39000, EndpointURL: "http://e1/api"}

	tests := []struct {
		name           string
		registry       *mock.SessionRegistryMock
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "200",
			registry: &mock.SessionRegistryMock{
				GetInstanceFunc: func(ctx context.Context, sessionID string) (domain.Lease, bool, error) {
					assert.Equal(t, "s1", sessionID)
					return lease, true, nil
				},
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"session_id":"s1","url":"http://e1/api/instances/1","hostname":"10.0.0.1","port":39000,"api":"http://e1/api"}`,
		},
		{
			name:           "404 unknown",
			registry:       &mock.SessionRegistryMock{},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "500 store",
			registry: &mock.SessionRegistryMock{
				GetInstanceFunc: func(ctx context.Context, sessionID string) (domain.Lease, bool, error) {
					return domain.Lease{}, false, service.NewInternalServerError("redis down", nil)
				},
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, tt.registry, http.MethodGet, "/v1/sessions/s1", "")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestHTTPServer_HeadSession(t *testing.T) {
	registry := &mock.SessionRegistryMock{
		DoesExistFunc: func(ctx context.Context, sessionID string) (bool, error) {
			return sessionID == "known", nil
		},
	}

	rec := serve(t, registry, http.MethodHead, "/v1/sessions/known", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.Bytes())

	rec = serve(t, registry, http.MethodHead, "/v1/sessions/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestHTTPServer_DeleteSession(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{name: "204", expectedStatus: http.StatusNoContent},
		{name: "409 instance not found", err: service.NewInstanceNotFoundError("gone", nil), expectedStatus: http.StatusConflict, expectedCode: service.ErrInstanceNotFound},
		{name: "502 transport", err: service.NewTransportError("refused", nil), expectedStatus: http.StatusBadGateway, expectedCode: service.ErrTransport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := &mock.SessionRegistryMock{
				DeleteSessionFunc: func(ctx context.Context, sessionID string) error {
					assert.Equal(t, "s1", sessionID)
					return tt.err
				},
			}
			rec := serve(t, registry, http.MethodDelete, "/v1/sessions/s1", "")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, errorCode(t, rec))
			} else {
				assert.Empty(t, rec.Body.Bytes())
			}
		})
	}
}

func TestHTTPServer_RefreshSession(t *testing.T) {
	registry := &mock.SessionRegistryMock{
		RefreshSessionFunc: func(ctx context.Context, sessionID string) (bool, error) {
			return sessionID == "known", nil
		},
	}

	rec := serve(t, registry, http.MethodPost, "/v1/sessions/known/refresh", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(t, registry, http.MethodPost, "/v1/sessions/unknown/refresh", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, service.ErrEntityNotFound, errorCode(t, rec))
}

func TestHTTPServer_CacheFile(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		registry       *mock.SessionRegistryMock
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "200",
			body: `{"url":"http://files/net.pkt"}`,
			registry: &mock.SessionRegistryMock{
				CacheFileFunc: func(ctx context.Context, sessionID string, fileURL string) (domain.CachedFile, error) {
					assert.Equal(t, "s1", sessionID)
					assert.Equal(t, "http://files/net.pkt", fileURL)
					return domain.CachedFile{URL: fileURL, Filename: "/data/net.pkt"}, nil
				},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "400 invalid JSON",
			body:           `{invalid`,
			registry:       &mock.SessionRegistryMock{},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   service.ErrBadParameter,
		},
		{
			name:           "400 missing url",
			body:           `{}`,
			registry:       &mock.SessionRegistryMock{},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   service.ErrBadParameter,
		},
		{
			name: "400 unresolvable",
			body: `{"url":"http://invalid"}`,
			registry: &mock.SessionRegistryMock{
				CacheFileFunc: func(ctx context.Context, sessionID string, fileURL string) (domain.CachedFile, error) {
					return domain.CachedFile{}, service.NewUnresolvableFileURLError("bad url", nil)
				},
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   service.ErrUnresolvableFileURL,
		},
		{
			name: "404 unknown session",
			body: `{"url":"http://files/net.pkt"}`,
			registry: &mock.SessionRegistryMock{
				CacheFileFunc: func(ctx context.Context, sessionID string, fileURL string) (domain.CachedFile, error) {
					return domain.CachedFile{}, service.NewEntityNotFoundError("session not found", nil)
				},
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   service.ErrEntityNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, tt.registry, http.MethodPost, "/v1/sessions/s1/files", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, errorCode(t, rec))
				return
			}
			assert.JSONEq(t, `{"url":"http://files/net.pkt","filename":"/data/net.pkt"}`, rec.Body.String())
		})
	}
}

func TestHTTPServer_ListInstances(t *testing.T) {
	registry := &mock.SessionRegistryMock{
		ListInstancesFunc: func(ctx context.Context) ([]domain.Lease, error) {
			return []domain.Lease{
				{SessionID: "a", ManagementURL: "http://e1/api/instances/1", Hostname: "h1", Port: 1},
			}, nil
		},
	}
	rec := serve(t, registry, http.MethodGet, "/v1/instances", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"instances":[{"session_id":"a","url":"http://e1/api/instances/1","hostname":"h1","port":1}]}`, rec.Body.String())
}

func TestHTTPServer_Apis(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		registry := &mock.SessionRegistryMock{
			ListEndpointsFunc: func(ctx context.Context) ([]string, error) {
				return []string{"http://e1/api"}, nil
			},
		}
		rec := serve(t, registry, http.MethodGet, "/v1/apis", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"apis":["http://e1/api"]}`, rec.Body.String())
	})

	t.Run("register", func(t *testing.T) {
		registry := &mock.SessionRegistryMock{}
		rec := serve(t, registry, http.MethodPost, "/v1/apis", `{"apis":["http://e1/api","http://e2/api"]}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.Len(t, registry.RegisterEndpointsCalls(), 1)
		assert.Equal(t, []string{"http://e1/api", "http://e2/api"}, registry.RegisterEndpointsCalls()[0].Urls)
	})

	t.Run("register invalid", func(t *testing.T) {
		registry := &mock.SessionRegistryMock{
			RegisterEndpointsFunc: func(ctx context.Context, urls ...string) error {
				return service.NewBadParameterError("invalid management API url", nil)
			},
		}
		rec := serve(t, registry, http.MethodPost, "/v1/apis", `{"apis":["ftp://e1"]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, service.ErrBadParameter, errorCode(t, rec))
	})
}

func TestHTTPServer_ClearData(t *testing.T) {
	registry := &mock.SessionRegistryMock{}
	rec := serve(t, registry, http.MethodDelete, "/v1/admin/data", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, registry.ClearCalls(), 1)
}

func TestHTTPServer_UnknownRoute(t *testing.T) {
	rec := serve(t, &mock.SessionRegistryMock{}, http.MethodGet, "/v1/unknown", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, service.ErrEntityNotFound, errorCode(t, rec))
}
