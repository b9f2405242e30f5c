// Package handlers contains http handlers for mysessions.
//
//go:generate oapi-codegen -config openapi-api.config.yaml ../api/my-sessions.openapi.yaml
//go:generate oapi-codegen -config openapi-types.config.yaml ../api/my-sessions.openapi.yaml
package handlers

import (
	"fmt"
	"net/http"

	"mysessions/helpers"
	"mysessions/interfaces"
	"mysessions/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface generated from OpenAPI spec.
type HTTPServer struct {
	registry interfaces.SessionRegistry
	logger   log.Logger
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(registry interfaces.SessionRegistry, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(logger, "component", "HTTPServer")
	return &HTTPServer{
		registry: helpers.NilPanic(registry, "handlers.http.go: session registry is required"),
		logger:   logger,
	}
}

// CreateSession (POST /v1/sessions) leases an instance. Returns 201 with the session id, 503 when no
// management API has capacity, 502 when a management API fails.
func (h *HTTPServer) CreateSession(ectx echo.Context) error {
	ctx := ectx.Request().Context()
	sessionID, err := h.registry.CreateSession(ctx)
	if err != nil {
		return fmt.Errorf("createSession failed to lease instance, err: %w", err)
	}

	return ectx.JSON(http.StatusCreated, SessionCreated{SessionId: sessionID})
}

// ListSessions (GET /v1/sessions) returns the ids of all live sessions.
func (h *HTTPServer) ListSessions(ectx echo.Context) error {
	ctx := ectx.Request().Context()
	ids, err := h.registry.ListSessions(ctx)
	if err != nil {
		return fmt.Errorf("listSessions failed to list sessions, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toSessionsResponse(ids))
}

// GetSession (GET /v1/sessions/{session_id}) returns the lease of a session, 404 when unknown or expired.
func (h *HTTPServer) GetSession(ectx echo.Context, sessionId SessionId) error {
	ctx := ectx.Request().Context()
	lease, ok, err := h.registry.GetInstance(ctx, sessionId)
	if err != nil {
		return fmt.Errorf("getSession failed to read session, err: %w", err)
	}
	if !ok {
		return service.NewEntityNotFoundError("session not found", nil)
	}

	return ectx.JSON(http.StatusOK, toLease(lease))
}

// HeadSession (HEAD /v1/sessions/{session_id}) answers 200 when the session exists and 404 otherwise.
func (h *HTTPServer) HeadSession(ectx echo.Context, sessionId SessionId) error {
	ctx := ectx.Request().Context()
	exists, err := h.registry.DoesExist(ctx, sessionId)
	if err != nil {
		return fmt.Errorf("headSession failed to check session, err: %w", err)
	}
	if !exists {
		return ectx.NoContent(http.StatusNotFound)
	}

	return ectx.NoContent(http.StatusOK)
}

// DeleteSession (DELETE /v1/sessions/{session_id}) releases the instance and forgets the session.
// Returns 204, also for unknown sessions; 409 when the management API no longer knows the instance.
func (h *HTTPServer) DeleteSession(ectx echo.Context, sessionId SessionId) error {
	ctx := ectx.Request().Context()
	if err := h.registry.DeleteSession(ctx, sessionId); err != nil {
		return fmt.Errorf("deleteSession failed to delete session, err: %w", err)
	}

	return ectx.NoContent(http.StatusNoContent)
}

// RefreshSession (POST /v1/sessions/{session_id}/refresh) restarts the reservation window.
func (h *HTTPServer) RefreshSession(ectx echo.Context, sessionId SessionId) error {
	ctx := ectx.Request().Context()
	ok, err := h.registry.RefreshSession(ctx, sessionId)
	if err != nil {
		return fmt.Errorf("refreshSession failed to refresh session, err: %w", err)
	}
	if !ok {
		return service.NewEntityNotFoundError("session not found", nil)
	}

	return ectx.NoContent(http.StatusNoContent)
}

// CacheFile (POST /v1/sessions/{session_id}/files) asks the management API of the session to cache a file.
func (h *HTTPServer) CacheFile(ectx echo.Context, sessionId SessionId) error {
	var req CacheFileJSONRequestBody
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	if req.Url == "" {
		return service.NewBadParameterError("url is required", nil)
	}

	ctx := ectx.Request().Context()
	file, err := h.registry.CacheFile(ctx, sessionId, req.Url)
	if err != nil {
		return fmt.Errorf("cacheFile failed to cache file, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toCachedFile(file))
}

// ListInstances (GET /v1/instances) returns one lease per leased instance.
func (h *HTTPServer) ListInstances(ectx echo.Context) error {
	ctx := ectx.Request().Context()
	leases, err := h.registry.ListInstances(ctx)
	if err != nil {
		return fmt.Errorf("listInstances failed to list instances, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toInstancesResponse(leases))
}

// ListApis (GET /v1/apis) returns the registered management APIs.
func (h *HTTPServer) ListApis(ectx echo.Context) error {
	ctx := ectx.Request().Context()
	urls, err := h.registry.ListEndpoints(ctx)
	if err != nil {
		return fmt.Errorf("listApis failed to list management APIs, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toApisResponse(urls))
}

// RegisterApis (POST /v1/apis) adds management APIs to the pool. Returns 400 on an empty or invalid url list.
func (h *HTTPServer) RegisterApis(ectx echo.Context) error {
	var req RegisterApisJSONRequestBody
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	ctx := ectx.Request().Context()
	if err := h.registry.RegisterEndpoints(ctx, req.Apis...); err != nil {
		return fmt.Errorf("registerApis failed to register management APIs, err: %w", err)
	}

	return ectx.NoContent(http.StatusNoContent)
}

// ClearData (DELETE /v1/admin/data) wipes every session and management API.
func (h *HTTPServer) ClearData(ectx echo.Context) error {
	ctx := ectx.Request().Context()
	if err := h.registry.Clear(ctx); err != nil {
		return fmt.Errorf("clearData failed to clear store, err: %w", err)
	}

	return ectx.NoContent(http.StatusNoContent)
}
