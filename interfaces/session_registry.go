package interfaces

import (
	"context"

	"mysessions/domain"
)

// SessionRegistry maps sessions to leased instances. Implemented by service.SessionRegistry,
// called from handlers.HTTPServer.
//
//go:generate moq -stub -out mock/session_registry.go -pkg mock . SessionRegistry
type SessionRegistry interface {
	CreateSession(ctx context.Context) (string, error)
	GetInstance(ctx context.Context, sessionID string) (domain.Lease, bool, error)
	DoesExist(ctx context.Context, sessionID string) (bool, error)
	ListSessions(ctx context.Context) ([]string, error)
	ListInstances(ctx context.Context) ([]domain.Lease, error)
	DeleteSession(ctx context.Context, sessionID string) error
	RefreshSession(ctx context.Context, sessionID string) (bool, error)
	CacheFile(ctx context.Context, sessionID string, fileURL string) (domain.CachedFile, error)
	RegisterEndpoints(ctx context.Context, urls ...string) error
	ListEndpoints(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}
