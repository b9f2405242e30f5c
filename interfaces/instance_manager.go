package interfaces

import (
	"context"

	"mysessions/domain"
)

// InstanceManager talks to remote management APIs that create and delete worker instances.
// Implemented by adapters/ptmanagement. Called from service.SessionRegistry.
//
//go:generate moq -stub -out mock/instance_manager.go -pkg mock . InstanceManager
type InstanceManager interface {
	// AcquireInstance asks the management API at endpointURL for a new instance.
	// Returns no_capacity when the API has no free instance and transport_error on any other failure.
	AcquireInstance(ctx context.Context, endpointURL string) (domain.Instance, error)

	// ReleaseInstance deletes the instance behind managementURL.
	// Returns instance_not_found when the API does not know it and transport_error on any other failure.
	ReleaseInstance(ctx context.Context, managementURL string) (domain.Instance, error)

	// CacheFile asks the management API at endpointURL to download fileURL next to its instances.
	// Returns unresolvable_file_url when the API cannot fetch it and transport_error on any other failure.
	CacheFile(ctx context.Context, endpointURL string, fileURL string) (domain.CachedFile, error)
}
