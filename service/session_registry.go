package service

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"mysessions/domain"
	"mysessions/helpers"
	"mysessions/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"
)

// listConcurrency bounds the lease reads in flight during ListInstances.
const listConcurrency = 8

// SessionRegistry maps sessions to instances leased from the registered management APIs.
//
// A lease is written only after its instance was acquired and removed only after its instance was released.
// Expiry is left to the store: a lease that expires is gone, but its instance stays provisioned on the
// management API, nothing here reclaims it.
//
// Safe for concurrent use; it holds no state besides its collaborators.
type SessionRegistry struct {
	store   interfaces.LeaseStore
	manager interfaces.InstanceManager
	metrics interfaces.Metrics
	ttl     time.Duration
	newID   func() string
	logger  log.Logger
}

// NewSessionRegistry creates a SessionRegistry. ttl is the reservation window of every lease;
// a non-positive ttl means domain.DefaultReservationTime. Panics on nil store, manager, metrics or logger.
func NewSessionRegistry(
	store interfaces.LeaseStore,
	manager interfaces.InstanceManager,
	metrics interfaces.Metrics,
	ttl time.Duration,
	logger log.Logger,
) *SessionRegistry {
	if ttl <= 0 {
		ttl = domain.DefaultReservationTime
	}
	return &SessionRegistry{
		store:   helpers.NilPanic(store, "service.session_registry.go: store is required"),
		manager: helpers.NilPanic(manager, "service.session_registry.go: instance manager is required"),
		metrics: helpers.NilPanic(metrics, "service.session_registry.go: metrics is required"),
		ttl:     ttl,
		newID:   NewSessionID,
		logger:  log.With(helpers.NilPanic(logger, "service.session_registry.go: logger is required"), "component", "SessionRegistry"),
	}
}

// CreateSession leases an instance from the first management API that has one and returns the new session id.
//
// APIs are tried one at a time in lexical order. Only no_capacity moves on to the next API; any other
// acquisition error aborts the whole call. Returns no_capacity when every API is exhausted (or none is registered).
// Once started the call is not interrupted by ctx cancellation.
func (r *SessionRegistry) CreateSession(ctx context.Context) (string, error) {
	ctx = context.WithoutCancel(ctx)

	endpoints, err := r.store.ListEndpoints(ctx)
	if err != nil {
		return "", fmt.Errorf("createSession failed to list management APIs, err: %w", err)
	}
	sort.Strings(endpoints)

	for _, endpoint := range endpoints {
		instance, err := r.manager.AcquireInstance(ctx, endpoint)
		if IsNoCapacityError(err) {
			r.metrics.EndpointExhausted(endpoint)
			level.Debug(r.logger).Log("msg", "Management API has no instance available", "endpoint", endpoint)
			continue
		}
		if err != nil {
			r.metrics.AcquireFailed(endpoint)
			return "", fmt.Errorf("createSession failed to acquire instance from '%s', err: %w", endpoint, err)
		}

		return r.lease(ctx, endpoint, instance)
	}

	r.metrics.CapacityExhausted()
	level.Warn(r.logger).Log("msg", "No instance available", "endpoints", len(endpoints))
	return "", NewNoCapacityError("no instance available", nil)
}

func (r *SessionRegistry) lease(ctx context.Context, endpoint string, instance domain.Instance) (string, error) {
	lease := domain.Lease{
		SessionID:     r.newID(),
		ManagementURL: instance.ManagementURL,
		Hostname:      instance.Hostname,
		Port:          instance.Port,
		EndpointURL:   endpoint,
	}

	if err := r.store.SaveLease(ctx, lease, r.ttl); err != nil {
		// no lease points at the instance, hand it back
		if _, releaseErr := r.manager.ReleaseInstance(ctx, instance.ManagementURL); releaseErr != nil {
			level.Error(r.logger).Log(
				"msg", "Failed to release instance after lease write error",
				"instance_url", instance.ManagementURL,
				"err", releaseErr,
			)
		}
		return "", fmt.Errorf("createSession failed to save lease, err: %w", err)
	}

	r.metrics.SessionCreated(endpoint)
	level.Info(r.logger).Log(
		"msg", "Session created",
		"session_id", lease.SessionID,
		"instance_url", lease.ManagementURL,
		"endpoint", endpoint,
	)
	return lease.SessionID, nil
}

// GetInstance returns the lease of a session. An unknown or expired session is (zero, false, nil).
func (r *SessionRegistry) GetInstance(ctx context.Context, sessionID string) (domain.Lease, bool, error) {
	lease, ok, err := r.store.GetLease(ctx, sessionID)
	if err != nil {
		return domain.Lease{}, false, fmt.Errorf("getInstance failed to read lease, err: %w", err)
	}
	return lease, ok, nil
}

func (r *SessionRegistry) DoesExist(ctx context.Context, sessionID string) (bool, error) {
	exists, err := r.store.Exists(ctx, sessionID)
	if err != nil {
		return false, fmt.Errorf("doesExist failed to check lease, err: %w", err)
	}
	return exists, nil
}

// ListSessions returns the ids of all live sessions, sorted.
func (r *SessionRegistry) ListSessions(ctx context.Context) ([]string, error) {
	ids, err := r.store.ListSessionIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listSessions failed to list leases, err: %w", err)
	}
	return uniqueSorted(ids), nil
}

// ListInstances returns the leases of all live sessions, one per session, sorted by session id.
// Sessions that expire while the list is built are skipped.
func (r *SessionRegistry) ListInstances(ctx context.Context) ([]domain.Lease, error) {
	ids, err := r.store.ListSessionIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listInstances failed to list leases, err: %w", err)
	}
	ids = uniqueSorted(ids)

	leases := make([]domain.Lease, len(ids))
	found := make([]bool, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			lease, ok, err := r.store.GetLease(gctx, id)
			if err != nil {
				return err
			}
			leases[i], found[i] = lease, ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("listInstances failed to read lease, err: %w", err)
	}

	out := make([]domain.Lease, 0, len(leases))
	for i, lease := range leases {
		if found[i] {
			out = append(out, lease)
		}
	}
	return out, nil
}

// DeleteSession releases the instance of a session and then removes its lease.
//
// Unknown sessions are a no-op. When the release fails the lease is kept and the error is returned
// (instance_not_found, transport_error). Once started the call is not interrupted by ctx cancellation.
func (r *SessionRegistry) DeleteSession(ctx context.Context, sessionID string) error {
	ctx = context.WithoutCancel(ctx)

	lease, ok, err := r.store.GetLease(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("deleteSession failed to read lease, err: %w", err)
	}
	if !ok {
		level.Debug(r.logger).Log("msg", "Session to delete does not exist", "session_id", sessionID)
		return nil
	}

	if _, err := r.manager.ReleaseInstance(ctx, lease.ManagementURL); err != nil {
		r.metrics.ReleaseFailed()
		return fmt.Errorf("deleteSession failed to release instance '%s', err: %w", lease.ManagementURL, err)
	}

	if err := r.store.DeleteLease(ctx, sessionID); err != nil {
		level.Warn(r.logger).Log(
			"msg", "Instance released but lease could not be deleted; it will expire",
			"session_id", sessionID,
			"err", err,
		)
		return fmt.Errorf("deleteSession failed to delete lease, err: %w", err)
	}

	r.metrics.SessionDeleted()
	level.Info(r.logger).Log("msg", "Session deleted", "session_id", sessionID, "instance_url", lease.ManagementURL)
	return nil
}

// RefreshSession restarts the reservation window of a session. Returns false for unknown sessions.
func (r *SessionRegistry) RefreshSession(ctx context.Context, sessionID string) (bool, error) {
	ok, err := r.store.RefreshLease(ctx, sessionID, r.ttl)
	if err != nil {
		return false, fmt.Errorf("refreshSession failed to refresh lease, err: %w", err)
	}
	return ok, nil
}

// CacheFile asks the management API a session was leased from to cache fileURL.
// Returns entity_not_found when the session is unknown or its lease does not record the API.
func (r *SessionRegistry) CacheFile(ctx context.Context, sessionID string, fileURL string) (domain.CachedFile, error) {
	lease, ok, err := r.store.GetLease(ctx, sessionID)
	if err != nil {
		return domain.CachedFile{}, fmt.Errorf("cacheFile failed to read lease, err: %w", err)
	}
	if !ok {
		return domain.CachedFile{}, NewEntityNotFoundError("session not found", nil)
	}
	if lease.EndpointURL == "" {
		return domain.CachedFile{}, NewEntityNotFoundError("session has no management API", nil)
	}

	file, err := r.manager.CacheFile(ctx, lease.EndpointURL, fileURL)
	if err != nil {
		return domain.CachedFile{}, fmt.Errorf("cacheFile failed to cache '%s', err: %w", fileURL, err)
	}
	return file, nil
}

// RegisterEndpoints adds management APIs to the pool. Registering a known API again is a no-op.
// Returns bad_parameter when urls is empty or one of them is not an absolute http(s) URL.
func (r *SessionRegistry) RegisterEndpoints(ctx context.Context, urls ...string) error {
	if len(urls) == 0 {
		return NewBadParameterError("at least one management API url is required", nil)
	}

	clean := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if err := validateEndpointURL(u); err != nil {
			return NewBadParameterError(fmt.Sprintf("invalid management API url '%s'", u), err)
		}
		clean = append(clean, u)
	}

	if err := r.store.AddEndpoints(ctx, clean...); err != nil {
		return fmt.Errorf("registerEndpoints failed to add management APIs, err: %w", err)
	}
	level.Info(r.logger).Log("msg", "Management APIs registered", "endpoints", strings.Join(clean, ","))
	return nil
}

func validateEndpointURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("unsupported scheme '%s'", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

// ListEndpoints returns the registered management APIs, sorted.
func (r *SessionRegistry) ListEndpoints(ctx context.Context) ([]string, error) {
	urls, err := r.store.ListEndpoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("listEndpoints failed to list management APIs, err: %w", err)
	}
	return uniqueSorted(urls), nil
}

// Clear wipes every session and every registered management API. Instances of the wiped sessions are not released.
func (r *SessionRegistry) Clear(ctx context.Context) error {
	if err := r.store.Flush(ctx); err != nil {
		return fmt.Errorf("clear failed to flush store, err: %w", err)
	}
	level.Warn(r.logger).Log("msg", "Store cleared")
	return nil
}

func uniqueSorted(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
