package myredis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mysessions/domain"
	"mysessions/helpers"
	"mysessions/service"

	"github.com/go-redis/redis/v8"
)

// Hash fields of a lease key.
const (
	fieldURL      = "url"
	fieldHostname = "hostname"
	fieldPort     = "port"
	fieldAPI      = "api"
)

type leaseStore struct {
	client       redis.UniversalClient
	prefix       string
	endpointsKey string
}

// NewLeaseStore creates redis implementation of interfaces.LeaseStore.
// Leases are hashes at prefix:{session_id}; the management API pool is a set at endpointsKey.
// The client is borrowed: closing it is up to the caller.
func NewLeaseStore(client redis.UniversalClient, prefix string, endpointsKey string) *leaseStore {
	return &leaseStore{
		client:       helpers.NilPanic(client, "myredis.lease_store.go: redis client is required"),
		prefix:       helpers.StrPanic(prefix, "myredis.lease_store.go: prefix is required"),
		endpointsKey: helpers.StrPanic(endpointsKey, "myredis.lease_store.go: endpoints key is required"),
	}
}

// SaveLease writes the lease fields and the expiry in a single MULTI/EXEC.
func (s *leaseStore) SaveLease(ctx context.Context, lease domain.Lease, ttl time.Duration) error {
	key := s.generateKey(lease.SessionID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, fieldURL, lease.ManagementURL)
		pipe.HSet(ctx, key, fieldHostname, lease.Hostname)
		pipe.HSet(ctx, key, fieldPort, strconv.Itoa(lease.Port))
		if lease.EndpointURL != "" {
			pipe.HSet(ctx, key, fieldAPI, lease.EndpointURL)
		}
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return service.NewInternalServerError("Redis write lease error", fmt.Errorf("can't write lease to redis (key='%s'), err: %w", key, err))
	}

	return nil
}

func (s *leaseStore) GetLease(ctx context.Context, sessionID string) (domain.Lease, bool, error) {
	return s.getLeaseByKey(ctx, s.generateKey(sessionID))
}

func (s *leaseStore) getLeaseByKey(ctx context.Context, key string) (domain.Lease, bool, error) {
	details, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return domain.Lease{}, false, service.NewInternalServerError("Redis read lease error", fmt.Errorf("can't read lease from redis (key='%s'), err: %w", key, err))
	}

	url, okURL := details[fieldURL]
	hostname, okHostname := details[fieldHostname]
	portStr, okPort := details[fieldPort]
	if !okURL || !okHostname || !okPort {
		return domain.Lease{}, false, nil
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return domain.Lease{}, false, service.NewInternalServerError("Redis lease port error", fmt.Errorf("lease port is not a number (key='%s', port='%s'), err: %w", key, portStr, err))
	}

	return domain.Lease{
		SessionID:     s.sessionIDFromKey(key),
		ManagementURL: url,
		Hostname:      hostname,
		Port:          port,
		EndpointURL:   details[fieldAPI],
	}, true, nil
}

func (s *leaseStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.generateKey(sessionID)).Result()
	if err != nil {
		return false, service.NewInternalServerError("Redis exists error", fmt.Errorf("can't check lease existence (session_id='%s'), err: %w", sessionID, err))
	}
	return n > 0, nil
}

// ListSessionIDs lists all keys under the lease prefix.
func (s *leaseStore) ListSessionIDs(ctx context.Context) ([]string, error) {
	fullKeys, err := s.client.Keys(ctx, s.prefix+":*").Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis get keys error", fmt.Errorf("redis get keys error, err: %w", err))
	}

	prefixWithColon := s.prefix + ":"
	ids := make([]string, 0, len(fullKeys))
	for _, k := range fullKeys {
		if strings.HasPrefix(k, prefixWithColon) {
			ids = append(ids, strings.TrimPrefix(k, prefixWithColon))
		}
	}

	return ids, nil
}

func (s *leaseStore) DeleteLease(ctx context.Context, sessionID string) error {
	err := s.client.Del(ctx, s.generateKey(sessionID)).Err()
	if err != nil {
		return service.NewInternalServerError("Redis delete key error", fmt.Errorf("can't delete lease from redis (session_id='%s'), err: %w", sessionID, err))
	}
	return nil
}

func (s *leaseStore) RefreshLease(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	ok, err := s.client.Expire(ctx, s.generateKey(sessionID), ttl).Result()
	if err != nil {
		return false, service.NewInternalServerError("Redis expire error", fmt.Errorf("can't refresh lease (session_id='%s'), err: %w", sessionID, err))
	}
	return ok, nil
}

func (s *leaseStore) AddEndpoints(ctx context.Context, urls ...string) error {
	if len(urls) == 0 {
		return nil
	}

	members := make([]interface{}, 0, len(urls))
	for _, u := range urls {
		members = append(members, u)
	}
	if err := s.client.SAdd(ctx, s.endpointsKey, members...).Err(); err != nil {
		return service.NewInternalServerError("Redis add endpoints error", fmt.Errorf("can't add endpoints to '%s', err: %w", s.endpointsKey, err))
	}
	return nil
}

func (s *leaseStore) ListEndpoints(ctx context.Context) ([]string, error) {
	urls, err := s.client.SMembers(ctx, s.endpointsKey).Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis list endpoints error", fmt.Errorf("can't read members of '%s', err: %w", s.endpointsKey, err))
	}
	return urls, nil
}

// Flush wipes the whole database the client is bound to.
func (s *leaseStore) Flush(ctx context.Context) error {
	if err := s.client.FlushDB(ctx).Err(); err != nil {
		return service.NewInternalServerError("Redis flush error", fmt.Errorf("redis flushdb error, err: %w", err))
	}
	return nil
}

func (s *leaseStore) generateKey(sessionID string) string {
	return s.prefix + ":" + sessionID
}

func (s *leaseStore) sessionIDFromKey(key string) string {
	return strings.TrimPrefix(key, s.prefix+":")
}
