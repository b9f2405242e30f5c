package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"mysessions/adapters/myredis"
	"mysessions/adapters/prom"
	"mysessions/adapters/ptmanagement"
	"mysessions/domain"
	"mysessions/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeManagementAPI hands out up to capacity instances and forgets them on DELETE.
type fakeManagementAPI struct {
	mu       sync.Mutex
	capacity int
	nextID   int
	live     map[int]struct{}
	// address overrides the packetTracer address of created instances
	address  string
	srv      *httptest.Server
}

func newFakeManagementAPI(t *testing.T, capacity int) *fakeManagementAPI {
	f := &fakeManagementAPI{capacity: capacity, live: map[int]struct{}{}}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/instances", f.create)
	mux.HandleFunc("DELETE /api/instances/{id}", f.delete)
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeManagementAPI) endpoint() string {
	return f.srv.URL + "/api"
}

func (f *fakeManagementAPI) liveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.live)
}

func (f *fakeManagementAPI) create(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.live) >= f.capacity {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	f.nextID++
	f.live[f.nextID] = struct{}{}
	address := fmt.Sprintf("10.1.0.%d:39000", f.nextID)
	if f.address != "" {
		address = f.address
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":           f.nextID,
		"url":          fmt.Sprintf("%s/api/instances/%d", f.srv.URL, f.nextID),
		"packetTracer": address,
	})
}

func (f *fakeManagementAPI) delete(w http.ResponseWriter, r *http.Request) {
	var id int
	if _, err := fmt.Sscan(r.PathValue("id"), &id); err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.live[id]; !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	delete(f.live, id)
	w.WriteHeader(http.StatusNoContent)
}

func setupRegistry(t *testing.T) (*service.SessionRegistry, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client, err := myredis.NewRedisUniversalClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	registry := service.NewSessionRegistry(
		myredis.NewLeaseStore(client, domain.SessionKeyPrefix, domain.EndpointsKey),
		ptmanagement.ManagementHTTP(&http.Client{Timeout: 5 * time.Second}),
		prom.NewMetrics(prometheus.NewRegistry()),
		domain.DefaultReservationTime,
		log.NewNopLogger(),
	)
	return registry, mr
}

func TestSessionRegistry_Lifecycle(t *testing.T) {
	ctx := context.Background()
	registry, _ := setupRegistry(t)
	api1 := newFakeManagementAPI(t, 1)
	api2 := newFakeManagementAPI(t, 1)
	require.NoError(t, registry.RegisterEndpoints(ctx, api1.endpoint(), api2.endpoint()))

	first, err := registry.CreateSession(ctx)
	require.NoError(t, err)
	second, err := registry.CreateSession(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, 1, api1.liveCount())
	assert.Equal(t, 1, api2.liveCount())

	_, err = registry.CreateSession(ctx)
	require.Error(t, err)
	assert.True(t, service.IsNoCapacityError(err))

	lease, ok, err := registry.GetInstance(ctx, first)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first, lease.SessionID)
	assert.Equal(t, 39000, lease.Port)

	ids, err := registry.ListSessions(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first, second}, ids)

	instances, err := registry.ListInstances(ctx)
	require.NoError(t, err)
	assert.Len(t, instances, 2)

	require.NoError(t, registry.DeleteSession(ctx, first))
	exists, err := registry.DoesExist(ctx, first)
	require.NoError(t, err)
	assert.False(t, exists)
	require.NoError(t, registry.DeleteSession(ctx, first))

	// the released instance is available again
	third, err := registry.CreateSession(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestSessionRegistry_ExistenceMatchesGetInstance(t *testing.T) {
	ctx := context.Background()
	registry, mr := setupRegistry(t)
	api := newFakeManagementAPI(t, 3)
	require.NoError(t, registry.RegisterEndpoints(ctx, api.endpoint()))

	id, err := registry.CreateSession(ctx)
	require.NoError(t, err)

	for _, sessionID := range []string{id, "unknown"} {
		exists, err := registry.DoesExist(ctx, sessionID)
		require.NoError(t, err)
		_, ok, err := registry.GetInstance(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, exists, ok, sessionID)
	}

	mr.FastForward(domain.DefaultReservationTime + time.Second)

	exists, err := registry.DoesExist(ctx, id)
	require.NoError(t, err)
	assert.False(t, exists)
	_, ok, err := registry.GetInstance(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)

	ids, err := registry.ListSessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	// expiry does not release the instance
	assert.Equal(t, 1, api.liveCount())
}

func TestSessionRegistry_DeleteKeepsLeaseWhenInstanceVanished(t *testing.T) {
	ctx := context.Background()
	registry, _ := setupRegistry(t)
	api := newFakeManagementAPI(t, 1)
	require.NoError(t, registry.RegisterEndpoints(ctx, api.endpoint()))

	id, err := registry.CreateSession(ctx)
	require.NoError(t, err)

	api.mu.Lock()
	api.live = map[int]struct{}{}
	api.mu.Unlock()

	err = registry.DeleteSession(ctx, id)
	require.Error(t, err)
	assert.True(t, service.IsInstanceNotFoundError(err))

	exists, err := registry.DoesExist(ctx, id)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSessionRegistry_CreateReleasesUnusableInstance(t *testing.T) {
	ctx := context.Background()
	registry, _ := setupRegistry(t)
	api := newFakeManagementAPI(t, 1)
	api.address = "badaddr"
	require.NoError(t, registry.RegisterEndpoints(ctx, api.endpoint()))

	_, err := registry.CreateSession(ctx)
	require.Error(t, err)
	assert.True(t, service.IsTransportError(err))
	assert.Equal(t, 1, api.nextID)
	assert.Zero(t, api.liveCount())

	ids, err := registry.ListSessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
