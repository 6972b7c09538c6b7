package storage

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisBackend_RoundTrip(t *testing.T) {
	mr, client := newTestRedis(t)
	backend := NewRedisBackend(client, "")
	ctx := context.Background()

	got, err := backend.Load(ctx)
	require.NoError(t, err, "missing key is not an error")
	assert.Nil(t, got)

	state := reachableState()
	require.NoError(t, backend.Save(ctx, state))

	assert.True(t, mr.Exists(DefaultRedisKey))
	assert.Equal(t, int64(0), int64(mr.TTL(DefaultRedisKey)), "document must not expire")

	got, err = backend.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, state, *got)
}

func TestRedisBackend_CustomKey(t *testing.T) {
	mr, client := newTestRedis(t)
	backend := NewRedisBackend(client, "team:boards")

	require.NoError(t, backend.Save(context.Background(), reachableState()))

	assert.True(t, mr.Exists("team:boards"))
	assert.False(t, mr.Exists(DefaultRedisKey))
}

func TestRedisBackend_Malformed(t *testing.T) {
	mr, client := newTestRedis(t)
	require.NoError(t, mr.Set(DefaultRedisKey, `{"boards":`))
	backend := NewRedisBackend(client, "")

	_, err := backend.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrMalformed)

	adapter := NewAdapter(backend, nil)
	assert.Nil(t, adapter.Load(context.Background()))
}

func TestRedisBackend_ServerDown(t *testing.T) {
	mr, client := newTestRedis(t)
	backend := NewRedisBackend(client, "")
	mr.Close()

	err := backend.Save(context.Background(), reachableState())

	var storageErr *domain.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "redis", storageErr.Backend)

	_, err = backend.Load(context.Background())
	assert.Error(t, err)
}
