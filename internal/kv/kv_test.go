package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedis(client, "")
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func backends(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := OpenSQLite(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	rds, _ := setupTestRedis(t)

	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": sqlite,
		"redis":  rds,
	}
}

func TestStore_Contract(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Get(ctx, KeyToken)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set(ctx, KeyToken, "mock_jwt_token_1"))
			v, ok, err := s.Get(ctx, KeyToken)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "mock_jwt_token_1", v)

			require.NoError(t, s.Set(ctx, KeyToken, "second"))
			v, _, _ = s.Get(ctx, KeyToken)
			assert.Equal(t, "second", v, "last writer wins")

			require.NoError(t, s.Delete(ctx, KeyToken))
			_, ok, err = s.Get(ctx, KeyToken)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Delete(ctx, "never-set"))
		})
	}
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	type blob struct {
		Token string `json:"token"`
		OK    bool   `json:"ok"`
	}

	var out blob
	found, err := GetJSON(ctx, s, KeyAuth, &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, s, KeyAuth, blob{Token: "t", OK: true}))
	found, err = GetJSON(ctx, s, KeyAuth, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, blob{Token: "t", OK: true}, out)

	require.NoError(t, s.Set(ctx, KeyWorkspace, "{not json"))
	_, err = GetJSON(ctx, s, KeyWorkspace, &out)
	assert.Error(t, err)
}

func TestRedis_UsesPrefix(t *testing.T) {
	ctx := context.Background()
	s, mr := setupTestRedis(t)

	require.NoError(t, s.Set(ctx, KeyMockMode, "false"))

	got, err := mr.Get("arkode:MOCK_API")
	require.NoError(t, err)
	assert.Equal(t, "false", got)
}

func TestDialRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	s, err := DialRedis(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(context.Background(), "k", "v"))
	assert.True(t, mr.Exists("arkode:k"))
}
