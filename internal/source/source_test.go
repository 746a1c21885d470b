package source

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/api"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/config"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/errors"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/kv"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/mock"
)

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"mock": ModeMock, "TRUE": ModeMock, " live ": ModeLive, "false": ModeLive} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMode("hybrid")
	assert.Error(t, err)
}

func TestResolveMode(t *testing.T) {
	ctx := context.Background()
	cfg := config.DefaultConfig()
	store := kv.NewMemory()

	mode, err := ResolveMode(ctx, cfg, store)
	require.NoError(t, err)
	assert.Equal(t, ModeMock, mode, "default is mock")

	f := false
	cfg.MockAPI = &f
	mode, _ = ResolveMode(ctx, cfg, store)
	assert.Equal(t, ModeLive, mode, "config applies when nothing is persisted")

	require.NoError(t, store.Set(ctx, kv.KeyMockMode, "true"))
	mode, _ = ResolveMode(ctx, cfg, store)
	assert.Equal(t, ModeMock, mode, "persisted flag wins")

	require.NoError(t, store.Set(ctx, kv.KeyMockMode, "garbage"))
	mode, _ = ResolveMode(ctx, cfg, store)
	assert.Equal(t, ModeLive, mode, "unparseable flag falls back to config")
}

func TestSetMode(t *testing.T) {
	ctx := context.Background()
	cfg := config.DefaultConfig()
	store := kv.NewMemory()

	changed, err := SetMode(ctx, store, cfg, ModeLive)
	require.NoError(t, err)
	assert.True(t, changed)

	raw, ok, _ := store.Get(ctx, kv.KeyMockMode)
	assert.True(t, ok)
	assert.Equal(t, "false", raw)

	changed, err = SetMode(ctx, store, cfg, ModeLive)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestNew_SelectsImplementation(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MockNoDelay = true

	ds, err := New(ModeMock, cfg, Deps{})
	require.NoError(t, err)
	assert.IsType(t, &mock.Mock{}, ds)

	ds, err = New(ModeLive, cfg, Deps{Store: kv.NewMemory()})
	require.NoError(t, err)
	client, ok := ds.(*api.Client)
	require.True(t, ok)
	assert.Equal(t, "http://localhost:8000", client.BaseURL())

	_, err = New("other", cfg, Deps{})
	assert.Error(t, err)
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ds := WithLogging(mock.New(mock.Options{}), logger)
	ctx := context.Background()

	ws, err := ds.ListWorkspaces(ctx)
	require.NoError(t, err)
	assert.Len(t, ws, 3)
	assert.Contains(t, buf.String(), `"op":"list_workspaces"`)

	buf.Reset()
	_, err = ds.GetProject(ctx, "missing-id")
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "Project not found")
}
