package provider_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/backend/gqltasks"
	"todo/internal/config"
	"todo/internal/gqlclient"
	"todo/internal/provider"
	"todo/internal/testutil"
)

func TestNew_PlaceholderDoesNotFail(t *testing.T) {
	cfg := config.New(t.TempDir())
	require.True(t, cfg.IsPlaceholder())

	p := provider.New(cfg, gqlclient.NewInMemoryCache())

	require.NotNil(t, p)
	assert.Equal(t, config.PlaceholderEndpoint, p.Client().Endpoint())
}

func TestPlaceholder_FirstQueryFailsAtNetworkLayer(t *testing.T) {
	p := provider.New(config.New(t.TempDir()), nil)

	_, err := p.Mount().List.Tasks(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, gqlclient.ErrNetwork)
}

func TestMount_EveryViewSeesTheSameClient(t *testing.T) {
	p := provider.New(config.New(t.TempDir()), nil)

	app := p.Mount()

	for _, svc := range []any{app.Service(), app.Input.Service(), app.List.Service()} {
		backend, ok := svc.(*gqltasks.Client)
		require.True(t, ok)
		assert.Same(t, p.Client(), backend.GraphQL())
	}
	assert.Same(t, p.Service(), app.Service())
}

func TestReinitialize_IndependentCache(t *testing.T) {
	srv := testutil.NewGraphQLServer(t)
	srv.AddTask("Buy milk", false)
	ctx := context.Background()

	cfg := config.New(t.TempDir())
	first := provider.New(cfg, gqlclient.NewInMemoryCache())

	cfg.Endpoint = srv.URL
	second := provider.New(cfg, gqlclient.NewInMemoryCache())

	_, err := second.Service().ListTasks(ctx)
	require.NoError(t, err)

	assert.NotSame(t, first.Client(), second.Client())
	assert.NotEqual(t, first.Client().ID(), second.Client().ID())
	assert.Equal(t, 0, first.Client().Cache().Len())
	assert.Equal(t, 1, second.Client().Cache().Len())
}

func TestEndToEnd_ValidEndpoint(t *testing.T) {
	srv := testutil.NewGraphQLServer(t)
	ctx := context.Background()

	cfg := config.New(t.TempDir())
	cfg.Endpoint = srv.URL
	cache := gqlclient.NewInMemoryCache()
	require.Equal(t, 0, cache.Len())

	p := provider.New(cfg, cache)
	app := p.Mount()

	_, err := app.Input.Submit(ctx, "Buy milk")
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := app.Render(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "------------\nToDo App\n------------\n   1  Buy milk\n", buf.String())

	// The list was fetched once and is now served from the shared cache.
	_, err = app.List.Tasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, srv.Requests())
	assert.Same(t, cache, p.Client().Cache())
}
