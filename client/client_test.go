//go:build !integration

package client

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/SergeyParamoshkin/articles/internal/article"
	"github.com/SergeyParamoshkin/articles/internal/config"
	"github.com/SergeyParamoshkin/articles/internal/metrics"
	"github.com/SergeyParamoshkin/articles/internal/model"
	"github.com/SergeyParamoshkin/articles/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	m, err := metrics.New("client-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Shutdown(context.Background()) })

	app := server.New(&config.Config{}, zap.NewNop().Sugar(), article.NewMemoryStore(model.Seed()...), m)
	srv := httptest.NewServer(app.Router())
	t.Cleanup(srv.Close)

	return &Client{Addr: srv.URL}
}

func TestClientRoundTrip(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	pong, err := c.Ping(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pong", pong)

	list, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)

	created, err := c.Create(ctx, Article{Title: "x", FullText: "y"})
	require.NoError(t, err)
	assert.Equal(t, &Article{Title: "x", FullText: "y"}, created)

	got, err := c.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := c.Update(ctx, 5, Article{Title: "z"})
	require.NoError(t, err)
	assert.Equal(t, &Article{Title: "z"}, updated)

	require.NoError(t, c.Delete(ctx, 5))

	_, err = c.Get(ctx, 5)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Article not found", apiErr.Message)
}

func TestClientDeleteMissing(t *testing.T) {
	c := newTestClient(t)

	err := c.Delete(context.Background(), 99)
	assert.True(t, IsNotFound(err))
}
