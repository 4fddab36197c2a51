//go:build integration

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestRedisStorageRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	s, err := NewRedisStorage(url, "rl:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Set("1.2.3.4", []byte("3"), time.Minute))
	val, err := s.Get("1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), val)

	missing, err := s.Get("unknown")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, s.Reset())
	val, err = s.Get("1.2.3.4")
	require.NoError(t, err)
	assert.Nil(t, val)
}
