package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledClient(t *testing.T) {
	c, err := NewClient(Config{})
	require.NoError(t, err)
	assert.False(t, c.Enabled())

	err = c.PutObject(context.Background(), "a.png", strings.NewReader("x"), 1, "image/png")
	assert.ErrorIs(t, err, ErrDisabled)
	assert.ErrorIs(t, c.Ping(context.Background()), ErrDisabled)
}

func TestPublicURL(t *testing.T) {
	cfg := Config{Endpoint: "minio:9000", Bucket: "site-media"}
	assert.Equal(t, "http://minio:9000/site-media/projects/a.png", PublicURL(cfg, "projects/a.png"))

	cfg.UseSSL = true
	assert.Equal(t, "https://minio:9000/site-media/a.png", PublicURL(cfg, "/a.png"))

	cfg.PublicURL = "https://cdn.example.com/media/"
	assert.Equal(t, "https://cdn.example.com/media/a.png", PublicURL(cfg, "a.png"))
}

func TestSafeFolder(t *testing.T) {
	folder, ok := SafeFolder("")
	assert.True(t, ok)
	assert.Equal(t, "uploads", folder)

	folder, ok = SafeFolder("/Projects/Covers/")
	assert.True(t, ok)
	assert.Equal(t, "projects/covers", folder)

	_, ok = SafeFolder("../secrets")
	assert.False(t, ok)
}
