// Package storage puts uploaded site media into an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrDisabled is returned when storage is not configured.
var ErrDisabled = errors.New("storage service not configured")

// Config holds object storage connection settings.
type Config struct {
	Endpoint        string // e.g. "minio:9000" or "s3.amazonaws.com"
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UseSSL          bool
	// PublicURL, when set, is the base that public object URLs are built from
	// (a CDN or a reverse proxy in front of the bucket).
	PublicURL string
}

// Client wraps MinIO for a single public bucket.
type Client struct {
	mc      *minio.Client
	cfg     Config
	enabled bool
}

// NewClient creates a storage client. An empty Endpoint yields a disabled client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return &Client{cfg: cfg}, nil
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	return &Client{mc: mc, cfg: cfg, enabled: true}, nil
}

// Enabled reports whether the storage client is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.enabled
}

// EnsureBucket creates the bucket if it does not exist (idempotent).
func (c *Client) EnsureBucket(ctx context.Context) error {
	if !c.Enabled() {
		return ErrDisabled
	}
	exists, err := c.mc.BucketExists(ctx, c.cfg.Bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return c.mc.MakeBucket(ctx, c.cfg.Bucket, minio.MakeBucketOptions{})
}

// PutObject uploads an object under key.
func (c *Client) PutObject(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	if !c.Enabled() {
		return ErrDisabled
	}
	if err := c.EnsureBucket(ctx); err != nil {
		return err
	}
	_, err := c.mc.PutObject(ctx, c.cfg.Bucket, key, reader, size, minio.PutObjectOptions{ContentType: contentType})
	return err
}

// DeleteObject removes an object from the bucket.
func (c *Client) DeleteObject(ctx context.Context, key string) error {
	if !c.Enabled() {
		return ErrDisabled
	}
	return c.mc.RemoveObject(ctx, c.cfg.Bucket, key, minio.RemoveObjectOptions{})
}

// Ping checks the bucket is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return ErrDisabled
	}
	_, err := c.mc.BucketExists(ctx, c.cfg.Bucket)
	return err
}

// PublicURL returns the URL a browser can fetch key from.
func (c *Client) PublicURL(key string) string {
	return PublicURL(c.cfg, key)
}

func PublicURL(cfg Config, key string) string {
	key = strings.TrimPrefix(key, "/")
	if cfg.PublicURL != "" {
		return strings.TrimRight(cfg.PublicURL, "/") + "/" + key
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + cfg.Endpoint + "/" + cfg.Bucket + "/" + key
}

// SafeFolder normalizes a caller-supplied folder name into a key prefix.
// It returns false when the folder tries to escape the bucket root.
func SafeFolder(folder string) (string, bool) {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		return "uploads", true
	}
	if strings.Contains(folder, "..") || strings.Contains(folder, "\\") {
		return "", false
	}
	return strings.ToLower(folder), true
}
