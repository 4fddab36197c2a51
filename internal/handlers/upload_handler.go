package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/dto"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/respond"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ObjectStore is the part of the storage client uploads need.
type ObjectStore interface {
	Enabled() bool
	PutObject(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	PublicURL(key string) string
}

type UploadHandler struct {
	store    ObjectStore
	maxBytes int64
	metrics  *metrics.Metrics
}

func NewUploadHandler(store ObjectStore, maxBytes int64, m *metrics.Metrics) *UploadHandler {
	return &UploadHandler{store: store, maxBytes: maxBytes, metrics: m}
}

// Upload stores the multipart "file" field under <folder>/<uuid><ext> and returns its public URL.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	if h.store == nil || !h.store.Enabled() {
		return respond.Error(c, fiber.StatusServiceUnavailable, storage.ErrDisabled.Error())
	}

	file, err := c.FormFile("file")
	if err != nil {
		return respond.BadRequest(c, "file is required")
	}
	if file.Size == 0 {
		return respond.BadRequest(c, "file is empty")
	}
	if h.maxBytes > 0 && file.Size > h.maxBytes {
		return respond.BadRequest(c, "file exceeds the upload size limit")
	}

	folder, ok := storage.SafeFolder(c.FormValue("folder"))
	if !ok {
		return respond.BadRequest(c, "invalid folder")
	}

	contentType := file.Header.Get(fiber.HeaderContentType)
	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}
	key := folder + "/" + uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return respond.BadRequest(c, "could not read file")
	}
	defer src.Close()

	if err := h.store.PutObject(c.UserContext(), key, src, file.Size, contentType); err != nil {
		if errors.Is(err, storage.ErrDisabled) {
			return respond.Error(c, fiber.StatusServiceUnavailable, err.Error())
		}
		slog.Error("upload failed", "key", key, "error", err)
		return respond.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	h.metrics.AddUploadedBytes(file.Size)

	return respond.Data(c, dto.UploadResponse{
		URL:         h.store.PublicURL(key),
		Key:         key,
		Size:        file.Size,
		ContentType: contentType,
	})
}
