package handlers

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/database"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/dto"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Pinger is anything health can probe (the object store).
type Pinger interface {
	Enabled() bool
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db      *gorm.DB
	storage Pinger
}

func NewHealthHandler(db *gorm.DB, storage Pinger) *HealthHandler {
	return &HealthHandler{db: db, storage: storage}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(h.db); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	storageStatus := "disabled"
	if h.storage != nil && h.storage.Enabled() {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		storageStatus = "ok"
		if err := h.storage.Ping(ctx); err != nil {
			storageStatus = "unhealthy: " + err.Error()
		}
	}

	return c.JSON(dto.DataResponse{Data: dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		Storage:   storageStatus,
	}})
}
