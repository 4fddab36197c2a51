// Package respond writes the {data} / {error} envelopes used by every endpoint.
package respond

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Data(c *fiber.Ctx, data interface{}) error {
	return c.JSON(dto.DataResponse{Data: data})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: message})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// StoreError relays a data-store failure to the caller. Constraint violations are
// the caller's fault (400); everything else is a 500 carrying the store's message.
func StoreError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return BadRequest(c, "a record with the same unique value already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return BadRequest(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(c, "record not found")
	}
	slog.Error("store operation failed",
		"method", c.Method(),
		"path", c.Path(),
		"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
		"error", err.Error(),
	)
	return Error(c, fiber.StatusInternalServerError, err.Error())
}

// ParamID parses the named route param as a UUID.
func ParamID(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	return id, err == nil
}
