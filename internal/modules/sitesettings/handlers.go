package sitesettings

import (
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/respond"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(c *fiber.Ctx) error {
	settings, err := h.service.Get()
	if err != nil {
		return respond.StoreError(c, err)
	}
	return respond.Data(c, settings)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}
	settings, err := h.service.Update(req)
	if err != nil {
		return respond.StoreError(c, err)
	}
	return respond.Data(c, settings)
}
