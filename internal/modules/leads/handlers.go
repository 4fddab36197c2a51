package leads

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/respond"
	"github.com/gofiber/fiber/v2"
)

type LeadHandler struct {
	service *LeadService
}

func NewLeadHandler(service *LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

func (h *LeadHandler) Submit(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}

	lead, err := h.service.Submit(c.UserContext(), req)
	if err != nil {
		return leadError(c, err)
	}

	return respond.Data(c, ContactResponse{
		ID:      lead.ID,
		Message: "Message received",
	})
}

func (h *LeadHandler) List(c *fiber.Ctx) error {
	leads, err := h.service.List(c.Query("status"))
	if err != nil {
		return respond.StoreError(c, err)
	}
	return respond.Data(c, leads)
}

func (h *LeadHandler) Board(c *fiber.Ctx) error {
	board, err := h.service.Board()
	if err != nil {
		return respond.StoreError(c, err)
	}
	return respond.Data(c, board)
}

func (h *LeadHandler) Get(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "invalid contact id")
	}
	lead, err := h.service.Get(id)
	if err != nil {
		return leadError(c, err)
	}
	return respond.Data(c, lead)
}

func (h *LeadHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "invalid contact id")
	}
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}
	lead, err := h.service.UpdateStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return leadError(c, err)
	}
	return respond.Data(c, lead)
}

func (h *LeadHandler) Move(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "invalid contact id")
	}
	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}
	lead, err := h.service.MoveToBucket(c.UserContext(), id, req.Bucket)
	if err != nil {
		return leadError(c, err)
	}
	return respond.Data(c, lead)
}

func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "invalid contact id")
	}
	if err := h.service.Delete(id); err != nil {
		return leadError(c, err)
	}
	return respond.Data(c, fiber.Map{"id": id})
}

func leadError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrMissingContactFields),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrMissingStatus),
		errors.Is(err, ErrUnknownBucket):
		return respond.BadRequest(c, err.Error())
	case errors.Is(err, ErrLeadNotFound):
		return respond.NotFound(c, err.Error())
	}
	return respond.StoreError(c, err)
}
