package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/dto"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/respond"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/services"
	"github.com/gofiber/fiber/v2"
)

// UserHandler manages admin panel accounts.
type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.service.List()
	if err != nil {
		return respond.StoreError(c, err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, services.ToUserResponse(&users[i]))
	}
	return respond.Data(c, out)
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}
	user, err := h.service.Create(&req)
	if err != nil {
		return userError(c, err)
	}
	return respond.Data(c, services.ToUserResponse(user))
}

func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "invalid user id")
	}
	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}
	user, err := h.service.UpdateRole(id, req.Role)
	if err != nil {
		return userError(c, err)
	}
	return respond.Data(c, services.ToUserResponse(user))
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "invalid user id")
	}
	if err := h.service.Delete(id); err != nil {
		return userError(c, err)
	}
	return respond.Data(c, fiber.Map{"id": id})
}

func userError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMissingCredentials),
		errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrInvalidRole):
		return respond.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		return respond.Error(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		return respond.NotFound(c, err.Error())
	}
	return respond.StoreError(c, err)
}
