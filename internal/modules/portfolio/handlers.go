package portfolio

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/respond"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	service *ProjectService
}

func NewProjectHandler(service *ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) ListPublic(c *fiber.Ctx) error {
	projects, err := h.service.ListPublic()
	if err != nil {
		return respond.StoreError(c, err)
	}
	return respond.Data(c, projects)
}

func (h *ProjectHandler) GetPublic(c *fiber.Ctx) error {
	project, err := h.service.GetPublicBySlug(c.Params("slug"))
	if err != nil {
		return portfolioError(c, err)
	}
	return respond.Data(c, project)
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.service.List(c.Query("status"))
	if err != nil {
		return respond.StoreError(c, err)
	}
	return respond.Data(c, projects)
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "invalid project id")
	}
	project, err := h.service.Get(id)
	if err != nil {
		return portfolioError(c, err)
	}
	return respond.Data(c, project)
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}
	project, err := h.service.Create(req)
	if err != nil {
		return portfolioError(c, err)
	}
	return respond.Data(c, project)
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "invalid project id")
	}
	var req ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}
	project, err := h.service.Update(id, req)
	if err != nil {
		return portfolioError(c, err)
	}
	return respond.Data(c, project)
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "invalid project id")
	}
	if err := h.service.Delete(id); err != nil {
		return portfolioError(c, err)
	}
	return respond.Data(c, fiber.Map{"id": id})
}

type MediaHandler struct {
	service *MediaService
}

func NewMediaHandler(service *MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

func (h *MediaHandler) List(c *fiber.Ctx) error {
	projectID, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "invalid project id")
	}
	media, err := h.service.List(projectID)
	if err != nil {
		return portfolioError(c, err)
	}
	return respond.Data(c, media)
}

func (h *MediaHandler) Create(c *fiber.Ctx) error {
	projectID, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "invalid project id")
	}
	var req MediaRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}
	item, err := h.service.Create(projectID, req)
	if err != nil {
		return portfolioError(c, err)
	}
	return respond.Data(c, item)
}

func (h *MediaHandler) Update(c *fiber.Ctx) error {
	projectID, mediaID, ok := mediaParams(c)
	if !ok {
		return respond.BadRequest(c, "invalid project or media id")
	}
	var req MediaRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}
	item, err := h.service.Update(projectID, mediaID, req)
	if err != nil {
		return portfolioError(c, err)
	}
	return respond.Data(c, item)
}

func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	projectID, mediaID, ok := mediaParams(c)
	if !ok {
		return respond.BadRequest(c, "invalid project or media id")
	}
	if err := h.service.Delete(projectID, mediaID); err != nil {
		return portfolioError(c, err)
	}
	return respond.Data(c, fiber.Map{"id": mediaID})
}

func (h *MediaHandler) SetPrimary(c *fiber.Ctx) error {
	projectID, mediaID, ok := mediaParams(c)
	if !ok {
		return respond.BadRequest(c, "invalid project or media id")
	}
	media, err := h.service.SetPrimary(projectID, mediaID)
	if err != nil {
		return portfolioError(c, err)
	}
	return respond.Data(c, media)
}

func (h *MediaHandler) Reorder(c *fiber.Ctx) error {
	projectID, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "invalid project id")
	}
	var req ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}
	media, err := h.service.Reorder(projectID, req.IDs)
	if err != nil {
		return portfolioError(c, err)
	}
	return respond.Data(c, media)
}

func mediaParams(c *fiber.Ctx) (projectID, mediaID uuid.UUID, ok bool) {
	projectID, ok = respond.ParamID(c, "id")
	if !ok {
		return
	}
	mediaID, ok = respond.ParamID(c, "mediaId")
	return
}

func portfolioError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrMissingProjectFields),
		errors.Is(err, ErrMissingMediaFields),
		errors.Is(err, ErrInvalidMediaType),
		errors.Is(err, ErrEmptyOrder):
		return respond.BadRequest(c, err.Error())
	case errors.Is(err, ErrProjectNotFound), errors.Is(err, ErrMediaNotFound):
		return respond.NotFound(c, err.Error())
	}
	return respond.StoreError(c, err)
}
