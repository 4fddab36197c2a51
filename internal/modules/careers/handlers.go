package careers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/respond"
	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	service *JobService
}

func NewJobHandler(service *JobService) *JobHandler {
	return &JobHandler{service: service}
}

func (h *JobHandler) ListPublished(c *fiber.Ctx) error {
	jobs, err := h.service.ListPublished()
	if err != nil {
		return respond.StoreError(c, err)
	}
	return respond.Data(c, jobs)
}

func (h *JobHandler) GetPublished(c *fiber.Ctx) error {
	job, err := h.service.GetPublishedBySlug(c.Params("slug"))
	if err != nil {
		return h.jobError(c, err)
	}
	return respond.Data(c, job)
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	jobs, err := h.service.List(c.Query("status"))
	if err != nil {
		return respond.StoreError(c, err)
	}
	return respond.Data(c, jobs)
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "invalid job id")
	}
	job, err := h.service.Get(id)
	if err != nil {
		return h.jobError(c, err)
	}
	return respond.Data(c, job)
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req JobRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}
	job, err := h.service.Create(req)
	if err != nil {
		return h.jobError(c, err)
	}
	return respond.Data(c, job)
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "invalid job id")
	}
	var req JobRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}
	job, err := h.service.Update(id, req)
	if err != nil {
		return h.jobError(c, err)
	}
	return respond.Data(c, job)
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "invalid job id")
	}
	if err := h.service.Delete(id); err != nil {
		return h.jobError(c, err)
	}
	return respond.Data(c, fiber.Map{"id": id})
}

func (h *JobHandler) jobError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrMissingJobFields):
		return respond.BadRequest(c, err.Error())
	case errors.Is(err, ErrJobNotFound):
		return respond.NotFound(c, err.Error())
	}
	return respond.StoreError(c, err)
}

type ApplicationHandler struct {
	service *ApplicationService
}

func NewApplicationHandler(service *ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	var req ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}

	app, err := h.service.Submit(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, ErrMissingApplicant) || errors.Is(err, ErrInvalidEmail) {
			return respond.BadRequest(c, err.Error())
		}
		return respond.StoreError(c, err)
	}

	return respond.Data(c, ApplyResponse{
		ID:      app.ID,
		Message: "Application received",
	})
}

func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	apps, err := h.service.List(c.Query("job_slug"))
	if err != nil {
		return respond.StoreError(c, err)
	}
	return respond.Data(c, apps)
}

func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "invalid application id")
	}
	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrApplicationMissing) {
			return respond.NotFound(c, err.Error())
		}
		return respond.StoreError(c, err)
	}
	return respond.Data(c, fiber.Map{"id": id})
}
