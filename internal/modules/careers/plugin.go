package careers

import (
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/authz"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/modules"
	"github.com/gofiber/fiber/v2"
)

type CareersModule struct{}

func New() *CareersModule {
	return &CareersModule{}
}

func (m *CareersModule) ID() string { return "careers" }

func (m *CareersModule) Models() []interface{} {
	return []interface{}{
		&JobPosting{},
		&JobApplication{},
	}
}

func (m *CareersModule) RegisterRoutes(router fiber.Router, deps *modules.Deps) {
	jobs := NewJobHandler(NewJobService(deps.DB))
	apps := NewApplicationHandler(NewApplicationService(deps.DB, deps.Events, deps.Metrics))

	router.Get("/jobs", jobs.ListPublished)
	router.Get("/jobs/:slug", jobs.GetPublished)
	router.Post("/careers/apply", deps.Visitor(apps.Apply)...)
}

func (m *CareersModule) RegisterAdminRoutes(router fiber.Router, deps *modules.Deps) {
	jobs := NewJobHandler(NewJobService(deps.DB))
	apps := NewApplicationHandler(NewApplicationService(deps.DB, deps.Events, deps.Metrics))

	jobGroup := router.Group("/jobs", middleware.Authorize(deps.Authz, authz.ResourceJobs))
	jobGroup.Get("/", jobs.List)
	jobGroup.Post("/", jobs.Create)
	jobGroup.Get("/:id", jobs.Get)
	jobGroup.Put("/:id", jobs.Update)
	jobGroup.Delete("/:id", jobs.Delete)

	appGroup := router.Group("/applications", middleware.Authorize(deps.Authz, authz.ResourceApplications))
	appGroup.Get("/", apps.List)
	appGroup.Delete("/:id", apps.Delete)
}
