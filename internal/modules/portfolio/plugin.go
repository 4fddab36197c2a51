package portfolio

import (
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/authz"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/modules"
	"github.com/gofiber/fiber/v2"
)

type PortfolioModule struct{}

func New() *PortfolioModule {
	return &PortfolioModule{}
}

func (m *PortfolioModule) ID() string { return "portfolio" }

func (m *PortfolioModule) Models() []interface{} {
	return []interface{}{
		&Project{},
		&ProjectMedia{},
	}
}

func (m *PortfolioModule) RegisterRoutes(router fiber.Router, deps *modules.Deps) {
	projects := NewProjectHandler(NewProjectService(deps.DB))

	router.Get("/projects", projects.ListPublic)
	router.Get("/projects/:slug", projects.GetPublic)
}

func (m *PortfolioModule) RegisterAdminRoutes(router fiber.Router, deps *modules.Deps) {
	projects := NewProjectHandler(NewProjectService(deps.DB))
	media := NewMediaHandler(NewMediaService(deps.DB))

	g := router.Group("/projects", middleware.Authorize(deps.Authz, authz.ResourceProjects))
	g.Get("/", projects.List)
	g.Post("/", projects.Create)
	g.Get("/:id", projects.Get)
	g.Put("/:id", projects.Update)
	g.Delete("/:id", projects.Delete)

	// "order" must be registered before the :mediaId routes.
	g.Get("/:id/media", media.List)
	g.Post("/:id/media", media.Create)
	g.Put("/:id/media/order", media.Reorder)
	g.Put("/:id/media/:mediaId", media.Update)
	g.Delete("/:id/media/:mediaId", media.Delete)
	g.Put("/:id/media/:mediaId/primary", media.SetPrimary)
}
