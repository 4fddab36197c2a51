package leads

import (
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/authz"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/modules"
	"github.com/gofiber/fiber/v2"
)

type LeadsModule struct{}

func New() *LeadsModule {
	return &LeadsModule{}
}

func (m *LeadsModule) ID() string { return "leads" }

func (m *LeadsModule) Models() []interface{} {
	return []interface{}{&ContactSubmission{}}
}

func (m *LeadsModule) RegisterRoutes(router fiber.Router, deps *modules.Deps) {
	handler := NewLeadHandler(NewLeadService(deps.DB, deps.Events, deps.Metrics))

	router.Post("/contact", deps.Visitor(handler.Submit)...)
}

func (m *LeadsModule) RegisterAdminRoutes(router fiber.Router, deps *modules.Deps) {
	handler := NewLeadHandler(NewLeadService(deps.DB, deps.Events, deps.Metrics))

	g := router.Group("/contacts", middleware.Authorize(deps.Authz, authz.ResourceContacts))
	g.Get("/", handler.List)
	g.Get("/board", handler.Board)
	g.Get("/:id", handler.Get)
	g.Patch("/:id/status", handler.UpdateStatus)
	g.Patch("/:id/bucket", handler.Move)
	g.Delete("/:id", handler.Delete)
}
