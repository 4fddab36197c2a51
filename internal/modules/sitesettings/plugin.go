package sitesettings

import (
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/authz"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/modules"
	"github.com/gofiber/fiber/v2"
)

type SettingsModule struct{}

func New() *SettingsModule {
	return &SettingsModule{}
}

func (m *SettingsModule) ID() string { return "sitesettings" }

func (m *SettingsModule) Models() []interface{} {
	return []interface{}{&SiteSettings{}}
}

func (m *SettingsModule) RegisterRoutes(router fiber.Router, deps *modules.Deps) {
	handler := NewHandler(NewService(deps.DB))
	router.Get("/settings", handler.Get)
}

func (m *SettingsModule) RegisterAdminRoutes(router fiber.Router, deps *modules.Deps) {
	handler := NewHandler(NewService(deps.DB))
	guard := middleware.Authorize(deps.Authz, authz.ResourceSettings)

	router.Get("/settings", guard, handler.Get)
	router.Put("/settings", guard, handler.Update)
}
