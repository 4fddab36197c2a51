package modules

import (
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/authz"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/config"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/events"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Deps is what every content module receives when mounting routes.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Events  events.Publisher
	Metrics *metrics.Metrics
	Authz   *authz.Enforcer

	// VisitorLimiter guards the public form endpoints (contact, job application).
	// Nil means no extra limit beyond the API-wide one.
	VisitorLimiter fiber.Handler
}

// Visitor returns the handlers to mount on a visitor form endpoint.
func (d *Deps) Visitor(h fiber.Handler) []fiber.Handler {
	if d.VisitorLimiter == nil {
		return []fiber.Handler{h}
	}
	return []fiber.Handler{d.VisitorLimiter, h}
}

// Module defines the interface every content area of the site implements.
type Module interface {
	// ID returns a short identifier used in logs.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts public routes on the given group (prefixed with /api, no auth).
	RegisterRoutes(router fiber.Router, deps *Deps)
}

// AdminModule extends Module with admin panel routes.
type AdminModule interface {
	Module

	// RegisterAdminRoutes mounts admin routes on the given group. The group already
	// requires a session; modules add authz.Authorize for their resources.
	RegisterAdminRoutes(router fiber.Router, deps *Deps)
}
