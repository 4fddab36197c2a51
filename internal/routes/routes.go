package routes

import (
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/authz"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/dto"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/modules"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/ratelimit"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Auth   *handlers.AuthHandler
	Health *handlers.HealthHandler
	Users  *handlers.UserHandler
	Upload *handlers.UploadHandler
}

// Setup mounts every route. limiterStorage may be nil, in which case limiter
// counters live in process memory.
func Setup(app *fiber.App, deps *modules.Deps, h Handlers, mods []modules.Module, limiterStorage fiber.Storage) {
	cfg := deps.Config

	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	api := app.Group("/api")

	// General API rate limiter per IP
	api.Use(ratelimit.New("api", cfg.RateLimitPerMinute, time.Minute, limiterStorage))

	// Visitor forms (contact, job application) get a stricter limit on top.
	deps.VisitorLimiter = ratelimit.New("visitor", cfg.ContactRateLimitPerMin, time.Minute, limiterStorage)

	api.Get("/health", h.Health.Check)

	// Auth: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(ratelimit.New("auth", 10, time.Minute, limiterStorage))
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)
	auth.Post("/logout", h.Auth.Logout)
	auth.Get("/me", middleware.JWTProtected(cfg), h.Auth.Me)

	// Admin panel: session (JWT or X-Admin-Token) first, then per-resource role checks.
	admin := api.Group("/admin", middleware.AdminSession(cfg))

	users := admin.Group("/users", middleware.Authorize(deps.Authz, authz.ResourceUsers))
	users.Get("/", h.Users.List)
	users.Post("/", h.Users.Create)
	users.Patch("/:id/role", h.Users.UpdateRole)
	users.Delete("/:id", h.Users.Delete)

	admin.Post("/upload", middleware.Authorize(deps.Authz, authz.ResourceUpload), h.Upload.Upload)

	for _, m := range mods {
		m.RegisterRoutes(api, deps)
		if am, ok := m.(modules.AdminModule); ok {
			am.RegisterAdminRoutes(admin, deps)
		}
	}
}

// ErrorHandler renders errors no handler answered itself (unknown routes, panics
// caught by recover) with the same {"error": ...} envelope as everything else.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{Error: message})
}
