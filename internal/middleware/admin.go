package middleware

import (
	"crypto/subtle"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/authz"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/config"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/dto"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/models"
	"github.com/gofiber/fiber/v2"
)

const localRole = "role"

// AdminSession accepts either the static X-Admin-Token (ops scripts, acts as admin)
// or a session JWT issued by /api/auth/login.
func AdminSession(cfg *config.Config) fiber.Handler {
	jwtHandler := JWTProtected(cfg)
	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" {
			if subtle.ConstantTimeCompare([]byte(c.Get("X-Admin-Token")), []byte(cfg.AdminToken)) == 1 {
				c.Locals(localRole, models.RoleAdmin)
				return c.Next()
			}
		}
		return jwtHandler(c)
	}
}

// Authorize checks the session role against the casbin policy for resource.
// GET and HEAD are reads; every other method is a write.
func Authorize(enforcer *authz.Enforcer, resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		action := authz.ActionWrite
		if c.Method() == fiber.MethodGet || c.Method() == fiber.MethodHead {
			action = authz.ActionRead
		}

		role := CurrentRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
		}
		if !enforcer.Allowed(role, resource, action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: "Your role (" + role + ") cannot " + action + " " + resource,
			})
		}
		return c.Next()
	}
}
