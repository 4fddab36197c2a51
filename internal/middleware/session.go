package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func claims(c *fiber.Ctx) (jwt.MapClaims, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, false
	}
	mc, ok := token.Claims.(jwt.MapClaims)
	return mc, ok
}

// CurrentRole returns the admin-panel role of the request, or "" when unauthenticated.
func CurrentRole(c *fiber.Ctx) string {
	if role, ok := c.Locals(localRole).(string); ok {
		return role
	}
	if mc, ok := claims(c); ok {
		role, _ := mc["role"].(string)
		return role
	}
	return ""
}

// CurrentUserID extracts the user UUID from the session JWT.
func CurrentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	mc, ok := claims(c)
	if !ok {
		return uuid.Nil, errors.New("invalid token in context")
	}
	sub, ok := mc["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}
	return uuid.Parse(sub)
}
