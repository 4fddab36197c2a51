package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/authz"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/config"
)

func newAdminApp(t *testing.T, cfg *config.Config) *fiber.App {
	t.Helper()
	enforcer, err := authz.NewEnforcer()
	require.NoError(t, err)

	app := fiber.New()
	admin := app.Group("/api/admin", AdminSession(cfg))
	admin.Get("/jobs", Authorize(enforcer, authz.ResourceJobs), func(c *fiber.Ctx) error {
		return c.SendString(CurrentRole(c))
	})
	admin.Post("/jobs", Authorize(enforcer, authz.ResourceJobs), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	admin.Put("/settings", Authorize(enforcer, authz.ResourceSettings), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func sign(t *testing.T, secret, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": role,
		"exp":  time.Now().Add(time.Minute).Unix(),
	})
	raw, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func do(t *testing.T, app *fiber.App, method, path string, headers map[string]string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAdminSession(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s3cret", AdminToken: "ops-token"}
	app := newAdminApp(t, cfg)

	assert.Equal(t, fiber.StatusUnauthorized, do(t, app, "GET", "/api/admin/jobs", nil))
	assert.Equal(t, fiber.StatusUnauthorized, do(t, app, "GET", "/api/admin/jobs", map[string]string{"X-Admin-Token": "wrong"}))
	assert.Equal(t, fiber.StatusOK, do(t, app, "PUT", "/api/admin/settings", map[string]string{"X-Admin-Token": "ops-token"}))
}

func TestAuthorizeByRole(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s3cret"}
	app := newAdminApp(t, cfg)
	bearer := func(role string) map[string]string {
		return map[string]string{"Authorization": "Bearer " + sign(t, cfg.JWTSecret, role)}
	}

	assert.Equal(t, fiber.StatusOK, do(t, app, "GET", "/api/admin/jobs", bearer("viewer")))
	assert.Equal(t, fiber.StatusForbidden, do(t, app, "POST", "/api/admin/jobs", bearer("viewer")))
	assert.Equal(t, fiber.StatusOK, do(t, app, "POST", "/api/admin/jobs", bearer("editor")))
	assert.Equal(t, fiber.StatusForbidden, do(t, app, "PUT", "/api/admin/settings", bearer("editor")))
	assert.Equal(t, fiber.StatusOK, do(t, app, "PUT", "/api/admin/settings", bearer("admin")))
	assert.Equal(t, fiber.StatusUnauthorized, do(t, app, "GET", "/api/admin/jobs", map[string]string{
		"Authorization": "Bearer " + sign(t, "other-secret", "admin"),
	}))
}
