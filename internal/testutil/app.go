package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/authz"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/config"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/events"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/consulting-cms/internal/modules"
)

// AdminToken is accepted as an admin session by apps built with NewModuleApp.
const AdminToken = "test-admin-token"

// AdminHeaders authenticates a request as the admin role.
var AdminHeaders = map[string]string{"X-Admin-Token": AdminToken}

// Publisher records published events. Set Err to make Publish fail.
type Publisher struct {
	mu     sync.Mutex
	Err    error
	events []events.Event
}

func (p *Publisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.events = append(p.events, e)
	return nil
}

func (p *Publisher) Close() {}

func (p *Publisher) Events() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.Event(nil), p.events...)
}

// NewDeps returns module dependencies backed by db and a recording publisher.
func NewDeps(t *testing.T, db *gorm.DB) (*modules.Deps, *Publisher) {
	t.Helper()
	enforcer, err := authz.NewEnforcer()
	require.NoError(t, err)

	pub := &Publisher{}
	return &modules.Deps{
		DB:      db,
		Config:  &config.Config{JWTSecret: "test-secret", AdminToken: AdminToken},
		Events:  pub,
		Metrics: metrics.New(),
		Authz:   enforcer,
	}, pub
}

// NewModuleApp mounts m the same way the server does: public routes under /api and,
// for admin modules, admin routes under /api/admin behind the session check.
func NewModuleApp(t *testing.T, deps *modules.Deps, m modules.Module) *fiber.App {
	t.Helper()
	app := fiber.New()
	api := app.Group("/api")
	m.RegisterRoutes(api, deps)
	if am, ok := m.(modules.AdminModule); ok {
		am.RegisterAdminRoutes(api.Group("/admin", middleware.AdminSession(deps.Config)), deps)
	}
	return app
}

// Do sends a JSON request (body may be nil) and returns the status and raw body.
func Do(t *testing.T, app *fiber.App, method, path string, body interface{}, headers map[string]string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

// Data decodes the "data" member of a success envelope into out.
func Data(t *testing.T, body []byte, out interface{}) {
	t.Helper()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &env), string(body))
	require.NoError(t, json.Unmarshal(env.Data, out), string(body))
}

// ErrorMessage returns the "error" member of a failure envelope.
func ErrorMessage(t *testing.T, body []byte) string {
	t.Helper()
	var env struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &env), string(body))
	return env.Error
}

// Token signs a short-lived session JWT for role with cfg.JWTSecret.
func Token(t *testing.T, cfg *config.Config, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   uuid.NewString(),
		"email": role + "@example.com",
		"role":  role,
		"exp":   time.Now().Add(time.Minute).Unix(),
	})
	raw, err := token.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	return raw
}
