package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRoute(t *testing.T) {
	m := New()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/api/jobs/:slug", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })
	app.Get("/metrics", m.Handler())

	for _, slug := range []string{"a", "b"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/jobs/"+slug, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/jobs/:slug", "404")))

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "site_http_requests_total")
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncLeadsCreated()
		m.IncLeadStatus("cerrado")
		m.IncApplications()
		m.AddUploadedBytes(10)
	})
}

func TestCounters(t *testing.T) {
	m := New()
	m.IncLeadsCreated()
	m.IncLeadStatus("calificado")
	m.AddUploadedBytes(512)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.LeadsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LeadStatusChanges.WithLabelValues("calificado")))
	assert.Equal(t, 512.0, testutil.ToFloat64(m.UploadedBytes))
}
