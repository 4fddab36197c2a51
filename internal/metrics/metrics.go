package metrics

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the site API on its own registry.
type Metrics struct {
	registry             *prometheus.Registry
	HTTPRequests         *prometheus.CounterVec
	LeadsCreated         prometheus.Counter
	LeadStatusChanges    *prometheus.CounterVec
	ApplicationsReceived prometheus.Counter
	UploadedBytes        prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "site_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		LeadsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "site_leads_created_total",
			Help: "Contact form submissions stored as leads",
		}),
		LeadStatusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "site_lead_status_changes_total",
			Help: "Lead status updates by new status",
		}, []string{"status"}),
		ApplicationsReceived: factory.NewCounter(prometheus.CounterOpts{
			Name: "site_job_applications_total",
			Help: "Job applications received from the careers page",
		}),
		UploadedBytes: factory.NewCounter(prometheus.CounterOpts{
			Name: "site_uploaded_bytes_total",
			Help: "Bytes written to object storage by admin uploads",
		}),
	}
}

// Middleware counts every request once the handler chain has finished.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}
		route := c.Path()
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		m.HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		return err
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// IncLeadStatus records a status change; a nil receiver is a no-op so modules can run without metrics.
func (m *Metrics) IncLeadStatus(status string) {
	if m == nil {
		return
	}
	m.LeadStatusChanges.WithLabelValues(status).Inc()
}

func (m *Metrics) IncLeadsCreated() {
	if m == nil {
		return
	}
	m.LeadsCreated.Inc()
}

func (m *Metrics) IncApplications() {
	if m == nil {
		return
	}
	m.ApplicationsReceived.Inc()
}

func (m *Metrics) AddUploadedBytes(n int64) {
	if m == nil {
		return
	}
	m.UploadedBytes.Add(float64(n))
}
