package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/domain/entities"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/usecase/interfaces"
)

// Metrics exposes counters for captured leads, saved calculations and HTTP traffic.
// A nil *Metrics is a valid no-op recorder.
type Metrics struct {
	leadsTotal        *prometheus.CounterVec
	calculationsTotal *prometheus.CounterVec
	calculationCost   *prometheus.HistogramVec
	httpRequestsTotal *prometheus.CounterVec
	httpLatency       *prometheus.HistogramVec
}

var _ interfaces.IEventRecorder = (*Metrics)(nil)

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		leadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mspro",
			Subsystem: "leads",
			Name:      "created_total",
			Help:      "Total leads stored",
		}, []string{"service_type", "source"}),
		calculationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mspro",
			Subsystem: "calculations",
			Name:      "created_total",
			Help:      "Total calculations stored",
		}, []string{"service_type"}),
		calculationCost: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mspro",
			Subsystem: "calculations",
			Name:      "total_cost_rub",
			Help:      "Total cost of stored calculations",
			Buckets:   prometheus.ExponentialBuckets(10000, 2.5, 10),
		}, []string{"service_type"}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mspro",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mspro",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.leadsTotal, m.calculationsTotal, m.calculationCost, m.httpRequestsTotal, m.httpLatency)
	return m
}

// serviceLabel folds free-form service types into "other" to bound label cardinality.
func serviceLabel(serviceType string) string {
	if entities.ServiceType(serviceType).IsKnown() {
		return serviceType
	}
	return string(entities.ServiceTypeOther)
}

func (m *Metrics) LeadCreated(serviceType, source string) {
	if m == nil {
		return
	}
	if source != entities.DefaultLeadSource && source != "contact-form" {
		source = "other"
	}
	m.leadsTotal.WithLabelValues(serviceLabel(serviceType), source).Inc()
}

func (m *Metrics) CalculationCreated(serviceType string, totalCost float64) {
	if m == nil {
		return
	}
	label := serviceLabel(serviceType)
	m.calculationsTotal.WithLabelValues(label).Inc()
	m.calculationCost.WithLabelValues(label).Observe(totalCost)
}

func (m *Metrics) ObserveHTTP(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(seconds)
}
