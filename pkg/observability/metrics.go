package observability

import (
	"errors"
	"net/http"
	"time"

	"github.com/aretw0/stategate/pkg/domain"
	"github.com/aretw0/stategate/pkg/engine"
	"github.com/aretw0/stategate/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stategate"

// Authorization results used as the "result" label.
const (
	ResultAllowed = "allowed"
	ResultForced  = "forced"
	ResultDenied  = "denied"
	ResultInvalid = "invalid"
)

// Metrics records gate activity.
type Metrics struct {
	reg            *prometheus.Registry
	authorizations *prometheus.CounterVec
	latency        *prometheus.HistogramVec
	gatesDefined   prometheus.Gauge
}

// New creates a Metrics value backed by a fresh registry that also carries
// the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		reg: reg,
		authorizations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "authorizations_total",
				Help:      "Total number of transition authorizations by result",
			},
			[]string{"entity", "attribute", "result"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "authorization_duration_seconds",
				Help:      "Duration of transition authorizations",
				Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 8),
			},
			[]string{"entity", "attribute"},
		),
		gatesDefined: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "gates_defined",
			Help:      "Number of gates defined in the registry",
		}),
	}
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// GateDefined implements registry.Observer.
func (m *Metrics) GateDefined(_ registry.Key, _ *engine.Graph) {
	m.gatesDefined.Inc()
}

// Authorize runs g.AssertValidTransition and records its outcome.
func (m *Metrics) Authorize(g *engine.Graph, from, to string) error {
	start := time.Now()
	err := g.AssertValidTransition(from, to)
	m.latency.WithLabelValues(g.Entity(), g.Attribute()).Observe(time.Since(start).Seconds())
	m.authorizations.WithLabelValues(g.Entity(), g.Attribute(), Result(to, err)).Inc()
	return err
}

// Result classifies an authorization outcome into a label value.
func Result(to string, err error) string {
	switch {
	case err == nil && domain.IsForced(to):
		return ResultForced
	case err == nil:
		return ResultAllowed
	case errors.Is(err, domain.ErrInvalidTransition):
		return ResultDenied
	}
	return ResultInvalid
}
