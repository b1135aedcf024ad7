package sqlite

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/msomdec/enterprise/internal/domain"
)

// Metrics counts store operations by name and outcome kind.
type Metrics struct {
	ops *prometheus.CounterVec
}

// NewMetrics creates the store counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "enterprise",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Store operations by operation and result kind.",
		}, []string{"op", "result"}),
	}
	reg.MustRegister(m.ops)
	return m
}

// Operations exposes the underlying counter, mainly for tests.
func (m *Metrics) Operations() *prometheus.CounterVec {
	return m.ops
}

func (m *Metrics) observe(op string, err error) {
	if m == nil {
		return
	}
	m.ops.WithLabelValues(op, domain.ErrorKind(err)).Inc()
}
