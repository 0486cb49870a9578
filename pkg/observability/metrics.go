package observability

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/orgtree/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values of orgtree_mutations_total.
const (
	OutcomeApplied     = "applied"
	OutcomeUnsupported = "unsupported"
	OutcomeInvalid     = "invalid"
	OutcomeError       = "error"
)

// Metrics exposes Prometheus collectors for tree mutations and shape.
type Metrics struct {
	mutations *prometheus.CounterVec
	nodes     prometheus.Gauge
	aggregate prometheus.Gauge
	depth     prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// Pass prometheus.NewRegistry() in tests to avoid global state.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orgtree_mutations_total",
				Help: "Child-management requests by operation and outcome",
			},
			[]string{"op", "outcome"},
		),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orgtree_tree_nodes",
			Help: "Number of nodes in the observed tree",
		}),
		aggregate: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orgtree_tree_aggregate_value",
			Help: "Aggregate value of the observed tree root",
		}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orgtree_tree_depth",
			Help: "Number of levels in the observed tree",
		}),
	}

	for _, c := range []prometheus.Collector{m.mutations, m.nodes, m.aggregate, m.depth} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that count every mutation.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnAttach: func(ctx context.Context, e *domain.MutationEvent) {
			m.mutations.WithLabelValues(e.Op, OutcomeApplied).Inc()
		},
		OnDetach: func(ctx context.Context, e *domain.MutationEvent) {
			m.mutations.WithLabelValues(e.Op, OutcomeApplied).Inc()
		},
		OnReject: func(ctx context.Context, e *domain.MutationEvent) {
			m.mutations.WithLabelValues(e.Op, outcomeOf(e.Err)).Inc()
		},
	}
}

// Observe records the current shape of the tree rooted at root.
// The caller is responsible for holding the tree's lock.
func (m *Metrics) Observe(root domain.Node) {
	m.nodes.Set(float64(domain.Count(root)))
	m.depth.Set(float64(domain.Depth(root)))
	if domain.IsNil(root) {
		m.aggregate.Set(0)
		return
	}
	m.aggregate.Set(float64(root.AggregateValue()))
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnsupportedOperation):
		return OutcomeUnsupported
	case errors.Is(err, domain.ErrInvalidOperation):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
