package orgtree

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/orgtree/internal/logging"
	"github.com/aretw0/orgtree/pkg/domain"
	"github.com/aretw0/orgtree/pkg/guard"
	"github.com/aretw0/orgtree/pkg/observability"
	"github.com/aretw0/orgtree/pkg/ports"
	"github.com/aretw0/orgtree/pkg/schema"
)

// ErrRootOwned is returned by New when the proposed root already has a parent.
var ErrRootOwned = errors.New("root is owned by another node")

// Tree is the high-level entry point for the library.
// It owns a root node and routes every access through a guard.Guard, so a Tree can
// be shared freely between goroutines.
type Tree struct {
	root    domain.Node
	guard   *guard.Guard
	metrics *observability.Metrics
	logger  *slog.Logger

	mu     sync.RWMutex
	labels schema.Labels

	guardOpts []guard.Option
	hooks     domain.Hooks
	Name      string
}

// Option defines a functional option for configuring the Tree.
type Option func(*Tree)

// WithLogger sets a custom structured logger for the tree.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) {
		t.logger = logger
	}
}

// WithLocker enables distributed locking through locker (e.g. Redis).
// lockKey names the tree across processes; every process sharing the tree must use
// the same key.
func WithLocker(locker ports.Locker, lockKey string) Option {
	return func(t *Tree) {
		t.guardOpts = append(t.guardOpts,
			guard.WithLocker(locker),
			guard.WithKeyFunc(func(domain.Node) string { return lockKey }),
		)
	}
}

// WithHooks registers observability hooks fired after each mutation.
func WithHooks(hooks domain.Hooks) Option {
	return func(t *Tree) {
		t.hooks = hooks
	}
}

// WithMetrics records mutations and tree shape in m.
func WithMetrics(m *observability.Metrics) Option {
	return func(t *Tree) {
		t.metrics = m
	}
}

// WithLabels attaches presentation labels to nodes of the tree.
func WithLabels(labels schema.Labels) Option {
	return func(t *Tree) {
		for id, label := range labels {
			t.labels[id] = label
		}
	}
}

// WithName sets a descriptive name used in logs.
func WithName(name string) Option {
	return func(t *Tree) {
		t.Name = name
	}
}

// New wraps root in a Tree. The root must not be owned by another node.
func New(root domain.Node, opts ...Option) (*Tree, error) {
	if domain.IsNil(root) {
		return nil, errors.New("root is required")
	}
	if root.Parent() != nil {
		return nil, fmt.Errorf("%w: node %d", ErrRootOwned, root.ID())
	}

	t := &Tree{
		root:   root,
		labels: make(schema.Labels),
	}
	for _, opt := range opts {
		opt(t)
	}

	// Ensure logger is initialized (so we don't pass nil to the guard)
	if t.logger == nil {
		t.logger = logging.NewNop()
	}
	if t.Name != "" {
		t.logger = t.logger.With("tree", t.Name)
	}

	hooks := t.hooks
	if t.metrics != nil {
		hooks = domain.MergeHooks(t.metrics.Hooks(), t.hooks)
	}

	guardOpts := []guard.Option{
		guard.WithLogger(t.logger),
		guard.WithHooks(hooks),
	}
	t.guard = guard.New(append(guardOpts, t.guardOpts...)...)

	t.observe(context.Background())
	return t, nil
}

// Open loads a definition through loader and builds a Tree from it.
// Labels found in the definition are kept for presenters.
func Open(ctx context.Context, loader ports.DefinitionLoader, opts ...Option) (*Tree, error) {
	def, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load definition: %w", err)
	}

	root, labels, err := schema.Build(*def)
	if err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}

	return New(root, append([]Option{WithLabels(labels)}, opts...)...)
}

// Root returns the root node. Mutating it directly bypasses the tree's lock; use
// Attach and Detach instead.
func (t *Tree) Root() domain.Node {
	return t.root
}

// Add attaches child under the root.
func (t *Tree) Add(ctx context.Context, child domain.Node) error {
	return t.Attach(ctx, t.root, child)
}

// Attach adds child to parent.
// Attaching to a Leaf returns an error wrapping domain.ErrUnsupportedOperation.
func (t *Tree) Attach(ctx context.Context, parent, child domain.Node) error {
	if err := t.guard.Attach(ctx, parent, child); err != nil {
		return err
	}
	t.observe(ctx)
	return nil
}

// Detach removes child from parent. Detaching a node parent does not own is a no-op.
func (t *Tree) Detach(ctx context.Context, parent, child domain.Node) error {
	if err := t.guard.Detach(ctx, parent, child); err != nil {
		return err
	}
	t.observe(ctx)
	return nil
}

// AggregateValue returns the aggregate value of the whole tree.
func (t *Tree) AggregateValue(ctx context.Context) (int, error) {
	return t.guard.AggregateValue(ctx, t.root)
}

// DisplayName returns the composed display name of the whole tree.
func (t *Tree) DisplayName(ctx context.Context) (string, error) {
	return t.guard.DisplayName(ctx, t.root)
}

// Label returns the presentation label of n, or an empty string.
func (t *Tree) Label(n domain.Node) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.labels.Of(n)
}

// SetLabel sets the presentation label of n. An empty label removes it.
func (t *Tree) SetLabel(n domain.Node, label string) {
	if domain.IsNil(n) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if label == "" {
		delete(t.labels, n.ID())
		return
	}
	t.labels[n.ID()] = label
}

// Snapshot captures the current tree as a Definition.
func (t *Tree) Snapshot(ctx context.Context) (schema.Definition, error) {
	var def schema.Definition
	err := t.guard.Read(ctx, t.root, func(root domain.Node) error {
		t.mu.RLock()
		defer t.mu.RUnlock()
		def = schema.FromNode(root, t.labels)
		return nil
	})
	return def, err
}

// Inspect returns every node of the tree in pre-order, for visualization or
// introspection tools.
func (t *Tree) Inspect(ctx context.Context) ([]NodeInfo, error) {
	var infos []NodeInfo
	err := t.guard.Read(ctx, t.root, func(root domain.Node) error {
		t.mu.RLock()
		defer t.mu.RUnlock()
		infos = describe(root, t.labels)
		return nil
	})
	return infos, err
}

// observe refreshes the shape gauges, if metrics are enabled.
func (t *Tree) observe(ctx context.Context) {
	if t.metrics == nil {
		return
	}
	err := t.guard.Read(ctx, t.root, func(root domain.Node) error {
		t.metrics.Observe(root)
		return nil
	})
	if err != nil {
		t.logger.Warn("Failed to observe tree metrics", "err", err)
	}
}
