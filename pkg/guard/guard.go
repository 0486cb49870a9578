package guard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/aretw0/orgtree/internal/logging"
	"github.com/aretw0/orgtree/pkg/domain"
	"github.com/aretw0/orgtree/pkg/ports"
)

// DefaultTTL bounds how long a distributed lock outlives a crashed owner.
const DefaultTTL = 30 * time.Second

// KeyFunc maps the root of a tree to the lock key guarding that tree.
type KeyFunc func(root domain.Node) string

// RootKey is the default KeyFunc: "tree:<root id>".
func RootKey(root domain.Node) string {
	return fmt.Sprintf("tree:%d", root.ID())
}

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Guard serializes access to trees, one lock per tree root.
// It uses Reference Counting to garbage collect unused locks.
//
// Every access made through a Guard for a given tree runs under that tree's lock, so
// reads never observe a mutation in flight. When a subtree is attached to another
// tree it starts sharing the new root's lock.
type Guard struct {
	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	// topo protects Parent links while lock keys are resolved.
	topo sync.RWMutex

	locker  ports.Locker // Optional distributed locker
	ttl     time.Duration
	keyFunc KeyFunc
	hooks   domain.Hooks
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures the Guard.
type Option func(*Guard)

// WithLocker enables distributed locking after the local lock is held.
func WithLocker(locker ports.Locker) Option {
	return func(g *Guard) {
		g.locker = locker
	}
}

// WithTTL sets the TTL passed to the distributed locker.
func WithTTL(ttl time.Duration) Option {
	return func(g *Guard) {
		if ttl > 0 {
			g.ttl = ttl
		}
	}
}

// WithKeyFunc overrides how tree roots map to lock keys. Owners sharing a
// distributed locker across processes need keys that are stable across them.
func WithKeyFunc(fn KeyFunc) Option {
	return func(g *Guard) {
		if fn != nil {
			g.keyFunc = fn
		}
	}
}

// WithHooks registers observability hooks fired after each mutation.
func WithHooks(hooks domain.Hooks) Option {
	return func(g *Guard) {
		g.hooks = hooks
	}
}

// WithLogger configures a logger for the Guard.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Guard) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates a Guard.
func New(opts ...Option) *Guard {
	g := &Guard{
		locks:   make(map[string]*lockEntry),
		ttl:     DefaultTTL,
		keyFunc: RootKey,
		logger:  logging.NewNop(), // Default to no-op
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(key) after unlocking.
func (g *Guard) acquire(key string) *lockEntry {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry, exists := g.locks[key]
	if !exists {
		entry = &lockEntry{}
		g.locks[key] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (g *Guard) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry, exists := g.locks[key]
	if !exists {
		return // Should not happen if paired correctly
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(g.locks, key)
	}
}

// WithLock executes a function while holding the lock for key.
func (g *Guard) WithLock(ctx context.Context, key string, fn func(context.Context) error) error {
	entry := g.acquire(key)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		g.release(key)
	}()

	// Distributed Locking
	if g.locker != nil {
		unlock, err := g.locker.Lock(ctx, key, g.ttl)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				g.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"key", key,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}

// withKeys holds every key at once. Keys are taken in sorted order so that two
// callers locking overlapping sets cannot deadlock.
func (g *Guard) withKeys(ctx context.Context, keys []string, fn func(context.Context) error) error {
	if len(keys) == 0 {
		return fn(ctx)
	}
	return g.WithLock(ctx, keys[0], func(ctx context.Context) error {
		return g.withKeys(ctx, keys[1:], fn)
	})
}

// keysOf resolves the sorted, deduplicated lock keys of the trees holding nodes.
func (g *Guard) keysOf(nodes ...domain.Node) []string {
	g.topo.RLock()
	defer g.topo.RUnlock()

	keys := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if root := domain.Root(n); root != nil {
			keys = append(keys, g.keyFunc(root))
		}
	}
	slices.Sort(keys)
	return slices.Compact(keys)
}

// lockTrees runs fn while holding the locks of every tree containing nodes.
// If a tree was attached elsewhere while we waited, the locks are dropped and the
// keys resolved again.
func (g *Guard) lockTrees(ctx context.Context, nodes []domain.Node, fn func(context.Context) error) error {
	for {
		keys := g.keysOf(nodes...)
		moved := false

		err := g.withKeys(ctx, keys, func(ctx context.Context) error {
			if current := g.keysOf(nodes...); !slices.Equal(keys, current) {
				moved = true
				return nil
			}
			return fn(ctx)
		})
		if err != nil || !moved {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		g.logger.Debug("Tree root moved while locking, retrying", "keys", keys)
	}
}

// Attach adds child to parent under the locks of both trees and fires OnAttach,
// or OnReject when the parent refuses the child.
func (g *Guard) Attach(ctx context.Context, parent, child domain.Node) error {
	if domain.IsNil(parent) {
		return fmt.Errorf("attach: %w", errNilNode)
	}

	var opErr error
	err := g.lockTrees(ctx, []domain.Node{parent, child}, func(ctx context.Context) error {
		g.topo.Lock()
		opErr = parent.AddChild(child)
		g.topo.Unlock()
		return nil
	})
	if err != nil {
		return err
	}

	event := g.event(domain.OpAddChild, parent, child)
	if opErr != nil {
		event.Type = domain.EventReject
		event.Err = opErr
		g.logger.Debug("Attach rejected", "parent_id", event.ParentID, "child_id", event.ChildID, "err", opErr)
		g.hooks.Fire(ctx, event)
		return opErr
	}

	event.Type = domain.EventAttach
	g.logger.Debug("Attached", "parent_id", event.ParentID, "child_id", event.ChildID)
	g.hooks.Fire(ctx, event)
	return nil
}

// Detach removes child from parent under the parent tree's lock. OnDetach fires only
// when child was actually owned by parent; removing a stranger is a silent no-op.
func (g *Guard) Detach(ctx context.Context, parent, child domain.Node) error {
	if domain.IsNil(parent) {
		return fmt.Errorf("detach: %w", errNilNode)
	}

	var (
		opErr error
		owned bool
	)
	err := g.lockTrees(ctx, []domain.Node{parent}, func(ctx context.Context) error {
		g.topo.Lock()
		defer g.topo.Unlock()

		owned = !domain.IsNil(child) && child.Parent() == parent
		opErr = parent.RemoveChild(child)
		return nil
	})
	if err != nil {
		return err
	}

	event := g.event(domain.OpRemoveChild, parent, child)
	switch {
	case opErr != nil:
		event.Type = domain.EventReject
		event.Err = opErr
		g.logger.Debug("Detach rejected", "parent_id", event.ParentID, "err", opErr)
		g.hooks.Fire(ctx, event)
		return opErr
	case owned:
		event.Type = domain.EventDetach
		g.logger.Debug("Detached", "parent_id", event.ParentID, "child_id", event.ChildID)
		g.hooks.Fire(ctx, event)
	}
	return nil
}

// Read runs fn under the lock of the tree containing node.
func (g *Guard) Read(ctx context.Context, node domain.Node, fn func(domain.Node) error) error {
	if domain.IsNil(node) {
		return fmt.Errorf("read: %w", errNilNode)
	}
	return g.lockTrees(ctx, []domain.Node{node}, func(context.Context) error {
		return fn(node)
	})
}

// AggregateValue reads node.AggregateValue() under its tree's lock.
func (g *Guard) AggregateValue(ctx context.Context, node domain.Node) (int, error) {
	var total int
	err := g.Read(ctx, node, func(n domain.Node) error {
		total = n.AggregateValue()
		return nil
	})
	return total, err
}

// DisplayName reads node.DisplayName() under its tree's lock.
func (g *Guard) DisplayName(ctx context.Context, node domain.Node) (string, error) {
	var name string
	err := g.Read(ctx, node, func(n domain.Node) error {
		name = n.DisplayName()
		return nil
	})
	return name, err
}

// Active returns the number of lock entries currently held or awaited.
func (g *Guard) Active() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.locks)
}

func (g *Guard) event(op string, parent, child domain.Node) *domain.MutationEvent {
	e := &domain.MutationEvent{
		Timestamp: g.now(),
		Op:        op,
		ParentID:  parent.ID(),
	}
	if !domain.IsNil(child) {
		e.ChildID = child.ID()
	}
	return e
}

var errNilNode = errors.New("node is nil")
