package ports

import (
	"context"
	"time"
)

// UnlockFunc is a function that releases a lock.
type UnlockFunc func(ctx context.Context) error

// Locker defines the interface for mutual exclusion across owners of a tree.
// It allows the guard to coordinate mutations of the same subtree issued by several
// goroutines or processes (replicas).
type Locker interface {
	// Lock acquires the lock for the given key (e.g. a tree root).
	// It blocks until the lock is acquired or the context is canceled.
	// The ttl bounds how long an abandoned lock survives (implementation specific).
	// Returns an UnlockFunc that MUST be called to release the lock.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
