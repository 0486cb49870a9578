package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/orgtree/pkg/ports"
)

// slot is a one-token semaphore shared by every waiter on a key.
type slot struct {
	token chan struct{}
	refs  int
}

// Locker implements ports.Locker within a single process.
// Unlike a plain mutex it honors context cancellation while waiting.
// Safe for concurrent use.
type Locker struct {
	mu    sync.Mutex
	slots map[string]*slot
}

// NewLocker creates a new in-memory locker.
func NewLocker() *Locker {
	return &Locker{
		slots: make(map[string]*slot),
	}
}

func (l *Locker) acquire(key string) *slot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.slots[key]
	if !ok {
		s = &slot{token: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.refs++
	return s
}

func (l *Locker) release(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.slots[key]
	if !ok {
		return
	}
	s.refs--
	if s.refs <= 0 {
		delete(l.slots, key)
	}
}

// Lock blocks until key is free or ctx is done.
// A positive ttl releases the lock automatically if it is never unlocked.
func (l *Locker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	s := l.acquire(key)

	select {
	case s.token <- struct{}{}:
	case <-ctx.Done():
		l.release(key)
		return nil, ctx.Err()
	}

	var once sync.Once
	free := func() {
		once.Do(func() {
			<-s.token
			l.release(key)
		})
	}

	var timer *time.Timer
	if ttl > 0 {
		timer = time.AfterFunc(ttl, free)
	}

	return func(context.Context) error {
		if timer != nil {
			timer.Stop()
		}
		free()
		return nil
	}, nil
}

// Held returns the number of keys currently locked or waited on.
func (l *Locker) Held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}
