package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aretw0/orgtree"
	"github.com/aretw0/orgtree/internal/logging"
	"github.com/aretw0/orgtree/pkg/adapters/file"
	"github.com/aretw0/orgtree/pkg/adapters/redis"
	"github.com/aretw0/orgtree/pkg/domain"
	"github.com/aretw0/orgtree/pkg/observability"
	"github.com/aretw0/orgtree/pkg/schema"
)

// ErrNoFile is returned by commands that need a definition when --file is missing.
var ErrNoFile = errors.New("no definition file given (use --file)")

// Options carries the persistent flags shared by every command.
type Options struct {
	File       string // Definition path (.yaml, .yml or .json)
	LogLevel   string // off, debug, info, warn, error
	RedisURL   string // Enables the Redis locker when set
	LockPrefix string // Redis key prefix
	LockKey    string // Lock name shared by processes; defaults to the file name
}

// createLogger configures the application logger.
// It writes to Stderr (to separate from Stdout tree output).
func createLogger(level string) (*slog.Logger, error) {
	lvl, ok, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if !ok {
		return logging.NewNop(), nil
	}
	return logging.New(lvl), nil
}

// createDebugHooks logs every mutation at debug level.
func createDebugHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnAttach: func(ctx context.Context, e *domain.MutationEvent) {
			logger.Debug("Attach", "parent_id", e.ParentID, "child_id", e.ChildID)
		},
		OnDetach: func(ctx context.Context, e *domain.MutationEvent) {
			logger.Debug("Detach", "parent_id", e.ParentID, "child_id", e.ChildID)
		},
		OnReject: func(ctx context.Context, e *domain.MutationEvent) {
			logger.Debug("Reject", "op", e.Op, "parent_id", e.ParentID, "err", e.Err)
		},
	}
}

func (o Options) lockKey() string {
	if o.LockKey != "" {
		return o.LockKey
	}
	return strings.TrimSuffix(filepath.Base(o.File), filepath.Ext(o.File))
}

// loadDefinition reads the definition named by --file without building it.
func (o Options) loadDefinition(ctx context.Context) (*schema.Definition, error) {
	if o.File == "" {
		return nil, ErrNoFile
	}
	return file.NewLoader(o.File).Load(ctx)
}

// session bundles an open tree with the resources that must be released with it.
type session struct {
	tree   *orgtree.Tree
	logger *slog.Logger
	close  func() error
}

// openTree loads --file and wraps it in a Tree, wiring the Redis locker when
// --redis-url is set. metrics may be nil.
func openTree(ctx context.Context, o Options, metrics *observability.Metrics) (*session, error) {
	if o.File == "" {
		return nil, ErrNoFile
	}

	logger, err := createLogger(o.LogLevel)
	if err != nil {
		return nil, err
	}

	s := &session{logger: logger, close: func() error { return nil }}
	treeOpts := []orgtree.Option{
		orgtree.WithLogger(logger),
		orgtree.WithName(o.lockKey()),
		orgtree.WithHooks(createDebugHooks(logger)),
	}
	if metrics != nil {
		treeOpts = append(treeOpts, orgtree.WithMetrics(metrics))
	}

	if o.RedisURL != "" {
		var lockOpts []redis.Option
		if o.LockPrefix != "" {
			lockOpts = append(lockOpts, redis.WithPrefix(o.LockPrefix))
		}
		locker, err := redis.NewLockerFromURL(o.RedisURL, lockOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		logger.Info("Distributed locking enabled", "key", locker.Key(o.lockKey()))
		treeOpts = append(treeOpts, orgtree.WithLocker(locker, o.lockKey()))
		s.close = locker.Close
	}

	tree, err := orgtree.Open(ctx, file.NewLoader(o.File), treeOpts...)
	if err != nil {
		_ = s.close()
		return nil, err
	}
	s.tree = tree
	return s, nil
}
