package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/orgtree/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunLockerContract runs a suite of tests to verify that a Locker implementation
// adheres to the defined interface contract.
func RunLockerContract(t *testing.T, locker Locker) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405.000000000")

	t.Run("Lock and Unlock", func(t *testing.T) {
		unlock, err := locker.Lock(ctx, key, 5*time.Second)
		require.NoError(t, err, "Lock should not return error")
		require.NotNil(t, unlock)

		require.NoError(t, unlock(ctx), "Unlock should not return error")
	})

	t.Run("Contention Blocks Until Deadline", func(t *testing.T) {
		unlock, err := locker.Lock(ctx, key, 5*time.Second)
		require.NoError(t, err)
		defer func() { _ = unlock(ctx) }()

		ctxTimeout, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
		defer cancel()

		_, err = locker.Lock(ctxTimeout, key, 5*time.Second)
		assert.ErrorIs(t, err, context.DeadlineExceeded, "second Lock on a held key must wait for the context")
	})

	t.Run("Relock After Unlock", func(t *testing.T) {
		unlock, err := locker.Lock(ctx, key, 5*time.Second)
		require.NoError(t, err)
		require.NoError(t, unlock(ctx))

		ctxTimeout, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		unlock, err = locker.Lock(ctxTimeout, key, 5*time.Second)
		require.NoError(t, err, "a released key must be acquirable again")
		require.NoError(t, unlock(ctx))
	})

	t.Run("Distinct Keys Are Independent", func(t *testing.T) {
		unlockA, err := locker.Lock(ctx, key+"-a", 5*time.Second)
		require.NoError(t, err)
		defer func() { _ = unlockA(ctx) }()

		ctxTimeout, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		unlockB, err := locker.Lock(ctxTimeout, key+"-b", 5*time.Second)
		require.NoError(t, err)
		require.NoError(t, unlockB(ctx))
	})
}

// RunDefinitionLoaderContract verifies that a DefinitionLoader returns a definition
// that builds into a tree with the expected aggregate value.
func RunDefinitionLoaderContract(t *testing.T, loader DefinitionLoader, wantAggregate int) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load", func(t *testing.T) {
		def, err := loader.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, def)

		root, _, err := schema.Build(*def)
		require.NoError(t, err, "loaded definition must build")
		assert.Equal(t, wantAggregate, root.AggregateValue())
	})

	t.Run("Load Is Repeatable", func(t *testing.T) {
		first, err := loader.Load(ctx)
		require.NoError(t, err)
		second, err := loader.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Load Returns Independent Copies", func(t *testing.T) {
		first, err := loader.Load(ctx)
		require.NoError(t, err)
		first.Value += 1000
		first.Children = append(first.Children, schema.Definition{Value: 1})

		second, err := loader.Load(ctx)
		require.NoError(t, err)
		root, _, err := schema.Build(*second)
		require.NoError(t, err)
		assert.Equal(t, wantAggregate, root.AggregateValue(), "callers must not be able to mutate the loader")
	})
}
