/*
Package guard serializes access to organization trees.

The domain package provides no locking: a tree is not designed for concurrent
mutation, and reads are only consistent while no mutation is in flight on the same
tree. A Guard establishes that mutual exclusion for owners that share trees across
goroutines, and optionally across processes through a ports.Locker such as the
Redis adapter.

Locks are keyed by tree root. Attaching a subtree holds the locks of both trees; once
attached, the subtree is guarded by its new root's lock.
*/
package guard
