package domain

import "sync/atomic"

// ID identifies a node for the lifetime of the process.
// IDs are never reused, so they are safe to use as lock keys and render anchors.
type ID uint64

var lastID atomic.Uint64

func nextID() ID {
	return ID(lastID.Add(1))
}

// Node is the capability shared by every element of an organization tree.
//
// Callers never need to know whether they hold a Leaf or a Composite: the
// child-management methods are available on both, and a Leaf rejects them with
// ErrUnsupportedOperation. Use CanOwnChildren to ask before mutating.
//
// A typed-nil *Leaf or *Composite returns ErrInvalidOperation from AddChild and
// RemoveChild. Every other method panics on it; check with IsNil first.
type Node interface {
	// ID returns the unique identifier assigned at construction.
	ID() ID

	// LocalValue returns the node's own contribution, excluding descendants.
	LocalValue() int

	// AggregateValue returns the local value plus the aggregate of every child.
	// It is recomputed on every call.
	AggregateValue() int

	// DisplayName returns the recursively composed label of the node.
	DisplayName() string

	// CanOwnChildren reports whether AddChild and RemoveChild are supported.
	CanOwnChildren() bool

	// AddChild appends child and takes ownership of it.
	AddChild(child Node) error

	// RemoveChild releases the first child identical to child.
	// Removing a node that is not a child is a no-op.
	RemoveChild(child Node) error

	// Children returns a copy of the owned children in insertion order.
	Children() []Node

	// Parent returns the composite that currently owns the node, or nil.
	Parent() Node

	setParent(parent Node)
}

// ownership holds the bookkeeping every variant needs to take part in a tree.
// It deliberately carries none of the capability methods.
type ownership struct {
	id     ID
	parent Node
}

func newOwnership() ownership {
	return ownership{id: nextID()}
}

func (o *ownership) ID() ID { return o.id }

func (o *ownership) Parent() Node { return o.parent }

func (o *ownership) setParent(parent Node) { o.parent = parent }
