package dsl

import (
	"github.com/aretw0/orgtree/pkg/domain"
	"github.com/aretw0/orgtree/pkg/schema"
)

// NodeBuilder provides a fluent API for describing one node and its subtree.
type NodeBuilder struct {
	def      schema.Definition
	children []*NodeBuilder
}

// Leaf starts the description of a leaf with the given value.
func Leaf(value int) *NodeBuilder {
	return &NodeBuilder{def: schema.Definition{Kind: domain.KindLeaf, Value: value}}
}

// Composite starts the description of a composite with the given local value.
func Composite(value int) *NodeBuilder {
	return &NodeBuilder{def: schema.Definition{Kind: domain.KindComposite, Value: value}}
}

// Label sets the presenter label of the node.
func (n *NodeBuilder) Label(label string) *NodeBuilder {
	n.def.Label = label
	return n
}

// Leaf appends a leaf child with the given value.
func (n *NodeBuilder) Leaf(value int) *NodeBuilder {
	n.children = append(n.children, Leaf(value))
	return n
}

// Leaves appends one leaf child per value, in order.
func (n *NodeBuilder) Leaves(values ...int) *NodeBuilder {
	for _, v := range values {
		n.Leaf(v)
	}
	return n
}

// Sub appends already described subtrees as children, in order.
func (n *NodeBuilder) Sub(children ...*NodeBuilder) *NodeBuilder {
	n.children = append(n.children, children...)
	return n
}

// Definition returns the schema.Definition described so far.
// Children added to a leaf are kept so that validation can report them.
func (n *NodeBuilder) Definition() schema.Definition {
	def := n.def
	def.Children = nil
	for _, child := range n.children {
		def.Children = append(def.Children, child.Definition())
	}
	return def
}
