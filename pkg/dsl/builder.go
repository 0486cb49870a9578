package dsl

import (
	"fmt"

	"github.com/aretw0/orgtree/pkg/adapters/memory"
	"github.com/aretw0/orgtree/pkg/domain"
	"github.com/aretw0/orgtree/pkg/schema"
)

// Build validates the description and constructs the tree.
func (n *NodeBuilder) Build() (domain.Node, schema.Labels, error) {
	root, labels, err := schema.Build(n.Definition())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build tree: %w", err)
	}
	return root, labels, nil
}

// MustBuild is like Build but panics on an invalid description.
// Intended for tests and static fixtures.
func (n *NodeBuilder) MustBuild() domain.Node {
	root, _, err := n.Build()
	if err != nil {
		panic(err)
	}
	return root
}

// Loader compiles the description into a memory.Loader, so it can be served
// wherever a ports.DefinitionLoader is expected.
func (n *NodeBuilder) Loader() (*memory.Loader, error) {
	def := n.Definition()
	if err := schema.Validate(def); err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}
	return memory.NewLoader(def), nil
}
