package schema

import (
	"fmt"

	"github.com/aretw0/orgtree/pkg/domain"
)

// Build validates def and constructs the tree it describes.
// The returned Labels hold the label of every labelled definition, keyed by the ID
// of the node built from it.
func Build(def Definition) (domain.Node, Labels, error) {
	if err := Validate(def); err != nil {
		return nil, nil, err
	}

	labels := make(Labels)
	node, err := build(def, labels)
	if err != nil {
		return nil, nil, err
	}
	return node, labels, nil
}

func build(def Definition, labels Labels) (domain.Node, error) {
	if def.ResolvedKind() == domain.KindLeaf {
		leaf := domain.NewLeaf(def.Value)
		if def.Label != "" {
			labels[leaf.ID()] = def.Label
		}
		return leaf, nil
	}

	c := domain.NewComposite(def.Value)
	if def.Label != "" {
		labels[c.ID()] = def.Label
	}
	for i, childDef := range def.Children {
		child, err := build(childDef, labels)
		if err != nil {
			return nil, err
		}
		if err := c.AddChild(child); err != nil {
			return nil, fmt.Errorf("attach child %d: %w", i, err)
		}
	}
	return c, nil
}

// FromNode captures the current shape of a live tree as a Definition.
// labels may be nil.
func FromNode(n domain.Node, labels Labels) Definition {
	def := Definition{
		Kind:  domain.KindOf(n),
		Value: n.LocalValue(),
		Label: labels.Of(n),
	}
	for _, child := range n.Children() {
		def.Children = append(def.Children, FromNode(child, labels))
	}
	return def
}
