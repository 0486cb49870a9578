package schema

import "github.com/aretw0/orgtree/pkg/domain"

// Definition is the external description of an organization tree, as read from a
// file or assembled by the dsl package.
type Definition struct {
	// Kind is "leaf" or "composite". When empty, a definition with children is a
	// composite and one without is a leaf.
	Kind domain.Kind `json:"kind,omitempty" yaml:"kind,omitempty" mapstructure:"kind"`

	// Value is the node's local value.
	Value int `json:"value" yaml:"value" mapstructure:"value"`

	// Label is an optional human name used by presenters. It does not affect the
	// node's display name.
	Label string `json:"label,omitempty" yaml:"label,omitempty" mapstructure:"label"`

	Children []Definition `json:"children,omitempty" yaml:"children,omitempty" mapstructure:"children"`
}

// ResolvedKind returns Kind, inferring it from the children when unset.
func (d Definition) ResolvedKind() domain.Kind {
	if d.Kind != "" {
		return d.Kind
	}
	if len(d.Children) > 0 {
		return domain.KindComposite
	}
	return domain.KindLeaf
}

// Labels maps node IDs to the labels of the definitions they were built from.
type Labels map[domain.ID]string

// Of returns the label of n, or an empty string.
func (l Labels) Of(n domain.Node) string {
	if l == nil || n == nil {
		return ""
	}
	return l[n.ID()]
}

// Clone returns a deep copy of d.
func (d Definition) Clone() Definition {
	out := d
	if d.Children != nil {
		out.Children = make([]Definition, len(d.Children))
		for i, child := range d.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}
