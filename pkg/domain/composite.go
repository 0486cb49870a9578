package domain

import (
	"fmt"
	"strings"
)

// Composite is a node that owns an ordered sequence of children and derives its
// aggregate value and display name from them.
//
// A Composite is not safe for concurrent mutation. Serialize AddChild and
// RemoveChild per tree (see package guard) when sharing a tree across goroutines.
type Composite struct {
	ownership
	value    int
	children []Node
}

// NewComposite creates a composite contributing value on its own, with no children.
func NewComposite(value int) *Composite {
	return &Composite{
		ownership: newOwnership(),
		value:     value,
	}
}

func (c *Composite) LocalValue() int { return c.value }

// AggregateValue returns the local value plus the aggregate value of every child.
func (c *Composite) AggregateValue() int {
	total := c.value
	for _, child := range c.children {
		total += child.AggregateValue()
	}
	return total
}

// DisplayName returns "Composite(" followed by the children's names joined with
// NameSeparator, in insertion order, and a closing parenthesis.
func (c *Composite) DisplayName() string {
	var sb strings.Builder
	sb.WriteString(CompositeLabel)
	sb.WriteByte('(')
	for i, child := range c.children {
		if i > 0 {
			sb.WriteString(NameSeparator)
		}
		sb.WriteString(child.DisplayName())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (c *Composite) CanOwnChildren() bool { return true }

// AddChild appends child and takes ownership of it.
//
// It returns ErrInvalidOperation, leaving the tree unchanged, when child is nil,
// already owned by a composite (this one included), the composite itself, or one
// of its ancestors.
func (c *Composite) AddChild(child Node) error {
	if c == nil {
		return invalid(OpAddChild, 0, "node is nil")
	}
	if IsNil(child) {
		return invalid(OpAddChild, c.id, "child is nil")
	}
	if owner := child.Parent(); owner != nil {
		return invalid(OpAddChild, c.id, fmt.Sprintf("child is already owned by node %d", owner.ID()))
	}
	if child == Node(c) {
		return invalid(OpAddChild, c.id, "node cannot own itself")
	}
	if IsAncestor(child, c) {
		return invalid(OpAddChild, c.id, "child is an ancestor of this node")
	}

	c.children = append(c.children, child)
	child.setParent(c)
	return nil
}

// RemoveChild releases the first child identical to child.
// A node that is not a child of c is ignored.
func (c *Composite) RemoveChild(child Node) error {
	if c == nil {
		return invalid(OpRemoveChild, 0, "node is nil")
	}
	if IsNil(child) {
		return nil
	}
	for i, existing := range c.children {
		if existing != child {
			continue
		}
		copy(c.children[i:], c.children[i+1:])
		c.children[len(c.children)-1] = nil
		c.children = c.children[:len(c.children)-1]
		child.setParent(nil)
		return nil
	}
	return nil
}

// Children returns a copy of the owned children in insertion order.
func (c *Composite) Children() []Node {
	if len(c.children) == 0 {
		return nil
	}
	out := make([]Node, len(c.children))
	copy(out, c.children)
	return out
}

// Len returns the number of direct children.
func (c *Composite) Len() int { return len(c.children) }

// IsNil reports whether n is a nil interface or a typed nil pointer wrapped in one.
func IsNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Leaf:
		return v == nil
	case *Composite:
		return v == nil
	default:
		return false
	}
}
