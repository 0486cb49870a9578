package domain

// Leaf is an elementary node. It holds a fixed value and never owns children.
type Leaf struct {
	ownership
	value int
}

// NewLeaf creates a leaf reporting value. The value cannot change afterwards.
func NewLeaf(value int) *Leaf {
	return &Leaf{
		ownership: newOwnership(),
		value:     value,
	}
}

func (l *Leaf) LocalValue() int { return l.value }

func (l *Leaf) AggregateValue() int { return l.value }

func (l *Leaf) DisplayName() string { return LeafLabel }

func (l *Leaf) CanOwnChildren() bool { return false }

// AddChild always fails with ErrUnsupportedOperation, or ErrInvalidOperation on a nil receiver.
func (l *Leaf) AddChild(Node) error {
	if l == nil {
		return invalid(OpAddChild, 0, "node is nil")
	}
	return unsupported(OpAddChild, l.id)
}

// RemoveChild always fails with ErrUnsupportedOperation, or ErrInvalidOperation on a nil receiver.
func (l *Leaf) RemoveChild(Node) error {
	if l == nil {
		return invalid(OpRemoveChild, 0, "node is nil")
	}
	return unsupported(OpRemoveChild, l.id)
}

func (l *Leaf) Children() []Node { return nil }
