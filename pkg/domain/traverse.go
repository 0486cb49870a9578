package domain

import "errors"

// SkipChildren is returned by a WalkFunc to skip the descendants of the visited node.
// It is never returned by Walk itself.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every node visited by Walk. depth is 0 for the root.
type WalkFunc func(n Node, depth int) error

// Walk visits root and its descendants depth-first, parents before children and
// siblings in insertion order. It stops at the first error returned by fn.
func Walk(root Node, fn WalkFunc) error {
	if IsNil(root) {
		return nil
	}
	return walk(root, 0, fn)
}

func walk(n Node, depth int, fn WalkFunc) error {
	if err := fn(n, depth); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	for _, child := range n.Children() {
		if err := walk(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// SumLocal returns the sum of LocalValue over every node of the tree.
// For any tree it equals root.AggregateValue().
func SumLocal(root Node) int {
	sum := 0
	_ = Walk(root, func(n Node, _ int) error {
		sum += n.LocalValue()
		return nil
	})
	return sum
}

// Count returns the number of nodes in the tree rooted at root.
func Count(root Node) int {
	count := 0
	_ = Walk(root, func(Node, int) error {
		count++
		return nil
	})
	return count
}

// Depth returns the number of levels in the tree. A lone node has depth 1.
func Depth(root Node) int {
	deepest := 0
	_ = Walk(root, func(_ Node, depth int) error {
		if depth+1 > deepest {
			deepest = depth + 1
		}
		return nil
	})
	return deepest
}

// Root follows Parent links up to the node that has no owner.
func Root(n Node) Node {
	if IsNil(n) {
		return nil
	}
	for n.Parent() != nil {
		n = n.Parent()
	}
	return n
}

// IsAncestor reports whether a is a strict ancestor of b.
func IsAncestor(a, b Node) bool {
	if IsNil(a) || IsNil(b) {
		return false
	}
	for p := b.Parent(); p != nil; p = p.Parent() {
		if p == a {
			return true
		}
	}
	return false
}

// Equal reports whether a and b have the same shape: the same variant and local
// value at every position, with children compared in order. Identity is ignored.
func Equal(a, b Node) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	if KindOf(a) != KindOf(b) || a.LocalValue() != b.LocalValue() {
		return false
	}
	ac, bc := a.Children(), b.Children()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !Equal(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

// Attach adds child to parent only when parent can own children, so callers can
// manage a tree without inspecting concrete types. It reports whether child was
// attached.
func Attach(parent, child Node) (bool, error) {
	if IsNil(parent) || !parent.CanOwnChildren() {
		return false, nil
	}
	if err := parent.AddChild(child); err != nil {
		return false, err
	}
	return true, nil
}
