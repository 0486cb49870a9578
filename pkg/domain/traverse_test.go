package domain_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/aretw0/orgtree/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree(t *testing.T) (root, depA, depB *domain.Composite) {
	t.Helper()
	depA = department(t, 2, domain.NewLeaf(4), domain.NewLeaf(5))
	depB = department(t, 2, domain.NewLeaf(6))
	root = department(t, 1, depA, depB)
	return root, depA, depB
}

func TestWalk_PreOrder(t *testing.T) {
	root, _, _ := sampleTree(t)

	var values, depths []int
	err := domain.Walk(root, func(n domain.Node, depth int) error {
		values = append(values, n.LocalValue())
		depths = append(depths, depth)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 5, 2, 6}, values)
	assert.Equal(t, []int{0, 1, 2, 2, 1, 2}, depths)
}

func TestWalk_SkipChildren(t *testing.T) {
	root, depA, _ := sampleTree(t)

	visited := 0
	err := domain.Walk(root, func(n domain.Node, _ int) error {
		visited++
		if n == domain.Node(depA) {
			return domain.SkipChildren
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 4, visited)
}

func TestWalk_StopsOnError(t *testing.T) {
	root, _, _ := sampleTree(t)
	boom := errors.New("boom")

	visited := 0
	err := domain.Walk(root, func(domain.Node, int) error {
		visited++
		if visited == 3 {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, visited)
}

func TestWalk_Nil(t *testing.T) {
	called := false
	err := domain.Walk(nil, func(domain.Node, int) error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.False(t, called)
}

func TestTreeMetrics(t *testing.T) {
	root, depA, _ := sampleTree(t)

	assert.Equal(t, 20, domain.SumLocal(root))
	assert.Equal(t, 6, domain.Count(root))
	assert.Equal(t, 3, domain.Depth(root))
	assert.Equal(t, 1, domain.Depth(domain.NewLeaf(1)))
	assert.Equal(t, 0, domain.Count(nil))

	leaf := depA.Children()[0]
	assert.Same(t, root, domain.Root(leaf))
	assert.True(t, domain.IsAncestor(root, leaf))
	assert.True(t, domain.IsAncestor(depA, leaf))
	assert.False(t, domain.IsAncestor(leaf, root))
	assert.False(t, domain.IsAncestor(root, root))
}

func TestEqual(t *testing.T) {
	a, _, _ := sampleTree(t)
	b, _, _ := sampleTree(t)

	assert.True(t, domain.Equal(a, b))
	assert.True(t, domain.Equal(nil, nil))
	assert.False(t, domain.Equal(a, nil))
	assert.False(t, domain.Equal(domain.NewLeaf(1), domain.NewComposite(1)), "variant matters")
	assert.False(t, domain.Equal(domain.NewLeaf(1), domain.NewLeaf(2)))

	require.NoError(t, b.AddChild(domain.NewLeaf(0)))
	assert.False(t, domain.Equal(a, b), "an extra child changes the shape even when totals match")
	assert.Equal(t, a.AggregateValue(), b.AggregateValue())
}

func TestAttach(t *testing.T) {
	root, _, _ := sampleTree(t)
	leaf := domain.NewLeaf(4)

	attached, err := domain.Attach(root, leaf)
	require.NoError(t, err)
	assert.True(t, attached)
	assert.Equal(t, 24, root.AggregateValue())

	attached, err = domain.Attach(leaf, domain.NewLeaf(3))
	require.NoError(t, err, "a leaf parent is skipped, not an error")
	assert.False(t, attached)

	attached, err = domain.Attach(root, leaf)
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
	assert.False(t, attached)
}

// randomTree builds a tree of up to size nodes and returns it with the sum of
// every local value used.
func randomTree(r *rand.Rand, size int) (domain.Node, int) {
	root := domain.NewComposite(r.IntN(21) - 10)
	sum := root.LocalValue()
	composites := []*domain.Composite{root}

	for i := 1; i < size; i++ {
		parent := composites[r.IntN(len(composites))]
		value := r.IntN(21) - 10
		sum += value

		if r.IntN(3) == 0 {
			c := domain.NewComposite(value)
			_ = parent.AddChild(c)
			composites = append(composites, c)
			continue
		}
		_ = parent.AddChild(domain.NewLeaf(value))
	}
	return root, sum
}

func TestAggregateValue_EqualsSumOfLocalValues(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))

	for i := 0; i < 200; i++ {
		root, want := randomTree(r, 1+r.IntN(60))

		assert.Equal(t, want, root.AggregateValue())
		assert.Equal(t, want, domain.SumLocal(root))
	}
}

func TestAddRemove_RoundTripRestoresTree(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 11))

	for i := 0; i < 100; i++ {
		root, _ := randomTree(r, 1+r.IntN(30))
		extra, _ := randomTree(r, 1+r.IntN(10))

		var composites []*domain.Composite
		_ = domain.Walk(root, func(n domain.Node, _ int) error {
			if c, ok := n.(*domain.Composite); ok {
				composites = append(composites, c)
			}
			return nil
		})
		require.NotEmpty(t, composites)
		target := composites[r.IntN(len(composites))]

		value, name := root.AggregateValue(), root.DisplayName()

		require.NoError(t, target.AddChild(extra))
		require.NoError(t, target.RemoveChild(extra))

		assert.Equal(t, value, root.AggregateValue())
		assert.Equal(t, name, root.DisplayName())
		assert.Nil(t, extra.Parent())
	}
}
