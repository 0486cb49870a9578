package schema_test

import (
	"testing"

	"github.com/aretw0/orgtree/pkg/domain"
	"github.com/aretw0/orgtree/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func department(value int, children ...schema.Definition) schema.Definition {
	return schema.Definition{Kind: domain.KindComposite, Value: value, Children: children}
}

func section(value int) schema.Definition {
	return schema.Definition{Value: value}
}

func TestDiff(t *testing.T) {
	base := department(1, department(2, section(4), section(5)), department(2, section(6)))

	tests := []struct {
		name     string
		old, new schema.Definition
		expected []schema.Change
	}{
		{
			name: "Identical",
			old:  base,
			new:  base.Clone(),
		},
		{
			name: "Implicit And Explicit Kind Are Equal",
			old:  section(4),
			new:  schema.Definition{Kind: domain.KindLeaf, Value: 4},
		},
		{
			name: "Value And Label",
			old:  base,
			new: func() schema.Definition {
				d := base.Clone()
				d.Children[0].Children[1].Value = 7
				d.Label = "Company"
				return d
			}(),
			expected: []schema.Change{
				{Path: "root", Type: schema.ChangeModified, Field: "label", Old: "", New: "Company"},
				{Path: "root.children[0].children[1]", Type: schema.ChangeModified, Field: "value", Old: 5, New: 7},
			},
		},
		{
			name: "Kind",
			old:  section(3),
			new:  department(3),
			expected: []schema.Change{
				{Path: "root", Type: schema.ChangeModified, Field: "kind", Old: domain.KindLeaf, New: domain.KindComposite},
			},
		},
		{
			name: "Added And Removed",
			old:  department(1, section(1), section(2)),
			new:  department(1, section(1)),
			expected: []schema.Change{
				{Path: "root.children[1]", Type: schema.ChangeRemoved, Old: section(2)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, schema.Diff(tt.old, tt.new))
		})
	}
}

func TestDiff_AddedSubtree(t *testing.T) {
	old := department(1)
	new := department(1, department(2, section(6)))

	changes := schema.Diff(old, new)
	require.Len(t, changes, 1)
	assert.Equal(t, schema.ChangeAdded, changes[0].Type)
	assert.Equal(t, "+ root.children[0]", changes[0].String())
	assert.Equal(t, department(2, section(6)), changes[0].New)
}

func TestChange_String(t *testing.T) {
	c := schema.Change{Path: "root", Type: schema.ChangeModified, Field: "value", Old: 1, New: 2}
	assert.Equal(t, "~ root.value: 1 -> 2", c.String())

	c = schema.Change{Path: "root.children[0]", Type: schema.ChangeRemoved}
	assert.Equal(t, "- root.children[0]", c.String())
}
