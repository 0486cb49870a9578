package schema_test

import (
	"math"
	"testing"

	"github.com/aretw0/orgtree/pkg/domain"
	"github.com/aretw0/orgtree/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func presidentDefinition() schema.Definition {
	return schema.Definition{
		Kind:  domain.KindComposite,
		Value: 1,
		Label: "President",
		Children: []schema.Definition{
			{Value: 2, Label: "Sales", Children: []schema.Definition{{Value: 4}, {Value: 5}}},
			{Value: 2, Label: "Support", Children: []schema.Definition{{Value: 6, Label: "Desk"}}},
		},
	}
}

func TestBuild(t *testing.T) {
	root, labels, err := schema.Build(presidentDefinition())
	require.NoError(t, err)

	assert.Equal(t, 20, root.AggregateValue())
	assert.Equal(t, "Composite(Composite(Section+Section)+Composite(Section))", root.DisplayName())

	children := root.Children()
	require.Len(t, children, 2)
	assert.Equal(t, "President", labels.Of(root))
	assert.Equal(t, "Sales", labels.Of(children[0]))
	assert.Equal(t, "Desk", labels.Of(children[1].Children()[0]))
	assert.Empty(t, labels.Of(children[0].Children()[0]))
}

func TestBuild_InvalidDefinition(t *testing.T) {
	root, labels, err := schema.Build(schema.Definition{
		Kind:     domain.KindLeaf,
		Children: []schema.Definition{{Value: 1}},
	})

	require.Error(t, err)
	assert.Nil(t, root)
	assert.Nil(t, labels)
	assert.Len(t, schema.ValidationErrors(err), 1)
}

func TestFromNode_RoundTrip(t *testing.T) {
	def := presidentDefinition()
	root, labels, err := schema.Build(def)
	require.NoError(t, err)

	snapshot := schema.FromNode(root, labels)

	rebuilt, _, err := schema.Build(snapshot)
	require.NoError(t, err)
	assert.True(t, domain.Equal(root, rebuilt))
	assert.Equal(t, domain.KindLeaf, snapshot.Children[0].Children[0].Kind, "snapshots spell out every kind")
	assert.Equal(t, "Sales", snapshot.Children[0].Label)
}

func TestFromNode_NilLabels(t *testing.T) {
	c := domain.NewComposite(3)
	require.NoError(t, c.AddChild(domain.NewLeaf(1)))

	def := schema.FromNode(c, nil)

	assert.Equal(t, schema.Definition{
		Kind:     domain.KindComposite,
		Value:    3,
		Children: []schema.Definition{{Kind: domain.KindLeaf, Value: 1}},
	}, def)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]any
		want    int
		wantErr string
	}{
		{
			name: "Integers",
			raw: map[string]any{
				"kind":  "composite",
				"value": 2,
				"children": []any{
					map[string]any{"value": 4},
					map[string]any{"value": 5, "label": "Ops"},
				},
			},
			want: 11,
		},
		{
			name: "Whole Floats From JSON",
			raw: map[string]any{
				"value":    float64(2),
				"children": []any{map[string]any{"value": float64(6)}},
			},
			want: 8,
		},
		{
			name:    "Fractional Value",
			raw:     map[string]any{"value": 4.5},
			wantErr: "expected an integer",
		},
		{
			name:    "Float Beyond Int Range",
			raw:     map[string]any{"kind": "leaf", "value": 1e20},
			wantErr: "out of range",
		},
		{
			name:    "Negative Float Beyond Int Range",
			raw:     map[string]any{"value": -1e20},
			wantErr: "out of range",
		},
		{
			name:    "Unsigned Beyond Int Range",
			raw:     map[string]any{"value": uint64(math.MaxUint64)},
			wantErr: "out of range",
		},
		{
			name:    "Unknown Key",
			raw:     map[string]any{"value": 1, "childern": []any{}},
			wantErr: "childern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := schema.Decode(tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			root, _, err := schema.Build(*def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, root.AggregateValue())
		})
	}
}
