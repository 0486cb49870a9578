package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/orgtree"
	"github.com/aretw0/orgtree/internal/presentation/graph"
	"github.com/aretw0/orgtree/pkg/domain"
)

func sampleInfos() []orgtree.NodeInfo {
	return []orgtree.NodeInfo{
		{ID: 1, Kind: domain.KindComposite, Label: "Company", LocalValue: 1, AggregateValue: 12, Children: []domain.ID{2, 5}},
		{ID: 2, ParentID: 1, Kind: domain.KindComposite, DisplayName: "Composite(Section+Section)", LocalValue: 2, AggregateValue: 11, Depth: 1, Children: []domain.ID{3, 4}},
		{ID: 3, ParentID: 2, Kind: domain.KindLeaf, DisplayName: "Section", LocalValue: 4, AggregateValue: 4, Depth: 2},
		{ID: 4, ParentID: 2, Kind: domain.KindLeaf, Label: `The "Core"`, LocalValue: 5, AggregateValue: 5, Depth: 2},
		{ID: 5, ParentID: 1, Kind: domain.KindLeaf, DisplayName: "Section", LocalValue: 0, AggregateValue: 0, Depth: 1},
	}
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name        string
		overlay     *graph.GraphOverlay
		contains    []string
		notContains []string
	}{
		{
			name: "Node Shapes",
			contains: []string{
				`n1(("Company (1/12)"))`,
				`n2[["Composite(Section+Section) (2/11)"]]`,
				`n3["Section (4/4)"]`,
			},
		},
		{
			name: "Edges",
			contains: []string{
				"n1 --> n2",
				"n2 --> n3",
				"n2 --> n4",
				"n1 --> n5",
			},
			notContains: []string{"n3 -->", "n4 -->"},
		},
		{
			name:     "Quotes Escaped",
			contains: []string{`n4["The 'Core' (5/5)"]`},
		},
		{
			name:        "No Overlay",
			notContains: []string{"classDef"},
		},
		{
			name:    "Overlay",
			overlay: &graph.GraphOverlay{Highlighted: []domain.ID{2, 3, 2}, Focus: 3},
			contains: []string{
				"classDef highlighted",
				"class n2 highlighted;",
				"class n3 highlighted;",
				"class n3 focus;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(sampleInfos(), tt.overlay)

			if !strings.HasPrefix(got, "graph TD\n") {
				t.Errorf("expected graph TD header, got:\n%s", got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(got, unwanted) {
					t.Errorf("expected output not to contain %q, got:\n%s", unwanted, got)
				}
			}
			if strings.Count(got, "class n2 highlighted;") > 1 {
				t.Errorf("highlighted nodes must be deduplicated")
			}
		})
	}
}
