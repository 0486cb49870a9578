package orgtree

import (
	"github.com/aretw0/orgtree/pkg/domain"
	"github.com/aretw0/orgtree/pkg/schema"
)

// NodeInfo is a flat, read-only view of one node.
type NodeInfo struct {
	ID             domain.ID   `json:"id"`
	ParentID       domain.ID   `json:"parent_id,omitempty"` // Zero for the root
	Kind           domain.Kind `json:"kind"`
	Label          string      `json:"label,omitempty"`
	LocalValue     int         `json:"local_value"`
	AggregateValue int         `json:"aggregate_value"`
	DisplayName    string      `json:"display_name"`
	Depth          int         `json:"depth"`
	Children       []domain.ID `json:"children,omitempty"`
}

// IsRoot reports whether the node has no parent in the inspected tree.
func (i NodeInfo) IsRoot() bool {
	return i.ParentID == 0
}

// describe lists root and its descendants in pre-order. Aggregates are summed
// bottom-up once instead of being recomputed per node.
func describe(root domain.Node, labels schema.Labels) []NodeInfo {
	var infos []NodeInfo

	var visit func(n domain.Node, parent domain.ID, depth int) int
	visit = func(n domain.Node, parent domain.ID, depth int) int {
		idx := len(infos)
		infos = append(infos, NodeInfo{
			ID:          n.ID(),
			ParentID:    parent,
			Kind:        domain.KindOf(n),
			Label:       labels.Of(n),
			LocalValue:  n.LocalValue(),
			DisplayName: n.DisplayName(),
			Depth:       depth,
		})

		total := n.LocalValue()
		for _, child := range n.Children() {
			infos[idx].Children = append(infos[idx].Children, child.ID())
			total += visit(child, n.ID(), depth+1)
		}
		infos[idx].AggregateValue = total
		return total
	}

	visit(root, 0, 0)
	return infos
}
