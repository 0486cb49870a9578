package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/orgtree"
	"github.com/aretw0/orgtree/pkg/domain"
)

// Outline renders an inspected tree as a Markdown document: a heading with the
// root's totals followed by a nested bullet list, one item per node.
func Outline(nodes []orgtree.NodeInfo) string {
	if len(nodes) == 0 {
		return "_empty tree_\n"
	}

	var sb strings.Builder
	root := nodes[0]
	sb.WriteString(fmt.Sprintf("# %s\n\n", title(root)))
	sb.WriteString(fmt.Sprintf("**Total:** %d across %d nodes\n\n", root.AggregateValue, len(nodes)))
	sb.WriteString(fmt.Sprintf("`%s`\n\n", root.DisplayName))

	for _, node := range nodes {
		indent := strings.Repeat("  ", node.Depth)
		sb.WriteString(fmt.Sprintf("%s- %s\n", indent, item(node)))
	}
	return sb.String()
}

func title(node orgtree.NodeInfo) string {
	if node.Label != "" {
		return node.Label
	}
	if node.Kind == domain.KindComposite {
		return "Organization"
	}
	return domain.LeafLabel
}

func item(node orgtree.NodeInfo) string {
	name := node.Label
	if name == "" {
		name = domain.LeafLabel
		if node.Kind == domain.KindComposite {
			name = domain.CompositeLabel
		}
	}

	if node.Kind == domain.KindLeaf {
		return fmt.Sprintf("%s: %d", name, node.LocalValue)
	}
	return fmt.Sprintf("**%s**: %d (own %d)", name, node.AggregateValue, node.LocalValue)
}
