package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/orgtree"
	"github.com/aretw0/orgtree/pkg/domain"
)

// GraphOverlay contains dynamic state data to visualize on the graph.
type GraphOverlay struct {
	Highlighted []domain.ID // Nodes to emphasize, e.g. the ones touched by a change
	Focus       domain.ID   // Single node drawn as current
}

// GenerateMermaid produces a Mermaid flowchart syntax string from an inspected tree.
// It applies semantic styling:
// - Root: ((Circle))
// - Composite: [[Subroutine]]
// - Leaf: [Rectangle]
// Labels read "name (local/total)" where name is the node label or display name.
// It also applies overlay styles (Highlighted/Focus) if provided.
func GenerateMermaid(nodes []orgtree.NodeInfo, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range nodes {
		safeID := mermaidID(node.ID)

		opener, closer := "[", "]"
		switch {
		case node.IsRoot():
			opener, closer = "((", "))"
		case node.Kind == domain.KindComposite:
			opener, closer = "[[", "]]"
		}

		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, nodeLabel(node), closer))

		// Ownership edges, in insertion order
		for _, child := range node.Children {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeID, mermaidID(child)))
		}
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef highlighted fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef focus fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[domain.ID]bool)
		for _, id := range overlay.Highlighted {
			if id == 0 || seen[id] {
				continue
			}
			seen[id] = true
			sb.WriteString(fmt.Sprintf("    class %s highlighted;\n", mermaidID(id)))
		}

		if overlay.Focus != 0 {
			sb.WriteString(fmt.Sprintf("    class %s focus;\n", mermaidID(overlay.Focus)))
		}
	}

	return sb.String()
}

func mermaidID(id domain.ID) string {
	return fmt.Sprintf("n%d", id)
}

// nodeLabel escapes double quotes, which would end the Mermaid label early.
func nodeLabel(node orgtree.NodeInfo) string {
	name := node.Label
	if name == "" {
		name = node.DisplayName
	}
	name = strings.ReplaceAll(name, "\"", "'")
	return fmt.Sprintf("%s (%d/%d)", name, node.LocalValue, node.AggregateValue)
}
