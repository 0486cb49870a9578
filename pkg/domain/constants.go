package domain

// Labels used when composing display names.
const (
	// LeafLabel is the display name of every leaf.
	LeafLabel = "Section"
	// CompositeLabel prefixes the bracketed list of a composite's children.
	CompositeLabel = "Composite"
	// NameSeparator joins the display names of siblings.
	NameSeparator = "+"
)

// Kind names a node variant in definitions, logs and rendered output.
type Kind string

const (
	KindLeaf      Kind = "leaf"
	KindComposite Kind = "composite"
)

// KindOf returns the variant of n. It returns an empty Kind for nil.
func KindOf(n Node) Kind {
	switch n.(type) {
	case *Leaf:
		return KindLeaf
	case *Composite:
		return KindComposite
	default:
		return ""
	}
}
