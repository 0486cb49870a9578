package schema

import (
	"fmt"

	"github.com/aretw0/orgtree/pkg/domain"
)

// RootPath is the path reported for the top-level definition.
const RootPath = "root"

// Validate checks a definition tree and reports every problem found.
// Returns an *AggregateError, or nil when the definition can be built.
func Validate(def Definition) error {
	var errs []error
	validate(def, RootPath, &errs)

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

func validate(def Definition, path string, errs *[]error) {
	switch def.ResolvedKind() {
	case domain.KindLeaf:
		if len(def.Children) > 0 {
			*errs = append(*errs, &ValidationError{
				Path:   path,
				Reason: "leaf cannot own children",
				Value:  len(def.Children),
			})
		}
	case domain.KindComposite:
	default:
		*errs = append(*errs, &ValidationError{
			Path:   path + ".kind",
			Reason: fmt.Sprintf("must be %q or %q", domain.KindLeaf, domain.KindComposite),
			Value:  def.Kind,
		})
	}

	for i, child := range def.Children {
		validate(child, childPath(path, i), errs)
	}
}
