package ports

import (
	"context"

	"github.com/aretw0/orgtree/pkg/schema"
)

// DefinitionLoader defines how a tree description is retrieved.
// This allows the source (file, memory, DSL) to be decoupled from construction.
type DefinitionLoader interface {
	// Load returns the definition of the whole tree.
	Load(ctx context.Context) (*schema.Definition, error)
}
