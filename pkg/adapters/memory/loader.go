package memory

import (
	"context"

	"github.com/aretw0/orgtree/pkg/domain"
	"github.com/aretw0/orgtree/pkg/schema"
)

// Loader implements ports.DefinitionLoader with a definition held in memory.
type Loader struct {
	def schema.Definition
}

// NewLoader creates a Loader serving a copy of def.
func NewLoader(def schema.Definition) *Loader {
	return &Loader{def: def.Clone()}
}

// NewFromNode creates a Loader serving a snapshot of a live tree.
// This handles the conversion automatically, improving DX for tests.
func NewFromNode(root domain.Node, labels schema.Labels) *Loader {
	return &Loader{def: schema.FromNode(root, labels)}
}

// Load returns a copy of the held definition.
func (l *Loader) Load(ctx context.Context) (*schema.Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	def := l.def.Clone()
	return &def, nil
}
