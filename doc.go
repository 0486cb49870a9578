/*
Package orgtree models organization hierarchies as trees of uniform nodes.

Every element of a tree is a domain.Node: a Leaf (a section that cannot own children)
or a Composite (a department that owns an ordered list of children). Callers treat
both the same way. AggregateValue sums a node and everything below it, and DisplayName
composes a label such as "Composite(Section+Section)".

# Concept

The pkg/domain package holds the pure, synchronous core. This package wraps a root in
a Tree that serializes every access through a guard.Guard (one lock per tree root,
optionally backed by a distributed ports.Locker such as Redis), fires lifecycle hooks
and keeps Prometheus gauges current.

# Key Features

  - Uniform Interface: Leaf and Composite answer the same questions; child management
    on a Leaf fails with domain.ErrUnsupportedOperation instead of panicking.
  - Single Ownership: a node has at most one parent, and cycles are rejected with
    domain.ErrInvalidOperation.
  - Definitions: trees can be described in YAML or JSON (pkg/adapters/file) or with
    the fluent pkg/dsl builder, and validated before construction.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/orgtree"
		"github.com/aretw0/orgtree/pkg/adapters/file"
	)

	func main() {
		ctx := context.Background()

		tree, err := orgtree.Open(ctx, file.NewLoader("org.yaml"))
		if err != nil {
			log.Fatal(err)
		}

		total, err := tree.AggregateValue(ctx)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("Total:", total)
	}
*/
package orgtree
