/*
Package dsl provides a Go DSL for programmatically describing organization trees.

It is the code counterpart of a definition file: a fluent builder that produces a
schema.Definition, a live tree, or a loader for the orgtree facade.

Example usage:

	package main

	import (
		"fmt"

		"github.com/aretw0/orgtree/pkg/dsl"
	)

	func main() {
		president := dsl.Composite(1).Label("President").Sub(
			dsl.Composite(2).Label("Sales").Leaves(4, 5),
			dsl.Composite(2).Label("Support").Leaf(6),
		)

		root, _, err := president.Build()
		if err != nil {
			panic(err)
		}
		fmt.Println(root.AggregateValue()) // 20
	}
*/
package dsl
