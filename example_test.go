package orgtree_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aretw0/orgtree"
	"github.com/aretw0/orgtree/pkg/domain"
	"github.com/aretw0/orgtree/pkg/dsl"
)

// ExampleOpen demonstrates how to build a Tree from an in-memory description.
// This is useful for tests and embedded scenarios where no definition file exists.
func ExampleOpen() {
	loader, err := dsl.Composite(1).
		Sub(dsl.Composite(2).Leaves(4, 5)).
		Sub(dsl.Composite(2).Leaf(6)).
		Loader()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	tree, err := orgtree.Open(ctx, loader)
	if err != nil {
		log.Fatal(err)
	}

	total, _ := tree.AggregateValue(ctx)
	name, _ := tree.DisplayName(ctx)
	fmt.Println(total)
	fmt.Println(name)

	// Output:
	// 20
	// Composite(Composite(Section+Section)+Composite(Section))
}

// ExampleTree_Attach shows that callers never need to know which variant they hold:
// asking a Leaf to own a child fails with a typed error.
func ExampleTree_Attach() {
	ctx := context.Background()
	tree, err := orgtree.New(domain.NewComposite(2))
	if err != nil {
		log.Fatal(err)
	}

	section := domain.NewLeaf(4)
	if err := tree.Add(ctx, section); err != nil {
		log.Fatal(err)
	}

	err = tree.Attach(ctx, section, domain.NewLeaf(1))
	fmt.Println(errors.Is(err, domain.ErrUnsupportedOperation))

	total, _ := tree.AggregateValue(ctx)
	fmt.Println(total)

	// Output:
	// true
	// 6
}
