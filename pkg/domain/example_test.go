package domain_test

import (
	"errors"
	"fmt"

	"github.com/aretw0/orgtree/pkg/domain"
)

func ExampleComposite() {
	president := domain.NewComposite(1)

	sales := domain.NewComposite(2)
	_ = sales.AddChild(domain.NewLeaf(4))
	_ = sales.AddChild(domain.NewLeaf(5))

	support := domain.NewComposite(2)
	_ = support.AddChild(domain.NewLeaf(6))

	_ = president.AddChild(sales)
	_ = president.AddChild(support)

	fmt.Println(president.DisplayName())
	fmt.Println(president.AggregateValue())
	// Output:
	// Composite(Composite(Section+Section)+Composite(Section))
	// 20
}

func ExampleLeaf_AddChild() {
	section := domain.NewLeaf(4)

	err := section.AddChild(domain.NewLeaf(3))
	if errors.Is(err, domain.ErrUnsupportedOperation) {
		fmt.Println("unit is not a composite")
	}
	// Output:
	// unit is not a composite
}
