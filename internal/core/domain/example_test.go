package domain_test

import (
	"fmt"

	"github.com/rl1809/stock-allocation/internal/core/domain"
)

func ExampleBatch_Allocate() {
	batch := domain.NewBatch("RED-CHAIR", 20)
	line := domain.NewOrderLine("RED-CHAIR", 2)

	batch.Allocate(line)
	batch.Allocate(line)
	fmt.Println(batch.AvailableQuantity())

	batch.Deallocate(line)
	fmt.Println(batch.AvailableQuantity())

	fmt.Println(batch.CanAllocate(domain.NewOrderLine("BLUE-VASE", 1)))
	// Output:
	// 18
	// 20
	// false
}
