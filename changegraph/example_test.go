package changegraph_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/coinchange/changegraph"
)

// ExampleMinCoins solves 63 with a 21 piece by breadth-first search.
func ExampleMinCoins() {
	n, coins, err := changegraph.MinCoins(context.Background(), []int{1, 5, 10, 21, 25}, 63)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(n, coins)
	// Output:
	// 3 [21 21 21]
}
