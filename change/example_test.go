package change_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/coinchange/change"
)

// ExampleBuildTables shows the case where tabulation beats "largest coin first".
//
// Scenario:
//
//	Coins {1, 5, 10, 21, 25}, amount 63.
//	Greedy gives 25 25 10 1 1 1 (6 coins); the optimum is 21 21 21.
//
// Complexity: O(63·5) time, O(63) memory.
func ExampleBuildTables() {
	tables, err := change.BuildTables([]int{1, 5, 10, 21, 25}, 63)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	n, _ := tables.Count(63)
	coins, _ := tables.Coins(63)
	fmt.Printf("best=%d coins=%v\n", n, coins)
	// Output:
	// best=3 coins=[21 21 21]
}

// ExampleSolve makes 63 cents with US coins in one call.
func ExampleSolve() {
	c, err := change.Solve([]int{1, 5, 10, 25}, 63)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(c.Count, c.Coins, c.Breakdown)
	// Output:
	// 6 [1 1 1 10 25 25] map[1:3 10:1 25:2]
}

// ExampleTables_Count shows an amount that cannot be formed without a unit coin.
func ExampleTables_Count() {
	tables, _ := change.BuildTables([]int{5}, 10)
	for _, a := range []int{3, 10} {
		n, err := tables.Count(a)
		if errors.Is(err, change.ErrNoSolution) {
			fmt.Printf("%d: no solution\n", a)

			continue
		}
		fmt.Printf("%d: %d coins\n", a, n)
	}
	// Output:
	// 3: no solution
	// 10: 2 coins
}

// ExampleGreedy shows the suboptimal greedy answer.
func ExampleGreedy() {
	coins, _ := change.Greedy([]int{1, 5, 10, 21, 25}, 63)
	fmt.Println(len(coins), coins)
	// Output:
	// 6 [25 25 10 1 1 1]
}
