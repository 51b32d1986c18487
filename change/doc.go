// Package change solves the change-making problem: given coin denominations
// and an amount, find the minimum number of coins that add up to it and one
// concrete set of coins that does so.
//
// 🚀 What is change-making?
//
//	For a currency with coins C1, C2, …, CN, what is the minimum number of
//	coins needed to make K units of change? With US coins {1,5,10,25} the
//	answer for 63 is 6 (25 25 10 1 1 1). Add a 21 piece and the answer drops
//	to 3 (21 21 21), which the "largest coin first" strategy never finds.
//
// ✨ Key features:
//   - bottom-up tabulation: O(N·K) time, O(K) memory per table
//   - last-coin table for backward reconstruction of one optimal solution
//   - explicit Unreachable marks when no unit coin exists (e.g. {5} and 3)
//   - deterministic tie-break: first denomination in input order wins
//   - greedy and naive recursive solvers for comparison and teaching
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/coinchange/change"
//
//	tables, err := change.BuildTables([]int{1, 5, 10, 21, 25}, 63)
//	if err != nil {
//	  // ErrInvalidInput: empty set, non-positive coin or negative amount
//	}
//	n, err := tables.Count(63)  // 3, or ErrNoSolution
//	coins, err := tables.Coins(63) // [21 21 21]
//
//	// or in one call
//	c, err := change.Solve([]int{1, 5, 10, 25}, 63)
//	fmt.Println(c.Count, c.Coins, c.Breakdown)
//
// Performance:
//
//   - BuildTables:  O(K·N) time, O(K) memory
//   - Reconstruct:  O(Count) time
//   - Greedy:       O(N log N + Count)
//   - SplitRecursive / ReduceRecursive: exponential, capped at MaxNaiveAmount
//
// See example_test.go for runnable walkthroughs.
package change
