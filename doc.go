// Package coinchange is a small toolkit for the change-making problem:
// the fewest coins that add up to an amount, and which coins they are.
//
// 🚀 What is inside?
//
//	change/       — bottom-up tabulation (coin-count + last-coin tables),
//	                backward reconstruction, greedy and naive recursive solvers
//	changegraph/  — the same problem as a shortest path over an amount graph,
//	                solved by breadth-first search
//	cmd/coinchange — command line front end (make, table, compare, currencies)
//
// ✨ Why tabulation?
//
//   - the naive recursions recompute the same subproblems exponentially often
//   - the tables solve every amount 0..K exactly once: O(K·N) time, O(K) memory
//   - greedy "largest coin first" is wrong for coin sets such as {1,5,10,21,25}
//
// Quick example:
//
//	c, _ := change.Solve([]int{1, 5, 10, 21, 25}, 63)
//	fmt.Println(c.Count, c.Coins) // 3 [21 21 21]
//
//	go get github.com/katalvlaran/coinchange
package coinchange
