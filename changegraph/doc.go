// Package changegraph views change-making as a shortest path problem.
//
// Every amount 0..target is a vertex and every denomination c adds a directed
// edge a → a-c for each a >= c. Paying one coin is walking one edge, so the
// minimum number of coins for amount K is the unweighted distance from K to 0,
// and breadth-first search finds it.
//
// Edges for coins {1, 3} and target 4:
//
//	4 → 3 (1)   4 → 1 (3)
//	3 → 2 (1)   3 → 0 (3)
//	2 → 1 (1)
//	1 → 0 (1)
//
// The shortest walk 4 → 1 → 0 pays 3 then 1: two coins.
//
// The graph answers the same question as change.BuildTables with a different
// algorithm, which makes it a convenient independent check. It is O(K·N) in
// memory where the tables are O(K), so prefer the change package for real
// work.
//
//	g, err := changegraph.New([]int{1, 5, 10, 21, 25}, 63)
//	res, err := changegraph.BFS(g, 63)
//	res.Depth[0]          // 3
//	coins, _ := res.CoinsTo(0) // [21 21 21]
package changegraph
