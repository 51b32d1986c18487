package change

import "fmt"

// Reconstruct walks a last-coin table backward from target and returns the
// coins it peels off, largest remaining amount first. The coins sum to target
// and, for a table built by BuildTables, their number equals Counts()[target].
//
// Target 0 yields an empty, non-nil slice.
//
// Errors:
//   - ErrReconstruction — target outside the table, a NoCoin entry at a
//     positive amount (unreachable), or an entry that is negative or larger
//     than the remaining amount (inconsistent table).
//
// Complexity: O(number of coins).
func Reconstruct(lastCoin []int, target int) ([]int, error) {
	if target < 0 || target >= len(lastCoin) {
		return nil, fmt.Errorf("%w: amount %d outside table range 0..%d", ErrReconstruction, target, len(lastCoin)-1)
	}

	coins := []int{}
	for remaining := target; remaining > 0; {
		coin := lastCoin[remaining]
		switch {
		case coin == NoCoin:
			return nil, fmt.Errorf("%w: amount %d is unreachable", ErrReconstruction, remaining)
		case coin < 0 || coin > remaining:
			return nil, fmt.Errorf("%w: entry %d at amount %d is inconsistent", ErrReconstruction, coin, remaining)
		}
		coins = append(coins, coin)
		remaining -= coin
	}

	return coins, nil
}

// Breakdown counts how many coins of each denomination appear in coins.
func Breakdown(coins []int) map[int]int {
	out := make(map[int]int, len(coins))
	for _, c := range coins {
		out[c]++
	}

	return out
}
