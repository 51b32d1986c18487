package change

import (
	"fmt"
	"sort"
)

// Greedy makes change by repeatedly taking the largest coin that still fits.
//
// Greedy is optimal for "canonical" coin systems such as US coins {1,5,10,25}
// but not in general: with a 21 piece added, 63 becomes 25 25 10 1 1 1
// (6 coins) instead of 21 21 21.
//
// Errors:
//   - ErrInvalidInput — as BuildTables.
//   - ErrNoSolution   — greedy cannot finish (no coin fits the remainder).
//     This may happen even when BuildTables finds a solution, e.g. {3,5} and 9.
//
// Complexity: O(N log N + number of coins).
func Greedy(denominations []int, amount int) ([]int, error) {
	if err := validateDenominations(denominations); err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: amount %d is negative", ErrInvalidInput, amount)
	}

	sorted := append([]int(nil), denominations...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	coins := []int{}
	remaining := amount
	for _, c := range sorted {
		for c <= remaining {
			coins = append(coins, c)
			remaining -= c
		}
	}
	if remaining != 0 {
		return nil, fmt.Errorf("%w: greedy stuck with %d left of %d", ErrNoSolution, remaining, amount)
	}

	return coins, nil
}
