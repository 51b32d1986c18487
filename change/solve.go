package change

import "fmt"

// Solve builds the tables for amount and reconstructs one optimal solution.
//
// Errors:
//   - ErrInvalidInput, ErrOptionViolation — as BuildTables.
//   - ErrNoSolution — amount cannot be formed from denominations.
//
// Example:
//
//	c, err := Solve([]int{1, 5, 10, 25}, 63)
//	// c.Count == 6, c.Coins == [25 25 10 1 1 1]
func Solve(denominations []int, amount int, opts ...Option) (*Change, error) {
	tables, err := BuildTables(denominations, amount, opts...)
	if err != nil {
		return nil, err
	}

	return tables.Change(amount)
}

// Change assembles a Change for any amount covered by the tables.
// It fails with ErrNoSolution for unreachable amounts.
func (t *Tables) Change(amount int) (*Change, error) {
	count, err := t.Count(amount)
	if err != nil {
		return nil, err
	}
	coins, err := t.Coins(amount)
	if err != nil {
		return nil, err
	}
	if len(coins) != count {
		return nil, fmt.Errorf("%w: %d coins reconstructed for amount %d, table says %d",
			ErrReconstruction, len(coins), amount, count)
	}

	return &Change{
		Amount:    amount,
		Count:     count,
		Coins:     coins,
		Breakdown: Breakdown(coins),
	}, nil
}
