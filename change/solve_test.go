package change_test

import (
	"testing"

	"github.com/katalvlaran/coinchange/change"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_US checks the assembled Change for the textbook example.
func TestSolve_US(t *testing.T) {
	c, err := change.Solve(usCoins, 63)
	require.NoError(t, err)

	assert.Equal(t, 63, c.Amount)
	assert.Equal(t, 6, c.Count)
	assert.Equal(t, []int{1, 1, 1, 10, 25, 25}, c.Coins)
	assert.Equal(t, map[int]int{1: 3, 10: 1, 25: 2}, c.Breakdown)
}

// TestSolve_Zero checks the empty solution.
func TestSolve_Zero(t *testing.T) {
	c, err := change.Solve(usCoins, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, c.Count)
	assert.Empty(t, c.Coins)
	assert.Empty(t, c.Breakdown)
}

// TestSolve_Errors checks error propagation from table building and lookup.
func TestSolve_Errors(t *testing.T) {
	_, err := change.Solve([]int{5}, 3)
	assert.ErrorIs(t, err, change.ErrNoSolution)

	_, err = change.Solve(nil, 3)
	assert.ErrorIs(t, err, change.ErrInvalidInput)

	_, err = change.Solve(usCoins, -3)
	assert.ErrorIs(t, err, change.ErrInvalidInput)

	_, err = change.Solve(usCoins, 3, change.WithMaxTarget(-1))
	assert.ErrorIs(t, err, change.ErrOptionViolation)
}

// TestTables_ChangeForEveryAmount reuses one table for many requests.
func TestTables_ChangeForEveryAmount(t *testing.T) {
	tables, err := change.BuildTables([]int{4, 7}, 30)
	require.NoError(t, err)

	for a := 0; a <= 30; a++ {
		c, err := tables.Change(a)
		if !tables.Reachable(a) {
			assert.ErrorIs(t, err, change.ErrNoSolution, "amount %d", a)

			continue
		}
		require.NoError(t, err, "amount %d", a)
		assert.Equal(t, a, sum(c.Coins))
		total := 0
		for coin, n := range c.Breakdown {
			total += coin * n
		}
		assert.Equal(t, a, total)
	}
}
