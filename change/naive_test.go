package change_test

import (
	"testing"

	"github.com/katalvlaran/coinchange/change"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplitRecursive_SmallChange runs the two-piles recursion where it is still fast.
func TestSplitRecursive_SmallChange(t *testing.T) {
	n, err := change.SplitRecursive(usCoins, 13)
	require.NoError(t, err)
	assert.Equal(t, 4, n, "10 1 1 1")

	n, err = change.SplitRecursive(us21Coins, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

// TestSplitRecursive_AgreesWithReduce compares both recursions on small amounts.
func TestSplitRecursive_AgreesWithReduce(t *testing.T) {
	for _, denoms := range [][]int{{1, 3, 4}, {3, 5}, {2, 7}} {
		for a := 0; a <= 14; a++ {
			split, serr := change.SplitRecursive(denoms, a)
			reduce, rerr := change.ReduceRecursive(denoms, a)
			if rerr != nil {
				assert.ErrorIs(t, serr, change.ErrNoSolution, "denominations %v amount %d", denoms, a)
				assert.ErrorIs(t, rerr, change.ErrNoSolution)

				continue
			}
			require.NoError(t, serr)
			assert.Equal(t, reduce, split, "denominations %v amount %d", denoms, a)
		}
	}
}

// TestNaive_Limits checks the exponential solvers refuse large amounts.
func TestNaive_Limits(t *testing.T) {
	_, err := change.SplitRecursive(usCoins, change.MaxNaiveAmount+1)
	assert.ErrorIs(t, err, change.ErrInvalidInput)
	_, err = change.ReduceRecursive(usCoins, change.MaxNaiveAmount+1)
	assert.ErrorIs(t, err, change.ErrInvalidInput)
	_, err = change.ReduceRecursive(nil, 1)
	assert.ErrorIs(t, err, change.ErrInvalidInput)
	_, err = change.SplitRecursive(usCoins, -1)
	assert.ErrorIs(t, err, change.ErrInvalidInput)
}
