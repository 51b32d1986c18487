package change

import "fmt"

// BuildTables — bottom-up change-making tabulation
//
// Description:
//
//	A large answer depends only on smaller answers, so the optimal way to
//	change 1 unit is computed first, then 2 units, and so on up to target.
//	Each amount is solved exactly once, which replaces the exponential
//	recomputation of the naive recursive formulations.
//
// Algorithm Outline:
//  1. counts[0] = 0, lastCoin[0] = NoCoin.
//  2. For a = 1..target (ascending; each step reads only smaller amounts):
//     best = Unreachable
//     For each denomination c, in input order:
//     skip if c > a or counts[a-c] is Unreachable
//     cand = counts[a-c] + 1
//     if best is Unreachable or cand < best: best = cand, lastCoin[a] = c
//     counts[a] = best
//  3. counts[target] is the answer for the requested amount.
//
// Ties are broken by input order: the comparison is strict, so a later
// denomination reaching the same count never replaces the recorded coin.
//
// Complexity:
//
//	Time   = O(target·len(denominations))
//	Memory = O(target)
//
// Errors:
//   - ErrInvalidInput    — empty denominations, a denomination <= 0,
//     negative target, or target above Options.MaxTarget.
//   - ErrOptionViolation — an invalid Option was supplied.
//
// Unreachable amounts are not errors here: they are marked in the tables
// and reported by Tables.Count as ErrNoSolution.
func BuildTables(denominations []int, target int, opts ...Option) (*Tables, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateDenominations(denominations); err != nil {
		return nil, err
	}
	if err = validateTarget(target, o.MaxTarget); err != nil {
		return nil, err
	}

	counts := make([]int, target+1)
	lastCoin := make([]int, target+1)
	counts[0] = 0
	lastCoin[0] = NoCoin

	for a := 1; a <= target; a++ {
		best, coin := Unreachable, NoCoin
		for _, c := range denominations {
			if c > a || counts[a-c] == Unreachable {
				continue
			}
			cand := counts[a-c] + 1
			if best == Unreachable || cand < best {
				best, coin = cand, c
			}
		}
		counts[a] = best
		lastCoin[a] = coin
	}

	return &Tables{
		denominations: append([]int(nil), denominations...),
		counts:        counts,
		lastCoin:      lastCoin,
	}, nil
}

// validateDenominations rejects empty sets and non-positive face values.
//
// Complexity: O(len(denominations)).
func validateDenominations(denominations []int) error {
	if len(denominations) == 0 {
		return fmt.Errorf("%w: denomination set is empty", ErrInvalidInput)
	}
	for i, c := range denominations {
		if c <= 0 {
			return fmt.Errorf("%w: denomination #%d is %d, must be positive", ErrInvalidInput, i, c)
		}
	}

	return nil
}

// validateTarget rejects negative targets and targets above maxTarget.
func validateTarget(target, maxTarget int) error {
	if target < 0 {
		return fmt.Errorf("%w: target amount %d is negative", ErrInvalidInput, target)
	}
	if target > maxTarget {
		return fmt.Errorf("%w: target amount %d exceeds limit %d", ErrInvalidInput, target, maxTarget)
	}

	return nil
}

// ValidateDenominations reports whether denominations form a usable coin set
// for BuildTables. It returns nil or an error wrapping ErrInvalidInput.
func ValidateDenominations(denominations []int) error {
	return validateDenominations(denominations)
}
