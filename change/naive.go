package change

import "fmt"

// SplitRecursive computes the minimum coin count by the "two piles" recursion:
// if one coin matches the amount that is the minimum, otherwise try every split
// j + (amount-j) with 1 <= j <= amount/2 and keep the cheapest.
//
// It recomputes the same subproblems over and over and runs in exponential
// time, so amounts above MaxNaiveAmount are rejected. It is kept as a
// readable reference and a slow oracle for BuildTables.
//
// Errors:
//   - ErrInvalidInput — as BuildTables, or amount > MaxNaiveAmount.
//   - ErrNoSolution   — amount cannot be formed.
func SplitRecursive(denominations []int, amount int) (int, error) {
	if err := validateNaive(denominations, amount); err != nil {
		return 0, err
	}
	n := splitCount(denominations, amount)
	if n == Unreachable {
		return 0, fmt.Errorf("%w: amount %d", ErrNoSolution, amount)
	}

	return n, nil
}

func splitCount(denominations []int, amount int) int {
	if amount == 0 {
		return 0
	}
	for _, c := range denominations {
		if c == amount {
			return 1
		}
	}

	best := Unreachable
	for j := 1; j <= amount/2; j++ {
		left := splitCount(denominations, j)
		if left == Unreachable {
			continue
		}
		right := splitCount(denominations, amount-j)
		if right == Unreachable {
			continue
		}
		if best == Unreachable || left+right < best {
			best = left + right
		}
	}

	return best
}

// ReduceRecursive computes the minimum coin count by removing one coin at a
// time: the answer is 1 plus the best answer for amount-c over every coin c
// that fits. Five recursive calls per level for five coin types instead of
// amount/2 splits, but still exponential; amounts above MaxNaiveAmount are
// rejected.
//
// Errors:
//   - ErrInvalidInput — as BuildTables, or amount > MaxNaiveAmount.
//   - ErrNoSolution   — amount cannot be formed.
func ReduceRecursive(denominations []int, amount int) (int, error) {
	if err := validateNaive(denominations, amount); err != nil {
		return 0, err
	}
	n := reduceCount(denominations, amount)
	if n == Unreachable {
		return 0, fmt.Errorf("%w: amount %d", ErrNoSolution, amount)
	}

	return n, nil
}

func reduceCount(denominations []int, amount int) int {
	if amount == 0 {
		return 0
	}

	best := Unreachable
	for _, c := range denominations {
		if c > amount {
			continue
		}
		rest := reduceCount(denominations, amount-c)
		if rest == Unreachable {
			continue
		}
		if best == Unreachable || rest+1 < best {
			best = rest + 1
		}
	}

	return best
}

func validateNaive(denominations []int, amount int) error {
	if err := validateDenominations(denominations); err != nil {
		return err
	}

	return validateTarget(amount, MaxNaiveAmount)
}
