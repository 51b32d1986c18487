package change

import "errors"

// Sentinel errors returned by the solvers. Callers match them with errors.Is;
// the returned values usually wrap them with detail about the failing input.
var (
	// ErrInvalidInput indicates an empty or malformed denomination set,
	// a negative amount, or an amount above the configured cap.
	ErrInvalidInput = errors.New("change: invalid input")

	// ErrNoSolution indicates that an amount cannot be formed by any
	// combination of the given denominations.
	ErrNoSolution = errors.New("change: amount cannot be formed from denominations")

	// ErrReconstruction indicates the backward walk over a last-coin table met
	// an unreachable amount or an inconsistent entry.
	ErrReconstruction = errors.New("change: cannot reconstruct coins from table")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("change: invalid option supplied")
)
