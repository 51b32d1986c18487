// Package change defines the tables, results and options shared by the solvers.
package change

import "fmt"

const (
	// Unreachable marks an amount in Tables.Counts that no combination of
	// denominations can form. It is never a valid coin count.
	Unreachable = -1

	// NoCoin is the Tables.LastCoin entry for amount 0 and for unreachable amounts.
	NoCoin = 0

	// DefaultMaxTarget caps the table size BuildTables accepts by default
	// (two int slices of DefaultMaxTarget+1 entries each).
	DefaultMaxTarget = 1 << 24

	// MaxNaiveAmount is the largest amount the exponential recursive solvers accept.
	MaxNaiveAmount = 24
)

// Tables holds the two per-amount tables produced by BuildTables.
//
//   - Counts()[a]   — minimum number of coins forming amount a, or Unreachable.
//   - LastCoin()[a] — one denomination c such that c plus an optimal solution
//     for a-c is optimal for a; NoCoin for a == 0 and for unreachable amounts.
//
// Both tables have length Target()+1. A Tables value is immutable once built:
// the accessors hand out copies, never the backing arrays.
type Tables struct {
	denominations []int
	counts        []int
	lastCoin      []int
}

// Target returns the largest amount covered by the tables.
func (t *Tables) Target() int {
	return len(t.counts) - 1
}

// Reachable reports whether amount can be formed from the denominations.
// Amounts outside 0..Target() are reported as not reachable.
func (t *Tables) Reachable(amount int) bool {
	if amount < 0 || amount > t.Target() {
		return false
	}

	return t.counts[amount] != Unreachable
}

// Count returns the minimum number of coins for amount.
//
// Errors:
//   - ErrInvalidInput — amount outside 0..Target().
//   - ErrNoSolution   — amount cannot be formed.
func (t *Tables) Count(amount int) (int, error) {
	if amount < 0 || amount > t.Target() {
		return 0, fmt.Errorf("%w: amount %d outside table range 0..%d", ErrInvalidInput, amount, t.Target())
	}
	if t.counts[amount] == Unreachable {
		return 0, fmt.Errorf("%w: amount %d", ErrNoSolution, amount)
	}

	return t.counts[amount], nil
}

// Coins reconstructs one optimal coin sequence for amount, largest remaining
// amount first. See Reconstruct.
func (t *Tables) Coins(amount int) ([]int, error) {
	return Reconstruct(t.lastCoin, amount)
}

// Counts returns a copy of the coin-count table.
func (t *Tables) Counts() []int {
	return append([]int(nil), t.counts...)
}

// LastCoin returns a copy of the last-coin table.
func (t *Tables) LastCoin() []int {
	return append([]int(nil), t.lastCoin...)
}

// Denominations returns the denominations the tables were built from,
// in input order.
func (t *Tables) Denominations() []int {
	return append([]int(nil), t.denominations...)
}

// Change is a solved change-making request.
//
// Fields:
//   - Amount    — the requested amount.
//   - Count     — minimum number of coins.
//   - Coins     — one optimal sequence, in reconstruction order.
//   - Breakdown — number of coins used per denomination.
type Change struct {
	Amount    int         `json:"amount" yaml:"amount"`
	Count     int         `json:"count" yaml:"count"`
	Coins     []int       `json:"coins" yaml:"coins"`
	Breakdown map[int]int `json:"breakdown" yaml:"breakdown"`
}

// Option configures BuildTables and Solve via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds tunables for table construction.
type Options struct {
	// MaxTarget is the largest target accepted. Larger targets fail with
	// ErrInvalidInput instead of allocating huge tables.
	MaxTarget int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with MaxTarget = DefaultMaxTarget.
func DefaultOptions() Options {
	return Options{MaxTarget: DefaultMaxTarget}
}

// WithMaxTarget overrides the target cap.
//
//	n > 0: accept targets up to n
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxTarget(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxTarget must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxTarget = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
