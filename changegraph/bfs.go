package changegraph

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/coinchange/change"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start amount is absent.
	ErrStartVertexNotFound = errors.New("changegraph: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("changegraph: invalid option supplied")

	// errReachedZero stops the walk once amount 0 has been visited.
	errReachedZero = errors.New("changegraph: reached zero")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting an amount, with its depth (coins paid
	// so far). If it returns an error, BFS aborts and propagates that error.
	OnVisit func(amount, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many coins.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no depth limit
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(amount, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search to d coins; d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS walk:
//   - Order:  amounts in visit sequence.
//   - Depth:  amount → coins paid to reach it from the start.
//   - Parent: amount → the amount it was first reached from.
type Result struct {
	Start  int
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// PathTo returns the amounts visited from Start down to dest, inclusive.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: amount %d not reached from %d", change.ErrNoSolution, dest, r.Start)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// CoinsTo returns the coins paid along PathTo(dest).
func (r *Result) CoinsTo(dest int) ([]int, error) {
	path, err := r.PathTo(dest)
	if err != nil {
		return nil, err
	}
	coins := make([]int, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		coins = append(coins, path[i-1]-path[i])
	}

	return coins, nil
}

// queueItem pairs an amount with its depth.
type queueItem struct {
	amount int
	depth  int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *Graph
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS walks g from start toward smaller amounts, visiting each amount once in
// order of increasing coin count.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, the
// context error on cancellation, or an OnVisit error (wrapped).
//
// Complexity: O(V + E) = O(target·len(denominations)).
func BFS(g *Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: amount %d", ErrStartVertexNotFound, start)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, start+1),
		visited: make([]bool, g.VertexCount()),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, start+1),
			Depth:  make(map[int]int, start+1),
			Parent: make(map[int]int, start+1),
		},
	}
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

func (w *walker) enqueue(amount, depth, parent int) {
	w.visited[amount] = true
	w.res.Depth[amount] = depth
	if parent >= 0 {
		w.res.Parent[amount] = parent
	}
	w.queue = append(w.queue, queueItem{amount: amount, depth: depth})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.amount)
		if err := w.opts.OnVisit(item.amount, item.depth); err != nil {
			return fmt.Errorf("changegraph: OnVisit error at %d: %w", item.amount, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.adjacency[item.amount] {
			if !w.visited[nbr] {
				w.enqueue(nbr, next, item.amount)
			}
		}
	}

	return nil
}

// MinCoins finds the minimum coin count for amount by breadth-first search
// over the amount graph, stopping as soon as 0 is visited. It returns the
// count and the coins along the first shortest walk found.
//
// Errors:
//   - change.ErrInvalidInput — as New.
//   - change.ErrNoSolution   — 0 is not reachable from amount.
//   - ctx.Err()              — cancelled.
func MinCoins(ctx context.Context, denominations []int, amount int) (int, []int, error) {
	g, err := New(denominations, amount)
	if err != nil {
		return 0, nil, err
	}
	stop := func(a, _ int) error {
		if a == 0 {
			return errReachedZero
		}

		return nil
	}
	res, err := BFS(g, amount, WithContext(ctx), WithOnVisit(stop))
	if err != nil && !errors.Is(err, errReachedZero) {
		return 0, nil, err
	}
	coins, err := res.CoinsTo(0)
	if err != nil {
		return 0, nil, err
	}

	return len(coins), coins, nil
}
