package changegraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/coinchange/change"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("changegraph: graph is nil")

	// ErrVertexNotFound indicates an amount outside 0..target.
	ErrVertexNotFound = errors.New("changegraph: vertex not found")
)

// Graph is the amount graph for one denomination set and target.
//
// Vertices are the amounts 0..target; the edges leaving a are a-c for every
// distinct denomination c <= a, listed in denomination input order.
// A Graph is immutable after New and safe for concurrent readers.
type Graph struct {
	denominations []int
	target        int
	adjacency     [][]int // adjacency[a] = amounts one coin away from a
	edgeCount     int
}

// New builds the amount graph.
//
// Errors:
//   - change.ErrInvalidInput — empty or non-positive denominations, negative target.
//
// Complexity: O(target·len(denominations)) time and memory.
func New(denominations []int, target int) (*Graph, error) {
	if err := change.ValidateDenominations(denominations); err != nil {
		return nil, err
	}
	if target < 0 {
		return nil, fmt.Errorf("%w: target amount %d is negative", change.ErrInvalidInput, target)
	}

	coins := distinct(denominations)
	g := &Graph{
		denominations: coins,
		target:        target,
		adjacency:     make([][]int, target+1),
	}
	for a := 0; a <= target; a++ {
		for _, c := range coins {
			if c > a {
				continue
			}
			g.adjacency[a] = append(g.adjacency[a], a-c)
			g.edgeCount++
		}
	}

	return g, nil
}

// Target returns the largest amount in the graph.
func (g *Graph) Target() int { return g.target }

// Denominations returns the distinct denominations, in first-seen input order.
func (g *Graph) Denominations() []int {
	return append([]int(nil), g.denominations...)
}

// HasVertex reports whether amount is a vertex.
func (g *Graph) HasVertex(amount int) bool {
	return amount >= 0 && amount <= g.target
}

// Neighbors returns the amounts reachable from amount by paying one coin.
func (g *Graph) Neighbors(amount int) ([]int, error) {
	if !g.HasVertex(amount) {
		return nil, fmt.Errorf("%w: amount %d", ErrVertexNotFound, amount)
	}

	return append([]int(nil), g.adjacency[amount]...), nil
}

// HasEdge reports whether one coin takes from to to.
func (g *Graph) HasEdge(from, to int) bool {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return false
	}
	for _, n := range g.adjacency[from] {
		if n == to {
			return true
		}
	}

	return false
}

// VertexCount returns target+1.
func (g *Graph) VertexCount() int { return g.target + 1 }

// EdgeCount returns the total number of coin edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// distinct drops repeated denominations, keeping first occurrences in order.
func distinct(denominations []int) []int {
	seen := make(map[int]struct{}, len(denominations))
	out := make([]int, 0, len(denominations))
	for _, c := range denominations {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out
}
