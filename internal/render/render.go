// Package render formats change-making results for the terminal.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/katalvlaran/coinchange/change"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding of a single Change.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("render: unknown format")

// ParseFormat accepts text, json and yaml (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want text, json or yaml)", ErrUnknownFormat, s)
	}
}

// Change writes c in format f.
func Change(w io.Writer, f Format, c *change.Change) error {
	switch f {
	case FormatText:
		return Text(w, c)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(c)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Text writes "Best is N coins" followed by one coin per line.
func Text(w io.Writer, c *change.Change) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Best is %d coins\n", c.Count)
	for _, coin := range c.Coins {
		fmt.Fprintf(&b, "%d\n", coin)
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// Table writes one row per amount in from..to with its coin count and last
// coin. Unreachable amounts show "-".
func Table(w io.Writer, t *change.Tables, from, to int) error {
	if from < 0 || to > t.Target() || from > to {
		return fmt.Errorf("%w: rows %d..%d outside table range 0..%d", change.ErrInvalidInput, from, to, t.Target())
	}
	counts, last := t.Counts(), t.LastCoin()

	fmt.Fprintln(w, Title.Render(fmt.Sprintf("Coins %v, amounts %d..%d", t.Denominations(), from, to)))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "AMOUNT\tCOINS\tLAST COIN")
	for a := from; a <= to; a++ {
		count, coin := "-", "-"
		if counts[a] != change.Unreachable {
			count = strconv.Itoa(counts[a])
			if a > 0 {
				coin = strconv.Itoa(last[a])
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", a, count, coin)
	}

	return tw.Flush()
}

// Plot draws the coin-count table as an ASCII line chart. Unreachable amounts
// are gaps. Tables with fewer than two amounts produce an empty string.
func Plot(t *change.Tables, height int) string {
	counts := t.Counts()
	if len(counts) < 2 {
		return ""
	}
	series := make([]float64, len(counts))
	for i, n := range counts {
		if n == change.Unreachable {
			series[i] = math.NaN()

			continue
		}
		series[i] = float64(n)
	}
	width := len(series)
	if width > 100 {
		width = 100
	}

	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("min coins for 0..%d with %v", t.Target(), t.Denominations())),
	)
}

// Comparison is one row of the solver comparison report.
type Comparison struct {
	Amount    int
	Optimal   []int // tabulated solution
	Greedy    []int // nil when greedy got stuck
	Graph     []int // breadth-first search solution
}

// Compare writes the tabulated, greedy and BFS answers side by side.
func Compare(w io.Writer, c Comparison) error {
	fmt.Fprintln(w, Title.Render(fmt.Sprintf("Change for %d", c.Amount)))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SOLVER\tCOINS\tSOLUTION")
	fmt.Fprintf(tw, "tabulation\t%d\t%v\n", len(c.Optimal), c.Optimal)
	if c.Greedy == nil {
		fmt.Fprintln(tw, "greedy\t-\tstuck")
	} else {
		fmt.Fprintf(tw, "greedy\t%d\t%v\n", len(c.Greedy), c.Greedy)
	}
	fmt.Fprintf(tw, "bfs\t%d\t%v\n", len(c.Graph), c.Graph)
	if err := tw.Flush(); err != nil {
		return err
	}

	if c.Greedy != nil && len(c.Greedy) == len(c.Optimal) {
		fmt.Fprintln(w, Good.Render("greedy is optimal"))
	} else {
		fmt.Fprintln(w, Bad.Render("greedy is not optimal"))
	}

	return nil
}
