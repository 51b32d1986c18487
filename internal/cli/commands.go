package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/coinchange/change"
	"github.com/katalvlaran/coinchange/changegraph"
	"github.com/katalvlaran/coinchange/internal/render"
	"github.com/spf13/cobra"
)

func newMakeCommand(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "make <amount>",
		Short: "make change for an amount with the fewest coins",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, coins, err := opts.resolve()
			if err != nil {
				return err
			}

			c, err := change.Solve(coins, amount, change.WithMaxTarget(cfg.MaxTarget))
			if err != nil {
				return err
			}
			slog.Debug("change made", "amount", amount, "denominations", coins, "count", c.Count)

			return render.Change(cmd.OutOrStdout(), f, c)
		},
	}
	cmd.Flags().StringVar(&format, "format", string(render.FormatText), "output format: text, json, yaml")

	return cmd
}

func newTableCommand(opts *options) *cobra.Command {
	var (
		from   int
		plot   bool
		height int
	)

	cmd := &cobra.Command{
		Use:   "table <max>",
		Short: "print the coin-count and last-coin tables for amounts up to max",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			cfg, coins, err := opts.resolve()
			if err != nil {
				return err
			}

			tables, err := change.BuildTables(coins, target, change.WithMaxTarget(cfg.MaxTarget))
			if err != nil {
				return err
			}
			slog.Debug("tables built", "target", target, "denominations", coins)

			if plot {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), render.Plot(tables, height))

				return err
			}

			return render.Table(cmd.OutOrStdout(), tables, from, target)
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "first amount to print")
	cmd.Flags().BoolVar(&plot, "plot", false, "draw the coin-count table as a chart")
	cmd.Flags().IntVar(&height, "height", 10, "chart height in rows")

	return cmd
}

func newCompareCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <amount>",
		Short: "compare tabulation, greedy and breadth-first search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			cfg, coins, err := opts.resolve()
			if err != nil {
				return err
			}

			c, err := change.Solve(coins, amount, change.WithMaxTarget(cfg.MaxTarget))
			if err != nil {
				return err
			}
			greedy, err := change.Greedy(coins, amount)
			if err != nil && !errors.Is(err, change.ErrNoSolution) {
				return err
			}
			n, graph, err := changegraph.MinCoins(cmd.Context(), coins, amount)
			if err != nil {
				return err
			}
			if n != c.Count {
				slog.Error("solvers disagree", "amount", amount, "tabulation", c.Count, "bfs", n)

				return fmt.Errorf("%w: tabulation found %d coins, bfs %d", change.ErrReconstruction, c.Count, n)
			}

			return render.Compare(cmd.OutOrStdout(), render.Comparison{
				Amount:  amount,
				Optimal: c.Coins,
				Greedy:  greedy,
				Graph:   graph,
			})
		},
	}
}

func newCurrenciesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "list the configured coin sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			for _, n := range cfg.Names() {
				marker := " "
				if n == cfg.DefaultCurrency {
					marker = "*"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s %v\n", marker, n, cfg.Currencies[n]); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
