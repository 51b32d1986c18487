// Package cli wires the coinchange commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/coinchange/change"
	"github.com/katalvlaran/coinchange/internal/config"
	"github.com/katalvlaran/coinchange/internal/logging"
	"github.com/spf13/cobra"
)

const name = "coinchange"

// version is overridden at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// options are the flags shared by every subcommand.
type options struct {
	configFile string
	logLevel   string
	currency   string
	coins      []int
}

// NewRootCommand returns the coinchange command tree writing to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           name,
		Short:         "minimum-coin change making",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, opts.logLevel)
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (default $LOG_LEVEL or info)")
	pf.StringVar(&opts.currency, "currency", "", "named coin set from the config (default: config default_currency)")
	pf.IntSliceVar(&opts.coins, "coins", nil, "explicit denominations, e.g. --coins 1,5,10,25 (overrides --currency)")

	root.AddCommand(
		newMakeCommand(opts),
		newTableCommand(opts),
		newCompareCommand(opts),
		newCurrenciesCommand(opts),
	)

	return root
}

// Execute runs the command tree with args and returns the first error.
func Execute(out io.Writer, args []string) error {
	root := NewRootCommand(out)
	root.SetArgs(args)

	return root.Execute()
}

// loadConfig returns the file config when --config is set, else the defaults.
func (o *options) loadConfig() (*config.Config, error) {
	if o.configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, err
	}
	slog.Debug("config loaded", "path", o.configFile, "currencies", cfg.Names())

	return cfg, nil
}

// denominations resolves --coins, then --currency, then the config default.
func (o *options) denominations(cfg *config.Config) ([]int, error) {
	if len(o.coins) > 0 {
		return append([]int(nil), o.coins...), nil
	}

	return cfg.Denominations(o.currency)
}

// resolve loads the config and returns it with the selected denominations.
func (o *options) resolve() (*config.Config, []int, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	coins, err := o.denominations(cfg)
	if err != nil {
		return nil, nil, err
	}

	return cfg, coins, nil
}

// parseAmount parses a non-negative amount argument.
func parseAmount(arg string) (int, error) {
	amount, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q is not an integer", change.ErrInvalidInput, arg)
	}
	if amount < 0 {
		return 0, fmt.Errorf("%w: amount %d is negative", change.ErrInvalidInput, amount)
	}

	return amount, nil
}
