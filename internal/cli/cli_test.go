package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/coinchange/change"
	"github.com/katalvlaran/coinchange/internal/cli"
	"github.com/katalvlaran/coinchange/internal/config"
	"github.com/katalvlaran/coinchange/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := cli.Execute(&out, args)

	return out.String(), err
}

func TestMake_DefaultCurrency(t *testing.T) {
	out, err := run(t, "make", "63")
	require.NoError(t, err)
	assert.Equal(t, "Best is 6 coins\n1\n1\n1\n10\n25\n25\n", out)
}

func TestMake_NamedCurrency(t *testing.T) {
	out, err := run(t, "make", "63", "--currency", "us21")
	require.NoError(t, err)
	assert.Equal(t, "Best is 3 coins\n21\n21\n21\n", out)
}

func TestMake_ExplicitCoinsJSON(t *testing.T) {
	out, err := run(t, "make", "9", "--coins", "3,5", "--format", "json")
	require.NoError(t, err)

	var c change.Change
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, 3, c.Count)
	assert.Equal(t, []int{3, 3, 3}, c.Coins)
}

func TestMake_Errors(t *testing.T) {
	_, err := run(t, "make", "3", "--coins", "5")
	assert.ErrorIs(t, err, change.ErrNoSolution)

	_, err = run(t, "make", "abc")
	assert.ErrorIs(t, err, change.ErrInvalidInput)

	_, err = run(t, "make", "--", "-3")
	assert.ErrorIs(t, err, change.ErrInvalidInput)

	_, err = run(t, "make", "3", "--format", "xml")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)

	_, err = run(t, "make", "3", "--currency", "doubloons")
	assert.ErrorIs(t, err, config.ErrUnknownCurrency)

	_, err = run(t, "make")
	assert.Error(t, err)
}

func TestMake_ConfigMaxTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coins.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_target: 10\n"), 0o600))

	_, err := run(t, "make", "11", "--config", path)
	assert.ErrorIs(t, err, change.ErrInvalidInput)

	out, err := run(t, "make", "10", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "Best is 1 coins\n10\n", out)
}

func TestTable(t *testing.T) {
	out, err := run(t, "table", "6", "--coins", "5,1", "--from", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "AMOUNT")
	assert.Contains(t, out, "Coins [5 1], amounts 5..6")
	assert.NotContains(t, out, "\n4 ")
}

func TestTable_Plot(t *testing.T) {
	out, err := run(t, "table", "40", "--plot", "--height", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "min coins for 0..40")
}

func TestCompare(t *testing.T) {
	out, err := run(t, "compare", "63", "--currency", "us21")
	require.NoError(t, err)
	assert.Contains(t, out, "tabulation")
	assert.Contains(t, out, "[21 21 21]")
	assert.Contains(t, out, "greedy is not optimal")

	out, err = run(t, "compare", "9", "--coins", "3,5")
	require.NoError(t, err)
	assert.Contains(t, out, "stuck")

	out, err = run(t, "compare", "63")
	require.NoError(t, err)
	assert.Contains(t, out, "greedy is optimal")
}

func TestCurrencies(t *testing.T) {
	out, err := run(t, "currencies")
	require.NoError(t, err)
	assert.Contains(t, out, "* us [1 5 10 25]")
	assert.Contains(t, out, "  us21 [1 5 10 21 25]")
}
