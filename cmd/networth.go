package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincalc/renderer"
	"github.com/google/subcommands"
)

type netWorthCmd struct {
	sheetFlags
	json bool
}

func (*netWorthCmd) Name() string     { return "networth" }
func (*netWorthCmd) Synopsis() string { return "compute a net worth from assets and liabilities" }
func (*netWorthCmd) Usage() string {
	return `fincalc networth [-a key=value]... [-l key=value]... [-from <file> -map key=jsonpath...] [-expenses <amount>] [-json]

  Computes the total assets, the total liabilities and the net worth, with
  financial health tips. Amounts that are not numbers count as zero.

Usage Examples:
$ fincalc networth -a home=250000 -a savings=10000 -l carLoans=15000

`
}

func (c *netWorthCmd) SetFlags(f *flag.FlagSet) {
	c.sheetFlags.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "print the sheet and its summary as JSON")
}

func (c *netWorthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sheet, err := c.sheet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.json {
		data, err := json.MarshalIndent(sheet, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, string(data))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderNetWorth(renderer.NewNetWorth(sheet, c.expenses)))
	return subcommands.ExitSuccess
}
