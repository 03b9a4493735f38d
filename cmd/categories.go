package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fincalc/renderer"
	"github.com/google/subcommands"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the asset and liability keys" }
func (*categoriesCmd) Usage() string {
	return `fincalc categories

  Lists the keys accepted by the -a and -l flags, by group.
`
}

func (*categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (*categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.RenderCategories())
	return subcommands.ExitSuccess
}
