package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/etnz/fincalc"
	"github.com/etnz/fincalc/insight"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type insightsCmd struct {
	sheetFlags
	planFlags
	sip bool
}

func (*insightsCmd) Name() string { return "insights" }
func (*insightsCmd) Synopsis() string {
	return "ask Gemini for personalized tips on a net worth and a SIP plan"
}
func (*insightsCmd) Usage() string {
	return `fincalc insights [-a key=value]... [-l key=value]... [-expenses <amount>] [-sip [-m <monthly>] [-r <rate>] [-y <years>]]

  Sends the net worth report, and the SIP projection with -sip, to a Gemini
  model and prints its tips. Requires GEMINI_API_KEY; the model is set by
  FINCALC_GEMINI_MODEL.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {
	c.sheetFlags.SetFlags(f)
	c.planFlags.SetFlags(f)
	f.BoolVar(&c.sip, "sip", false, "include a SIP projection built from -m, -r, -y and -preset")
}

func (c *insightsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sheet, err := c.sheet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	var projection *fincalc.SIPResult
	if c.sip {
		p, err := c.planner()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		r := p.Result()
		projection = &r
	}

	cfg, err := insight.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	advisor := insight.NewAdvisor(client.Models, cfg.Model, newLogger(slog.LevelWarn, "insight"))
	tips, err := advisor.Tips(ctx, sheet, c.expenses, projection)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown("# Financial Insights\n\n" + tips)
	return subcommands.ExitSuccess
}
