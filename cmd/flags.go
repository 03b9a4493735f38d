package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fincalc"
)

// listFlag collects the values of a repeated flag.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// sheetFlags are the net worth inputs shared by the commands.
type sheetFlags struct {
	assets      listFlag
	liabilities listFlag
	from        string
	maps        listFlag
	expenses    float64
}

func (c *sheetFlags) SetFlags(f *flag.FlagSet) {
	f.Var(&c.assets, "a", "asset amount as key=value. Repeat for each asset. See 'fincalc categories' for the keys.")
	f.Var(&c.liabilities, "l", "liability amount as key=value. Repeat for each liability.")
	f.StringVar(&c.from, "from", "", "JSON document to import amounts from, see -map.")
	f.Var(&c.maps, "map", "import mapping as key=jsonpath, evaluated against the -from document. Repeat for each field.")
	f.Float64Var(&c.expenses, "expenses", 0, "monthly expenses, to check the emergency fund.")
}

// sheet builds the sheet: the import first, then the -a and -l amounts.
func (c *sheetFlags) sheet() (*fincalc.NetWorthSheet, error) {
	s := fincalc.NewNetWorthSheet()

	if len(c.maps) > 0 && c.from == "" {
		return nil, fmt.Errorf("-map requires -from")
	}
	if c.from != "" {
		m, err := fincalc.ParseMapping(c.maps...)
		if err != nil {
			return nil, err
		}
		f, err := os.Open(c.from)
		if err != nil {
			return nil, fmt.Errorf("cannot open import file: %w", err)
		}
		defer f.Close()
		doc, err := fincalc.DecodeDocument(f)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", c.from, err)
		}
		if err := s.Import(doc, m); err != nil {
			return nil, fmt.Errorf("importing %q: %w", c.from, err)
		}
	}

	for _, def := range c.assets {
		key, raw, err := cutAmount(def)
		if err != nil {
			return nil, err
		}
		a, err := fincalc.ParseAsset(key)
		if err != nil {
			return nil, err
		}
		s.SetAsset(a, raw)
	}
	for _, def := range c.liabilities {
		key, raw, err := cutAmount(def)
		if err != nil {
			return nil, err
		}
		l, err := fincalc.ParseLiability(key)
		if err != nil {
			return nil, err
		}
		s.SetLiability(l, raw)
	}
	return s, nil
}

// cutAmount splits a key=value definition.
func cutAmount(def string) (key, raw string, err error) {
	key, raw, ok := strings.Cut(def, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", fmt.Errorf("%q: expecting key=value", def)
	}
	return key, raw, nil
}

// planFlags are the SIP inputs shared by the commands. Values are given as
// text and read like the calculator form does.
type planFlags struct {
	monthly, rate, years string
	preset               int
}

func (c *planFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.monthly, "m", "", "monthly investment in rupees (500 to 1000000, default 5000)")
	f.StringVar(&c.rate, "r", "", "expected annual return in percent (1 to 30, default 12)")
	f.StringVar(&c.years, "y", "", "time period in years (1 to 40, default 10)")
	f.IntVar(&c.preset, "preset", 0, "quick preset 1 to 4, applied before -m, -r and -y")
}

// planner builds the planner: the preset first, then the explicit values.
func (c *planFlags) planner() (*fincalc.SIPPlanner, error) {
	p := fincalc.NewSIPPlanner()
	if c.preset != 0 {
		if c.preset < 1 || c.preset > len(fincalc.Presets) {
			return nil, fmt.Errorf("invalid preset %d: expecting 1 to %d", c.preset, len(fincalc.Presets))
		}
		p.ApplyPreset(fincalc.Presets[c.preset-1])
	}
	if c.monthly != "" {
		p.SetMonthlyInvestmentText(c.monthly)
	}
	if c.rate != "" {
		p.SetAnnualReturnText(c.rate)
	}
	if c.years != "" {
		p.SetYearsText(c.years)
	}
	return p, nil
}
