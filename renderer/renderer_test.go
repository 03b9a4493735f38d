package renderer

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/etnz/fincalc"
)

func TestRenderNetWorth(t *testing.T) {
	s := fincalc.NewNetWorthSheet()
	s.SetAsset(fincalc.Home, "250000")
	s.SetAsset(fincalc.Savings, "60000")
	s.SetLiability(fincalc.CarLoans, "15000")

	got := RenderNetWorth(NewNetWorth(s, 10000))

	for _, want := range []string{
		"# Net Worth",
		"### Personal Assets",
		"| Home |",
		"### Cash & Cash Equivalents",
		"### Loan Balances",
		"| Car Loans | ₹15,000.00 |",
		"- [x] Aim for a positive net worth",
		"- [x] Emergency fund",
		"Debt-to-asset ratio: 4.84%",
		"cover 6.0 months of expenses",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderNetWorth() does not contain %q:\n%s", want, got)
		}
	}
	for _, unwanted := range []string{"### Investments", "### Other Outstanding Debt", "error"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("RenderNetWorth() contains %q:\n%s", unwanted, got)
		}
	}
}

func TestRenderNetWorth_Empty(t *testing.T) {
	got := RenderNetWorth(NewNetWorth(fincalc.NewNetWorthSheet(), 0))
	for _, want := range []string{"No assets entered.", "No liabilities entered.", "| ₹0.00 | ₹0.00 | ₹0.00 |", "- [ ] Aim for"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderNetWorth() does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "months of expenses") {
		t.Errorf("RenderNetWorth() without expenses mentions the emergency fund:\n%s", got)
	}
}

func TestRenderSIP(t *testing.T) {
	got := RenderSIP(NewSIP(fincalc.Project(fincalc.DefaultSIPParameters)))
	for _, want := range []string{
		"# SIP Projection",
		"at 12% expected annual return",
		"## Growth Breakdown",
		"| 5 |",
		"| 10 |",
		"+94% | ████████████████████ |",
		"**Power of Compounding**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderSIP() does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "| 15 |") {
		t.Errorf("RenderSIP() shows a checkpoint past the duration:\n%s", got)
	}

	t.Run("short plan has no breakdown", func(t *testing.T) {
		got := RenderSIP(NewSIP(fincalc.Project(fincalc.SIPParameters{MonthlyInvestment: 500, AnnualReturnPercent: 1, Years: 1})))
		if strings.Contains(got, "Growth Breakdown") {
			t.Errorf("RenderSIP() shows a breakdown:\n%s", got)
		}
		if !strings.Contains(got, "₹500 every month for 1 years") {
			t.Errorf("RenderSIP() does not describe the plan:\n%s", got)
		}
	})
}

func TestRenderCategories(t *testing.T) {
	got := RenderCategories()
	for _, a := range fincalc.Assets() {
		if !strings.Contains(got, "`"+string(a)+"`") {
			t.Errorf("RenderCategories() misses asset %q", a)
		}
	}
	for _, l := range fincalc.Liabilities() {
		if !strings.Contains(got, "`"+string(l)+"`") {
			t.Errorf("RenderCategories() misses liability %q", l)
		}
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		width      int
		full, void int
	}{
		{0, 0, 20},
		{48, 9, 11},
		{100, 20, 0},
		{250, 20, 0},
	}
	for _, tt := range tests {
		got := bar(tt.width)
		if n := strings.Count(got, "█"); n != tt.full {
			t.Errorf("bar(%d) has %d full blocks, want %d", tt.width, n, tt.full)
		}
		if n := strings.Count(got, "░"); n != tt.void {
			t.Errorf("bar(%d) has %d empty blocks, want %d", tt.width, n, tt.void)
		}
	}
}

// Partials are named after their assembly: "sip_breakdown.md" belongs to "sip.md".
func TestTemplatesAreAssembled(t *testing.T) {
	entries, err := fs.ReadDir(templates, ".")
	if err != nil {
		t.Fatalf("failed to read embedded templates: %v", err)
	}
	names := make(map[string]bool)
	for _, e := range entries {
		names[strings.TrimSuffix(e.Name(), ".md")] = true
	}
	for name := range names {
		prefix, _, ok := strings.Cut(name, "_")
		if ok && !names[prefix] {
			t.Errorf("partial %q has no %q assembly", name, prefix)
		}
	}
}
