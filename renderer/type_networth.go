package renderer

import "github.com/etnz/fincalc"

// NetWorth is the view of a net worth sheet.
type NetWorth struct {
	Assets      []Section
	Liabilities []Section
	Summary     fincalc.NetWorthSummary
	Health      fincalc.Health

	// emergency fund target, zero when the monthly expenses are unknown.
	EmergencyLow, EmergencyHigh fincalc.Money
}

// Section is a category group with the lines that have an amount.
type Section struct {
	Title string
	Lines []Line
	Total fincalc.Money
}

// Line is a single category amount.
type Line struct {
	Label  string
	Amount fincalc.Money
}

// NewNetWorth builds the view of s. Groups with no amount are omitted.
func NewNetWorth(s *fincalc.NetWorthSheet, monthlyExpenses float64) *NetWorth {
	nw := &NetWorth{
		Summary: s.Summary(),
		Health:  fincalc.Assess(s, monthlyExpenses),
	}
	if monthlyExpenses > 0 {
		nw.EmergencyLow, nw.EmergencyHigh = fincalc.EmergencyFund(fincalc.INR(monthlyExpenses))
	}

	for _, g := range fincalc.AssetGroups() {
		sec := Section{Title: g.Title, Total: s.Assets.GroupTotal(g.Title)}
		for _, f := range g.Fields {
			if v := s.Assets[fincalc.Asset(f.Key)]; !v.IsZero() {
				sec.Lines = append(sec.Lines, Line{f.Label, v})
			}
		}
		if len(sec.Lines) > 0 {
			nw.Assets = append(nw.Assets, sec)
		}
	}
	for _, g := range fincalc.LiabilityGroups() {
		sec := Section{Title: g.Title, Total: s.Liabilities.GroupTotal(g.Title)}
		for _, f := range g.Fields {
			if v := s.Liabilities[fincalc.Liability(f.Key)]; !v.IsZero() {
				sec.Lines = append(sec.Lines, Line{f.Label, v})
			}
		}
		if len(sec.Lines) > 0 {
			nw.Liabilities = append(nw.Liabilities, sec)
		}
	}
	return nw
}
