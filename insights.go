package fincalc

// Tip is a piece of advice with whether the current figures already follow it.
type Tip struct {
	Text string
	Met  bool
}

// Thresholds of the financial health tips.
const (
	MaxDebtToAssetRatio Percent = 50
	MinEmergencyMonths          = 3
	MaxEmergencyMonths          = 6
)

// Health summarizes how sound a net worth sheet is.
type Health struct {
	Positive         bool    // net worth above zero
	DebtToAssetRatio Percent // liabilities in percent of assets, 0 without assets
	Cash             Money   // total of the cash and cash equivalents
	// CashMonths is how many months of expenses the cash covers; negative
	// when the monthly expenses are unknown.
	CashMonths float64
	Tips       []Tip
}

// Assess derives the health indicators of a sheet. monthlyExpenses is
// optional: when zero, the emergency fund tip cannot be evaluated and is
// reported as not met.
func Assess(s *NetWorthSheet, monthlyExpenses float64) Health {
	sum := s.Summary()
	h := Health{
		Positive:         sum.NetWorth.IsPositive(),
		DebtToAssetRatio: sum.TotalLiabilities.Ratio(sum.TotalAssets),
		Cash:             s.Assets.GroupTotal(CashEquivalents),
		CashMonths:       -1,
	}
	if monthlyExpenses > 0 {
		h.CashMonths = h.Cash.Float64() / monthlyExpenses
	}

	debtOK := sum.TotalAssets.IsPositive() && h.DebtToAssetRatio < MaxDebtToAssetRatio
	if sum.TotalAssets.IsZero() && sum.TotalLiabilities.IsZero() {
		debtOK = true
	}
	h.Tips = []Tip{
		{"Aim for a positive net worth by increasing assets and reducing liabilities", h.Positive},
		{"Emergency fund should be 3-6 months of expenses in cash/savings", h.CashMonths >= MinEmergencyMonths},
		{"Keep debt-to-asset ratio below 50% for good financial health", debtOK},
	}
	return h
}

// EmergencyFund returns the cash target range for the given monthly expenses.
func EmergencyFund(monthlyExpenses Money) (low, high Money) {
	return monthlyExpenses.Times(MinEmergencyMonths), monthlyExpenses.Times(MaxEmergencyMonths)
}

// Benefit is a titled note about SIP investing.
type Benefit struct {
	Title, Text string
}

// SIPBenefits are the notes shown next to a SIP projection.
func SIPBenefits() []Benefit {
	return []Benefit{
		{"Power of Compounding", "Your returns generate more returns over time"},
		{"Rupee Cost Averaging", "Buy more units when prices are low"},
		{"Disciplined Investing", "Regular investments build wealth consistently"},
	}
}
