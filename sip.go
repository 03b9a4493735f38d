package fincalc

import "math"

// SIPParameters are the inputs of a Systematic Investment Plan projection.
type SIPParameters struct {
	MonthlyInvestment   float64 // amount invested at the start of every month
	AnnualReturnPercent float64 // expected yearly return, 12 meaning 12%
	Years               int     // duration of the plan
}

// DefaultSIPParameters is the plan a calculator starts with and resets to.
var DefaultSIPParameters = SIPParameters{MonthlyInvestment: 5000, AnnualReturnPercent: 12, Years: 10}

// Range is an inclusive interval with an optional step.
type Range struct {
	Min, Max, Step float64
}

// Clamp restricts v to the range.
func (r Range) Clamp(v float64) float64 { return Clamp(v, r.Min, r.Max) }

// Bounds are the values the planner accepts. They are the logical limits and
// can be wider than what a form displays (see DisplayRanges).
type Bounds struct {
	MonthlyInvestment   Range
	AnnualReturnPercent Range
	Years               Range
}

// DefaultBounds are the limits enforced by NewSIPPlanner.
var DefaultBounds = Bounds{
	MonthlyInvestment:   Range{Min: 500, Max: 1_000_000},
	AnnualReturnPercent: Range{Min: 1, Max: 30},
	Years:               Range{Min: 1, Max: 40},
}

// DisplayRanges are the slider ranges of the calculator form.
var DisplayRanges = Bounds{
	MonthlyInvestment:   Range{Min: 500, Max: 100_000, Step: 500},
	AnnualReturnPercent: Range{Min: 1, Max: 30, Step: 0.5},
	Years:               Range{Min: 1, Max: 40, Step: 1},
}

// Clamp returns p with every parameter restricted to the bounds.
func (b Bounds) Clamp(p SIPParameters) SIPParameters {
	return SIPParameters{
		MonthlyInvestment:   b.MonthlyInvestment.Clamp(p.MonthlyInvestment),
		AnnualReturnPercent: b.AnnualReturnPercent.Clamp(p.AnnualReturnPercent),
		Years:               int(b.Years.Clamp(float64(p.Years))),
	}
}

// CheckpointYears are the years reported by the growth breakdown.
var CheckpointYears = []int{5, 10, 15, 20}

// Checkpoint is the state of the plan after Year years.
type Checkpoint struct {
	Year            int
	TotalInvestment float64
	FutureValue     float64
	GainPercent     int // wealth gained in percent of the investment, rounded
}

// Gain returns the wealth gained at the checkpoint.
func (c Checkpoint) Gain() float64 { return c.FutureValue - c.TotalInvestment }

// BarWidth is GainPercent scaled for a progress bar: twice the gain, capped at 100.
func (c Checkpoint) BarWidth() int { return min(c.GainPercent*2, 100) }

// SIPResult is the projection of a plan.
type SIPResult struct {
	Parameters      SIPParameters
	FutureValue     float64
	TotalInvestment float64
	WealthGained    float64
	Breakdown       []Checkpoint
}

// FutureValue returns the value, after months, of a monthly investment
// compounded monthly at annualPercent, each installment being invested at the
// start of its month (annuity-due):
//
//	FV = P × ((1 + r)^n − 1) / r × (1 + r),  r = annualPercent / 100 / 12
//
// With a zero rate the value is the plain sum of the installments.
func FutureValue(monthly, annualPercent float64, months int) float64 {
	r := annualPercent / 100 / 12
	if r == 0 {
		return monthly * float64(months)
	}
	return monthly * ((math.Pow(1+r, float64(months)) - 1) / r) * (1 + r)
}

// Project computes the future value of the plan and its growth breakdown.
//
// Parameters are used as given: clamping belongs to whoever stores them (see
// SIPPlanner). Every checkpoint is derived again from the formula.
func Project(p SIPParameters) SIPResult {
	months := p.Years * 12
	fv := FutureValue(p.MonthlyInvestment, p.AnnualReturnPercent, months)
	invested := p.MonthlyInvestment * float64(months)
	return SIPResult{
		Parameters:      p,
		FutureValue:     fv,
		TotalInvestment: invested,
		WealthGained:    fv - invested,
		Breakdown:       breakdown(p),
	}
}

func breakdown(p SIPParameters) []Checkpoint {
	var res []Checkpoint
	for _, year := range CheckpointYears {
		if year > p.Years {
			continue
		}
		months := year * 12
		fv := FutureValue(p.MonthlyInvestment, p.AnnualReturnPercent, months)
		invested := p.MonthlyInvestment * float64(months)
		res = append(res, Checkpoint{
			Year:            year,
			TotalInvestment: invested,
			FutureValue:     fv,
			GainPercent:     gainPercent(fv, invested),
		})
	}
	return res
}

// gainPercent rounds half away from zero; a zero investment has no gain.
func gainPercent(fv, invested float64) int {
	if invested == 0 {
		return 0
	}
	return int(math.Round((fv - invested) / invested * 100))
}

// Months returns the duration of the plan in months.
func (p SIPParameters) Months() int { return p.Years * 12 }

// ReturnRate returns the annual return as a Percent.
func (p SIPParameters) ReturnRate() Percent { return Percent(p.AnnualReturnPercent) }

func (r SIPResult) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Object("parameters", func(o *jsonObjectWriter) {
		o.Append("monthlyInvestment", r.Parameters.MonthlyInvestment)
		o.Append("annualReturnPercent", r.Parameters.AnnualReturnPercent)
		o.Append("years", r.Parameters.Years)
	})
	w.Append("futureValue", r.FutureValue)
	w.Append("totalInvestment", r.TotalInvestment)
	w.Append("wealthGained", r.WealthGained)
	type checkpoint struct {
		Year            int     `json:"year"`
		TotalInvestment float64 `json:"totalInvestment"`
		FutureValue     float64 `json:"futureValue"`
		GainPercent     int     `json:"gainPercent"`
	}
	breakdown := make([]checkpoint, 0, len(r.Breakdown))
	for _, c := range r.Breakdown {
		breakdown = append(breakdown, checkpoint(c))
	}
	w.Append("breakdown", breakdown)
	return w.MarshalJSON()
}

// Preset is a ready made plan offered by the calculator.
type Preset struct {
	MonthlyInvestment   float64
	Years               int
	AnnualReturnPercent float64
}

// Presets are the quick plans of the calculator form.
var Presets = []Preset{
	{MonthlyInvestment: 5000, Years: 5, AnnualReturnPercent: 12},
	{MonthlyInvestment: 10000, Years: 10, AnnualReturnPercent: 12},
	{MonthlyInvestment: 20000, Years: 15, AnnualReturnPercent: 12},
	{MonthlyInvestment: 50000, Years: 20, AnnualReturnPercent: 12},
}

// QuickAmounts and QuickRates are the one click values of the form.
var (
	QuickAmounts = []float64{1000, 5000, 10000, 25000, 50000}
	QuickRates   = []float64{8, 10, 12, 15, 18}
)

// SIPPlanner is the state edited by a SIP calculator. Every setter clamps
// its value to the planner's bounds before storing it, so the parameters are
// always valid. It is owned by a single host and not safe for concurrent use.
type SIPPlanner struct {
	bounds Bounds
	params SIPParameters
}

// NewSIPPlanner returns a planner with DefaultBounds and DefaultSIPParameters.
func NewSIPPlanner() *SIPPlanner {
	return NewSIPPlannerWithBounds(DefaultBounds)
}

// NewSIPPlannerWithBounds returns a planner enforcing b, starting from
// DefaultSIPParameters clamped to b.
func NewSIPPlannerWithBounds(b Bounds) *SIPPlanner {
	p := &SIPPlanner{bounds: b}
	p.Reset()
	return p
}

// Reset restores DefaultSIPParameters.
func (p *SIPPlanner) Reset() {
	p.params = p.bounds.Clamp(DefaultSIPParameters)
}

// Bounds returns the limits enforced by the planner.
func (p *SIPPlanner) Bounds() Bounds { return p.bounds }

// Params returns the current, always valid, parameters.
func (p *SIPPlanner) Params() SIPParameters { return p.params }

// SetMonthlyInvestment stores v clamped to the bounds.
func (p *SIPPlanner) SetMonthlyInvestment(v float64) {
	p.params.MonthlyInvestment = p.bounds.MonthlyInvestment.Clamp(v)
}

// SetAnnualReturn stores v clamped to the bounds.
func (p *SIPPlanner) SetAnnualReturn(v float64) {
	p.params.AnnualReturnPercent = p.bounds.AnnualReturnPercent.Clamp(v)
}

// SetYears stores v clamped to the bounds.
func (p *SIPPlanner) SetYears(v int) {
	p.params.Years = int(p.bounds.Years.Clamp(float64(v)))
}

// SetMonthlyInvestmentText parses raw and stores it clamped. Text that does
// not read as a number stores the lower bound.
func (p *SIPPlanner) SetMonthlyInvestmentText(raw string) {
	p.SetMonthlyInvestment(p.parse(raw, p.bounds.MonthlyInvestment))
}

// SetAnnualReturnText parses raw and stores it clamped. Text that does not
// read as a number stores the lower bound.
func (p *SIPPlanner) SetAnnualReturnText(raw string) {
	p.SetAnnualReturn(p.parse(raw, p.bounds.AnnualReturnPercent))
}

// SetYearsText parses raw, drops any fraction and stores it clamped. Text
// that does not read as a number stores the lower bound.
func (p *SIPPlanner) SetYearsText(raw string) {
	v := p.parse(raw, p.bounds.Years)
	p.SetYears(int(p.bounds.Years.Clamp(math.Trunc(v))))
}

func (p *SIPPlanner) parse(raw string, r Range) float64 {
	v, ok := ParseNumber(raw)
	if !ok || math.IsNaN(v) {
		return r.Min
	}
	return v
}

// ApplyPreset stores the preset's values, each clamped.
func (p *SIPPlanner) ApplyPreset(s Preset) {
	p.SetMonthlyInvestment(s.MonthlyInvestment)
	p.SetYears(s.Years)
	p.SetAnnualReturn(s.AnnualReturnPercent)
}

// Result projects the current parameters.
func (p *SIPPlanner) Result() SIPResult { return Project(p.params) }
