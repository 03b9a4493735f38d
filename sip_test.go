package fincalc

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProject_Defaults(t *testing.T) {
	r := Project(DefaultSIPParameters)

	if r.TotalInvestment != 600000 {
		t.Errorf("TotalInvestment = %v, want 600000", r.TotalInvestment)
	}
	if got := math.Round(r.FutureValue); got != 1161695 {
		t.Errorf("FutureValue = %v (rounded %v), want 1161695", r.FutureValue, got)
	}
	if got := math.Round(r.WealthGained); got != 561695 {
		t.Errorf("WealthGained = %v (rounded %v), want 561695", r.WealthGained, got)
	}
	if r.WealthGained != r.FutureValue-r.TotalInvestment {
		t.Errorf("WealthGained %v != FutureValue - TotalInvestment", r.WealthGained)
	}
}

func TestProject_Minimum(t *testing.T) {
	r := Project(SIPParameters{MonthlyInvestment: 500, AnnualReturnPercent: 1, Years: 1})
	if r.TotalInvestment != 6000 {
		t.Errorf("TotalInvestment = %v, want 6000", r.TotalInvestment)
	}
	if r.FutureValue < r.TotalInvestment {
		t.Errorf("FutureValue %v < TotalInvestment %v", r.FutureValue, r.TotalInvestment)
	}
	if len(r.Breakdown) != 0 {
		t.Errorf("Breakdown = %v, want none for a one year plan", r.Breakdown)
	}
}

func TestProject_ZeroRate(t *testing.T) {
	r := Project(SIPParameters{MonthlyInvestment: 1000, AnnualReturnPercent: 0, Years: 5})
	if r.FutureValue != 60000 {
		t.Errorf("FutureValue = %v, want 60000", r.FutureValue)
	}
	if r.WealthGained != 0 {
		t.Errorf("WealthGained = %v, want 0", r.WealthGained)
	}
	if len(r.Breakdown) != 1 || r.Breakdown[0].GainPercent != 0 {
		t.Errorf("Breakdown = %+v, want a single checkpoint with no gain", r.Breakdown)
	}
}

func TestProject_FutureValueCoversInvestment(t *testing.T) {
	for _, monthly := range []float64{500, 5000, 1_000_000} {
		for _, rate := range []float64{1, 7.5, 12, 30} {
			for _, years := range []int{1, 10, 40} {
				p := SIPParameters{MonthlyInvestment: monthly, AnnualReturnPercent: rate, Years: years}
				r := Project(p)
				if r.TotalInvestment != monthly*float64(years)*12 {
					t.Errorf("%+v: TotalInvestment = %v", p, r.TotalInvestment)
				}
				if r.FutureValue < r.TotalInvestment {
					t.Errorf("%+v: FutureValue %v < TotalInvestment %v", p, r.FutureValue, r.TotalInvestment)
				}
			}
		}
	}
}

func TestProject_Breakdown(t *testing.T) {
	p := SIPParameters{MonthlyInvestment: 5000, AnnualReturnPercent: 12, Years: 20}
	r := Project(p)

	var years []int
	for _, c := range r.Breakdown {
		years = append(years, c.Year)
		want := FutureValue(p.MonthlyInvestment, p.AnnualReturnPercent, c.Year*12)
		if c.FutureValue != want {
			t.Errorf("year %d: FutureValue = %v, want %v", c.Year, c.FutureValue, want)
		}
		if c.TotalInvestment != p.MonthlyInvestment*float64(c.Year*12) {
			t.Errorf("year %d: TotalInvestment = %v", c.Year, c.TotalInvestment)
		}
	}
	if diff := cmp.Diff([]int{5, 10, 15, 20}, years); diff != "" {
		t.Errorf("checkpoint years mismatch (-want +got):\n%s", diff)
	}

	// the last checkpoint is the projection itself.
	last := r.Breakdown[len(r.Breakdown)-1]
	if last.FutureValue != r.FutureValue {
		t.Errorf("year 20 FutureValue = %v, want %v", last.FutureValue, r.FutureValue)
	}

	t.Run("filtered by duration", func(t *testing.T) {
		r := Project(SIPParameters{MonthlyInvestment: 5000, AnnualReturnPercent: 12, Years: 12})
		var got []int
		for _, c := range r.Breakdown {
			got = append(got, c.Year)
		}
		if diff := cmp.Diff([]int{5, 10}, got); diff != "" {
			t.Errorf("checkpoint years mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestCheckpoint_Percentages(t *testing.T) {
	tests := []struct {
		name      string
		c         Checkpoint
		wantGain  int
		wantWidth int
	}{
		{"10 years at 12%", Project(DefaultSIPParameters).Breakdown[1], 94, 100},
		{"5 years at 12%", Project(DefaultSIPParameters).Breakdown[0], 37, 74},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.c.GainPercent != tt.wantGain {
				t.Errorf("GainPercent = %d, want %d", tt.c.GainPercent, tt.wantGain)
			}
			if got := tt.c.BarWidth(); got != tt.wantWidth {
				t.Errorf("BarWidth() = %d, want %d", got, tt.wantWidth)
			}
		})
	}
}

func TestProject_Idempotent(t *testing.T) {
	p := SIPParameters{MonthlyInvestment: 12345, AnnualReturnPercent: 13.5, Years: 17}
	a, b := Project(p), Project(p)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Project is not deterministic: %+v != %+v", a, b)
	}
	if math.Float64bits(a.FutureValue) != math.Float64bits(b.FutureValue) {
		t.Errorf("FutureValue bits differ")
	}
}

func TestSIPPlanner_Clamping(t *testing.T) {
	p := NewSIPPlanner()
	if got := p.Params(); got != DefaultSIPParameters {
		t.Fatalf("initial Params() = %+v, want %+v", got, DefaultSIPParameters)
	}

	p.SetMonthlyInvestment(2_000_000)
	p.SetYears(0)
	p.SetAnnualReturn(50)
	want := SIPParameters{MonthlyInvestment: 1_000_000, AnnualReturnPercent: 30, Years: 1}
	if got := p.Params(); got != want {
		t.Errorf("Params() = %+v, want %+v", got, want)
	}

	p.SetMonthlyInvestment(10)
	p.SetAnnualReturn(0)
	p.SetYears(99)
	want = SIPParameters{MonthlyInvestment: 500, AnnualReturnPercent: 1, Years: 40}
	if got := p.Params(); got != want {
		t.Errorf("Params() = %+v, want %+v", got, want)
	}

	p.Reset()
	if got := p.Params(); got != DefaultSIPParameters {
		t.Errorf("Params() after Reset = %+v, want %+v", got, DefaultSIPParameters)
	}
}

func TestSIPPlanner_Text(t *testing.T) {
	tests := []struct {
		name    string
		monthly string
		rate    string
		years   string
		want    SIPParameters
	}{
		{"plain values", "7500", "10.5", "15", SIPParameters{7500, 10.5, 15}},
		{"garbage goes to the lower bound", "abc", "", "x", SIPParameters{500, 1, 1}},
		{"trailing text is ignored", "2000rs", "8%", "12 years", SIPParameters{2000, 8, 12}},
		{"fractional years are truncated", "5000", "12", "10.9", SIPParameters{5000, 12, 10}},
		{"out of range is clamped", "2000000", "50", "0", SIPParameters{1_000_000, 30, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewSIPPlanner()
			p.SetMonthlyInvestmentText(tt.monthly)
			p.SetAnnualReturnText(tt.rate)
			p.SetYearsText(tt.years)
			if got := p.Params(); got != tt.want {
				t.Errorf("Params() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSIPPlanner_Presets(t *testing.T) {
	p := NewSIPPlanner()
	for _, preset := range Presets {
		p.ApplyPreset(preset)
		want := SIPParameters{preset.MonthlyInvestment, preset.AnnualReturnPercent, preset.Years}
		if got := p.Params(); got != want {
			t.Errorf("ApplyPreset(%+v) = %+v, want %+v", preset, got, want)
		}
	}

	t.Run("custom bounds", func(t *testing.T) {
		b := DefaultBounds
		b.Years = Range{Min: 1, Max: 12}
		p := NewSIPPlannerWithBounds(b)
		p.ApplyPreset(Presets[3])
		if got := p.Params().Years; got != 12 {
			t.Errorf("Years = %d, want 12", got)
		}
		if got := len(p.Result().Breakdown); got != 2 {
			t.Errorf("len(Breakdown) = %d, want 2", got)
		}
	})
}

func TestSIPResult_MarshalJSON(t *testing.T) {
	r := Project(SIPParameters{MonthlyInvestment: 1000, AnnualReturnPercent: 0, Years: 5})
	got, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"parameters":{"monthlyInvestment":1000,"annualReturnPercent":0,"years":5},` +
		`"futureValue":60000,"totalInvestment":60000,"wealthGained":0,` +
		`"breakdown":[{"year":5,"totalInvestment":60000,"futureValue":60000,"gainPercent":0}]}`
	if string(got) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", got, want)
	}
}
