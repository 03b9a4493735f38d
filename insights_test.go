package fincalc

import "testing"

func TestAssess(t *testing.T) {
	tests := []struct {
		name     string
		values   map[string]float64
		expenses float64
		wantMet  []bool
		wantDTA  Percent
	}{
		{
			name:    "empty sheet",
			values:  nil,
			wantMet: []bool{false, false, true},
		},
		{
			name: "healthy",
			values: map[string]float64{
				"home":     250000,
				"savings":  60000,
				"carLoans": 15000,
			},
			expenses: 10000,
			wantMet:  []bool{true, true, true},
			wantDTA:  15000.0 / 310000 * 100,
		},
		{
			name: "indebted",
			values: map[string]float64{
				"checking":                2500,
				"outstandingMortgageLoan": 150000,
			},
			expenses: 10000,
			wantMet:  []bool{false, false, false},
			wantDTA:  6000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Assess(sheet(t, tt.values), tt.expenses)
			if len(h.Tips) != len(tt.wantMet) {
				t.Fatalf("got %d tips, want %d", len(h.Tips), len(tt.wantMet))
			}
			for i, tip := range h.Tips {
				if tip.Met != tt.wantMet[i] {
					t.Errorf("tip %q met = %v, want %v", tip.Text, tip.Met, tt.wantMet[i])
				}
			}
			if !h.DebtToAssetRatio.Equal(tt.wantDTA) {
				t.Errorf("DebtToAssetRatio = %v, want %v", h.DebtToAssetRatio, tt.wantDTA)
			}
		})
	}
}

func TestAssess_CashMonths(t *testing.T) {
	s := sheet(t, map[string]float64{"savings": 30000, "checking": 6000, "stocks": 1e6})
	h := Assess(s, 0)
	if h.CashMonths != -1 {
		t.Errorf("CashMonths without expenses = %v, want -1", h.CashMonths)
	}
	h = Assess(s, 12000)
	if h.CashMonths != 3 {
		t.Errorf("CashMonths = %v, want 3", h.CashMonths)
	}
	if !h.Cash.Equal(INR(36000)) {
		t.Errorf("Cash = %v, want 36000", h.Cash)
	}
}

func TestEmergencyFund(t *testing.T) {
	low, high := EmergencyFund(INR(20000))
	if !low.Equal(INR(60000)) || !high.Equal(INR(120000)) {
		t.Errorf("EmergencyFund() = %v, %v; want 60000, 120000", low, high)
	}
}
